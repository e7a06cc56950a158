package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/repository"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// ActivityWorker drains the redis activity queue and persists events.
// Requests never wait on this path; a lost event costs an audit row, not
// a failed mutation.
type ActivityWorker struct {
	rdb          *redis.Client
	activityRepo repository.ActivityRepository
}

func NewActivityWorker(rdb *redis.Client, activityRepo repository.ActivityRepository) *ActivityWorker {
	return &ActivityWorker{rdb: rdb, activityRepo: activityRepo}
}

func (w *ActivityWorker) Start(ctx context.Context) {
	log.Println("Activity worker started, listening to queue:", config.AppConfig.ActivityQueueName)
	for {
		select {
		case <-ctx.Done():
			log.Println("Activity worker stopping...")
			return
		default:
			// Blocking pop from Redis queue
			entry, err := w.rdb.BRPop(ctx, 0*time.Second, config.AppConfig.ActivityQueueName).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					log.Printf("Worker BRPop exiting or timed out: %v", err)
					time.Sleep(1 * time.Second) // Avoid busy-looping on certain errors
					continue
				}
				log.Printf("ERROR: Failed to BRPop from Redis queue '%s': %v", config.AppConfig.ActivityQueueName, err)
				time.Sleep(5 * time.Second) // Wait before retrying on other errors
				continue
			}

			// entry is an array: [queueName, value]
			if len(entry) < 2 || entry[1] == "" {
				log.Println("WARN: BRPop returned empty activity payload.")
				continue
			}
			w.persistEvent(ctx, entry[1])
		}
	}
}

func (w *ActivityWorker) persistEvent(ctx context.Context, payload string) {
	var activity model.Activity
	if err := json.Unmarshal([]byte(payload), &activity); err != nil {
		log.Printf("ERROR: Failed to unmarshal activity payload: %v", err)
		return
	}

	if err := w.activityRepo.Create(ctx, &activity); err != nil {
		log.Printf("ERROR: Failed to persist activity %s: %v", activity.ID, err)
		return
	}
	log.Printf("Activity %s persisted (%s %s)", activity.ID, activity.Action, activity.EntityID)
}
