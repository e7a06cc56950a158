package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/repository"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const activityListLimit = 50

// ActivityPublisher records user-visible mutations. Publishing is
// best-effort: failures must never fail the request that triggered them.
type ActivityPublisher interface {
	Record(ctx context.Context, userID, action, entityType, entityID string)
}

type ActivityService struct {
	rdb          *redis.Client
	activityRepo repository.ActivityRepository
}

func NewActivityService(rdb *redis.Client, activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{rdb: rdb, activityRepo: activityRepo}
}

// Record pushes the event onto the redis activity queue; the activity
// worker drains the queue and persists events.
func (s *ActivityService) Record(ctx context.Context, userID, action, entityType, entityID string) {
	activity := model.Activity{
		ID:         uuid.NewString(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(activity)
	if err != nil {
		log.Printf("ERROR: Failed to marshal activity event: %v", err)
		return
	}
	if err := s.rdb.LPush(ctx, config.AppConfig.ActivityQueueName, payload).Err(); err != nil {
		log.Printf("ERROR: Failed to enqueue activity event %s: %v", activity.ID, err)
	}
}

func (s *ActivityService) ListForUser(ctx context.Context, userID string) ([]model.Activity, error) {
	return s.activityRepo.ListByUser(ctx, userID, activityListLimit)
}
