package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Activity, error)
}

type pgActivityRepository struct {
	db *sql.DB
}

func NewPgActivityRepository(db *sql.DB) ActivityRepository {
	return &pgActivityRepository{db: db}
}

func (r *pgActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	query := `INSERT INTO activities (id, user_id, action, entity_type, entity_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.UserID, a.Action, a.EntityType, a.EntityID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgActivityRepository.Create: %w", err)
	}
	return nil
}

func (r *pgActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Activity, error) {
	query := `SELECT id, user_id, action, entity_type, entity_id, created_at
	          FROM activities WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("pgActivityRepository.ListByUser query: %w", err)
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.EntityType, &a.EntityID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgActivityRepository.ListByUser scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgActivityRepository.ListByUser rows.Err: %w", err)
	}
	return activities, nil
}
