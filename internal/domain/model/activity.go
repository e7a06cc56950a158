package model

import (
	"time"
)

const (
	ActionProjectCreated = "project.created"
	ActionProjectUpdated = "project.updated"
	ActionProjectDeleted = "project.deleted"
	ActionTaskCreated    = "task.created"
	ActionTaskUpdated    = "task.updated"
	ActionTaskDeleted    = "task.deleted"
)

const (
	EntityProject = "project"
	EntityTask    = "task"
)

// Activity records a mutation performed by a user. Events are queued
// through redis and persisted asynchronously by the activity worker.
type Activity struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}
