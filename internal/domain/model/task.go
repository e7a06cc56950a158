package model

import (
	"time"
)

// Task belongs to a project. Status is an opaque caller-supplied string;
// no vocabulary or transitions are enforced.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
