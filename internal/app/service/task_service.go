package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/repository"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	activities  ActivityPublisher
}

func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, activities ActivityPublisher) *TaskService {
	return &TaskService{taskRepo: taskRepo, projectRepo: projectRepo, activities: activities}
}

type CreateTaskRequest struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	ProjectID string `json:"projectId"`
}

type UpdateTaskRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (s *TaskService) CreateTask(ctx context.Context, userID, userRole string, req CreateTaskRequest) (*model.Task, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("task name is required: %w", common.ErrValidation)
	}
	if req.ProjectID == "" {
		return nil, fmt.Errorf("projectId is required: %w", common.ErrBadRequest)
	}

	if err := s.authorizeProject(ctx, userID, userRole, req.ProjectID); err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Status:    req.Status,
		ProjectID: req.ProjectID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.activities.Record(ctx, userID, model.ActionTaskCreated, model.EntityTask, task.ID)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID, userRole, projectID string) ([]model.Task, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectId query parameter is required: %w", common.ErrBadRequest)
	}

	if err := s.authorizeProject(ctx, userID, userRole, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, userRole, taskID string, req UpdateTaskRequest) error {
	if req.Name == "" {
		return fmt.Errorf("task name is required: %w", common.ErrValidation)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.authorizeProject(ctx, userID, userRole, task.ProjectID); err != nil {
		return err
	}

	task.Name = req.Name
	task.Status = req.Status

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.activities.Record(ctx, userID, model.ActionTaskUpdated, model.EntityTask, task.ID)
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, userRole, taskID string) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.authorizeProject(ctx, userID, userRole, task.ProjectID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.activities.Record(ctx, userID, model.ActionTaskDeleted, model.EntityTask, taskID)
	return nil
}

// authorizeProject resolves a task operation's project and applies the
// ownership predicate. A missing project surfaces as NotFound so callers
// cannot reference projects that do not exist.
func (s *TaskService) authorizeProject(ctx context.Context, userID, userRole, projectID string) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("project %s not found: %w", projectID, common.ErrNotFound)
		}
		return fmt.Errorf("failed to find project: %w", err)
	}
	return authorizeOwner(project.OwnerID, userID, userRole)
}
