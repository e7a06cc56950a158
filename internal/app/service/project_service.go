package service

import (
	"context"
	"fmt"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
	activities  ActivityPublisher
}

func NewProjectService(projectRepo repository.ProjectRepository, activities ActivityPublisher) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, activities: activities}
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *ProjectService) CreateProject(ctx context.Context, ownerID string, req CreateProjectRequest) (*model.Project, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("project name is required: %w", common.ErrValidation)
	}

	project := &model.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		OwnerID:     ownerID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.activities.Record(ctx, ownerID, model.ActionProjectCreated, model.EntityProject, project.ID)
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, ownerID string) ([]model.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, userID, userRole, projectID string, req UpdateProjectRequest) error {
	if req.Name == "" {
		return fmt.Errorf("project name is required: %w", common.ErrValidation)
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(project.OwnerID, userID, userRole); err != nil {
		return err
	}

	project.Name = req.Name
	project.Slug = slug.Make(req.Name)
	project.Description = req.Description

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	s.activities.Record(ctx, userID, model.ActionProjectUpdated, model.EntityProject, project.ID)
	return nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, userID, userRole, projectID string) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(project.OwnerID, userID, userRole); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.activities.Record(ctx, userID, model.ActionProjectDeleted, model.EntityProject, projectID)
	return nil
}

// authorizeOwner enforces the ownership predicate on mutations. Admins
// may operate on any record.
func authorizeOwner(ownerID, userID, userRole string) error {
	if ownerID != userID && userRole != model.RoleAdmin {
		return common.ErrForbidden
	}
	return nil
}
