package service

import (
	"context"
	"errors"
	"testing"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
)

func TestProjectService_CreateAndList(t *testing.T) {
	activities := &recordingActivities{}
	svc := NewProjectService(newFakeProjectRepo(), activities)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "user-a", CreateProjectRequest{Name: "P1", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if project.OwnerID != "user-a" {
		t.Errorf("OwnerID = %q, want %q", project.OwnerID, "user-a")
	}
	if project.Slug != "p1" {
		t.Errorf("Slug = %q, want %q", project.Slug, "p1")
	}

	projects, err := svc.ListProjects(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "P1" {
		t.Fatalf("ListProjects() = %+v, want single project P1", projects)
	}

	events := activities.all()
	if len(events) != 1 || events[0] != "user-a "+model.ActionProjectCreated {
		t.Errorf("activity events = %v, want project.created for user-a", events)
	}
}

func TestProjectService_CreateRequiresName(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})

	if _, err := svc.CreateProject(context.Background(), "user-a", CreateProjectRequest{Description: "d"}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("CreateProject() error = %v, want ErrValidation", err)
	}
}

func TestProjectService_OwnerIsolation(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, "user-a", CreateProjectRequest{Name: "A's project"}); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	projects, err := svc.ListProjects(ctx, "user-b")
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("user-b sees %d projects, want 0", len(projects))
	}
}

func TestProjectService_UpdateRoundTrip(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "user-a", CreateProjectRequest{Name: "P1", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	err = svc.UpdateProject(ctx, "user-a", model.RoleUser, project.ID, UpdateProjectRequest{Name: "P1 renamed", Description: "d2"})
	if err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}

	projects, err := svc.ListProjects(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("ListProjects() returned %d projects, want 1", len(projects))
	}
	got := projects[0]
	if got.Name != "P1 renamed" || got.Description != "d2" {
		t.Errorf("updated project = %+v, want new name/description", got)
	}
	if got.ID != project.ID || got.OwnerID != "user-a" {
		t.Errorf("update changed identity fields: %+v", got)
	}
	if got.Slug != "p1-renamed" {
		t.Errorf("Slug = %q, want %q", got.Slug, "p1-renamed")
	}
}

func TestProjectService_UpdateOwnershipEnforced(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "user-a", CreateProjectRequest{Name: "P1"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	err = svc.UpdateProject(ctx, "user-b", model.RoleUser, project.ID, UpdateProjectRequest{Name: "hijacked"})
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("UpdateProject() by non-owner error = %v, want ErrForbidden", err)
	}

	if err := svc.DeleteProject(ctx, "user-b", model.RoleUser, project.ID); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("DeleteProject() by non-owner error = %v, want ErrForbidden", err)
	}
}

func TestProjectService_AdminBypassesOwnership(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "user-a", CreateProjectRequest{Name: "P1"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	err = svc.UpdateProject(ctx, "admin-1", model.RoleAdmin, project.ID, UpdateProjectRequest{Name: "moderated"})
	if err != nil {
		t.Errorf("UpdateProject() by admin error = %v", err)
	}
	if err := svc.DeleteProject(ctx, "admin-1", model.RoleAdmin, project.ID); err != nil {
		t.Errorf("DeleteProject() by admin error = %v", err)
	}
}

func TestProjectService_UpdateMissingProject(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})

	err := svc.UpdateProject(context.Background(), "user-a", model.RoleUser, "no-such-id", UpdateProjectRequest{Name: "x"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("UpdateProject() error = %v, want ErrNotFound", err)
	}
}

func TestProjectService_Delete(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &recordingActivities{})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "user-a", CreateProjectRequest{Name: "P1"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	if err := svc.DeleteProject(ctx, "user-a", model.RoleUser, project.ID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}

	projects, err := svc.ListProjects(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("ListProjects() after delete = %d projects, want 0", len(projects))
	}
}
