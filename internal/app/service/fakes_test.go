package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common/security"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/domain/model"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/config"
)

// In-memory repository fakes shared by the service tests.

func setupSecurity() {
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return fmt.Errorf("user with given username already exists: %w", common.ErrConflict)
	}
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects []model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, *p)
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id string) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeProjectRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Project{}
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = *p
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks []model.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, *t)
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.ID == id {
			clone := t
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeTaskRepo) ListByProject(_ context.Context, projectID string) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Task{}
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			r.tasks[i] = *t
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// recordingActivities captures published events for assertions.
type recordingActivities struct {
	mu     sync.Mutex
	events []string
}

func (a *recordingActivities) Record(_ context.Context, userID, action, entityType, entityID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, userID+" "+action)
}

func (a *recordingActivities) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.events...)
}
