package service

import (
	"context"
	"sync"

	"anoa.com/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	mu          sync.Mutex
	byID        map[uuid.UUID]*model.User
	interns     map[uuid.UUID]*model.InternProfile
	supervisors map[uuid.UUID]*model.SupervisorProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:        make(map[uuid.UUID]*model.User),
		interns:     make(map[uuid.UUID]*model.InternProfile),
		supervisors: make(map[uuid.UUID]*model.SupervisorProfile),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User, intern *model.InternProfile, supervisor *model.SupervisorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byID[user.ID] = user
	if intern != nil {
		intern.UserID = user.ID
		r.interns[user.ID] = intern
	}
	if supervisor != nil {
		supervisor.UserID = user.ID
		r.supervisors[user.ID] = supervisor
	}
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email != nil && *user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Phone != nil && *user.Phone == phone {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	_, err := r.FindByPhone(ctx, phone)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) InternProfile(ctx context.Context, userID uuid.UUID) (*model.InternProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.interns[userID]; ok {
		return profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) SupervisorProfile(ctx context.Context, userID uuid.UUID) (*model.SupervisorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.supervisors[userID]; ok {
		return profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTaskRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*model.Task
	order     []uuid.UUID
	updateErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: make(map[uuid.UUID]*model.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	r.byID[task.ID] = task
	r.order = append(r.order, task.ID)
	return nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Hand out a copy, as a fresh row scan would.
	copied := *task
	copied.Contributors = append([]model.User(nil), task.Contributors...)
	return &copied, nil
}

func (r *fakeTaskRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, task := range r.byID {
		if task.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTaskRepo) UpdateWithContributors(ctx context.Context, task *model.Task, users []*model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, user := range users {
		if !task.HasContributor(user.ID) {
			task.Contributors = append(task.Contributors, *user)
		}
	}
	r.byID[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task, ok := r.byID[id]; ok {
		task.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeTaskRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, page, limit int) ([]*model.Task, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*model.Task
	for _, id := range r.order {
		if r.byID[id].CreatorID == creatorID {
			matched = append(matched, r.byID[id])
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *fakeTaskRepo) ListByContributor(ctx context.Context, userID uuid.UUID, statuses []model.TaskStatus, page, limit int) ([]*model.Task, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*model.Task
	for _, id := range r.order {
		task := r.byID[id]
		if !task.HasContributor(userID) {
			continue
		}
		for _, status := range statuses {
			if task.Status == status {
				matched = append(matched, task)
				break
			}
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

type fakeSubmissionRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*model.SubmittedTask
	order []uuid.UUID
	tasks *fakeTaskRepo
}

func newFakeSubmissionRepo(tasks *fakeTaskRepo) *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		byID:  make(map[uuid.UUID]*model.SubmittedTask),
		tasks: tasks,
	}
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *model.SubmittedTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	r.byID[submission.ID] = submission
	r.order = append(r.order, submission.ID)
	return nil
}

func (r *fakeSubmissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SubmittedTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if submission, ok := r.byID[id]; ok {
		return submission, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) ExistsByTaskAndCreator(ctx context.Context, taskID, creatorID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, submission := range r.byID {
		if submission.TaskID == taskID && submission.CreatorID == creatorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubmissionRepo) Review(ctx context.Context, submission *model.SubmittedTask) error {
	r.mu.Lock()
	r.byID[submission.ID] = submission
	r.mu.Unlock()
	return r.tasks.UpdateStatus(ctx, submission.TaskID, model.TaskStatusOpen)
}

func (r *fakeSubmissionRepo) List(ctx context.Context, page, limit int) ([]*model.SubmittedTask, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*model.SubmittedTask
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	return paginate(all, page, limit), int64(len(all)), nil
}

func (r *fakeSubmissionRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, page, limit int) ([]*model.SubmittedTask, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*model.SubmittedTask
	for _, id := range r.order {
		if r.byID[id].CreatorID == creatorID {
			matched = append(matched, r.byID[id])
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
