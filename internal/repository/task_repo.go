package repository

import (
	"context"

	"anoa.com/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	UpdateWithContributors(ctx context.Context, task *model.Task, users []*model.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error
	ListByCreator(ctx context.Context, creatorID uuid.UUID, page, limit int) ([]*model.Task, int64, error)
	ListByContributor(ctx context.Context, userID uuid.UUID, statuses []model.TaskStatus, page, limit int) ([]*model.Task, int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Preload("Contributors").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *taskRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateWithContributors saves the task fields and appends the new
// contributor rows in one transaction, so a failure on either write
// rolls back both.
func (r *taskRepository) UpdateWithContributors(ctx context.Context, task *model.Task, users []*model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Contributors").Save(task).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Model(task).Association("Contributors").Append(users)
	})
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *taskRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID, page, limit int) ([]*model.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("creator_id = ?", creatorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*model.Task
	if err := query.
		Preload("Contributors").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *taskRepository) ListByContributor(ctx context.Context, userID uuid.UUID, statuses []model.TaskStatus, page, limit int) ([]*model.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).
		Joins("JOIN task_contributors tc ON tc.task_id = tasks.id").
		Where("tc.user_id = ?", userID).
		Where("tasks.status IN ?", statuses)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*model.Task
	if err := query.
		Preload("Contributors").
		Order("tasks.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}
