package repository

import (
	"context"

	"anoa.com/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.SubmittedTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SubmittedTask, error)
	ExistsByTaskAndCreator(ctx context.Context, taskID, creatorID uuid.UUID) (bool, error)
	// Review saves the reviewed submission and re-opens its parent task in
	// one transaction.
	Review(ctx context.Context, submission *model.SubmittedTask) error
	List(ctx context.Context, page, limit int) ([]*model.SubmittedTask, int64, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, page, limit int) ([]*model.SubmittedTask, int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.SubmittedTask) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SubmittedTask, error) {
	var submission model.SubmittedTask
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&submission).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

func (r *submissionRepository) ExistsByTaskAndCreator(ctx context.Context, taskID, creatorID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SubmittedTask{}).
		Where("task_id = ? AND creator_id = ?", taskID, creatorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *submissionRepository) Review(ctx context.Context, submission *model.SubmittedTask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(submission).Error; err != nil {
			return err
		}

		return tx.Model(&model.Task{}).
			Where("id = ?", submission.TaskID).
			Update("status", model.TaskStatusOpen).Error
	})
}

func (r *submissionRepository) List(ctx context.Context, page, limit int) ([]*model.SubmittedTask, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&model.SubmittedTask{}), page, limit)
}

func (r *submissionRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID, page, limit int) ([]*model.SubmittedTask, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SubmittedTask{}).
		Where("creator_id = ?", creatorID)
	return r.list(ctx, query, page, limit)
}

func (r *submissionRepository) list(ctx context.Context, query *gorm.DB, page, limit int) ([]*model.SubmittedTask, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []*model.SubmittedTask
	if err := query.
		Order("submission_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}
