package service

import (
	"context"
	"errors"

	"anoa.com/internhub/internal/dto"
	"anoa.com/internhub/internal/model"
	"anoa.com/internhub/internal/repository"
	"anoa.com/internhub/pkg/apperror"
	"anoa.com/internhub/pkg/validation"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

const titleSubmitTask = "Submit Task"

type SubmissionService interface {
	Submit(ctx context.Context, creatorID uuid.UUID, input dto.SubmitTaskRequest) (*dto.SubmissionResponse, error)
	Review(ctx context.Context, reviewerID uuid.UUID, submissionID string, input dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, error)
	List(ctx context.Context, caller *model.User, page, limit int) (*dto.Paginated[dto.SubmissionResponse], error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	taskRepo       repository.TaskRepository
	sanitizer      *bluemonday.Policy
	// visibleToOwnOnly restricts the intern listing to the caller's own
	// submissions; the historical behaviour ("all") shows everything.
	visibleToOwnOnly bool
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, taskRepo repository.TaskRepository, visibility string) SubmissionService {
	return &submissionService{
		submissionRepo:   submissionRepo,
		taskRepo:         taskRepo,
		sanitizer:        bluemonday.UGCPolicy(),
		visibleToOwnOnly: visibility == "own",
	}
}

func (s *submissionService) Submit(ctx context.Context, creatorID uuid.UUID, input dto.SubmitTaskRequest) (*dto.SubmissionResponse, error) {
	if input.Task == "" {
		return nil, apperror.Unprocessable(titleSubmitTask, "Task is required and cannot be empty.")
	}

	if !validation.IsUUID(input.Task) {
		return nil, apperror.Unprocessable(titleSubmitTask, "Invalid task.")
	}

	task, err := s.taskRepo.FindByID(ctx, uuid.MustParse(input.Task))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unprocessable(titleSubmitTask, "Task does not exist.")
		}
		return nil, err
	}

	if !task.HasContributor(creatorID) {
		return nil, apperror.Unprocessable(titleSubmitTask, "Current user is not a contributor to this task")
	}

	exists, err := s.submissionRepo.ExistsByTaskAndCreator(ctx, task.ID, creatorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Unprocessable(titleSubmitTask, "Already submitted.")
	}

	submission := &model.SubmittedTask{
		TaskID:    task.ID,
		CreatorID: creatorID,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	res := submissionToResponse(submission)
	return &res, nil
}

func (s *submissionService) Review(ctx context.Context, reviewerID uuid.UUID, submissionID string, input dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, error) {
	if !validation.IsUUID(submissionID) {
		return nil, apperror.Unprocessable(titleSubmitTask, "Invalid UUID")
	}

	submission, err := s.submissionRepo.FindByID(ctx, uuid.MustParse(submissionID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unprocessable(titleSubmitTask, "Submit Task does not exist!")
		}
		return nil, err
	}

	if input.Score != nil && *input.Score > 10 {
		return nil, apperror.Unprocessable(titleSubmitTask, "Score must not be greater than 10")
	}

	if input.IsApproved != nil {
		submission.IsApproved = *input.IsApproved
	}
	if input.Remarks != nil {
		sanitized := s.sanitizer.Sanitize(*input.Remarks)
		submission.Remarks = &sanitized
	}
	if input.Score != nil {
		submission.Score = *input.Score
	}
	submission.ModifierID = &reviewerID

	// Review re-opens the parent task unconditionally.
	if err := s.submissionRepo.Review(ctx, submission); err != nil {
		return nil, err
	}

	res := submissionToResponse(submission)
	return &res, nil
}

func (s *submissionService) List(ctx context.Context, caller *model.User, page, limit int) (*dto.Paginated[dto.SubmissionResponse], error) {
	var submissions []*model.SubmittedTask
	var total int64
	var err error

	if s.visibleToOwnOnly && caller.Role == model.RoleIntern {
		submissions, total, err = s.submissionRepo.ListByCreator(ctx, caller.ID, page, limit)
	} else {
		submissions, total, err = s.submissionRepo.List(ctx, page, limit)
	}
	if err != nil {
		return nil, err
	}

	results := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		results = append(results, submissionToResponse(submission))
	}

	return &dto.Paginated[dto.SubmissionResponse]{
		Results: results,
		Meta:    dto.NewPaginationMeta(page, limit, total),
	}, nil
}

func submissionToResponse(submission *model.SubmittedTask) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:             submission.ID,
		Task:           submission.TaskID,
		Creator:        submission.CreatorID,
		SubmissionDate: submission.SubmissionDate,
		IsApproved:     submission.IsApproved,
		Remarks:        submission.Remarks,
		Score:          submission.Score,
		Modifier:       submission.ModifierID,
	}
}
