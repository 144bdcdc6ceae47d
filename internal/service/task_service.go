package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/internhub/internal/dto"
	"anoa.com/internhub/internal/model"
	"anoa.com/internhub/internal/repository"
	"anoa.com/internhub/pkg/apperror"
	"anoa.com/internhub/pkg/validation"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

const titleTask = "Task"

type TaskService interface {
	Create(ctx context.Context, creatorID uuid.UUID, input dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Edit(ctx context.Context, taskID string, input dto.EditTaskRequest) (*dto.TaskResponse, error)
	ListForSupervisor(ctx context.Context, creatorID uuid.UUID, page, limit int) (*dto.Paginated[dto.TaskResponse], error)
	ListForIntern(ctx context.Context, userID uuid.UUID, page, limit int) (*dto.Paginated[dto.TaskResponse], error)
}

type taskService struct {
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
	sanitizer *bluemonday.Policy
}

func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *taskService) Create(ctx context.Context, creatorID uuid.UUID, input dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if input.Title == "" {
		return nil, apperror.Unprocessable(titleTask, "Title is required and cannot be empty.")
	}

	if input.Description == "" {
		return nil, apperror.Unprocessable(titleTask, "Description is required and cannot be empty.")
	}

	taken, err := s.taskRepo.ExistsByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Unprocessable(titleTask, "Title already exists.")
	}

	deadline, err := time.Parse(time.RFC3339, input.Deadline)
	if err != nil {
		return nil, apperror.Unprocessable(titleTask, "Valid deadline is required.")
	}

	// Status, contributors and creator are system-controlled at creation.
	task := &model.Task{
		Title:       input.Title,
		Description: s.sanitizer.Sanitize(input.Description),
		Deadline:    deadline,
		Status:      model.TaskStatusDraft,
		CreatorID:   creatorID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	res := taskToResponse(task)
	return &res, nil
}

func (s *taskService) Edit(ctx context.Context, taskID string, input dto.EditTaskRequest) (*dto.TaskResponse, error) {
	if !validation.IsUUID(taskID) {
		return nil, apperror.Unprocessable(titleTask, "Invalid UUID")
	}

	task, err := s.taskRepo.FindByID(ctx, uuid.MustParse(taskID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unprocessable(titleTask, "Task does not exist!")
		}
		return nil, err
	}

	if input.Title == "" {
		return nil, apperror.Unprocessable(titleTask, "Title is required and cannot be empty.")
	}

	if input.Description == "" {
		return nil, apperror.Unprocessable(titleTask, "Description is required and cannot be empty.")
	}

	if !model.ValidTaskStatus(input.Status) {
		return nil, apperror.Unprocessable(titleTask, "Invalid status. Only D, O and C are acceptable.")
	}

	// Resolve and vet every supplied contributor before touching the task,
	// so a bad entry leaves nothing half-written.
	var added []*model.User
	for _, contributorID := range input.Contributors {
		if !validation.IsUUID(contributorID) {
			return nil, apperror.Unprocessable(titleTask, "Invalid contributor")
		}

		user, err := s.userRepo.FindByID(ctx, uuid.MustParse(contributorID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.Unprocessable(titleTask, fmt.Sprintf("User with ID '%s' does not exist.", contributorID))
			}
			return nil, err
		}

		if user.Role != model.RoleIntern {
			return nil, apperror.Unprocessable(titleTask, fmt.Sprintf("User with ID '%s' is not an intern. Only interns can be assigned tasks.", contributorID))
		}

		if !task.HasContributor(user.ID) {
			added = append(added, user)
		}
	}

	task.Title = input.Title
	task.Description = s.sanitizer.Sanitize(input.Description)
	task.Status = model.TaskStatus(input.Status)

	// Contributors are add-only; nothing ever removes an assignment here.
	// The field update and the new assignments commit together, and
	// Append also refreshes task.Contributors.
	if err := s.taskRepo.UpdateWithContributors(ctx, task, added); err != nil {
		return nil, err
	}

	res := taskToResponse(task)
	return &res, nil
}

func (s *taskService) ListForSupervisor(ctx context.Context, creatorID uuid.UUID, page, limit int) (*dto.Paginated[dto.TaskResponse], error) {
	tasks, total, err := s.taskRepo.ListByCreator(ctx, creatorID, page, limit)
	if err != nil {
		return nil, err
	}

	return paginateTasks(tasks, page, limit, total), nil
}

// ListForIntern returns only draft and open assignments; closed tasks are
// never shown to contributors.
func (s *taskService) ListForIntern(ctx context.Context, userID uuid.UUID, page, limit int) (*dto.Paginated[dto.TaskResponse], error) {
	statuses := []model.TaskStatus{model.TaskStatusDraft, model.TaskStatusOpen}
	tasks, total, err := s.taskRepo.ListByContributor(ctx, userID, statuses, page, limit)
	if err != nil {
		return nil, err
	}

	return paginateTasks(tasks, page, limit, total), nil
}

func paginateTasks(tasks []*model.Task, page, limit int, total int64) *dto.Paginated[dto.TaskResponse] {
	results := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, taskToResponse(task))
	}

	return &dto.Paginated[dto.TaskResponse]{
		Results: results,
		Meta:    dto.NewPaginationMeta(page, limit, total),
	}
}

func taskToResponse(task *model.Task) dto.TaskResponse {
	contributors := make([]uuid.UUID, 0, len(task.Contributors))
	for _, c := range task.Contributors {
		contributors = append(contributors, c.ID)
	}

	return dto.TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Deadline:     task.Deadline,
		Status:       string(task.Status),
		Creator:      task.CreatorID,
		Contributors: contributors,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}
