package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/internhub/internal/dto"
	"anoa.com/internhub/internal/model"
	"anoa.com/internhub/pkg/token"
	"github.com/google/uuid"
)

type submissionFixture struct {
	userRepo       *fakeUserRepo
	taskRepo       *fakeTaskRepo
	submissionRepo *fakeSubmissionRepo
	taskSvc        TaskService
	submissionSvc  SubmissionService
	supervisor     *model.User
	intern         *model.User
	task           *dto.TaskResponse
}

func newSubmissionFixture(t *testing.T, visibility string) *submissionFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo()
	submissionRepo := newFakeSubmissionRepo(taskRepo)

	f := &submissionFixture{
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		taskSvc:        NewTaskService(taskRepo, userRepo),
		submissionSvc:  NewSubmissionService(submissionRepo, taskRepo, visibility),
		supervisor:     seedUser(userRepo, model.RoleSupervisor),
		intern:         seedUser(userRepo, model.RoleIntern),
	}

	task, err := f.taskSvc.Create(context.Background(), f.supervisor.ID, validCreateTask())
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	if _, err := f.taskSvc.Edit(context.Background(), task.ID.String(), dto.EditTaskRequest{
		Title:        task.Title,
		Description:  task.Description,
		Status:       "O",
		Contributors: []string{f.intern.ID.String()},
	}); err != nil {
		t.Fatalf("assign contributor failed: %v", err)
	}

	f.task = task
	return f
}

func TestSubmitRequiresContributor(t *testing.T) {
	f := newSubmissionFixture(t, "all")
	outsider := seedUser(f.userRepo, model.RoleIntern)

	_, err := f.submissionSvc.Submit(context.Background(), outsider.ID, dto.SubmitTaskRequest{Task: f.task.ID.String()})
	assertUnprocessable(t, err, "Current user is not a contributor to this task")
}

func TestSubmitTaskValidation(t *testing.T) {
	f := newSubmissionFixture(t, "all")

	_, err := f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{})
	assertUnprocessable(t, err, "Task is required and cannot be empty.")

	_, err = f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{Task: "nope"})
	assertUnprocessable(t, err, "Invalid task.")

	_, err = f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{Task: uuid.New().String()})
	assertUnprocessable(t, err, "Task does not exist.")
}

func TestSubmitTwiceRejected(t *testing.T) {
	f := newSubmissionFixture(t, "all")

	if _, err := f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{Task: f.task.ID.String()}); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	_, err := f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{Task: f.task.ID.String()})
	assertUnprocessable(t, err, "Already submitted.")

	if len(f.submissionRepo.byID) != 1 {
		t.Fatalf("resubmission must not create a row, have %d", len(f.submissionRepo.byID))
	}
}

func TestReviewScoreBounds(t *testing.T) {
	f := newSubmissionFixture(t, "all")

	submission, err := f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{Task: f.task.ID.String()})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	tooHigh := 11
	_, err = f.submissionSvc.Review(context.Background(), f.supervisor.ID, submission.ID.String(), dto.ReviewSubmissionRequest{Score: &tooHigh})
	assertUnprocessable(t, err, "Score must not be greater than 10")

	maxScore := 10
	res, err := f.submissionSvc.Review(context.Background(), f.supervisor.ID, submission.ID.String(), dto.ReviewSubmissionRequest{Score: &maxScore})
	if err != nil {
		t.Fatalf("review with score 10 failed: %v", err)
	}
	if res.Score != 10 {
		t.Fatalf("unexpected score: %d", res.Score)
	}
}

func TestReviewReopensTask(t *testing.T) {
	f := newSubmissionFixture(t, "all")

	submission, err := f.submissionSvc.Submit(context.Background(), f.intern.ID, dto.SubmitTaskRequest{Task: f.task.ID.String()})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// Close the task first; review must force it back open.
	if err := f.taskRepo.UpdateStatus(context.Background(), f.task.ID, model.TaskStatusClosed); err != nil {
		t.Fatalf("close task failed: %v", err)
	}

	approved := true
	res, err := f.submissionSvc.Review(context.Background(), f.supervisor.ID, submission.ID.String(), dto.ReviewSubmissionRequest{IsApproved: &approved})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}

	if res.Modifier == nil || *res.Modifier != f.supervisor.ID {
		t.Fatalf("modifier must record the reviewer, got %v", res.Modifier)
	}

	task, _ := f.taskRepo.FindByID(context.Background(), f.task.ID)
	if task.Status != model.TaskStatusOpen {
		t.Fatalf("reviewed task must be re-opened, got %q", task.Status)
	}
}

func TestReviewUnknownSubmission(t *testing.T) {
	f := newSubmissionFixture(t, "all")

	_, err := f.submissionSvc.Review(context.Background(), f.supervisor.ID, "nope", dto.ReviewSubmissionRequest{})
	assertUnprocessable(t, err, "Invalid UUID")

	_, err = f.submissionSvc.Review(context.Background(), f.supervisor.ID, uuid.New().String(), dto.ReviewSubmissionRequest{})
	assertUnprocessable(t, err, "Submit Task does not exist!")
}

func TestListVisibilityPolicy(t *testing.T) {
	f := newSubmissionFixture(t, "own")
	second := seedUser(f.userRepo, model.RoleIntern)

	if _, err := f.taskSvc.Edit(context.Background(), f.task.ID.String(), dto.EditTaskRequest{
		Title:        f.task.Title,
		Description:  f.task.Description,
		Status:       "O",
		Contributors: []string{second.ID.String()},
	}); err != nil {
		t.Fatalf("assign second contributor failed: %v", err)
	}

	for _, intern := range []*model.User{f.intern, second} {
		if _, err := f.submissionSvc.Submit(context.Background(), intern.ID, dto.SubmitTaskRequest{Task: f.task.ID.String()}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	page, err := f.submissionSvc.List(context.Background(), f.intern, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Meta.TotalItems != 1 {
		t.Fatalf("own-visibility intern must see only their submission, got %d", page.Meta.TotalItems)
	}

	// Supervisors always see everything.
	page, err = f.submissionSvc.List(context.Background(), f.supervisor, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Meta.TotalItems != 2 {
		t.Fatalf("supervisor must see all submissions, got %d", page.Meta.TotalItems)
	}

	// The historical default shows everything to interns as well.
	allSvc := NewSubmissionService(f.submissionRepo, f.taskRepo, "all")
	page, err = allSvc.List(context.Background(), f.intern, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Meta.TotalItems != 2 {
		t.Fatalf("all-visibility intern must see every submission, got %d", page.Meta.TotalItems)
	}
}

// Full walkthrough: register both roles, create and assign a task, submit,
// review, and verify the resulting state.
func TestInternshipFlowEndToEnd(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo()
	submissionRepo := newFakeSubmissionRepo(taskRepo)

	tokens := token.NewProvider("test-secret", time.Hour, 24*time.Hour)
	authSvc := NewAuthService(userRepo, tokens, nil, "US", 0)
	taskSvc := NewTaskService(taskRepo, userRepo)
	submissionSvc := NewSubmissionService(submissionRepo, taskRepo, "all")

	supervisorInput := validRegisterInput()
	supervisorInput.Role = "S"
	supervisorInput.FullName = "Jane Smith"
	supervisorInput.Email = "jane@example.com"
	supervisorInput.Phone = "+14155552672"
	supervisor, err := authSvc.Register(ctx, supervisorInput)
	if err != nil {
		t.Fatalf("register supervisor failed: %v", err)
	}

	intern, err := authSvc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register intern failed: %v", err)
	}

	task, err := taskSvc.Create(ctx, supervisor.ID, validCreateTask())
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	if _, err := taskSvc.Edit(ctx, task.ID.String(), dto.EditTaskRequest{
		Title:        task.Title,
		Description:  task.Description,
		Status:       "O",
		Contributors: []string{intern.ID.String()},
	}); err != nil {
		t.Fatalf("assign intern failed: %v", err)
	}

	submission, err := submissionSvc.Submit(ctx, intern.ID, dto.SubmitTaskRequest{Task: task.ID.String()})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	approved := true
	score := 8
	remarks := "Good work"
	reviewed, err := submissionSvc.Review(ctx, supervisor.ID, submission.ID.String(), dto.ReviewSubmissionRequest{
		IsApproved: &approved,
		Score:      &score,
		Remarks:    &remarks,
	})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}

	if !reviewed.IsApproved || reviewed.Score != 8 {
		t.Fatalf("review not reflected: approved=%v score=%d", reviewed.IsApproved, reviewed.Score)
	}

	stored, _ := taskRepo.FindByID(ctx, task.ID)
	if stored.Status != model.TaskStatusOpen {
		t.Fatalf("task must be open after review, got %q", stored.Status)
	}
}
