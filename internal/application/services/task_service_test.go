package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/ports"
)

func newTaskService(repo *fakeTaskRepo, now time.Time) *TaskService {
	svc := NewTaskService(repo, testLogger())
	svc.now = func() time.Time { return now }
	return svc
}

func strPtr(s string) *string { return &s }

func TestCreateTask_RequiresTitle(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	_, err := svc.CreateTask(context.Background(), uuid.New(), ports.CreateTaskRequest{Title: "   "})
	if !errors.Is(err, entities.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Fatalf("expected no task persisted, got %d", len(repo.tasks))
	}
}

func TestCreateTask_TrimsTitle(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	task, err := svc.CreateTask(context.Background(), uuid.New(), ports.CreateTaskRequest{Title: "  Pay rent  "})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Title != "Pay rent" {
		t.Errorf("title = %q, want %q", task.Title, "Pay rent")
	}
	if len(repo.tasks) != 1 {
		t.Fatalf("expected 1 task persisted, got %d", len(repo.tasks))
	}
}

func TestCompleteTask_SpawnsSuccessorOnTransition(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	rule := "FREQ=DAILY"

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, now)

	task, err := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:          "Water plants",
		DueDate:        &due,
		RecurrenceRule: &rule,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := svc.CompleteTask(context.Background(), userID, task.ID, true)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if !got.IsCompleted() {
		t.Error("task should be completed")
	}

	if len(repo.tasks) != 2 {
		t.Fatalf("expected successor task, have %d tasks", len(repo.tasks))
	}
	successor := repo.tasks[1]
	if successor.ID == task.ID {
		t.Error("successor must be a new row")
	}
	if successor.IsCompleted() {
		t.Error("successor must start incomplete")
	}
	wantDue := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	if successor.DueDate == nil || !successor.DueDate.Equal(wantDue) {
		t.Errorf("successor due = %v, want %v", successor.DueDate, wantDue)
	}
	if successor.Rule() != rule {
		t.Errorf("successor rule = %q, want %q", successor.Rule(), rule)
	}
}

func TestCompleteTask_AlreadyCompletedDoesNotSpawnAgain(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	rule := "FREQ=DAILY"

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, now)

	task, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:          "Water plants",
		DueDate:        &due,
		RecurrenceRule: &rule,
	})

	if _, err := svc.CompleteTask(context.Background(), userID, task.ID, true); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := svc.CompleteTask(context.Background(), userID, task.ID, true); err != nil {
		t.Fatalf("second complete: %v", err)
	}

	if len(repo.tasks) != 2 {
		t.Fatalf("expected exactly one successor, have %d tasks", len(repo.tasks))
	}
}

func TestCompleteTask_ReopenThenCompleteSpawnsAgain(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	rule := "FREQ=DAILY"

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, now)

	task, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:          "Water plants",
		DueDate:        &due,
		RecurrenceRule: &rule,
	})

	svc.CompleteTask(context.Background(), userID, task.ID, true)
	svc.CompleteTask(context.Background(), userID, task.ID, false)
	svc.CompleteTask(context.Background(), userID, task.ID, true)

	if len(repo.tasks) != 3 {
		t.Fatalf("expected two successors across two transitions, have %d tasks", len(repo.tasks))
	}
}

func TestCompleteTask_NoRuleNoSuccessor(t *testing.T) {
	userID := uuid.New()
	due := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC))

	task, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:   "One-off errand",
		DueDate: &due,
	})
	svc.CompleteTask(context.Background(), userID, task.ID, true)

	if len(repo.tasks) != 1 {
		t.Fatalf("non-recurring task must not spawn, have %d tasks", len(repo.tasks))
	}
}

func TestCompleteTask_NoDueDateNoSuccessor(t *testing.T) {
	userID := uuid.New()
	rule := "FREQ=DAILY"

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC))

	task, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:          "Undated chore",
		RecurrenceRule: &rule,
	})
	svc.CompleteTask(context.Background(), userID, task.ID, true)

	if len(repo.tasks) != 1 {
		t.Fatalf("task without a due date must not spawn, have %d tasks", len(repo.tasks))
	}
}

func TestCompleteTask_SuccessorFailureDoesNotFailCompletion(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	rule := "FREQ=DAILY"

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, now)

	task, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:          "Water plants",
		DueDate:        &due,
		RecurrenceRule: &rule,
	})

	repo.failCreate = true
	got, err := svc.CompleteTask(context.Background(), userID, task.ID, true)
	if err != nil {
		t.Fatalf("completion must survive successor failure, got %v", err)
	}
	if !got.IsCompleted() {
		t.Error("task should be completed")
	}
	if len(repo.tasks) != 1 {
		t.Fatalf("failed successor must not be persisted, have %d tasks", len(repo.tasks))
	}
}

func TestCompleteTask_OtherUserGetsNotFound(t *testing.T) {
	owner := uuid.New()
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	task, _ := svc.CreateTask(context.Background(), owner, ports.CreateTaskRequest{Title: "Private"})

	_, err := svc.CompleteTask(context.Background(), uuid.New(), task.ID, true)
	if !errors.Is(err, entities.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign user, got %v", err)
	}
}

func TestUpdateTask_NilFieldsKeepValues(t *testing.T) {
	userID := uuid.New()
	due := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	task, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{
		Title:       "Original",
		Description: strPtr("details"),
		DueDate:     &due,
	})

	got, err := svc.UpdateTask(context.Background(), userID, task.ID, ports.UpdateTaskRequest{
		Title: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("title = %q, want Renamed", got.Title)
	}
	if got.Description == nil || *got.Description != "details" {
		t.Error("description should be untouched")
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Error("due date should be untouched")
	}
}

func TestReorderTasks_PersistsOnlyChangedOrders(t *testing.T) {
	userID := uuid.New()
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	a, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "a"})
	b, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "b"})
	c, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "c"})

	zero := 0
	repo.tasks[0].SortOrder = &zero

	// a already sits at 0, so only b and c change.
	if err := svc.ReorderTasks(context.Background(), userID, []uuid.UUID{a.ID, b.ID, c.ID}); err != nil {
		t.Fatalf("ReorderTasks: %v", err)
	}

	for i, id := range []uuid.UUID{a.ID, b.ID, c.ID} {
		task, _ := repo.GetByID(context.Background(), userID, id)
		if task.SortOrder == nil || *task.SortOrder != i {
			t.Errorf("task %d sort order = %v, want %d", i, task.SortOrder, i)
		}
	}
}

func TestReorderTasks_IgnoresUnknownIDs(t *testing.T) {
	userID := uuid.New()
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	a, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "a"})

	if err := svc.ReorderTasks(context.Background(), userID, []uuid.UUID{uuid.New(), a.ID}); err != nil {
		t.Fatalf("ReorderTasks: %v", err)
	}

	task, _ := repo.GetByID(context.Background(), userID, a.ID)
	if task.SortOrder == nil || *task.SortOrder != 1 {
		t.Errorf("sort order = %v, want 1 (position in the submitted list)", task.SortOrder)
	}
}

func TestReorderTasks_NoChangesNoWrite(t *testing.T) {
	userID := uuid.New()
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, time.Now())

	a, _ := svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "a"})
	zero := 0
	repo.tasks[0].SortOrder = &zero

	if err := svc.ReorderTasks(context.Background(), userID, []uuid.UUID{a.ID}); err != nil {
		t.Fatalf("ReorderTasks: %v", err)
	}

	task, _ := repo.GetByID(context.Background(), userID, a.ID)
	if task.SortOrder == nil || *task.SortOrder != 0 {
		t.Errorf("sort order = %v, want unchanged 0", task.SortOrder)
	}
}

func TestListBuckets_UsesInjectedClock(t *testing.T) {
	userID := uuid.New()
	// Wednesday afternoon.
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, now)

	overdueAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	todayAt := time.Date(2025, 3, 12, 23, 0, 0, 0, time.UTC)

	svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "late", DueDate: &overdueAt})
	svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "today", DueDate: &todayAt})
	svc.CreateTask(context.Background(), userID, ports.CreateTaskRequest{Title: "someday"})

	buckets, err := svc.ListBuckets(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListBuckets: %v", err)
	}
	if len(buckets.Overdue) != 1 || buckets.Overdue[0].Title != "late" {
		t.Errorf("overdue = %v", buckets.Overdue)
	}
	if len(buckets.Today) != 1 || buckets.Today[0].Title != "today" {
		t.Errorf("today = %v", buckets.Today)
	}
	if len(buckets.Inbox) != 1 || buckets.Inbox[0].Title != "someday" {
		t.Errorf("inbox = %v", buckets.Inbox)
	}
}
