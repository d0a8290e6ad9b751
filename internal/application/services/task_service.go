package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
	"github.com/lifehub/core/internal/recurrence"
)

// TaskService handles task CRUD, completion with recurrence spawning and
// manual ordering.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateTask creates a new task
func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}

	task := &entities.Task{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		RecurrenceRule: req.RecurrenceRule,
		GoalID:         req.GoalID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

// GetTask retrieves a task owned by the user.
func (s *TaskService) GetTask(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	return s.taskRepo.GetByID(ctx, userID, id)
}

// ListTasks returns all tasks owned by the user.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListBuckets returns the user's tasks partitioned into the dashboard
// buckets at the current moment.
func (s *TaskService) ListBuckets(ctx context.Context, userID uuid.UUID) (*entities.TaskBuckets, error) {
	tasks, err := s.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	buckets := entities.ClassifyTasks(tasks, s.now())
	return &buckets, nil
}

// UpdateTask applies partial updates; nil request fields keep their current
// value.
func (s *TaskService) UpdateTask(ctx context.Context, userID, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, entities.ErrTitleRequired
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.CompletionDate != nil {
		task.CompletionDate = req.CompletionDate
	}
	if req.RecurrenceRule != nil {
		task.RecurrenceRule = req.RecurrenceRule
	}
	if req.GoalID != nil {
		task.GoalID = req.GoalID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infow("Task updated", "task_id", task.ID, "user_id", userID)

	return task, nil
}

// DeleteTask deletes a task. Successor tasks spawned from it are independent
// rows and stay.
func (s *TaskService) DeleteTask(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Infow("Task deleted", "task_id", id, "user_id", userID)

	return nil
}

// CompleteTask sets or clears the task's completion timestamp. When a task
// with a recurrence rule and a due date transitions to completed, a
// successor is spawned for the rule's next occurrence after now, anchored at
// the original due date. Successor creation is best effort: its failure is
// logged and never rolls back the completion.
func (s *TaskService) CompleteTask(ctx context.Context, userID, id uuid.UUID, completed bool) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := task.IsCompleted()
	now := s.now()
	if completed {
		task.Complete(now)
	} else {
		task.Reopen()
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if completed && !wasCompleted {
		s.spawnSuccessor(ctx, task, now)
	}

	s.logger.Infow("Task completion toggled", "task_id", task.ID, "completed", completed)

	return task, nil
}

// spawnSuccessor creates the follow-up instance of a recurring task. A task
// without a rule or without a due date to anchor against spawns nothing.
func (s *TaskService) spawnSuccessor(ctx context.Context, task *entities.Task, now time.Time) {
	if !task.IsRecurring() || task.DueDate == nil {
		return
	}

	next := recurrence.NextOccurrence(task.Rule(), *task.DueDate, now)
	if next == nil {
		return
	}

	successor := task.Successor(*next)
	if err := s.taskRepo.Create(ctx, successor); err != nil {
		s.logger.Warnw("Failed to create successor task", "task_id", task.ID, "error", err)
		return
	}

	s.logger.Infow("Successor task created",
		"task_id", task.ID,
		"successor_id", successor.ID,
		"due_date", next.Format(time.RFC3339),
	)
}

// ReorderTasks assigns ascending 0-based sort order following the given id
// order, persisting only entries whose order actually changed. Ids not owned
// by the user are ignored.
func (s *TaskService) ReorderTasks(ctx context.Context, userID uuid.UUID, orderedIDs []uuid.UUID) error {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	byID := make(map[uuid.UUID]*entities.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	changed := make(map[uuid.UUID]int)
	for i, id := range orderedIDs {
		task, ok := byID[id]
		if !ok {
			continue
		}
		if task.SortOrder == nil || *task.SortOrder != i {
			changed[id] = i
		}
	}

	if len(changed) == 0 {
		return nil
	}

	if err := s.taskRepo.UpdateSortOrders(ctx, userID, changed); err != nil {
		return fmt.Errorf("failed to reorder tasks: %w", err)
	}

	s.logger.Infow("Tasks reordered", "user_id", userID, "updated", len(changed))

	return nil
}
