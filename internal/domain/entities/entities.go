package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrAddictionNotFound  = errors.New("addiction not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrInvalidDayStatus   = errors.New("invalid habit day status")
	ErrTitleRequired      = errors.New("title is required")
	ErrRecurrenceRequired = errors.New("recurrence rule is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DefaultHabitColor is assigned when a habit is created without a color.
const DefaultHabitColor = "#3b82f6"

// HabitDayStatus is the per-day completion state of a habit. "none" is never
// persisted; it is the absence of a HabitDay row.
type HabitDayStatus string

const (
	DayStatusNone HabitDayStatus = "none"
	DayStatusSkip HabitDayStatus = "skip"
	DayStatusFull HabitDayStatus = "full"
)

// ParseHabitDayStatus parses a status value case-insensitively.
func ParseHabitDayStatus(s string) (HabitDayStatus, error) {
	switch HabitDayStatus(strings.ToLower(strings.TrimSpace(s))) {
	case DayStatusNone:
		return DayStatusNone, nil
	case DayStatusSkip:
		return DayStatusSkip, nil
	case DayStatusFull:
		return DayStatusFull, nil
	default:
		return "", ErrInvalidDayStatus
	}
}

func (s HabitDayStatus) IsValid() bool {
	switch s {
	case DayStatusNone, DayStatusSkip, DayStatusFull:
		return true
	default:
		return false
	}
}

// User represents an account owning all other entities.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         *string   `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Goal is a long-term objective that tasks, habits and addictions can link to.
type Goal struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"-" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Task represents a one-off or recurring to-do item.
type Task struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"-" db:"user_id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description" db:"description"`
	DueDate        *time.Time `json:"due_date" db:"due_date"`
	CompletionDate *time.Time `json:"completion_date" db:"completion_date"`
	RecurrenceRule *string    `json:"recurrence_rule" db:"recurrence_rule"`
	SortOrder      *int       `json:"sort_order" db:"sort_order"`
	GoalID         *uuid.UUID `json:"goal_id" db:"goal_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// IsCompleted reports whether the task has a completion timestamp.
func (t *Task) IsCompleted() bool {
	return t.CompletionDate != nil
}

// Rule returns the trimmed recurrence rule, or "" when the task does not recur.
func (t *Task) Rule() string {
	if t.RecurrenceRule == nil {
		return ""
	}
	return strings.TrimSpace(*t.RecurrenceRule)
}

// IsRecurring reports whether the task carries a non-blank recurrence rule.
func (t *Task) IsRecurring() bool {
	return t.Rule() != ""
}

// Complete stamps the task completed at the given moment.
func (t *Task) Complete(now time.Time) {
	t.CompletionDate = &now
}

// Reopen clears the completion timestamp.
func (t *Task) Reopen() {
	t.CompletionDate = nil
}

// Successor builds the follow-up instance of a recurring task: same title,
// description, rule and goal linkage, the given due date, no sort order and
// not completed. The successor is an independent row; deleting the original
// never cascades to it.
func (t *Task) Successor(dueDate time.Time) *Task {
	return &Task{
		ID:             uuid.New(),
		UserID:         t.UserID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        &dueDate,
		RecurrenceRule: t.RecurrenceRule,
		GoalID:         t.GoalID,
	}
}

// Habit is a recurring practice tracked per calendar day.
type Habit struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"-" db:"user_id"`
	Title          string     `json:"title" db:"title"`
	Color          string     `json:"color" db:"color"`
	RecurrenceRule string     `json:"recurrence_rule" db:"recurrence_rule"`
	GoalID         *uuid.UUID `json:"goal_id" db:"goal_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// HabitDay is the recorded status of a habit on one calendar day.
// At most one row exists per (habit, date).
type HabitDay struct {
	ID      uuid.UUID      `json:"-" db:"id"`
	HabitID uuid.UUID      `json:"-" db:"habit_id"`
	Date    Date           `json:"date" db:"date"`
	Status  HabitDayStatus `json:"status" db:"status"`
}

// Addiction tracks abstinence from a recurring behavior.
type Addiction struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"-" db:"user_id"`
	Title     string     `json:"title" db:"title"`
	Color     string     `json:"color" db:"color"`
	GoalID    *uuid.UUID `json:"goal_id" db:"goal_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// AddictionReset records one relapse. Date is the calendar day; ResetAt is
// the exact recorded moment, used both for "time since last reset" and to
// pick the row removed by a remove-reset action. Multiple rows may share the
// same date.
type AddictionReset struct {
	ID          uuid.UUID `json:"-" db:"id"`
	AddictionID uuid.UUID `json:"-" db:"addiction_id"`
	Date        Date      `json:"date" db:"date"`
	ResetAt     time.Time `json:"reset_at" db:"reset_at"`
}
