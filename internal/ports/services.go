package ports

import (
	"time"

	"github.com/google/uuid"
	"github.com/lifehub/core/internal/domain/entities"
)

// Request/response types exchanged between the HTTP layer and the services.

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
	User         *entities.User `json:"user"`
}

type CreateTaskRequest struct {
	Title          string     `json:"title" validate:"required"`
	Description    *string    `json:"description"`
	DueDate        *time.Time `json:"due_date"`
	RecurrenceRule *string    `json:"recurrence_rule"`
	GoalID         *uuid.UUID `json:"goal_id"`
}

// UpdateTaskRequest carries partial updates; nil fields keep their current
// value.
type UpdateTaskRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	DueDate        *time.Time `json:"due_date"`
	CompletionDate *time.Time `json:"completion_date"`
	RecurrenceRule *string    `json:"recurrence_rule"`
	GoalID         *uuid.UUID `json:"goal_id"`
}

type ReorderTasksRequest struct {
	TaskIDs []uuid.UUID `json:"task_ids" validate:"required,min=1"`
}

type HabitUpsertRequest struct {
	Title          string     `json:"title"`
	Color          string     `json:"color"`
	RecurrenceRule string     `json:"recurrence_rule"`
	GoalID         *uuid.UUID `json:"goal_id"`
}

type SetDayStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AddictionUpsertRequest struct {
	Title  string     `json:"title"`
	Color  string     `json:"color"`
	GoalID *uuid.UUID `json:"goal_id"`
}

type GoalUpsertRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// HabitWithHistory pairs a habit with its day records inside the requested
// window, dates ascending.
type HabitWithHistory struct {
	Habit   *entities.Habit      `json:"habit"`
	History []*entities.HabitDay `json:"history"`
}

// AddictionWithResets pairs an addiction with its in-window reset dates
// (ascending, duplicates preserved), the latest recorded reset moment across
// the addiction's whole history, and the abstinence stage derived from it.
// Progress is nil until the first reset is recorded.
type AddictionWithResets struct {
	Addiction   *entities.Addiction          `json:"addiction"`
	ResetDates  []entities.Date              `json:"reset_dates"`
	LastResetAt *time.Time                   `json:"last_reset_at"`
	Progress    *entities.AbstinenceProgress `json:"progress"`
}
