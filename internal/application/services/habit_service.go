package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
)

// HabitService handles habit CRUD and per-day occurrence tracking.
type HabitService struct {
	habitRepo ports.HabitRepository
	logger    *logger.Logger
}

// NewHabitService creates a new habit service
func NewHabitService(habitRepo ports.HabitRepository, logger *logger.Logger) *HabitService {
	return &HabitService{
		habitRepo: habitRepo,
		logger:    logger,
	}
}

// clampWindowDays bounds a rolling history window to [1, 365] days.
func clampWindowDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > 365 {
		return 365
	}
	return days
}

// ListWithHistory returns every habit owned by the user paired with its day
// records for the trailing window ending today. The window covers
// [today-(days-1), today] inclusive; days is clamped to [1, 365].
func (s *HabitService) ListWithHistory(ctx context.Context, userID uuid.UUID, days int) ([]*ports.HabitWithHistory, error) {
	days = clampWindowDays(days)

	habits, err := s.habitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	habitIDs := make([]uuid.UUID, len(habits))
	for i, h := range habits {
		habitIDs[i] = h.ID
	}

	today := entities.Today()
	from := today.AddDays(-(days - 1))

	var history []*entities.HabitDay
	if len(habitIDs) > 0 {
		history, err = s.habitRepo.GetDays(ctx, habitIDs, from, today)
		if err != nil {
			return nil, fmt.Errorf("failed to load habit history: %w", err)
		}
	}

	byHabit := make(map[uuid.UUID][]*entities.HabitDay)
	for _, day := range history {
		byHabit[day.HabitID] = append(byHabit[day.HabitID], day)
	}

	result := make([]*ports.HabitWithHistory, len(habits))
	for i, h := range habits {
		result[i] = &ports.HabitWithHistory{
			Habit:   h,
			History: byHabit[h.ID],
		}
	}

	return result, nil
}

// CreateHabit creates a habit. Title and recurrence rule are required;
// a blank color gets the default.
func (s *HabitService) CreateHabit(ctx context.Context, userID uuid.UUID, req ports.HabitUpsertRequest) (*entities.Habit, error) {
	title := strings.TrimSpace(req.Title)
	rule := strings.TrimSpace(req.RecurrenceRule)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}
	if rule == "" {
		return nil, entities.ErrRecurrenceRequired
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = entities.DefaultHabitColor
	}

	habit := &entities.Habit{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Color:          color,
		RecurrenceRule: rule,
		GoalID:         req.GoalID,
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	s.logger.Infow("Habit created", "habit_id", habit.ID, "user_id", userID)

	return habit, nil
}

// GetHabit retrieves a habit owned by the user.
func (s *HabitService) GetHabit(ctx context.Context, userID, id uuid.UUID) (*entities.Habit, error) {
	return s.habitRepo.GetByID(ctx, userID, id)
}

// UpdateHabit updates a habit. Title and recurrence rule are required;
// a blank color leaves the stored color unchanged.
func (s *HabitService) UpdateHabit(ctx context.Context, userID, id uuid.UUID, req ports.HabitUpsertRequest) (*entities.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	rule := strings.TrimSpace(req.RecurrenceRule)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}
	if rule == "" {
		return nil, entities.ErrRecurrenceRequired
	}

	habit.Title = title
	habit.RecurrenceRule = rule
	habit.GoalID = req.GoalID
	if color := strings.TrimSpace(req.Color); color != "" {
		habit.Color = color
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	s.logger.Infow("Habit updated", "habit_id", habit.ID, "user_id", userID)

	return habit, nil
}

// DeleteHabit deletes a habit and, through the schema, its day records.
func (s *HabitService) DeleteHabit(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.habitRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Infow("Habit deleted", "habit_id", id, "user_id", userID)

	return nil
}

// SetDayStatus records the habit's status for one calendar day. Status
// "none" removes any stored row and returns a synthetic none record; other
// statuses upsert, so at most one row ever exists per (habit, date).
func (s *HabitService) SetDayStatus(ctx context.Context, userID, habitID uuid.UUID, date entities.Date, status string) (*entities.HabitDay, error) {
	parsed, err := entities.ParseHabitDayStatus(status)
	if err != nil {
		return nil, err
	}

	if _, err := s.habitRepo.GetByID(ctx, userID, habitID); err != nil {
		return nil, err
	}

	if parsed == entities.DayStatusNone {
		if err := s.habitRepo.DeleteDay(ctx, habitID, date); err != nil {
			return nil, fmt.Errorf("failed to clear habit day: %w", err)
		}
		return &entities.HabitDay{HabitID: habitID, Date: date, Status: entities.DayStatusNone}, nil
	}

	day := &entities.HabitDay{
		ID:      uuid.New(),
		HabitID: habitID,
		Date:    date,
		Status:  parsed,
	}
	if err := s.habitRepo.UpsertDay(ctx, day); err != nil {
		return nil, fmt.Errorf("failed to set habit day: %w", err)
	}

	s.logger.Infow("Habit day status set", "habit_id", habitID, "date", date.String(), "status", parsed)

	return day, nil
}
