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

// GoalService handles goal CRUD. Goals are linkage targets for tasks, habits
// and addictions.
type GoalService struct {
	goalRepo ports.GoalRepository
	logger   *logger.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo ports.GoalRepository, logger *logger.Logger) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// CreateGoal creates a goal. Title is required.
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, req ports.GoalUpsertRequest) (*entities.Goal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}

	goal := &entities.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.logger.Infow("Goal created", "goal_id", goal.ID, "user_id", userID)

	return goal, nil
}

// GetGoal retrieves a goal owned by the user.
func (s *GoalService) GetGoal(ctx context.Context, userID, id uuid.UUID) (*entities.Goal, error) {
	return s.goalRepo.GetByID(ctx, userID, id)
}

// ListGoals returns all goals owned by the user.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal updates a goal. Title is required.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, id uuid.UUID, req ports.GoalUpsertRequest) (*entities.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}

	goal.Title = title
	goal.Description = req.Description
	goal.DueDate = req.DueDate

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	s.logger.Infow("Goal updated", "goal_id", goal.ID, "user_id", userID)

	return goal, nil
}

// DeleteGoal deletes a goal. Linked tasks, habits and addictions keep
// existing with their goal reference cleared by the schema.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.goalRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Infow("Goal deleted", "goal_id", id, "user_id", userID)

	return nil
}
