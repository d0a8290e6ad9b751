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
)

// AddictionService handles addiction CRUD and the reset ledger.
type AddictionService struct {
	addictionRepo ports.AddictionRepository
	logger        *logger.Logger
	now           func() time.Time
}

// NewAddictionService creates a new addiction service
func NewAddictionService(addictionRepo ports.AddictionRepository, logger *logger.Logger) *AddictionService {
	return &AddictionService{
		addictionRepo: addictionRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// ListWithResets returns every addiction owned by the user with its reset
// dates inside the trailing window (ascending, duplicates preserved), the
// latest reset moment over the addiction's entire history, and the abstinence
// stage derived from it. The window never limits last-reset-at; days is
// clamped to [1, 365].
func (s *AddictionService) ListWithResets(ctx context.Context, userID uuid.UUID, days int) ([]*ports.AddictionWithResets, error) {
	days = clampWindowDays(days)

	addictions, err := s.addictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addictions: %w", err)
	}

	ids := make([]uuid.UUID, len(addictions))
	for i, a := range addictions {
		ids[i] = a.ID
	}

	result := make([]*ports.AddictionWithResets, len(addictions))
	for i, a := range addictions {
		result[i] = &ports.AddictionWithResets{Addiction: a}
	}
	if len(ids) == 0 {
		return result, nil
	}

	today := entities.Today()
	from := today.AddDays(-(days - 1))

	resets, err := s.addictionRepo.GetResets(ctx, ids, from, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load resets: %w", err)
	}

	lastResets, err := s.addictionRepo.GetLastResetTimes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load last reset times: %w", err)
	}

	datesByAddiction := make(map[uuid.UUID][]entities.Date)
	for _, r := range resets {
		datesByAddiction[r.AddictionID] = append(datesByAddiction[r.AddictionID], r.Date)
	}

	now := s.now()
	for _, entry := range result {
		entry.ResetDates = datesByAddiction[entry.Addiction.ID]
		if last, ok := lastResets[entry.Addiction.ID]; ok {
			lastCopy := last
			entry.LastResetAt = &lastCopy
			progress := entities.AbstinenceProgressAt(lastCopy, now)
			entry.Progress = &progress
		}
	}

	return result, nil
}

// CreateAddiction creates an addiction. Title is required.
func (s *AddictionService) CreateAddiction(ctx context.Context, userID uuid.UUID, req ports.AddictionUpsertRequest) (*entities.Addiction, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}

	addiction := &entities.Addiction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Color:     strings.TrimSpace(req.Color),
		GoalID:    req.GoalID,
		CreatedAt: s.now(),
	}

	if err := s.addictionRepo.Create(ctx, addiction); err != nil {
		return nil, fmt.Errorf("failed to create addiction: %w", err)
	}

	s.logger.Infow("Addiction created", "addiction_id", addiction.ID, "user_id", userID)

	return addiction, nil
}

// GetAddiction retrieves an addiction owned by the user.
func (s *AddictionService) GetAddiction(ctx context.Context, userID, id uuid.UUID) (*entities.Addiction, error) {
	return s.addictionRepo.GetByID(ctx, userID, id)
}

// UpdateAddiction updates an addiction. Title is required.
func (s *AddictionService) UpdateAddiction(ctx context.Context, userID, id uuid.UUID, req ports.AddictionUpsertRequest) (*entities.Addiction, error) {
	addiction, err := s.addictionRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.ErrTitleRequired
	}

	addiction.Title = title
	addiction.Color = strings.TrimSpace(req.Color)
	addiction.GoalID = req.GoalID

	if err := s.addictionRepo.Update(ctx, addiction); err != nil {
		return nil, fmt.Errorf("failed to update addiction: %w", err)
	}

	s.logger.Infow("Addiction updated", "addiction_id", addiction.ID, "user_id", userID)

	return addiction, nil
}

// DeleteAddiction deletes an addiction and its reset rows.
func (s *AddictionService) DeleteAddiction(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.addictionRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Infow("Addiction deleted", "addiction_id", id, "user_id", userID)

	return nil
}

// SetReset appends a reset row for the date, stamped with the current
// moment. Repeated calls for the same date add further rows; the ledger
// keeps every relapse event.
func (s *AddictionService) SetReset(ctx context.Context, userID, addictionID uuid.UUID, date entities.Date) error {
	if _, err := s.addictionRepo.GetByID(ctx, userID, addictionID); err != nil {
		return err
	}

	reset := &entities.AddictionReset{
		ID:          uuid.New(),
		AddictionID: addictionID,
		Date:        date,
		ResetAt:     s.now().UTC(),
	}
	if err := s.addictionRepo.AddReset(ctx, reset); err != nil {
		return fmt.Errorf("failed to record reset: %w", err)
	}

	s.logger.Infow("Addiction reset recorded", "addiction_id", addictionID, "date", date.String())

	return nil
}

// RemoveReset removes the most recently recorded reset row for the date.
// Earlier rows for the same date stay; no-op when none exists.
func (s *AddictionService) RemoveReset(ctx context.Context, userID, addictionID uuid.UUID, date entities.Date) error {
	if _, err := s.addictionRepo.GetByID(ctx, userID, addictionID); err != nil {
		return err
	}

	if err := s.addictionRepo.RemoveLatestReset(ctx, addictionID, date); err != nil {
		return fmt.Errorf("failed to remove reset: %w", err)
	}

	s.logger.Infow("Addiction reset removed", "addiction_id", addictionID, "date", date.String())

	return nil
}
