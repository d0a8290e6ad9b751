package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/ports"
)

// HabitRepositoryImpl implements the HabitRepository interface
type HabitRepositoryImpl struct {
	db *sqlx.DB
}

// NewHabitRepository creates a new habit repository
func NewHabitRepository(db *sqlx.DB) ports.HabitRepository {
	return &HabitRepositoryImpl{db: db}
}

func (r *HabitRepositoryImpl) Create(ctx context.Context, habit *entities.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, title, color, recurrence_rule, goal_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		habit.ID, habit.UserID, habit.Title, habit.Color, habit.RecurrenceRule, habit.GoalID,
	).Scan(&habit.CreatedAt, &habit.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}

	return nil
}

func (r *HabitRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Habit, error) {
	query := `
		SELECT id, user_id, title, color, recurrence_rule, goal_id, created_at, updated_at
		FROM habits
		WHERE id = $1 AND user_id = $2`

	var habit entities.Habit
	err := r.db.GetContext(ctx, &habit, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrHabitNotFound
		}
		return nil, fmt.Errorf("get habit by id: %w", err)
	}

	return &habit, nil
}

func (r *HabitRepositoryImpl) Update(ctx context.Context, habit *entities.Habit) error {
	query := `
		UPDATE habits
		SET title = $3, color = $4, recurrence_rule = $5, goal_id = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		habit.ID, habit.UserID, habit.Title, habit.Color, habit.RecurrenceRule, habit.GoalID,
	).Scan(&habit.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return entities.ErrHabitNotFound
		}
		return fmt.Errorf("update habit: %w", err)
	}

	return nil
}

func (r *HabitRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM habits WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrHabitNotFound
	}

	return nil
}

func (r *HabitRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Habit, error) {
	query := `
		SELECT id, user_id, title, color, recurrence_rule, goal_id, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at ASC`

	var habits []*entities.Habit
	err := r.db.SelectContext(ctx, &habits, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	return habits, nil
}

func (r *HabitRepositoryImpl) GetDays(ctx context.Context, habitIDs []uuid.UUID, from, to entities.Date) ([]*entities.HabitDay, error) {
	query := `
		SELECT id, habit_id, date, status
		FROM habit_days
		WHERE habit_id = ANY($1) AND date >= $2 AND date <= $3
		ORDER BY habit_id, date ASC`

	var days []*entities.HabitDay
	err := r.db.SelectContext(ctx, &days, query, pq.Array(habitIDs), from, to)
	if err != nil {
		return nil, fmt.Errorf("get habit days: %w", err)
	}

	return days, nil
}

func (r *HabitRepositoryImpl) UpsertDay(ctx context.Context, day *entities.HabitDay) error {
	// (habit_id, date) carries a unique constraint; concurrent writers
	// resolve last-writer-wins.
	query := `
		INSERT INTO habit_days (id, habit_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (habit_id, date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, day.ID, day.HabitID, day.Date, day.Status).Scan(&day.ID)
	if err != nil {
		return fmt.Errorf("upsert habit day: %w", err)
	}

	return nil
}

func (r *HabitRepositoryImpl) DeleteDay(ctx context.Context, habitID uuid.UUID, date entities.Date) error {
	query := `DELETE FROM habit_days WHERE habit_id = $1 AND date = $2`

	if _, err := r.db.ExecContext(ctx, query, habitID, date); err != nil {
		return fmt.Errorf("delete habit day: %w", err)
	}

	return nil
}
