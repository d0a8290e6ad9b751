package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/ports"
)

// GoalRepositoryImpl implements the GoalRepository interface
type GoalRepositoryImpl struct {
	db *sqlx.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *sqlx.DB) ports.GoalRepository {
	return &GoalRepositoryImpl{db: db}
}

func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *entities.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, title, description, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.DueDate,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	return nil
}

func (r *GoalRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Goal, error) {
	query := `
		SELECT id, user_id, title, description, due_date, created_at, updated_at
		FROM goals
		WHERE id = $1 AND user_id = $2`

	var goal entities.Goal
	err := r.db.GetContext(ctx, &goal, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal by id: %w", err)
	}

	return &goal, nil
}

func (r *GoalRepositoryImpl) Update(ctx context.Context, goal *entities.Goal) error {
	query := `
		UPDATE goals
		SET title = $3, description = $4, due_date = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.DueDate,
	).Scan(&goal.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return entities.ErrGoalNotFound
		}
		return fmt.Errorf("update goal: %w", err)
	}

	return nil
}

func (r *GoalRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrGoalNotFound
	}

	return nil
}

func (r *GoalRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error) {
	query := `
		SELECT id, user_id, title, description, due_date, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at ASC`

	var goals []*entities.Goal
	err := r.db.SelectContext(ctx, &goals, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}
