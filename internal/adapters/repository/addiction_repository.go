package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/ports"
)

// AddictionRepositoryImpl implements the AddictionRepository interface
type AddictionRepositoryImpl struct {
	db *sqlx.DB
}

// NewAddictionRepository creates a new addiction repository
func NewAddictionRepository(db *sqlx.DB) ports.AddictionRepository {
	return &AddictionRepositoryImpl{db: db}
}

func (r *AddictionRepositoryImpl) Create(ctx context.Context, addiction *entities.Addiction) error {
	query := `
		INSERT INTO addictions (id, user_id, title, color, goal_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	if addiction.ID == uuid.Nil {
		addiction.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		addiction.ID, addiction.UserID, addiction.Title, addiction.Color, addiction.GoalID,
	).Scan(&addiction.CreatedAt, &addiction.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create addiction: %w", err)
	}

	return nil
}

func (r *AddictionRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Addiction, error) {
	query := `
		SELECT id, user_id, title, color, goal_id, created_at, updated_at
		FROM addictions
		WHERE id = $1 AND user_id = $2`

	var addiction entities.Addiction
	err := r.db.GetContext(ctx, &addiction, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrAddictionNotFound
		}
		return nil, fmt.Errorf("get addiction by id: %w", err)
	}

	return &addiction, nil
}

func (r *AddictionRepositoryImpl) Update(ctx context.Context, addiction *entities.Addiction) error {
	query := `
		UPDATE addictions
		SET title = $3, color = $4, goal_id = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		addiction.ID, addiction.UserID, addiction.Title, addiction.Color, addiction.GoalID,
	).Scan(&addiction.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return entities.ErrAddictionNotFound
		}
		return fmt.Errorf("update addiction: %w", err)
	}

	return nil
}

func (r *AddictionRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM addictions WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete addiction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrAddictionNotFound
	}

	return nil
}

func (r *AddictionRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Addiction, error) {
	query := `
		SELECT id, user_id, title, color, goal_id, created_at, updated_at
		FROM addictions
		WHERE user_id = $1
		ORDER BY created_at ASC`

	var addictions []*entities.Addiction
	err := r.db.SelectContext(ctx, &addictions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list addictions: %w", err)
	}

	return addictions, nil
}

func (r *AddictionRepositoryImpl) GetResets(ctx context.Context, addictionIDs []uuid.UUID, from, to entities.Date) ([]*entities.AddictionReset, error) {
	// No uniqueness on (addiction_id, date): every relapse row comes back.
	query := `
		SELECT id, addiction_id, date, reset_at
		FROM addiction_resets
		WHERE addiction_id = ANY($1) AND date >= $2 AND date <= $3
		ORDER BY date ASC, reset_at ASC`

	var resets []*entities.AddictionReset
	err := r.db.SelectContext(ctx, &resets, query, pq.Array(addictionIDs), from, to)
	if err != nil {
		return nil, fmt.Errorf("get addiction resets: %w", err)
	}

	return resets, nil
}

func (r *AddictionRepositoryImpl) GetLastResetTimes(ctx context.Context, addictionIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	query := `
		SELECT addiction_id, MAX(reset_at) AS last_reset_at
		FROM addiction_resets
		WHERE addiction_id = ANY($1)
		GROUP BY addiction_id`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(addictionIDs))
	if err != nil {
		return nil, fmt.Errorf("get last reset times: %w", err)
	}
	defer rows.Close()

	lastResets := make(map[uuid.UUID]time.Time)
	for rows.Next() {
		var addictionID uuid.UUID
		var lastResetAt time.Time
		if err := rows.Scan(&addictionID, &lastResetAt); err != nil {
			return nil, fmt.Errorf("scan last reset time: %w", err)
		}
		lastResets[addictionID] = lastResetAt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate last reset times: %w", err)
	}

	return lastResets, nil
}

func (r *AddictionRepositoryImpl) AddReset(ctx context.Context, reset *entities.AddictionReset) error {
	query := `
		INSERT INTO addiction_resets (id, addiction_id, date, reset_at)
		VALUES ($1, $2, $3, $4)`

	if reset.ID == uuid.Nil {
		reset.ID = uuid.New()
	}

	if _, err := r.db.ExecContext(ctx, query, reset.ID, reset.AddictionID, reset.Date, reset.ResetAt); err != nil {
		return fmt.Errorf("add addiction reset: %w", err)
	}

	return nil
}

func (r *AddictionRepositoryImpl) RemoveLatestReset(ctx context.Context, addictionID uuid.UUID, date entities.Date) error {
	// The id tiebreak keeps the delete deterministic when two rows share a
	// reset_at timestamp.
	query := `
		DELETE FROM addiction_resets
		WHERE id = (
			SELECT id FROM addiction_resets
			WHERE addiction_id = $1 AND date = $2
			ORDER BY reset_at DESC, id DESC
			LIMIT 1
		)`

	if _, err := r.db.ExecContext(ctx, query, addictionID, date); err != nil {
		return fmt.Errorf("remove addiction reset: %w", err)
	}

	return nil
}
