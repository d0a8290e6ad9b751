package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lifehub/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the interface for task data operations. All reads
// and writes are scoped to the owning user; a row owned by someone else
// behaves exactly like a missing row.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Task, error)
	UpdateSortOrders(ctx context.Context, userID uuid.UUID, orders map[uuid.UUID]int) error
}

// HabitRepository defines the interface for habit and habit-day operations.
type HabitRepository interface {
	Create(ctx context.Context, habit *entities.Habit) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Habit, error)
	Update(ctx context.Context, habit *entities.Habit) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Habit, error)

	// GetDays returns habit-day rows for the given habits whose date falls in
	// [from, to] inclusive, ordered by date ascending.
	GetDays(ctx context.Context, habitIDs []uuid.UUID, from, to entities.Date) ([]*entities.HabitDay, error)
	UpsertDay(ctx context.Context, day *entities.HabitDay) error
	DeleteDay(ctx context.Context, habitID uuid.UUID, date entities.Date) error
}

// AddictionRepository defines the interface for addiction and reset-ledger
// operations.
type AddictionRepository interface {
	Create(ctx context.Context, addiction *entities.Addiction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Addiction, error)
	Update(ctx context.Context, addiction *entities.Addiction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Addiction, error)

	// GetResets returns reset rows for the given addictions whose date falls
	// in [from, to] inclusive, ordered by date then recorded time ascending.
	// Duplicate dates are preserved.
	GetResets(ctx context.Context, addictionIDs []uuid.UUID, from, to entities.Date) ([]*entities.AddictionReset, error)
	// GetLastResetTimes returns, per addiction, the latest recorded reset
	// timestamp across all resets ever, regardless of date window.
	GetLastResetTimes(ctx context.Context, addictionIDs []uuid.UUID) (map[uuid.UUID]time.Time, error)
	AddReset(ctx context.Context, reset *entities.AddictionReset) error
	// RemoveLatestReset deletes the single reset row for the date with the
	// most recent recorded timestamp. No-op when no row exists.
	RemoveLatestReset(ctx context.Context, addictionID uuid.UUID, date entities.Date) error
}

// GoalRepository defines the interface for goal data operations.
type GoalRepository interface {
	Create(ctx context.Context, goal *entities.Goal) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Goal, error)
	Update(ctx context.Context, goal *entities.Goal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error)
}

// AuthRepository defines the interface for refresh-token persistence.
type AuthRepository interface {
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
	CleanupExpiredTokens(ctx context.Context) error
}

// RefreshToken represents a refresh token record
type RefreshToken struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	TokenHash string     `json:"token_hash" db:"token_hash"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	RevokedAt *time.Time `json:"revoked_at" db:"revoked_at"`
}

// IsExpired checks if the refresh token is expired
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsRevoked checks if the refresh token is revoked
func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

// IsValid checks if the refresh token is valid
func (rt *RefreshToken) IsValid() bool {
	return !rt.IsExpired() && !rt.IsRevoked()
}
