package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

var errFakeCreate = errors.New("create rejected")

// fakeTaskRepo is an in-memory TaskRepository keeping insertion order.
type fakeTaskRepo struct {
	tasks      []*entities.Task
	failCreate bool
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	if r.failCreate {
		return errFakeCreate
	}
	copied := *task
	r.tasks = append(r.tasks, &copied)
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entities.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id && t.UserID == userID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entities.Task) error {
	for i, t := range r.tasks {
		if t.ID == task.ID && t.UserID == task.UserID {
			copied := *task
			r.tasks[i] = &copied
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

func (r *fakeTaskRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, t := range r.tasks {
		if t.ID == id && t.UserID == userID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Task, error) {
	var out []*entities.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) UpdateSortOrders(_ context.Context, userID uuid.UUID, orders map[uuid.UUID]int) error {
	for id, order := range orders {
		for _, t := range r.tasks {
			if t.ID == id && t.UserID == userID {
				o := order
				t.SortOrder = &o
			}
		}
	}
	return nil
}

// fakeHabitRepo is an in-memory HabitRepository with a day-row map keyed by
// (habit, date).
type fakeHabitRepo struct {
	habits []*entities.Habit
	days   map[string]*entities.HabitDay
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{days: make(map[string]*entities.HabitDay)}
}

func dayKey(habitID uuid.UUID, date entities.Date) string {
	return habitID.String() + "|" + date.String()
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entities.Habit) error {
	copied := *habit
	r.habits = append(r.habits, &copied)
	return nil
}

func (r *fakeHabitRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entities.Habit, error) {
	for _, h := range r.habits {
		if h.ID == id && h.UserID == userID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, entities.ErrHabitNotFound
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *entities.Habit) error {
	for i, h := range r.habits {
		if h.ID == habit.ID && h.UserID == habit.UserID {
			copied := *habit
			r.habits[i] = &copied
			return nil
		}
	}
	return entities.ErrHabitNotFound
}

func (r *fakeHabitRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, h := range r.habits {
		if h.ID == id && h.UserID == userID {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return nil
		}
	}
	return entities.ErrHabitNotFound
}

func (r *fakeHabitRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Habit, error) {
	var out []*entities.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			copied := *h
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) GetDays(_ context.Context, habitIDs []uuid.UUID, from, to entities.Date) ([]*entities.HabitDay, error) {
	wanted := make(map[uuid.UUID]bool)
	for _, id := range habitIDs {
		wanted[id] = true
	}

	var out []*entities.HabitDay
	for _, d := range r.days {
		if !wanted[d.HabitID] {
			continue
		}
		if d.Date.Before(from.Time) || d.Date.After(to.Time) {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

func (r *fakeHabitRepo) UpsertDay(_ context.Context, day *entities.HabitDay) error {
	copied := *day
	r.days[dayKey(day.HabitID, day.Date)] = &copied
	return nil
}

func (r *fakeHabitRepo) DeleteDay(_ context.Context, habitID uuid.UUID, date entities.Date) error {
	delete(r.days, dayKey(habitID, date))
	return nil
}

// fakeAddictionRepo is an in-memory AddictionRepository whose reset ledger
// keeps duplicates, mirroring the schema.
type fakeAddictionRepo struct {
	addictions []*entities.Addiction
	resets     []*entities.AddictionReset
}

func (r *fakeAddictionRepo) Create(_ context.Context, addiction *entities.Addiction) error {
	copied := *addiction
	r.addictions = append(r.addictions, &copied)
	return nil
}

func (r *fakeAddictionRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entities.Addiction, error) {
	for _, a := range r.addictions {
		if a.ID == id && a.UserID == userID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, entities.ErrAddictionNotFound
}

func (r *fakeAddictionRepo) Update(_ context.Context, addiction *entities.Addiction) error {
	for i, a := range r.addictions {
		if a.ID == addiction.ID && a.UserID == addiction.UserID {
			copied := *addiction
			r.addictions[i] = &copied
			return nil
		}
	}
	return entities.ErrAddictionNotFound
}

func (r *fakeAddictionRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, a := range r.addictions {
		if a.ID == id && a.UserID == userID {
			r.addictions = append(r.addictions[:i], r.addictions[i+1:]...)
			return nil
		}
	}
	return entities.ErrAddictionNotFound
}

func (r *fakeAddictionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Addiction, error) {
	var out []*entities.Addiction
	for _, a := range r.addictions {
		if a.UserID == userID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAddictionRepo) GetResets(_ context.Context, addictionIDs []uuid.UUID, from, to entities.Date) ([]*entities.AddictionReset, error) {
	wanted := make(map[uuid.UUID]bool)
	for _, id := range addictionIDs {
		wanted[id] = true
	}

	var out []*entities.AddictionReset
	for _, reset := range r.resets {
		if !wanted[reset.AddictionID] {
			continue
		}
		if reset.Date.Before(from.Time) || reset.Date.After(to.Time) {
			continue
		}
		copied := *reset
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Before(out[j].Date.Time)
		}
		return out[i].ResetAt.Before(out[j].ResetAt)
	})
	return out, nil
}

func (r *fakeAddictionRepo) GetLastResetTimes(_ context.Context, addictionIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	wanted := make(map[uuid.UUID]bool)
	for _, id := range addictionIDs {
		wanted[id] = true
	}

	out := make(map[uuid.UUID]time.Time)
	for _, reset := range r.resets {
		if !wanted[reset.AddictionID] {
			continue
		}
		if last, ok := out[reset.AddictionID]; !ok || reset.ResetAt.After(last) {
			out[reset.AddictionID] = reset.ResetAt
		}
	}
	return out, nil
}

func (r *fakeAddictionRepo) AddReset(_ context.Context, reset *entities.AddictionReset) error {
	copied := *reset
	r.resets = append(r.resets, &copied)
	return nil
}

func (r *fakeAddictionRepo) RemoveLatestReset(_ context.Context, addictionID uuid.UUID, date entities.Date) error {
	latest := -1
	for i, reset := range r.resets {
		if reset.AddictionID != addictionID || !reset.Date.Equal(date.Time) {
			continue
		}
		if latest == -1 || reset.ResetAt.After(r.resets[latest].ResetAt) {
			latest = i
		}
	}
	if latest >= 0 {
		r.resets = append(r.resets[:latest], r.resets[latest+1:]...)
	}
	return nil
}

var _ ports.TaskRepository = (*fakeTaskRepo)(nil)
var _ ports.HabitRepository = (*fakeHabitRepo)(nil)
var _ ports.AddictionRepository = (*fakeAddictionRepo)(nil)
