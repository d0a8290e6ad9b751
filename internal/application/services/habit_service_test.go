package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifehub/core/internal/domain/entities"
	"github.com/lifehub/core/internal/ports"
)

func TestCreateHabit_Validation(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	_, err := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: " ", RecurrenceRule: "FREQ=DAILY",
	})
	if !errors.Is(err, entities.ErrTitleRequired) {
		t.Errorf("blank title: got %v, want ErrTitleRequired", err)
	}

	_, err = svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "  ",
	})
	if !errors.Is(err, entities.ErrRecurrenceRequired) {
		t.Errorf("blank rule: got %v, want ErrRecurrenceRequired", err)
	}

	if len(repo.habits) != 0 {
		t.Fatalf("invalid requests must not persist, have %d habits", len(repo.habits))
	}
}

func TestCreateHabit_DefaultsColor(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())

	habit, err := svc.CreateHabit(context.Background(), uuid.New(), ports.HabitUpsertRequest{
		Title:          "Read",
		RecurrenceRule: "FREQ=DAILY",
	})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	if habit.Color != entities.DefaultHabitColor {
		t.Errorf("color = %q, want default %q", habit.Color, entities.DefaultHabitColor)
	}
}

func TestUpdateHabit_BlankColorKeepsStored(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title:          "Read",
		Color:          "#ff0000",
		RecurrenceRule: "FREQ=DAILY",
	})

	updated, err := svc.UpdateHabit(context.Background(), userID, habit.ID, ports.HabitUpsertRequest{
		Title:          "Read more",
		RecurrenceRule: "FREQ=DAILY;INTERVAL=2",
	})
	if err != nil {
		t.Fatalf("UpdateHabit: %v", err)
	}
	if updated.Color != "#ff0000" {
		t.Errorf("color = %q, want stored #ff0000", updated.Color)
	}
	if updated.Title != "Read more" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.RecurrenceRule != "FREQ=DAILY;INTERVAL=2" {
		t.Errorf("rule = %q", updated.RecurrenceRule)
	}
}

func TestSetDayStatus_UpsertReplacesExistingRow(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})
	date := entities.NewDate(2025, 3, 12)

	if _, err := svc.SetDayStatus(context.Background(), userID, habit.ID, date, "skip"); err != nil {
		t.Fatalf("SetDayStatus skip: %v", err)
	}
	day, err := svc.SetDayStatus(context.Background(), userID, habit.ID, date, "full")
	if err != nil {
		t.Fatalf("SetDayStatus full: %v", err)
	}
	if day.Status != entities.DayStatusFull {
		t.Errorf("status = %q, want full", day.Status)
	}
	if len(repo.days) != 1 {
		t.Fatalf("expected a single row per (habit, date), have %d", len(repo.days))
	}
	stored := repo.days[dayKey(habit.ID, date)]
	if stored == nil || stored.Status != entities.DayStatusFull {
		t.Errorf("stored status = %v, want full", stored)
	}
}

func TestSetDayStatus_NoneDeletesRow(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})
	date := entities.NewDate(2025, 3, 12)

	svc.SetDayStatus(context.Background(), userID, habit.ID, date, "full")
	day, err := svc.SetDayStatus(context.Background(), userID, habit.ID, date, "none")
	if err != nil {
		t.Fatalf("SetDayStatus none: %v", err)
	}
	if day.Status != entities.DayStatusNone {
		t.Errorf("status = %q, want none", day.Status)
	}
	if day.HabitID != habit.ID || day.Date.String() != "2025-03-12" {
		t.Errorf("synthetic record = %+v", day)
	}
	if len(repo.days) != 0 {
		t.Fatalf("none must delete the stored row, have %d rows", len(repo.days))
	}
}

func TestSetDayStatus_NoneOnMissingRowIsIdempotent(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})

	if _, err := svc.SetDayStatus(context.Background(), userID, habit.ID, entities.NewDate(2025, 3, 12), "none"); err != nil {
		t.Fatalf("SetDayStatus none on empty ledger: %v", err)
	}
}

func TestSetDayStatus_InvalidStatus(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})

	_, err := svc.SetDayStatus(context.Background(), userID, habit.ID, entities.NewDate(2025, 3, 12), "half")
	if !errors.Is(err, entities.ErrInvalidDayStatus) {
		t.Fatalf("expected ErrInvalidDayStatus, got %v", err)
	}
}

func TestSetDayStatus_ForeignHabit(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())

	habit, _ := svc.CreateHabit(context.Background(), uuid.New(), ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})

	_, err := svc.SetDayStatus(context.Background(), uuid.New(), habit.ID, entities.NewDate(2025, 3, 12), "full")
	if !errors.Is(err, entities.ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestListWithHistory_WindowFiltersDays(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})

	today := entities.Today()
	svc.SetDayStatus(context.Background(), userID, habit.ID, today, "full")
	svc.SetDayStatus(context.Background(), userID, habit.ID, today.AddDays(-3), "skip")
	svc.SetDayStatus(context.Background(), userID, habit.ID, today.AddDays(-10), "full")

	list, err := svc.ListWithHistory(context.Background(), userID, 7)
	if err != nil {
		t.Fatalf("ListWithHistory: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(list))
	}
	if len(list[0].History) != 2 {
		t.Fatalf("7-day window should hold 2 records, got %d", len(list[0].History))
	}
}

func TestListWithHistory_ClampsWindow(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, testLogger())
	userID := uuid.New()

	habit, _ := svc.CreateHabit(context.Background(), userID, ports.HabitUpsertRequest{
		Title: "Read", RecurrenceRule: "FREQ=DAILY",
	})

	today := entities.Today()
	svc.SetDayStatus(context.Background(), userID, habit.ID, today, "full")
	svc.SetDayStatus(context.Background(), userID, habit.ID, today.AddDays(-1), "full")

	// days <= 0 clamps to a single-day window: only today survives.
	list, err := svc.ListWithHistory(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("ListWithHistory: %v", err)
	}
	if len(list[0].History) != 1 {
		t.Fatalf("clamped window should hold 1 record, got %d", len(list[0].History))
	}
}

func TestListWithHistory_NoHabits(t *testing.T) {
	svc := NewHabitService(newFakeHabitRepo(), testLogger())

	list, err := svc.ListWithHistory(context.Background(), uuid.New(), 30)
	if err != nil {
		t.Fatalf("ListWithHistory: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestClampWindowDays(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{30, 30},
		{365, 365},
		{400, 365},
	}
	for _, c := range cases {
		if got := clampWindowDays(c.in); got != c.want {
			t.Errorf("clampWindowDays(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
