package entities

import (
	"testing"
	"time"
)

func TestAbstinenceProgress_FirstStage(t *testing.T) {
	reset := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := reset.Add(12 * time.Hour)

	p := AbstinenceProgressAt(reset, now)

	if p.ElapsedHours != 12 {
		t.Errorf("expected 12 elapsed hours, got %d", p.ElapsedHours)
	}
	if p.StageHours != 24 || p.PrevStageHours != 0 {
		t.Errorf("expected stage [0, 24), got [%d, %d)", p.PrevStageHours, p.StageHours)
	}
	if p.Percent != 50 {
		t.Errorf("expected 50%%, got %d%%", p.Percent)
	}
	if p.MaxReached {
		t.Error("max must not be reached at 12 hours")
	}
}

func TestAbstinenceProgress_MiddleStage(t *testing.T) {
	reset := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	now := reset.Add(120 * time.Hour) // 5 days, inside the [72, 168) stage

	p := AbstinenceProgressAt(reset, now)

	if p.StageHours != 168 || p.PrevStageHours != 72 {
		t.Errorf("expected stage [72, 168), got [%d, %d)", p.PrevStageHours, p.StageHours)
	}
	if p.Percent != 50 {
		t.Errorf("expected 50%%, got %d%%", p.Percent)
	}
}

func TestAbstinenceProgress_StageBoundaryAdvances(t *testing.T) {
	reset := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	now := reset.Add(24 * time.Hour)

	p := AbstinenceProgressAt(reset, now)

	// Exactly 24h belongs to the next stage, at its bottom.
	if p.StageHours != 48 || p.PrevStageHours != 24 {
		t.Errorf("expected stage [24, 48), got [%d, %d)", p.PrevStageHours, p.StageHours)
	}
	if p.Percent != 0 {
		t.Errorf("expected 0%% at stage start, got %d%%", p.Percent)
	}
}

func TestAbstinenceProgress_PastFinalStage(t *testing.T) {
	reset := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := reset.Add(1000 * time.Hour)

	p := AbstinenceProgressAt(reset, now)

	if !p.MaxReached {
		t.Error("expected max reached after 1000 hours")
	}
	if p.Percent != 100 {
		t.Errorf("expected pinned 100%%, got %d%%", p.Percent)
	}
	if p.PrevStageHours != 720 {
		t.Errorf("expected final boundary 720, got %d", p.PrevStageHours)
	}
}

func TestAbstinenceProgress_FutureResetClampsToZero(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	reset := now.Add(5 * time.Hour)

	p := AbstinenceProgressAt(reset, now)

	if p.ElapsedHours != 0 || p.Percent != 0 {
		t.Errorf("expected zeroed progress for a future reset, got %+v", p)
	}
}
