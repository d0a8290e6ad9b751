package entities

import "time"

// AbstinenceStageHours are the stage boundaries for addiction progress, in
// hours since the last reset: 1 day, 2 days, 3 days, 1 week, 10 days, 30 days.
var AbstinenceStageHours = []int{24, 48, 72, 168, 240, 720}

// AbstinenceProgress describes how far an addiction has progressed through
// the stage ladder since its last reset.
type AbstinenceProgress struct {
	ElapsedHours   int  `json:"elapsed_hours"`
	StageHours     int  `json:"stage_hours"`      // upper bound of the current stage; 0 once past the final stage
	PrevStageHours int  `json:"prev_stage_hours"` // lower bound of the current stage
	Percent        int  `json:"percent"`          // progress within the current stage, 0-100
	MaxReached     bool `json:"max_reached"`
}

// AbstinenceProgressAt derives the stage state at the given moment. The
// current stage is the first boundary exceeding the elapsed whole hours;
// once all boundaries are passed the progress is pinned at 100%.
func AbstinenceProgressAt(lastResetAt, now time.Time) AbstinenceProgress {
	elapsed := int(now.Sub(lastResetAt).Hours())
	if elapsed < 0 {
		elapsed = 0
	}

	p := AbstinenceProgress{ElapsedHours: elapsed}
	for i, stage := range AbstinenceStageHours {
		if elapsed < stage {
			p.StageHours = stage
			if i > 0 {
				p.PrevStageHours = AbstinenceStageHours[i-1]
			}
			p.Percent = clampPercent((elapsed - p.PrevStageHours) * 100 / (stage - p.PrevStageHours))
			return p
		}
	}

	p.MaxReached = true
	p.PrevStageHours = AbstinenceStageHours[len(AbstinenceStageHours)-1]
	p.Percent = 100
	return p
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
