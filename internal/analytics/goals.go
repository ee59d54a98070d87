package analytics

import (
	"math"
	"time"
)

// GoalProgress is a savings goal with its computed progress. TargetDate is
// nil and DaysRemaining is 0 when the goal has no target date.
type GoalProgress struct {
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Progress      float64    `json:"progress"`
	Remaining     float64    `json:"remaining"`
	DaysRemaining int        `json:"daysRemaining"`
	TargetDate    *time.Time `json:"targetDate"`
}

// Completed reports whether the goal reached its target
func (g GoalProgress) Completed() bool {
	return g.Progress >= 100
}

// Overdue reports whether the target date has passed
func (g GoalProgress) Overdue() bool {
	return g.TargetDate != nil && g.DaysRemaining < 0
}

func goalProgress(goals []Goal, now time.Time) []GoalProgress {
	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		p := GoalProgress{
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Remaining:     g.TargetAmount - g.CurrentAmount,
		}
		if g.TargetAmount > 0 {
			p.Progress = math.Min(100, math.Max(0, g.CurrentAmount/g.TargetAmount*100))
		}
		if !g.TargetDate.IsZero() {
			target := g.TargetDate
			p.TargetDate = &target
			p.DaysRemaining = int(math.Ceil(float64(target.Sub(now)) / float64(day)))
		}
		progress = append(progress, p)
	}
	return progress
}
