package domain

import (
	"encoding/json"
	"time"
)

// DowPattern marks which weekdays a goal counts on, indexed Monday=0..Sunday=6.
// A false entry is a holiday.
type DowPattern [7]bool

// String renders the pattern with '-' for holidays and 'x' for active days.
func (p DowPattern) String() string {
	b := make([]byte, len(p))
	for i, on := range p {
		if on {
			b[i] = 'x'
		} else {
			b[i] = '-'
		}
	}
	return string(b)
}

// GoalSnapshot is the read-only view of a goal fetched once per run.
type GoalSnapshot struct {
	Slug  string
	Title string

	// EndDate is the goal's deadline; zero when the goal has none.
	EndDate time.Time

	// Rate is nil when the goal does not report one.
	Rate      *float64
	RateUnits string

	// Road holds the goal's full road matrix. Rows are passed through untouched.
	Road []json.RawMessage
}

// ScheduleFragment is a run-length encoding of daily on/off flags.
//
// Runs alternate polarity, the first run having polarity StartsOn.
type ScheduleFragment struct {
	Start    time.Time
	StartsOn bool
	Runs     []int
}

// Preview is everything computed for one invocation.
type Preview struct {
	Username string
	Goal     GoalSnapshot
	Pattern  DowPattern
	Start    time.Time
	Fragment ScheduleFragment
}
