package schedule

import (
	"time"

	"beeminder-dow/internal/domain"
)

// DefaultHorizon is the number of days previewed per run.
const DefaultHorizon = 30

// TileAndEncode repeats pattern daily from start and run-length encodes the
// first count days.
func TileAndEncode(pattern domain.DowPattern, start time.Time, count int) domain.ScheduleFragment {
	start = Date(start)
	w := WeekdayIndex(start)
	frag := domain.ScheduleFragment{
		Start:    start,
		StartsOn: pattern[w],
		Runs:     []int{},
	}

	var (
		cur bool
		run int
	)
	for i := 0; i < count; i++ {
		on := pattern[(w+i)%7]
		if run > 0 && on != cur {
			frag.Runs = append(frag.Runs, run)
			run = 0
		}
		cur = on
		run++
	}
	if run > 0 {
		frag.Runs = append(frag.Runs, run)
	}
	return frag
}

// Decode expands run lengths back into daily flags, alternating polarity
// from startsOn.
func Decode(runs []int, startsOn bool) []bool {
	total := 0
	for _, r := range runs {
		total += r
	}
	out := make([]bool, 0, total)
	on := startsOn
	for _, r := range runs {
		for j := 0; j < r; j++ {
			out = append(out, on)
		}
		on = !on
	}
	return out
}

// Len returns the number of days covered by f.
func Len(f domain.ScheduleFragment) int {
	n := 0
	for _, r := range f.Runs {
		n += r
	}
	return n
}

// Holidays lists the calendar dates that f marks off.
func Holidays(f domain.ScheduleFragment) []time.Time {
	var out []time.Time
	for i, on := range Decode(f.Runs, f.StartsOn) {
		if !on {
			out = append(out, f.Start.AddDate(0, 0, i))
		}
	}
	return out
}
