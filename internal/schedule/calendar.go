package schedule

import "time"

// akrasiaHorizon is how far ahead goal changes take effect.
const akrasiaHorizon = 7

// WeekdayIndex returns the weekday of t with Monday=0..Sunday=6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Date truncates t to midnight in its own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextMonday returns the first Monday strictly after d.
// A Monday yields the Monday one week later.
func NextMonday(d time.Time) time.Time {
	return Date(d).AddDate(0, 0, 7-WeekdayIndex(d))
}

// StartDate returns the earliest Monday on which new holidays can start:
// the first Monday after the akrasia horizon counted from today.
func StartDate(today time.Time) time.Time {
	return NextMonday(Date(today).AddDate(0, 0, akrasiaHorizon))
}

// DaysUntil counts calendar days from `from` through `to` inclusive.
// It is zero or negative when to falls before from.
func DaysUntil(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a)/(24*time.Hour)) + 1
}
