// Package schedule turns a weekly on/off pattern into a compact day-by-day
// holiday schedule.
//
// # Overview
//
// A day-of-week spec is seven characters, Monday first. A '-' marks a holiday;
// any other character marks a day the goal counts on, so mnemonic letters in
// any script work:
//
//	mtwtf--   yyyyy--   ΔΤΤΠΠ--   пвсчп--
//
// The pattern is tiled day after day from a start date and the resulting flags
// are run-length encoded. Only run lengths are kept; polarity alternates,
// starting with the flag of the first day:
//
//	pattern  x x x x x - -     (start on a Monday, 9 days)
//	days     x x x x x - - x x
//	runs     5         2   2
//
// # Dates
//
// Dates are civil dates carried in time.Time at midnight in their location.
// Day arithmetic goes through time.AddDate so DST transitions never shift a
// date. New holidays only take effect past Beeminder's one-week akrasia
// horizon; StartDate returns the first Monday after it.
//
// All functions are pure.
package schedule
