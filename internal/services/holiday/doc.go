// Package holiday previews weekly holidays for a Beeminder goal.
//
// It resolves the user, fetches the goal and tiles the day-of-week pattern
// from the first Monday past the akrasia horizon, up to the goal's deadline.
package holiday
