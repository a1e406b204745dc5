package domain

import "errors"

var (
	// ErrInvalidDowPattern is returned when a day-of-week spec is malformed.
	ErrInvalidDowPattern = errors.New("invalid day-of-week spec")

	// ErrUnauthorized is returned when Beeminder rejects the auth token.
	ErrUnauthorized = errors.New("beeminder rejected the auth token")

	// ErrGoalNotFound is returned when the goal does not exist for the user.
	ErrGoalNotFound = errors.New("goal not found")
)
