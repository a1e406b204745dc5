// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (goal snapshots, patterns, schedules) and contracts only.
package domain
