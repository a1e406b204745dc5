package domain

import "context"

// GoalClient is how we talk to Beeminder.
type GoalClient interface {
	ResolveUsername(ctx context.Context) (string, error)
	FetchGoal(ctx context.Context, username, goal string) (GoalSnapshot, error)
}

// PreviewService derives a holiday schedule preview for one goal.
type PreviewService interface {
	Preview(ctx context.Context, goal string, pattern DowPattern) (Preview, error)
}
