package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"beeminder-dow/internal/domain"
	"beeminder-dow/internal/schedule"
)

// Service derives schedule previews from live goal data.
type Service struct {
	goals   domain.GoalClient
	horizon int
	now     func() time.Time
	log     zerolog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithHorizon sets how many days are previewed.
func WithHorizon(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.horizon = days
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a preview service backed by the given goal client.
func New(goals domain.GoalClient, opts ...Option) *Service {
	s := &Service{
		goals:   goals,
		horizon: schedule.DefaultHorizon,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Preview fetches goal and computes its holiday schedule for pattern.
//
// A goal whose deadline falls before the start date yields an empty fragment.
func (s *Service) Preview(ctx context.Context, goal string, pattern domain.DowPattern) (domain.Preview, error) {
	username, err := s.goals.ResolveUsername(ctx)
	if err != nil {
		return domain.Preview{}, fmt.Errorf("resolving user: %w", err)
	}
	s.log.Debug().Str("user", username).Msg("resolved user")

	snap, err := s.goals.FetchGoal(ctx, username, goal)
	if err != nil {
		return domain.Preview{}, fmt.Errorf("fetching goal %q: %w", goal, err)
	}
	s.log.Debug().
		Str("goal", snap.Slug).
		Time("end", snap.EndDate).
		Int("road_rows", len(snap.Road)).
		Msg("fetched goal")

	start := schedule.StartDate(s.now())
	count := s.horizon
	if !snap.EndDate.IsZero() {
		end := snap.EndDate.In(start.Location())
		if left := schedule.DaysUntil(start, end); left < count {
			count = max(left, 0)
		}
	}
	frag := schedule.TileAndEncode(pattern, start, count)
	s.log.Debug().
		Time("start", start).
		Int("days", count).
		Ints("runs", frag.Runs).
		Msg("encoded schedule")

	return domain.Preview{
		Username: username,
		Goal:     snap,
		Pattern:  pattern,
		Start:    start,
		Fragment: frag,
	}, nil
}

var _ domain.PreviewService = (*Service)(nil)
