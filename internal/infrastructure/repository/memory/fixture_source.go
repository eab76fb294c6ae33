package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/timefmt"
)

// FixtureSource serves fixtures from memory. It backs dev/demo deployments
// where the upstream football data feed is disabled.
type FixtureSource struct {
	mu       sync.RWMutex
	fixtures []match.Fixture
}

func NewFixtureSource(fixtures []match.Fixture) *FixtureSource {
	out := make([]match.Fixture, len(fixtures))
	copy(out, fixtures)
	return &FixtureSource{fixtures: out}
}

// ListUpcoming returns scheduled fixtures matching the query, ordered by
// ascending kickoff.
func (s *FixtureSource) ListUpcoming(_ context.Context, q match.Query) ([]match.Fixture, error) {
	from, err := time.Parse(timefmt.DateInputLayout, q.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(timefmt.DateInputLayout, q.DateTo)
	if err != nil {
		return nil, err
	}
	// DateTo is inclusive: extend to the end of that calendar day.
	to = to.Add(24*time.Hour - time.Nanosecond)

	wanted := toSet(q.Competitions)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Fixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		if f.Score != nil {
			continue
		}
		if _, ok := wanted[f.CompetitionCode]; !ok {
			continue
		}
		if f.KickoffAt.Before(from) || f.KickoffAt.After(to) {
			continue
		}
		out = append(out, f)
	}

	sortFixturesAscending(out)
	return out, nil
}

// ListResults returns finished fixtures matching the query, newest first,
// capped at q.Limit.
func (s *FixtureSource) ListResults(_ context.Context, q match.ResultQuery) ([]match.Fixture, error) {
	wanted := toSet(q.Competitions)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Fixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		if f.Score == nil {
			continue
		}
		if _, ok := wanted[f.CompetitionCode]; !ok {
			continue
		}
		out = append(out, f)
	}

	sortFixturesDescending(out)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func toSet(codes []string) map[string]struct{} {
	out := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		out[code] = struct{}{}
	}
	return out
}

func sortFixturesAscending(fixtures []match.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt)
	})
}

func sortFixturesDescending(fixtures []match.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].KickoffAt.After(fixtures[j].KickoffAt)
	})
}
