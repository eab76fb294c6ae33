package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/cache"
)

type countingSource struct {
	mu            sync.Mutex
	upcomingCalls int
	resultCalls   int
	upcoming      []match.Fixture
	results       []match.Fixture
	err           error

	lastQuery       match.Query
	lastResultQuery match.ResultQuery
}

func (s *countingSource) ListUpcoming(_ context.Context, q match.Query) ([]match.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upcomingCalls++
	s.lastQuery = q
	return s.upcoming, s.err
}

func (s *countingSource) ListResults(_ context.Context, q match.ResultQuery) ([]match.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultCalls++
	s.lastResultQuery = q
	return s.results, s.err
}

var matchNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newMatchService(source match.Source, store *cache.Store) *MatchService {
	svc := NewMatchService(source, store, 14)
	svc.now = func() time.Time { return matchNow }
	return svc
}

func TestListUpcomingAppliesQueryDefaults(t *testing.T) {
	source := &countingSource{
		upcoming: []match.Fixture{
			{ID: "later", CompetitionCode: "TSL", KickoffAt: matchNow.Add(48 * time.Hour)},
			{ID: "sooner", CompetitionCode: "CL", KickoffAt: matchNow.Add(2 * time.Hour)},
		},
	}
	svc := newMatchService(source, nil)

	enriched, err := svc.ListUpcoming(context.Background(), match.Query{})
	require.NoError(t, err)

	assert.Equal(t, []string{"TSL", "CL"}, source.lastQuery.Competitions)
	assert.Equal(t, "2025-03-10", source.lastQuery.DateFrom)
	assert.Equal(t, "2025-03-24", source.lastQuery.DateTo)

	require.Len(t, enriched, 2)
	assert.Equal(t, "sooner", enriched[0].ID)
	assert.Equal(t, "2h 0m", enriched[0].TimeUntil)
	assert.False(t, enriched[0].KickoffPassed)
}

func TestListUpcomingRejectsBadDates(t *testing.T) {
	svc := newMatchService(&countingSource{}, nil)

	_, err := svc.ListUpcoming(context.Background(), match.Query{DateFrom: "10-03-2025"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListUpcoming(context.Background(), match.Query{
		DateFrom: "2025-03-20",
		DateTo:   "2025-03-10",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListUpcomingUsesCache(t *testing.T) {
	source := &countingSource{
		upcoming: []match.Fixture{{ID: "u1", CompetitionCode: "TSL", KickoffAt: matchNow.Add(time.Hour)}},
	}
	svc := newMatchService(source, cache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		_, err := svc.ListUpcoming(context.Background(), match.Query{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, source.upcomingCalls)
}

func TestListUpcomingPropagatesSourceError(t *testing.T) {
	source := &countingSource{err: errors.New("upstream unreachable")}
	svc := newMatchService(source, nil)

	_, err := svc.ListUpcoming(context.Background(), match.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list upcoming matches")
}

func TestListResultsDefaultsAndEnrichment(t *testing.T) {
	older := match.Fixture{
		ID:              "old",
		CompetitionCode: "TSL",
		KickoffAt:       matchNow.Add(-72 * time.Hour),
		Score:           &match.Score{Home: 1, Away: 0},
	}
	newer := match.Fixture{
		ID:              "new",
		CompetitionCode: "CL",
		KickoffAt:       matchNow.Add(-24 * time.Hour),
	}
	source := &countingSource{results: []match.Fixture{older, newer}}
	svc := newMatchService(source, nil)

	enriched, err := svc.ListResults(context.Background(), match.ResultQuery{})
	require.NoError(t, err)

	assert.Equal(t, 10, source.lastResultQuery.Limit)
	assert.Equal(t, []string{"TSL", "CL"}, source.lastResultQuery.Competitions)

	require.Len(t, enriched, 2)
	assert.Equal(t, "new", enriched[0].ID)
	assert.Nil(t, enriched[0].HomeScore)
	require.NotNil(t, enriched[1].HomeScore)
	assert.Equal(t, 1, *enriched[1].HomeScore)
}

func TestListResultsRejectsExcessiveLimit(t *testing.T) {
	svc := newMatchService(&countingSource{}, nil)

	_, err := svc.ListResults(context.Background(), match.ResultQuery{Limit: 51})
	require.ErrorIs(t, err, ErrInvalidInput)
}
