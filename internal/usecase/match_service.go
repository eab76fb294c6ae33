package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/competition"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/cache"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/timefmt"
)

const defaultUpcomingWindowDays = 14

// MatchService serves the on-demand match listing endpoints straight from
// the source, fronted by the TTL cache so bursts of identical queries
// collapse into one upstream call.
type MatchService struct {
	source     match.Source
	store      *cache.Store
	windowDays int
	now        func() time.Time
}

// NewMatchService constructs a MatchService. A nil store disables caching.
func NewMatchService(source match.Source, store *cache.Store, windowDays int) *MatchService {
	if windowDays <= 0 {
		windowDays = defaultUpcomingWindowDays
	}
	return &MatchService{
		source:     source,
		store:      store,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// ListUpcoming returns enriched scheduled matches for the query. Missing
// competitions default to the tracked set; a missing date range defaults to
// the service's upcoming window starting today.
func (s *MatchService) ListUpcoming(ctx context.Context, query match.Query) ([]match.Upcoming, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListUpcoming")
	defer span.End()

	now := s.now().UTC()
	query = s.normalizeQuery(query, now)
	if err := validateDateRange(query.DateFrom, query.DateTo); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("upcoming:%s:%s:%s", strings.Join(query.Competitions, ","), query.DateFrom, query.DateTo)
	fixtures, err := s.load(ctx, key, func(ctx context.Context) ([]match.Fixture, error) {
		return s.source.ListUpcoming(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}

	enriched := match.EnrichUpcomingAll(fixtures, now)
	match.SortUpcoming(enriched)
	return enriched, nil
}

// ListResults returns enriched finished matches, newest first.
func (s *MatchService) ListResults(ctx context.Context, query match.ResultQuery) ([]match.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListResults")
	defer span.End()

	if len(query.Competitions) == 0 {
		query.Competitions = competition.Codes()
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 50 {
		return nil, fmt.Errorf("%w: limit must be at most 50", ErrInvalidInput)
	}

	key := fmt.Sprintf("results:%s:%d", strings.Join(query.Competitions, ","), query.Limit)
	fixtures, err := s.load(ctx, key, func(ctx context.Context) ([]match.Fixture, error) {
		return s.source.ListResults(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("list recent results: %w", err)
	}

	enriched := match.EnrichResultAll(fixtures, s.now().UTC())
	match.SortResults(enriched)
	return enriched, nil
}

func (s *MatchService) normalizeQuery(query match.Query, now time.Time) match.Query {
	if len(query.Competitions) == 0 {
		query.Competitions = competition.Codes()
	}
	if query.DateFrom == "" {
		query.DateFrom = timefmt.FormatDateInput(now)
	}
	if query.DateTo == "" {
		query.DateTo = timefmt.FormatDateInput(now.AddDate(0, 0, s.windowDays))
	}
	return query
}

func (s *MatchService) load(ctx context.Context, key string, loader func(context.Context) ([]match.Fixture, error)) ([]match.Fixture, error) {
	if s.store == nil {
		return loader(ctx)
	}
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return nil, err
	}
	fixtures, ok := value.([]match.Fixture)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry for %s", key)
	}
	return fixtures, nil
}

func validateDateRange(from, to string) error {
	start, err := time.Parse(timefmt.DateInputLayout, from)
	if err != nil {
		return fmt.Errorf("%w: dateFrom must be YYYY-MM-DD", ErrInvalidInput)
	}
	end, err := time.Parse(timefmt.DateInputLayout, to)
	if err != nil {
		return fmt.Errorf("%w: dateTo must be YYYY-MM-DD", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}
	return nil
}
