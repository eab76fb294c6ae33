package match

import (
	"context"
	"time"
)

// Query selects scheduled fixtures for a set of competitions inside an
// inclusive calendar-date range (YYYY-MM-DD, UTC).
type Query struct {
	Competitions []string
	DateFrom     string
	DateTo       string
}

// ResultQuery selects the most recent finished fixtures for a set of
// competitions, newest first.
type ResultQuery struct {
	Competitions []string
	Limit        int
}

// Source exposes fixture reads against the upstream football data feed.
type Source interface {
	ListUpcoming(ctx context.Context, q Query) ([]Fixture, error)
	ListResults(ctx context.Context, q ResultQuery) ([]Fixture, error)
}

// Snapshot is one refresher pass over the upstream feed. Err carries the
// upstream failure verbatim; the raw lists keep whatever the previous
// successful pass delivered so the dashboard can degrade instead of blank.
type Snapshot struct {
	Upcoming  []Fixture
	Results   []Fixture
	FetchedAt time.Time
	Err       error
}
