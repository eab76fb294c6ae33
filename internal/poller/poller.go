package poller

import (
	"context"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/competition"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/logging"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/timefmt"
)

const defaultInterval = 60 * time.Second

// SnapshotSink receives each refreshed snapshot.
type SnapshotSink interface {
	Set(snap match.Snapshot)
}

// Poller refreshes the dashboard snapshot on an interval. Upcoming
// fixtures and recent results are fetched concurrently; a failure on
// either side keeps the previous slice and records the error on the
// snapshot so readers can surface a degraded state.
type Poller struct {
	source   match.Source
	sink     SnapshotSink
	logger   *logging.Logger
	interval time.Duration

	windowDays   int
	resultsLimit int
	now          func() time.Time

	mu       sync.Mutex
	started  bool
	done     chan struct{}
	stopOnce sync.Once

	lastMu   sync.Mutex
	upcoming []match.Fixture
	results  []match.Fixture
}

// New constructs a Poller. Interval, window and limit fall back to
// sane defaults when non-positive.
func New(source match.Source, sink SnapshotSink, logger *logging.Logger, interval time.Duration, windowDays, resultsLimit int) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if windowDays <= 0 {
		windowDays = 14
	}
	if resultsLimit <= 0 {
		resultsLimit = 10
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Poller{
		source:       source,
		sink:         sink,
		logger:       logger,
		interval:     interval,
		windowDays:   windowDays,
		resultsLimit: resultsLimit,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Start begins the refresh loop until the context is cancelled or Stop
// is called. The first refresh runs immediately so the snapshot store
// warms up on boot.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		p.logger.InfoContext(ctx, "snapshot refresher started", "interval", p.interval.String())
		p.RefreshOnce(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				p.logger.Info("snapshot refresher stopped")
				return
			case <-p.done:
				p.logger.Info("snapshot refresher stopped")
				return
			case <-ticker.C:
				p.RefreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// RefreshOnce performs a single refresh cycle and publishes the
// resulting snapshot.
func (p *Poller) RefreshOnce(ctx context.Context) {
	now := p.now().UTC()
	query := match.Query{
		Competitions: competition.Codes(),
		DateFrom:     timefmt.FormatDateInput(now),
		DateTo:       timefmt.FormatDateInput(now.AddDate(0, 0, p.windowDays)),
	}
	resultQuery := match.ResultQuery{
		Competitions: competition.Codes(),
		Limit:        p.resultsLimit,
	}

	var (
		upcoming    []match.Fixture
		results     []match.Fixture
		upcomingErr error
		resultsErr  error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		upcoming, upcomingErr = p.source.ListUpcoming(ctx, query)
	})
	wg.Go(func() {
		results, resultsErr = p.source.ListResults(ctx, resultQuery)
	})
	wg.Wait()

	p.lastMu.Lock()
	if upcomingErr == nil {
		p.upcoming = upcoming
	} else {
		upcoming = p.upcoming
	}
	if resultsErr == nil {
		p.results = results
	} else {
		results = p.results
	}
	p.lastMu.Unlock()

	snap := match.Snapshot{
		Upcoming:  upcoming,
		Results:   results,
		FetchedAt: now,
	}
	switch {
	case upcomingErr != nil:
		snap.Err = upcomingErr
		p.logger.ErrorContext(ctx, "upcoming refresh failed", "error", upcomingErr)
	case resultsErr != nil:
		snap.Err = resultsErr
		p.logger.ErrorContext(ctx, "results refresh failed", "error", resultsErr)
	default:
		p.logger.DebugContext(ctx, "snapshot refreshed",
			"upcoming", len(upcoming),
			"results", len(results),
		)
	}
	p.sink.Set(snap)
}
