package memory

import (
	"context"
	"testing"
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/competition"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/timefmt"
)

var seedNow = time.Date(2026, time.February, 22, 12, 0, 0, 0, time.UTC)

func newSeededSource() *FixtureSource {
	return NewFixtureSource(SeedFixtures(seedNow))
}

func TestFixtureSource_ListUpcoming(t *testing.T) {
	source := newSeededSource()

	fixtures, err := source.ListUpcoming(context.Background(), match.Query{
		Competitions: competition.Codes(),
		DateFrom:     timefmt.FormatDateInput(seedNow),
		DateTo:       timefmt.FormatDateInput(seedNow.Add(14 * 24 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}

	if len(fixtures) != 4 {
		t.Fatalf("unexpected upcoming count: %d", len(fixtures))
	}
	for i := 1; i < len(fixtures); i++ {
		if fixtures[i].KickoffAt.Before(fixtures[i-1].KickoffAt) {
			t.Fatalf("upcoming not ascending at %d: %+v", i, fixtures)
		}
	}
	for _, f := range fixtures {
		if f.Score != nil {
			t.Fatalf("finished fixture leaked into upcoming: %+v", f)
		}
	}
}

func TestFixtureSource_ListUpcomingFiltersCompetitionAndRange(t *testing.T) {
	source := newSeededSource()

	fixtures, err := source.ListUpcoming(context.Background(), match.Query{
		Competitions: []string{competition.CodeSuperLig},
		DateFrom:     timefmt.FormatDateInput(seedNow),
		DateTo:       timefmt.FormatDateInput(seedNow.Add(2 * 24 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}

	if len(fixtures) != 2 {
		t.Fatalf("unexpected filtered count: %d (%+v)", len(fixtures), fixtures)
	}
	for _, f := range fixtures {
		if f.CompetitionCode != competition.CodeSuperLig {
			t.Fatalf("unexpected competition: %+v", f)
		}
	}
}

func TestFixtureSource_ListUpcomingRejectsBadDates(t *testing.T) {
	source := newSeededSource()

	_, err := source.ListUpcoming(context.Background(), match.Query{
		Competitions: competition.Codes(),
		DateFrom:     "22-02-2026",
		DateTo:       "23-02-2026",
	})
	if err == nil {
		t.Fatalf("expected error for malformed dates")
	}
}

func TestFixtureSource_ListResults(t *testing.T) {
	source := newSeededSource()

	results, err := source.ListResults(context.Background(), match.ResultQuery{
		Competitions: competition.Codes(),
		Limit:        2,
	})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("unexpected result count: %d", len(results))
	}
	if results[0].KickoffAt.Before(results[1].KickoffAt) {
		t.Fatalf("results must be newest first: %+v", results)
	}
	for _, r := range results {
		if r.Score == nil {
			t.Fatalf("result without score leaked: %+v", r)
		}
	}
}

func TestSnapshotStore(t *testing.T) {
	store := NewSnapshotStore()

	if _, ok := store.Latest(); ok {
		t.Fatalf("fresh store must report no snapshot")
	}

	snap := match.Snapshot{FetchedAt: seedNow}
	store.Set(snap)

	got, ok := store.Latest()
	if !ok {
		t.Fatalf("expected snapshot after Set")
	}
	if !got.FetchedAt.Equal(seedNow) {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}
