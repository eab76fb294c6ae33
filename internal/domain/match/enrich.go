package match

import (
	"time"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/timefmt"
)

// Upcoming is a fixture extended with display fields derived from a
// reference instant. Derived per request, never stored.
type Upcoming struct {
	Fixture
	KickoffLabel  string
	TimeUntil     string
	KickoffPassed bool
}

// Result is a finished fixture extended with display fields and the
// scoreline hoisted out of the optional nested Score. A nil HomeScore or
// AwayScore means the feed delivered no score; rendering substitutes "-".
type Result struct {
	Fixture
	KickoffLabel string
	RelativeTime string
	HomeScore    *int
	AwayScore    *int
}

// EnrichUpcoming derives the display fields for a scheduled fixture against
// now. The input is copied, never mutated.
func EnrichUpcoming(f Fixture, now time.Time) Upcoming {
	diff := f.KickoffAt.Sub(now)
	return Upcoming{
		Fixture:       f,
		KickoffLabel:  timefmt.FormatDateTime(f.KickoffAt),
		TimeUntil:     timefmt.FormatRelativeFuture(diff),
		KickoffPassed: diff <= 0,
	}
}

// EnrichResult derives the display fields for a completed fixture against
// now. Each score side defaults to nil independently when the raw score is
// absent.
func EnrichResult(f Fixture, now time.Time) Result {
	out := Result{
		Fixture:      f,
		KickoffLabel: timefmt.FormatDateOnly(f.KickoffAt),
		RelativeTime: timefmt.FormatRelativePast(now.Sub(f.KickoffAt)),
	}
	if f.Score != nil {
		home := f.Score.Home
		away := f.Score.Away
		out.HomeScore = &home
		out.AwayScore = &away
	}
	return out
}

// EnrichUpcomingAll enriches a whole list against a single instant.
func EnrichUpcomingAll(fixtures []Fixture, now time.Time) []Upcoming {
	out := make([]Upcoming, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, EnrichUpcoming(f, now))
	}
	return out
}

// EnrichResultAll enriches a whole list against a single instant.
func EnrichResultAll(fixtures []Fixture, now time.Time) []Result {
	out := make([]Result, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, EnrichResult(f, now))
	}
	return out
}
