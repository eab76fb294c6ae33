package match

import (
	"sort"
	"time"
)

const (
	// UrgentWindow bounds how close a kickoff must be to count as urgent.
	UrgentWindow = 24 * time.Hour
	// WeekWindow bounds the "this week" upcoming counter.
	WeekWindow = 7 * 24 * time.Hour
)

// SortUpcoming orders scheduled matches by ascending kickoff, in place.
// Equal kickoffs keep their input order.
func SortUpcoming(items []Upcoming) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].KickoffAt.Before(items[j].KickoffAt)
	})
}

// SortResults orders finished matches by descending kickoff, in place.
// Equal kickoffs keep their input order.
func SortResults(items []Result) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].KickoffAt.After(items[j].KickoffAt)
	})
}

// GroupUpcomingByCompetition partitions matches by competition code,
// preserving each group's relative order. Items with an empty code are
// silently excluded; the dashboard only renders tracked competitions.
func GroupUpcomingByCompetition(items []Upcoming) map[string][]Upcoming {
	groups := make(map[string][]Upcoming)
	for _, item := range items {
		if item.CompetitionCode == "" {
			continue
		}
		groups[item.CompetitionCode] = append(groups[item.CompetitionCode], item)
	}
	return groups
}

// GroupResultsByCompetition partitions results by competition code with the
// same empty-code exclusion as GroupUpcomingByCompetition.
func GroupResultsByCompetition(items []Result) map[string][]Result {
	groups := make(map[string][]Result)
	for _, item := range items {
		if item.CompetitionCode == "" {
			continue
		}
		groups[item.CompetitionCode] = append(groups[item.CompetitionCode], item)
	}
	return groups
}

// CountWithin counts matches kicking off inside [now, now+window]. Matches
// whose kickoff already passed are never counted.
func CountWithin(items []Upcoming, now time.Time, window time.Duration) int {
	count := 0
	for _, item := range items {
		diff := item.KickoffAt.Sub(now)
		if diff >= 0 && diff <= window {
			count++
		}
	}
	return count
}

// FilterWithin returns the matches kicking off inside [now, now+window],
// preserving input order.
func FilterWithin(items []Upcoming, now time.Time, window time.Duration) []Upcoming {
	out := make([]Upcoming, 0, len(items))
	for _, item := range items {
		diff := item.KickoffAt.Sub(now)
		if diff >= 0 && diff <= window {
			out = append(out, item)
		}
	}
	return out
}

// DistinctCompetitions counts the distinct non-empty competition codes.
func DistinctCompetitions(items []Upcoming) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.CompetitionCode == "" {
			continue
		}
		seen[item.CompetitionCode] = struct{}{}
	}
	return len(seen)
}
