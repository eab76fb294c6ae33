package timefmt

import (
	"fmt"
	"time"
)

// DateInputLayout is the calendar-date form used for upstream query bounds.
const DateInputLayout = "2006-01-02"

const (
	kickoffLayout  = "Mon 2 Jan 15:04"
	dateOnlyLayout = "2 Jan"
)

// FormatDateInput renders a UTC calendar date (YYYY-MM-DD) for date-range queries.
func FormatDateInput(t time.Time) string {
	return t.UTC().Format(DateInputLayout)
}

// FormatDateTime renders a kickoff label with weekday, day, month and time.
func FormatDateTime(t time.Time) string {
	return t.Format(kickoffLayout)
}

// FormatDateOnly renders a short day/month label for past results.
func FormatDateOnly(t time.Time) string {
	return t.Format(dateOnlyLayout)
}

// FormatRelativeFuture renders the time remaining until kickoff. It always
// picks the coarsest non-zero unit pairing: days+hours, hours+minutes, or
// minutes alone. Anything at or past kickoff collapses to "Kickoff passed".
func FormatRelativeFuture(diff time.Duration) string {
	if diff <= 0 {
		return "Kickoff passed"
	}

	minutes := int(diff.Minutes())
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours-days*24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes-hours*60)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// FormatRelativePast renders how long ago a result finished. Negative
// diffs (clock skew between the caller and the upstream feed) clamp to
// zero instead of producing a negative "ago" label.
func FormatRelativePast(diff time.Duration) string {
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours())/24)
	}
}
