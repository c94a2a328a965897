package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the YYYYMMDD form used by scoreboard query params.
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompactDate formats a time as YYYYMMDD in its current location.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// UntilKickoff returns how long until kickoff, negative once it has passed.
func UntilKickoff(kickoff, now time.Time) time.Duration {
	return kickoff.Sub(now)
}

// WithinWindow reports whether kickoff is at most window away and not yet past.
func WithinWindow(kickoff, now time.Time, window time.Duration) bool {
	d := UntilKickoff(kickoff, now)
	return d >= 0 && d <= window
}
