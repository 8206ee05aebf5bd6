package dates

import (
	"strings"
	"time"
)

// NotAvailable is printed in place of a date that was never found.
const NotAvailable = "N/A"

// Parse attempts to parse a mined date token into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Supports formats: "2015-03-10", "2015/03/10"
func Parse(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}

	// Try "2015-03-10" format
	t, err := time.Parse("2006-01-02", text)
	if err == nil {
		return t
	}

	// Try "2015/03/10" format
	t, err = time.Parse("2006/01/02", text)
	if err == nil {
		return t
	}

	// Could not parse, return zero time
	return time.Time{}
}

// Format renders a date as YYYY-MM-DD, or the NotAvailable marker for a
// missing (zero) date.
func Format(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format("2006-01-02")
}

// DiffDays returns the absolute whole-day difference between two dates.
// The second return value is false when either date is missing, in which
// case the difference is not computable.
func DiffDays(a, b time.Time) (int, bool) {
	if a.IsZero() || b.IsZero() {
		return 0, false
	}
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24), true
}
