// Package dateutil provides local-calendar date helpers for weekly
// scheduling. All arithmetic uses the machine's local calendar, never
// UTC-shifted math, so dates do not drift by a day for users in non-UTC
// timezones (or across DST transitions).
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the wire format for local dates.
const Layout = "2006-01-02"

// FormatLocal renders t as "YYYY-MM-DD" using its local calendar fields.
func FormatLocal(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseLocal parses "YYYY-MM-DD" into local midnight of that day. A
// malformed or empty string yields local midnight of the Unix epoch rather
// than an error, so bad input never propagates NaN-like dates into
// scheduling.
func ParseLocal(s string) time.Time {
	parts := strings.Split(s, "-")
	if len(parts) == 3 {
		y, errY := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		d, errD := strconv.Atoi(parts[2])
		if errY == nil && errM == nil && errD == nil && y > 0 && m >= 1 && m <= 12 && d >= 1 && d <= 31 {
			return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
		}
	}
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.Local)
}

// StartOfWeek returns Monday at local midnight of t's week. Sunday counts
// as the end of the previous week (shifts back six days).
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday()) // Sun=0..Sat=6
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d+diff, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by n local calendar days, handling month and year
// rollover via date normalization instead of duration arithmetic.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
