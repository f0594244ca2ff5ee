package projection

import (
	"fmt"
	"math"
	"time"

	errorvalues "github.com/limbo/coachplan/internal/error_values"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date. The result is a date-only
// value at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", errorvalues.ErrInvalidDate, s)
	}
	return t, nil
}

// DateOnly drops the time of day, keeping the calendar date as seen in t's
// location, and returns it at UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the number of calendar days from `from` to `to`. Both are
// stripped to dates first, so the result is exact and DST-proof.
func DaysBetween(from, to time.Time) int {
	diff := DateOnly(to).Sub(DateOnly(from)).Hours() / 24
	return int(math.Ceil(diff))
}

func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
