package deadline

import (
	"fmt"
	"time"
)

// DateLayout is the ISO form accepted for reference dates.
const DateLayout = "2006-01-02"

// Date returns midnight UTC of the given civil date. Out-of-range values
// normalize the way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time-of-day and location of t, keeping the civil date
// as seen in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today returns the current civil date in the local time zone.
func Today() time.Time {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD reference date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// addMonthsClamped adds n calendar months, keeping the day-of-month unless
// the target month is shorter, in which case the last day of that month is
// used.
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(total - floorDiv(total, 12)*12 + 1)
	if last := daysIn(ty, tm); d > last {
		d = last
	}
	return Date(ty, tm, d)
}

func daysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
