package deadline

import (
	"errors"
	"fmt"
	"time"
)

// MaxHolidays bounds the size of a calendar's holiday table. Together with
// the two weekend days it guarantees that the roll-forward loop reaches a
// business day.
const MaxHolidays = 60

var (
	ErrInvalidMonthDay  = errors.New("invalid month-day")
	ErrDuplicateHoliday = errors.New("duplicate holiday")
	ErrTooManyHolidays  = errors.New("too many holidays")
	ErrInvalidRecess    = errors.New("invalid judicial recess window")
)

// MonthDay is a year-independent calendar day.
type MonthDay struct {
	Month time.Month
	Day   int
}

// String returns the month-day in MM-DD form.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// In returns the concrete date of md in the given year. A 29 February
// month-day normalizes to 1 March in non-leap years.
func (md MonthDay) In(year int) time.Time {
	return Date(year, md.Month, md.Day)
}

// Valid reports whether md names a real day in at least a leap year.
func (md MonthDay) Valid() bool {
	if md.Month < time.January || md.Month > time.December || md.Day < 1 {
		return false
	}
	return md.Day <= daysIn(2024, md.Month)
}

func (md MonthDay) before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

func monthDayOf(t time.Time) MonthDay {
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

// Holiday is a recurring public holiday observed every year on the same
// month-day.
type Holiday struct {
	MonthDay
	Name string
}

// RecessWindow is the yearly judicial recess. Start and End are inclusive;
// deadlines ending inside the window move to Resume.
type RecessWindow struct {
	Start  MonthDay
	End    MonthDay
	Resume MonthDay
}

// Contains reports whether t falls inside the window of t's own year.
func (w RecessWindow) Contains(t time.Time) bool {
	md := monthDayOf(t)
	return !md.before(w.Start) && !w.End.before(md)
}

// Bounds returns the first and last day of the window in the given year.
func (w RecessWindow) Bounds(year int) (time.Time, time.Time) {
	return w.Start.In(year), w.End.In(year)
}

// Resumption returns the date work resumes after the recess of year.
func (w RecessWindow) Resumption(year int) time.Time {
	return w.Resume.In(year)
}

// Calendar is the read-only reference data the engine consults: recurring
// holidays and the judicial recess window.
type Calendar struct {
	Holidays []Holiday
	Recess   RecessWindow
}

// DefaultCalendar returns the Turkish national holidays with fixed dates
// and the HMK art. 93 recess (20 July - 31 August, resuming 7 September).
func DefaultCalendar() Calendar {
	return Calendar{
		Holidays: []Holiday{
			{MonthDay{time.January, 1}, "Yılbaşı"},
			{MonthDay{time.April, 23}, "Ulusal Egemenlik ve Çocuk Bayramı"},
			{MonthDay{time.May, 1}, "Emek ve Dayanışma Günü"},
			{MonthDay{time.May, 19}, "Atatürk'ü Anma, Gençlik ve Spor Bayramı"},
			{MonthDay{time.July, 15}, "Demokrasi ve Milli Birlik Günü"},
			{MonthDay{time.August, 30}, "Zafer Bayramı"},
			{MonthDay{time.October, 29}, "Cumhuriyet Bayramı"},
		},
		Recess: RecessWindow{
			Start:  MonthDay{time.July, 20},
			End:    MonthDay{time.August, 31},
			Resume: MonthDay{time.September, 7},
		},
	}
}

// Validate checks the holiday table and recess window.
func (c Calendar) Validate() error {
	if len(c.Holidays) > MaxHolidays {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyHolidays, len(c.Holidays), MaxHolidays)
	}
	seen := make(map[MonthDay]bool, len(c.Holidays))
	for _, h := range c.Holidays {
		if !h.Valid() {
			return fmt.Errorf("holiday %q: %w: %s", h.Name, ErrInvalidMonthDay, h.MonthDay)
		}
		if seen[h.MonthDay] {
			return fmt.Errorf("%w: %s", ErrDuplicateHoliday, h.MonthDay)
		}
		seen[h.MonthDay] = true
	}

	w := c.Recess
	if !w.Start.Valid() || !w.End.Valid() || !w.Resume.Valid() {
		return fmt.Errorf("%w: %s..%s resume %s", ErrInvalidRecess, w.Start, w.End, w.Resume)
	}
	if w.End.before(w.Start) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidRecess, w.End, w.Start)
	}
	if !w.End.before(w.Resume) {
		return fmt.Errorf("%w: resumption %s not after end %s", ErrInvalidRecess, w.Resume, w.End)
	}
	return nil
}

// HolidayOn returns the holiday observed on t's month-day, if any.
func (c Calendar) HolidayOn(t time.Time) (Holiday, bool) {
	md := monthDayOf(t)
	for _, h := range c.Holidays {
		if h.MonthDay == md {
			return h, true
		}
	}
	return Holiday{}, false
}

// IsWeekend reports whether t is a Saturday or Sunday.
func (c Calendar) IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether a deadline may end on t.
func (c Calendar) IsBusinessDay(t time.Time) bool {
	if c.IsWeekend(t) {
		return false
	}
	_, holiday := c.HolidayOn(t)
	return !holiday
}

func (c Calendar) clone() Calendar {
	out := c
	out.Holidays = append([]Holiday(nil), c.Holidays...)
	return out
}
