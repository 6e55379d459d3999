// Package deadline computes statutory due dates for procedural acts under
// Turkish civil and administrative procedure rules.
//
// The computation is a pure function of a Request and a read-only Calendar:
// the notification day is never counted, the period is added in days,
// weeks or calendar months, a period ending in the judicial recess moves to
// the resumption date, and a last day falling on a weekend or public holiday
// rolls forward to the next business day. Every rule that fires is recorded
// as a structured Adjustment.
package deadline

import (
	"errors"
	"fmt"
	"time"
)

// Unit is the unit a procedural period is expressed in.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// ValidUnits lists the accepted units in display order.
var ValidUnits = []Unit{UnitDay, UnitWeek, UnitMonth}

var (
	ErrNonPositiveDuration  = errors.New("duration must be positive")
	ErrUnknownUnit          = errors.New("unknown duration unit")
	ErrMissingReferenceDate = errors.New("reference date is required")
)

// Request is the input of a single computation.
type Request struct {
	ReferenceDate                time.Time
	DurationValue                int
	DurationUnit                 Unit
	ApplyJudicialRecessExtension bool
}

// Validate applies the checks the engine deliberately skips. Compute accepts
// any request; callers that persist or act on a deadline validate first.
func (r Request) Validate() error {
	if r.ReferenceDate.IsZero() {
		return ErrMissingReferenceDate
	}
	if r.DurationValue <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveDuration, r.DurationValue)
	}
	switch r.DurationUnit {
	case UnitDay, UnitWeek, UnitMonth:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUnit, r.DurationUnit)
	}
}

// Engine computes deadlines against a fixed calendar. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	cal Calendar
}

// NewEngine validates cal and returns an engine bound to a private copy.
func NewEngine(cal Calendar) (*Engine, error) {
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("validating calendar: %w", err)
	}
	return &Engine{cal: cal.clone()}, nil
}

var defaultEngine = &Engine{cal: DefaultCalendar()}

// Default returns the engine for DefaultCalendar.
func Default() *Engine {
	return defaultEngine
}

// Compute runs req against DefaultCalendar.
func Compute(req Request) Result {
	return defaultEngine.Compute(req)
}

// Calendar returns a copy of the engine's calendar.
func (e *Engine) Calendar() Calendar {
	return e.cal.clone()
}

// Compute returns the final due date for req along with the trace of rules
// applied. It never fails: degenerate input yields a best-effort date no
// earlier than the day after the reference date.
func (e *Engine) Compute(req Request) Result {
	ref := DateOf(req.ReferenceDate)
	start := addDays(ref, 1)
	trace := []Adjustment{{Kind: AdjustStartOffset, From: ref, To: start}}

	base := baseDueDate(ref, start, req.DurationValue, req.DurationUnit)
	res := Result{BaseDueDate: base}

	due := base
	if req.ApplyJudicialRecessExtension && e.cal.Recess.Contains(due) {
		resume := e.cal.Recess.Resumption(due.Year())
		trace = append(trace, Adjustment{Kind: AdjustJudicialRecess, From: due, To: resume})
		due = resume
		res.JudicialRecessTriggered = true
	}

	res.FinalDueDate, res.Adjustments = e.rollForward(due, trace)
	return res
}

// baseDueDate adds the period. Days and weeks count the start date as day
// one; months are added to the reference date itself.
func baseDueDate(ref, start time.Time, value int, unit Unit) time.Time {
	if value <= 0 {
		return start
	}
	switch unit {
	case UnitDay:
		return addDays(start, value-1)
	case UnitWeek:
		return addDays(start, value*7-1)
	case UnitMonth:
		return addMonthsClamped(ref, value)
	default:
		return start
	}
}

// rollForward moves d past weekends and holidays, returning the new date and
// trace extended with one entry per condition met on each skipped day.
func (e *Engine) rollForward(d time.Time, trace []Adjustment) (time.Time, []Adjustment) {
	for {
		weekend := e.cal.IsWeekend(d)
		holiday, isHoliday := e.cal.HolidayOn(d)
		if !weekend && !isHoliday {
			return d, trace
		}

		next := addDays(d, 1)
		if weekend {
			trace = append(trace, Adjustment{Kind: AdjustWeekendRoll, From: d, To: next, Weekday: d.Weekday()})
		}
		if isHoliday {
			trace = append(trace, Adjustment{Kind: AdjustHolidayRoll, From: d, To: next, Holiday: holiday})
		}
		d = next
	}
}
