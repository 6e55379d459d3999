package deadline

import "time"

// AdjustmentKind identifies which rule changed the deadline.
type AdjustmentKind int

const (
	// AdjustStartOffset: counting starts the day after the reference date.
	AdjustStartOffset AdjustmentKind = iota + 1
	// AdjustJudicialRecess: the period ended inside the judicial recess.
	AdjustJudicialRecess
	// AdjustWeekendRoll: the last day fell on a Saturday or Sunday.
	AdjustWeekendRoll
	// AdjustHolidayRoll: the last day fell on a public holiday.
	AdjustHolidayRoll
)

func (k AdjustmentKind) String() string {
	switch k {
	case AdjustStartOffset:
		return "start_offset"
	case AdjustJudicialRecess:
		return "judicial_recess"
	case AdjustWeekendRoll:
		return "weekend_roll"
	case AdjustHolidayRoll:
		return "holiday_roll"
	default:
		return "unknown"
	}
}

// Adjustment is one entry of the rule trace. From is the date the rule
// looked at and To the date it produced. Weekday is set for weekend rolls
// and Holiday for holiday rolls.
type Adjustment struct {
	Kind    AdjustmentKind
	From    time.Time
	To      time.Time
	Weekday time.Weekday
	Holiday Holiday
}

// Result is the outcome of a deadline computation.
type Result struct {
	FinalDueDate            time.Time
	BaseDueDate             time.Time
	Adjustments             []Adjustment
	JudicialRecessTriggered bool
}

// Notes renders the adjustment trace as Turkish explanations, dropping
// repeated texts while keeping the order of first occurrence.
func (r Result) Notes() []string {
	notes := make([]string, 0, len(r.Adjustments))
	seen := make(map[string]bool, len(r.Adjustments))
	for _, a := range r.Adjustments {
		text := a.Note()
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		notes = append(notes, text)
	}
	return notes
}

// Has reports whether an adjustment of kind k was applied.
func (r Result) Has(k AdjustmentKind) bool {
	for _, a := range r.Adjustments {
		if a.Kind == k {
			return true
		}
	}
	return false
}
