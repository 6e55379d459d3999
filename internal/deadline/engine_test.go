package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(r Result) []AdjustmentKind {
	out := make([]AdjustmentKind, 0, len(r.Adjustments))
	for _, a := range r.Adjustments {
		out = append(out, a.Kind)
	}
	return out
}

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		value     int
		unit      Unit
		recess    bool
		wantBase  time.Time
		wantFinal time.Time
		wantKinds []AdjustmentKind
	}{
		{
			name: "15 days before recess window",
			ref:  Date(2024, 7, 1), value: 15, unit: UnitDay, recess: true,
			wantBase:  Date(2024, 7, 16),
			wantFinal: Date(2024, 7, 16),
			wantKinds: []AdjustmentKind{AdjustStartOffset},
		},
		{
			name: "ends in recess, 7 September is a Saturday",
			ref:  Date(2024, 8, 10), value: 10, unit: UnitDay, recess: true,
			wantBase:  Date(2024, 8, 20),
			wantFinal: Date(2024, 9, 9),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustJudicialRecess, AdjustWeekendRoll, AdjustWeekendRoll},
		},
		{
			name: "ends in recess but extension off",
			ref:  Date(2024, 8, 10), value: 10, unit: UnitDay, recess: false,
			wantBase:  Date(2024, 8, 20),
			wantFinal: Date(2024, 8, 20),
			wantKinds: []AdjustmentKind{AdjustStartOffset},
		},
		{
			name: "15 days from a Monday",
			ref:  Date(2024, 3, 4), value: 15, unit: UnitDay,
			wantBase:  Date(2024, 3, 19),
			wantFinal: Date(2024, 3, 19),
			wantKinds: []AdjustmentKind{AdjustStartOffset},
		},
		{
			name: "lands on Saturday rolls to Monday",
			ref:  Date(2024, 3, 4), value: 5, unit: UnitDay,
			wantBase:  Date(2024, 3, 9),
			wantFinal: Date(2024, 3, 11),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustWeekendRoll, AdjustWeekendRoll},
		},
		{
			name: "two weeks",
			ref:  Date(2024, 3, 4), value: 2, unit: UnitWeek,
			wantBase:  Date(2024, 3, 18),
			wantFinal: Date(2024, 3, 18),
			wantKinds: []AdjustmentKind{AdjustStartOffset},
		},
		{
			name: "republic day on a weekday",
			ref:  Date(2024, 10, 28), value: 1, unit: UnitDay,
			wantBase:  Date(2024, 10, 29),
			wantFinal: Date(2024, 10, 30),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustHolidayRoll},
		},
		{
			name: "holiday on a Sunday records both conditions",
			ref:  Date(2023, 4, 21), value: 1, unit: UnitDay,
			wantBase:  Date(2023, 4, 22),
			wantFinal: Date(2023, 4, 24),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustWeekendRoll, AdjustWeekendRoll, AdjustHolidayRoll},
		},
		{
			name: "new year across the year boundary",
			ref:  Date(2024, 12, 31), value: 1, unit: UnitDay,
			wantBase:  Date(2025, 1, 1),
			wantFinal: Date(2025, 1, 2),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustHolidayRoll},
		},
		{
			name: "victory day then weekend without recess",
			ref:  Date(2024, 8, 29), value: 1, unit: UnitDay,
			wantBase:  Date(2024, 8, 30),
			wantFinal: Date(2024, 9, 2),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustHolidayRoll, AdjustWeekendRoll, AdjustWeekendRoll},
		},
		{
			name: "month lands in recess",
			ref:  Date(2024, 6, 25), value: 1, unit: UnitMonth, recess: true,
			wantBase:  Date(2024, 7, 25),
			wantFinal: Date(2024, 9, 9),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustJudicialRecess, AdjustWeekendRoll, AdjustWeekendRoll},
		},
		{
			name: "resumption on a Sunday in 2025",
			ref:  Date(2025, 8, 1), value: 10, unit: UnitDay, recess: true,
			wantBase:  Date(2025, 8, 11),
			wantFinal: Date(2025, 9, 8),
			wantKinds: []AdjustmentKind{AdjustStartOffset, AdjustJudicialRecess, AdjustWeekendRoll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(Request{
				ReferenceDate:                tt.ref,
				DurationValue:                tt.value,
				DurationUnit:                 tt.unit,
				ApplyJudicialRecessExtension: tt.recess,
			})
			assert.Equal(t, tt.wantBase, res.BaseDueDate, "base due date")
			assert.Equal(t, tt.wantFinal, res.FinalDueDate, "final due date")
			assert.Equal(t, tt.wantKinds, kinds(res))
			assert.Equal(t, res.Has(AdjustJudicialRecess), res.JudicialRecessTriggered)
		})
	}
}

func TestCompute_RecessScenarioNotes(t *testing.T) {
	res := Compute(Request{
		ReferenceDate:                Date(2024, 8, 10),
		DurationValue:                10,
		DurationUnit:                 UnitDay,
		ApplyJudicialRecessExtension: true,
	})

	require.True(t, res.JudicialRecessTriggered)
	assert.Equal(t, []string{
		"Hesaplama tebliği izleyen günden (H+1) itibaren başlatılmıştır.",
		"Sürenin sonu adli tatile rastladığı için HMK m. 93 uyarınca 7 Eylül tarihine uzatılmıştır.",
		"Sürenin son günü hafta sonuna (Cumartesi) rastladığı için ilk iş gününe uzatılmıştır.",
		"Sürenin son günü hafta sonuna (Pazar) rastladığı için ilk iş gününe uzatılmıştır.",
	}, res.Notes())
	assert.Equal(t, "09 Eylül 2024 Pazartesi", FormatLong(res.FinalDueDate))
}

func TestCompute_MonthClampsToLastDay(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		months   int
		wantBase time.Time
	}{
		{"jan 31 non-leap", Date(2023, 1, 31), 1, Date(2023, 2, 28)},
		{"jan 31 leap", Date(2024, 1, 31), 1, Date(2024, 2, 29)},
		{"mar 31 to april", Date(2024, 3, 31), 1, Date(2024, 4, 30)},
		{"leap day plus a year", Date(2024, 2, 29), 12, Date(2025, 2, 28)},
		{"mid month keeps day", Date(2024, 3, 15), 2, Date(2024, 5, 15)},
		{"crosses year", Date(2024, 11, 30), 3, Date(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(Request{ReferenceDate: tt.ref, DurationValue: tt.months, DurationUnit: UnitMonth})
			assert.Equal(t, tt.wantBase, res.BaseDueDate)
		})
	}
}

func TestCompute_MonthBypassesStartOffset(t *testing.T) {
	// Day counting from the 15th gives the 15th plus one; month counting
	// lands on the same day-of-month as the reference date.
	res := Compute(Request{ReferenceDate: Date(2024, 3, 15), DurationValue: 1, DurationUnit: UnitMonth})
	assert.Equal(t, Date(2024, 4, 15), res.BaseDueDate)
	assert.True(t, res.Has(AdjustStartOffset), "start note is recorded for months too")
}

func TestCompute_RecessBoundariesInclusive(t *testing.T) {
	tests := []struct {
		name       string
		ref        time.Time
		wantRecess bool
		wantFinal  time.Time
	}{
		{"day before start", Date(2024, 7, 18), false, Date(2024, 7, 19)},
		{"first day", Date(2024, 7, 19), true, Date(2024, 9, 9)},
		{"last day", Date(2024, 8, 30), true, Date(2024, 9, 9)},
		{"day after end", Date(2024, 8, 31), false, Date(2024, 9, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(Request{
				ReferenceDate:                tt.ref,
				DurationValue:                1,
				DurationUnit:                 UnitDay,
				ApplyJudicialRecessExtension: true,
			})
			assert.Equal(t, tt.wantRecess, res.JudicialRecessTriggered)
			assert.Equal(t, tt.wantFinal, res.FinalDueDate)
		})
	}
}

func TestCompute_RecessCheckedOnlyBeforeRolling(t *testing.T) {
	// 19 July 2025 is a Saturday: the roll lands inside the window, but the
	// recess rule only looks at the unrolled date.
	res := Compute(Request{
		ReferenceDate:                Date(2025, 7, 18),
		DurationValue:                1,
		DurationUnit:                 UnitDay,
		ApplyJudicialRecessExtension: true,
	})
	assert.False(t, res.JudicialRecessTriggered)
	assert.Equal(t, Date(2025, 7, 21), res.FinalDueDate)
}

func TestCompute_DegenerateDurations(t *testing.T) {
	ref := Date(2024, 3, 4)
	for _, unit := range []Unit{UnitDay, UnitWeek, UnitMonth, Unit("fortnight")} {
		for _, value := range []int{0, -1, -30} {
			res := Compute(Request{ReferenceDate: ref, DurationValue: value, DurationUnit: unit})
			assert.Equal(t, Date(2024, 3, 5), res.FinalDueDate, "unit=%s value=%d", unit, value)
		}
	}
}

func TestCompute_UnknownUnitUsesStartDate(t *testing.T) {
	res := Compute(Request{ReferenceDate: Date(2024, 3, 4), DurationValue: 10, DurationUnit: "year"})
	assert.Equal(t, Date(2024, 3, 5), res.BaseDueDate)
}

func TestCompute_DiscardsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	withClock := time.Date(2024, 3, 4, 23, 30, 0, 0, loc)
	res := Compute(Request{ReferenceDate: withClock, DurationValue: 15, DurationUnit: UnitDay})
	assert.Equal(t, Date(2024, 3, 19), res.FinalDueDate)
}

func TestCompute_Idempotent(t *testing.T) {
	req := Request{
		ReferenceDate:                Date(2024, 8, 10),
		DurationValue:                10,
		DurationUnit:                 UnitDay,
		ApplyJudicialRecessExtension: true,
	}
	assert.Equal(t, Compute(req), Compute(req))
}

func TestEngine_CustomCalendar(t *testing.T) {
	cal := DefaultCalendar()
	cal.Holidays = append(cal.Holidays, Holiday{MonthDay{time.March, 19}, "Test Holiday"})

	eng, err := NewEngine(cal)
	require.NoError(t, err)

	res := eng.Compute(Request{ReferenceDate: Date(2024, 3, 4), DurationValue: 15, DurationUnit: UnitDay})
	assert.Equal(t, Date(2024, 3, 20), res.FinalDueDate)
	require.Len(t, res.Adjustments, 2)
	assert.Equal(t, "Test Holiday", res.Adjustments[1].Holiday.Name)

	// The engine keeps its own copy of the table.
	cal.Holidays[len(cal.Holidays)-1].MonthDay = MonthDay{time.March, 20}
	again := eng.Compute(Request{ReferenceDate: Date(2024, 3, 4), DurationValue: 15, DurationUnit: UnitDay})
	assert.Equal(t, Date(2024, 3, 20), again.FinalDueDate)
}

func TestEngine_RejectsInvalidCalendar(t *testing.T) {
	cal := DefaultCalendar()
	cal.Holidays = append(cal.Holidays, cal.Holidays[0])
	_, err := NewEngine(cal)
	assert.ErrorIs(t, err, ErrDuplicateHoliday)
}

func TestRequest_Validate(t *testing.T) {
	ok := Request{ReferenceDate: Date(2024, 1, 1), DurationValue: 1, DurationUnit: UnitDay}
	assert.NoError(t, ok.Validate())

	zero := ok
	zero.DurationValue = 0
	assert.ErrorIs(t, zero.Validate(), ErrNonPositiveDuration)

	badUnit := ok
	badUnit.DurationUnit = "year"
	assert.ErrorIs(t, badUnit.Validate(), ErrUnknownUnit)

	noDate := ok
	noDate.ReferenceDate = time.Time{}
	assert.ErrorIs(t, noDate.Validate(), ErrMissingReferenceDate)
}

func TestResult_NotesDeduplicated(t *testing.T) {
	sat := Adjustment{Kind: AdjustWeekendRoll, Weekday: time.Saturday}
	res := Result{Adjustments: []Adjustment{
		{Kind: AdjustStartOffset},
		sat,
		{Kind: AdjustWeekendRoll, Weekday: time.Sunday},
		sat,
	}}

	notes := res.Notes()
	require.Len(t, notes, 3)
	assert.Contains(t, notes[1], "Cumartesi")
	assert.Contains(t, notes[2], "Pazar")
}

func TestAdjustment_HolidayNote(t *testing.T) {
	a := Adjustment{Kind: AdjustHolidayRoll, Holiday: Holiday{MonthDay{time.October, 29}, "Cumhuriyet Bayramı"}}
	assert.Equal(t,
		"Sürenin son günü resmi tatile (10-29, Cumhuriyet Bayramı) rastladığı için bir sonraki güne uzatılmıştır.",
		a.Note())
}
