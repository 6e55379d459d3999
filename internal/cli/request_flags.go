package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/spf13/pflag"
)

// unitValue is a pflag.Value accepting English and Turkish unit names.
type unitValue deadline.Unit

var _ pflag.Value = (*unitValue)(nil)

func (u *unitValue) String() string { return string(*u) }
func (u *unitValue) Type() string   { return "unit" }

func (u *unitValue) Set(s string) error {
	parsed, err := deadline.ParseUnit(s)
	if err != nil {
		return err
	}
	*u = unitValue(parsed)
	return nil
}

// requestFlags are the calculation inputs shared by calc and agenda add.
type requestFlags struct {
	date     string
	value    string
	unit     unitValue
	noRecess bool
}

func newRequestFlags() *requestFlags {
	return &requestFlags{value: "15", unit: unitValue(deadline.UnitDay)}
}

func (f *requestFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", "", "Notification date (YYYY-MM-DD, default today)")
	fs.StringVar(&f.value, "value", f.value, "Period length; leading digits are used")
	fs.Var(&f.unit, "unit", "Period unit: day|week|month (gün|hafta|ay)")
	fs.BoolVar(&f.noRecess, "no-recess", false, "Do not extend periods ending in the judicial recess")
}

// changed reports whether any calculation flag was given.
func (f *requestFlags) changed(fs *pflag.FlagSet) bool {
	for _, name := range []string{"date", "value", "unit", "no-recess"} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

func (f *requestFlags) request(today time.Time) (deadline.Request, error) {
	ref := deadline.DateOf(today)
	if f.date != "" {
		d, err := deadline.ParseDate(f.date)
		if err != nil {
			return deadline.Request{}, fmt.Errorf("invalid date %q: %w", f.date, err)
		}
		ref = d
	}
	return deadline.Request{
		ReferenceDate:                ref,
		DurationValue:                deadline.ParseDurationValue(f.value),
		DurationUnit:                 deadline.Unit(f.unit),
		ApplyJudicialRecessExtension: !f.noRecess,
	}, nil
}
