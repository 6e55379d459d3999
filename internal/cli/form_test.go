package cli

import (
	"testing"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("15"))
	assert.NoError(t, validatePositiveInt(" 3 "))
	assert.Error(t, validatePositiveInt(""))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-2"))
	assert.Error(t, validatePositiveInt("on beş"))
}

func TestValidateOptionalDate(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2024-02-29"))
	assert.Error(t, validateOptionalDate("2023-02-29"))
	assert.Error(t, validateOptionalDate("29.02.2024"))
}

func TestCalcFormValues_Request(t *testing.T) {
	v := newCalcFormValues(testToday)
	assert.Equal(t, "2024-03-01", v.date)
	assert.NotNil(t, calcForm(v))

	req, err := v.request(testToday)
	require.NoError(t, err)
	assert.Equal(t, deadline.Request{
		ReferenceDate:                deadline.Date(2024, 3, 1),
		DurationValue:                15,
		DurationUnit:                 deadline.UnitDay,
		ApplyJudicialRecessExtension: true,
	}, req)

	v.date = ""
	v.value = "2"
	v.unit = deadline.UnitWeek
	v.recess = false
	req, err = v.request(testToday)
	require.NoError(t, err)
	assert.Equal(t, deadline.Date(2024, 3, 1), req.ReferenceDate, "blank date means today")
	assert.Equal(t, 2, req.DurationValue)
	assert.Equal(t, deadline.UnitWeek, req.DurationUnit)
	assert.False(t, req.ApplyJudicialRecessExtension)
}

func TestUnitValue(t *testing.T) {
	f := newRequestFlags()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.bind(fs)

	assert.Equal(t, "day", fs.Lookup("unit").DefValue)
	require.NoError(t, fs.Parse([]string{"--unit", "Hafta"}))
	assert.Equal(t, deadline.UnitWeek, deadline.Unit(f.unit))
	assert.True(t, f.changed(fs))

	err := fs.Set("unit", "yıl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown duration unit")
	assert.Equal(t, "unit", f.unit.Type())
}
