package deadline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalendar(t *testing.T) {
	cal := DefaultCalendar()
	require.NoError(t, cal.Validate())
	assert.Len(t, cal.Holidays, 7)

	h, ok := cal.HolidayOn(Date(1999, 10, 29))
	require.True(t, ok)
	assert.Equal(t, "Cumhuriyet Bayramı", h.Name)

	_, ok = cal.HolidayOn(Date(2024, 10, 28))
	assert.False(t, ok)

	assert.True(t, cal.IsWeekend(Date(2024, 9, 7)))
	assert.False(t, cal.IsBusinessDay(Date(2024, 9, 8)))
	assert.True(t, cal.IsBusinessDay(Date(2024, 9, 9)))
}

func TestRecessWindow(t *testing.T) {
	w := DefaultCalendar().Recess
	assert.False(t, w.Contains(Date(2024, 7, 19)))
	assert.True(t, w.Contains(Date(2024, 7, 20)))
	assert.True(t, w.Contains(Date(2030, 8, 31)))
	assert.False(t, w.Contains(Date(2024, 9, 1)))
	assert.Equal(t, Date(2026, 9, 7), w.Resumption(2026))

	start, end := w.Bounds(2024)
	assert.Equal(t, Date(2024, 7, 20), start)
	assert.Equal(t, Date(2024, 8, 31), end)
}

func TestCalendar_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Calendar)
		want   error
	}{
		{"bad day", func(c *Calendar) { c.Holidays[0].Day = 32 }, ErrInvalidMonthDay},
		{"bad month", func(c *Calendar) { c.Holidays[0].Month = 13 }, ErrInvalidMonthDay},
		{"duplicate", func(c *Calendar) { c.Holidays = append(c.Holidays, c.Holidays[2]) }, ErrDuplicateHoliday},
		{"too many", func(c *Calendar) {
			for i := 1; i <= MaxHolidays; i++ {
				c.Holidays = append(c.Holidays, Holiday{MonthDay: MonthDay{time.March, 1 + i%28}})
			}
		}, ErrTooManyHolidays},
		{"recess reversed", func(c *Calendar) { c.Recess.End = MonthDay{time.July, 1} }, ErrInvalidRecess},
		{"resume inside recess", func(c *Calendar) { c.Recess.Resume = MonthDay{time.August, 1} }, ErrInvalidRecess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := DefaultCalendar()
			tt.mutate(&cal)
			assert.ErrorIs(t, cal.Validate(), tt.want)
		})
	}

	leap := DefaultCalendar()
	leap.Holidays = append(leap.Holidays, Holiday{MonthDay: MonthDay{time.February, 29}})
	assert.NoError(t, leap.Validate())
}

func TestParseCalendar(t *testing.T) {
	cal, err := ParseCalendar([]byte(`
holidays:
  - date: "01-01"
    name: Yılbaşı
  - date: "03-19"
    name: Test
recess:
  start: "07-15"
  end: "08-31"
  resume: "09-10"
`))
	require.NoError(t, err)
	require.Len(t, cal.Holidays, 2)
	assert.Equal(t, MonthDay{time.March, 19}, cal.Holidays[1].MonthDay)
	assert.Equal(t, MonthDay{time.July, 15}, cal.Recess.Start)
	assert.Equal(t, MonthDay{time.September, 10}, cal.Recess.Resume)
}

func TestParseCalendar_KeepsDefaultsForMissingSections(t *testing.T) {
	cal, err := ParseCalendar([]byte("recess:\n  start: \"07-20\"\n  end: \"08-31\"\n  resume: \"09-08\"\n"))
	require.NoError(t, err)
	assert.Len(t, cal.Holidays, 7)
	assert.Equal(t, MonthDay{time.September, 8}, cal.Recess.Resume)
}

func TestParseCalendar_Errors(t *testing.T) {
	_, err := ParseCalendar([]byte("holidays:\n  - date: \"13-01\"\n"))
	assert.ErrorIs(t, err, ErrInvalidMonthDay)

	_, err = ParseCalendar([]byte("holidays: [oops"))
	assert.Error(t, err)
}

func TestLoadCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holidays:\n  - date: \"10-29\"\n    name: Cumhuriyet Bayramı\n"), 0644))

	cal, err := LoadCalendar(path)
	require.NoError(t, err)
	assert.Len(t, cal.Holidays, 1)

	_, err = LoadCalendar(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
