package deadline

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// calendarFile is the on-disk form of a Calendar:
//
//	holidays:
//	  - date: "10-29"
//	    name: Cumhuriyet Bayramı
//	recess:
//	  start: "07-20"
//	  end: "08-31"
//	  resume: "09-07"
//
// An omitted section keeps the default.
type calendarFile struct {
	Holidays []struct {
		Date string `yaml:"date"`
		Name string `yaml:"name"`
	} `yaml:"holidays"`
	Recess *struct {
		Start  string `yaml:"start"`
		End    string `yaml:"end"`
		Resume string `yaml:"resume"`
	} `yaml:"recess"`
}

// LoadCalendar reads a YAML calendar file and validates it.
func LoadCalendar(path string) (Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Calendar{}, fmt.Errorf("reading calendar file: %w", err)
	}
	return ParseCalendar(data)
}

// ParseCalendar decodes YAML calendar data on top of DefaultCalendar.
func ParseCalendar(data []byte) (Calendar, error) {
	var f calendarFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Calendar{}, fmt.Errorf("decoding calendar: %w", err)
	}

	cal := DefaultCalendar()
	if f.Holidays != nil {
		cal.Holidays = make([]Holiday, 0, len(f.Holidays))
		for i, h := range f.Holidays {
			md, err := ParseMonthDay(h.Date)
			if err != nil {
				return Calendar{}, fmt.Errorf("holiday %d: %w", i+1, err)
			}
			cal.Holidays = append(cal.Holidays, Holiday{MonthDay: md, Name: h.Name})
		}
	}
	if f.Recess != nil {
		var err error
		if cal.Recess.Start, err = ParseMonthDay(f.Recess.Start); err != nil {
			return Calendar{}, fmt.Errorf("recess start: %w", err)
		}
		if cal.Recess.End, err = ParseMonthDay(f.Recess.End); err != nil {
			return Calendar{}, fmt.Errorf("recess end: %w", err)
		}
		if cal.Recess.Resume, err = ParseMonthDay(f.Recess.Resume); err != nil {
			return Calendar{}, fmt.Errorf("recess resume: %w", err)
		}
	}

	if err := cal.Validate(); err != nil {
		return Calendar{}, err
	}
	return cal, nil
}

// ParseMonthDay parses an "MM-DD" month-day.
func ParseMonthDay(s string) (MonthDay, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return MonthDay{}, fmt.Errorf("%w: %q (want MM-DD)", ErrInvalidMonthDay, s)
	}
	m, errM := strconv.Atoi(parts[0])
	d, errD := strconv.Atoi(parts[1])
	if errM != nil || errD != nil {
		return MonthDay{}, fmt.Errorf("%w: %q (want MM-DD)", ErrInvalidMonthDay, s)
	}
	md := MonthDay{Month: time.Month(m), Day: d}
	if !md.Valid() {
		return MonthDay{}, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	return md, nil
}
