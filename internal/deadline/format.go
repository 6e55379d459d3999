package deadline

import (
	"fmt"
	"time"
)

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

var turkishWeekdays = [...]string{
	"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
}

// MonthName returns the Turkish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return turkishMonths[m-1]
}

// WeekdayName returns the Turkish name of wd.
func WeekdayName(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return wd.String()
	}
	return turkishWeekdays[wd]
}

// FormatLong renders t the way tr-TR long dates read, e.g.
// "09 Eylül 2024 Pazartesi".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%02d %s %d %s", t.Day(), MonthName(t.Month()), t.Year(), WeekdayName(t.Weekday()))
}

// FormatShort renders t as DD.MM.YYYY.
func FormatShort(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatMonthDay renders a recurring date, e.g. "7 Eylül".
func FormatMonthDay(md MonthDay) string {
	return fmt.Sprintf("%d %s", md.Day, MonthName(md.Month))
}

// UnitLabel returns the Turkish label of u.
func UnitLabel(u Unit) string {
	switch u {
	case UnitDay:
		return "Gün"
	case UnitWeek:
		return "Hafta"
	case UnitMonth:
		return "Ay"
	default:
		return string(u)
	}
}

// FormatDuration renders a period such as "15 Gün".
func FormatDuration(value int, u Unit) string {
	return fmt.Sprintf("%d %s", value, UnitLabel(u))
}

// Note renders the explanation shown for a.
func (a Adjustment) Note() string {
	switch a.Kind {
	case AdjustStartOffset:
		return "Hesaplama tebliği izleyen günden (H+1) itibaren başlatılmıştır."
	case AdjustJudicialRecess:
		return fmt.Sprintf("Sürenin sonu adli tatile rastladığı için HMK m. 93 uyarınca %s tarihine uzatılmıştır.",
			FormatMonthDay(monthDayOf(a.To)))
	case AdjustWeekendRoll:
		return fmt.Sprintf("Sürenin son günü hafta sonuna (%s) rastladığı için ilk iş gününe uzatılmıştır.",
			WeekdayName(a.Weekday))
	case AdjustHolidayRoll:
		label := a.Holiday.MonthDay.String()
		if a.Holiday.Name != "" {
			label += ", " + a.Holiday.Name
		}
		return fmt.Sprintf("Sürenin son günü resmi tatile (%s) rastladığı için bir sonraki güne uzatılmıştır.", label)
	default:
		return ""
	}
}
