package deadline

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var turkishLower = cases.Lower(language.Turkish)

var unitAliases = map[string]Unit{
	"day": UnitDay, "days": UnitDay, "d": UnitDay, "gün": UnitDay, "gun": UnitDay,
	"week": UnitWeek, "weeks": UnitWeek, "w": UnitWeek, "hafta": UnitWeek,
	"month": UnitMonth, "months": UnitMonth, "m": UnitMonth, "ay": UnitMonth,
}

// ParseUnit maps English or Turkish unit names to a Unit.
func ParseUnit(s string) (Unit, error) {
	key := turkishLower.String(strings.TrimSpace(s))
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q (want day, week or month)", ErrUnknownUnit, s)
}

// ParseDurationValue reads an integer the permissive way form fields do:
// surrounding space is ignored, an optional sign and the leading run of
// digits are used, and anything without digits yields 0. Values beyond the
// int32 range saturate.
func ParseDurationValue(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		digits++
		if n < math.MaxInt32 {
			n = n*10 + int(r-'0')
		}
	}
	if digits == 0 {
		return 0
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	if neg {
		return -n
	}
	return n
}
