package intake

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

// FormatPhone reformats arbitrary input into the (XXX) XXX-XXXX pattern,
// rendering as much of the pattern as the accumulated digits allow
// ("12345" -> "(123) 45"). Digits beyond the tenth are dropped. Applying it
// to already formatted input is a no-op.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 10 {
		d = d[:10]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// ValidPhone accepts exactly the fully formed (DDD) DDD-DDDD shape and
// nothing else.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
