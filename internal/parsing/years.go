package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxPlausibleYears bounds years read from requirement lines and from start-year arithmetic
const MaxPlausibleYears = 50

var (
	requiredYearsPattern = regexp.MustCompile(`(\d+)(?:\+|\s*-\s*\d+)?\s*(?:years|year|yrs|yr)`)
	sinceYearPattern     = regexp.MustCompile(`since\s+(\d{4})`)
)

// levelYears maps seniority words to a years requirement, checked in order
var levelYears = []struct {
	words []string
	years int
}{
	{[]string{"entry level", "junior"}, 0},
	{[]string{"mid level", "intermediate"}, 2},
	{[]string{"senior", "experienced"}, 5},
}

// ExtractYears returns the years of experience one requirement line asks for.
// Numeric figures ("5+ years", "3-5 yrs") take the lower bound; "since YYYY" is
// converted to elapsed years relative to now. Figures outside [0, 50] are discarded,
// after which seniority words decide. Lines with no signal yield 0.
func ExtractYears(line string, now time.Time) int {
	lower := strings.ToLower(line)

	if m := requiredYearsPattern.FindStringSubmatch(lower); m != nil {
		if years, ok := plausibleYears(m[1]); ok {
			return years
		}
	}

	if m := sinceYearPattern.FindStringSubmatch(lower); m != nil {
		if since, err := strconv.Atoi(m[1]); err == nil {
			if years := now.Year() - since; years >= 0 && years <= MaxPlausibleYears {
				return years
			}
		}
	}

	for _, lv := range levelYears {
		for _, w := range lv.words {
			if strings.Contains(lower, w) {
				return lv.years
			}
		}
	}

	return 0
}

func plausibleYears(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > MaxPlausibleYears {
		return 0, false
	}
	return n, true
}
