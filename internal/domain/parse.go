package domain

import (
	"regexp"
	"strconv"
)

var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+(\.\d+)?)\s*hour`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*minute`)
	digitsPattern  = regexp.MustCompile(`\d+`)
)

// ParseDuration converts catalog text such as "2 hours 30 minutes" to hours.
// Either component may be missing; unparseable text yields 0.
func ParseDuration(text string) float64 {
	if text == "" {
		return 0
	}

	total := 0.0
	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		if h, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += h
		}
	}
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		if mins, err := strconv.Atoi(m[1]); err == nil {
			total += float64(mins) / 60
		}
	}

	return total
}

// ParseFee extracts the first run of digits from fee text ("Rs. 150 only" -> 150).
func ParseFee(text string) int {
	m := digitsPattern.FindString(text)
	if m == "" {
		return 0
	}

	fee, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return fee
}
