// Package duration converts between free-form duration text and decimal
// hours. Accepted input formats: "2.5" / "2,5", "2", "2h30" / "2h30m", "2h",
// "30m", and "2:30".
package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalRe   = regexp.MustCompile(`^(\d+)[.,](\d+)$`)
	hoursOnlyRe = regexp.MustCompile(`^(\d+)$`)
	hhmRe       = regexp.MustCompile(`^(\d+)h(\d+)m?$`)
	hoursRe     = regexp.MustCompile(`^(\d+)h$`)
	minutesRe   = regexp.MustCompile(`^(\d+)m$`)
	colonRe     = regexp.MustCompile(`^(\d+):(\d+)$`)
)

// Parse converts a duration string into decimal hours. The second return
// value is false when the input matches none of the supported formats.
// Parse does not enforce positivity; callers reject non-positive results.
func Parse(input string) (float64, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	if m := decimalRe.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.ParseFloat(m[1]+"."+m[2], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	if m := hoursOnlyRe.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}

	if m := hhmRe.FindStringSubmatch(trimmed); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		minutes, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}
		return float64(hours) + float64(minutes)/60, true
	}

	if m := hoursRe.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}

	if m := minutesRe.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return float64(v) / 60, true
	}

	if m := colonRe.FindStringSubmatch(trimmed); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		minutes, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}
		return float64(hours) + float64(minutes)/60, true
	}

	return 0, false
}

// Format renders decimal hours compactly: 2.5 -> "2.5h", 2 -> "2h",
// 2.25 -> "2.25h". The value is rounded to two decimal places and trailing
// zeros are trimmed.
func Format(hours float64) string {
	rounded := math.Round(hours*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "h"
}

// FormatDetailed renders decimal hours as whole hours and minutes:
// 2.5 -> "2h 30m", 0.5 -> "30m", 2 -> "2h". When rounding the minute part
// reaches 60, the overflow carries into the hour (2.999 -> "3h").
func FormatDetailed(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}

	if h == 0 {
		return strconv.Itoa(m) + "m"
	}
	if m == 0 {
		return strconv.Itoa(h) + "h"
	}
	return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
}
