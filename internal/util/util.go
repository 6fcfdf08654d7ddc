package util

import (
	"math"
	"strings"
)

// RoundTo rounds value half away from zero to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}

	pow := math.Pow(10, float64(places))
	rounded := math.Round(value*pow) / pow
	if rounded == 0 {
		// avoid -0 in JSON output
		return 0
	}

	return rounded
}

// TrimmedOrEmpty dereferences s and trims surrounding whitespace; nil yields "".
func TrimmedOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

// IsBlank reports whether s is nil or contains only whitespace.
func IsBlank(s *string) bool {
	return TrimmedOrEmpty(s) == ""
}
