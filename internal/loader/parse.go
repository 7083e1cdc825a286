package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/Clark-Hu/movies-dashboard/internal/dashboard"
)

// cleanString trims a text cell and maps missing markers to "".
func cleanString(raw string) string {
	s := strings.TrimSpace(raw)
	if isMissing(s) {
		return ""
	}
	return s
}

func optionalString(raw string) *string {
	s := cleanString(raw)
	if s == "" {
		return nil
	}
	return &s
}

func isMissing(s string) bool {
	for _, m := range missingValues {
		if s == m {
			return true
		}
	}
	return false
}

// parseNumber accepts plain and float notation plus thousands separators.
func parseNumber(raw string) (float64, bool) {
	s := cleanString(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Release years outside this window are treated as unparsable.
const (
	minYear = 1800
	maxYear = 3000
)

// parseYear accepts "2001" and "2001.0"; fractional or out-of-window years
// are rejected.
func parseYear(raw string) (int, bool) {
	v, ok := parseNumber(raw)
	if !ok || v != math.Trunc(v) || v < minYear || v > maxYear {
		return 0, false
	}
	return int(v), true
}

func parseRating(raw string) *float64 {
	v, ok := parseNumber(raw)
	if !ok || v < dashboard.MinRating || v > dashboard.MaxRating {
		return nil
	}
	return &v
}

// parseVotes treats anything unparsable, negative or beyond int64 as zero
// votes.
func parseVotes(raw string) int64 {
	v, ok := parseNumber(raw)
	if !ok || v < 0 || v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}

// parseDuration accepts minutes with an optional "min" suffix.
func parseDuration(raw string) *float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "min"))
	v, ok := parseNumber(s)
	if !ok || v < 0 {
		return nil
	}
	return &v
}
