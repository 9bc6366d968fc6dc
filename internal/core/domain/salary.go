package domain

import (
	"strconv"
	"strings"
)

// ParseSalary extracts a number from free-text salary input by keeping only
// digits and decimal points. "$1,200.00" yields 1200. Empty or unparsable
// input yields nil; it never fails.
func ParseSalary(text string) *float64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	normalized := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)
	if normalized == "" {
		return nil
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &v
}
