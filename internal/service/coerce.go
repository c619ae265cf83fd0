package service

import (
	"alcyxob/fitvideo/internal/domain"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// CoerceInt converts a loosely typed JSON value to an integer the way a web
// form would: numbers are truncated, strings are read up to the first
// non-digit ("75kg" -> 75). It returns nil when no integer can be read,
// including numbers and digit runs outside the int range.
func CoerceInt(value interface{}) *int {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return parseIntPrefix(v)
	case float64:
		return truncateFloat(v)
	case uint64:
		if v > math.MaxInt {
			return nil
		}
	case bool:
		return nil
	}

	n, err := cast.ToIntE(value)
	if err != nil {
		return nil
	}
	return &n
}

// CoerceDetails builds UserDetails from the raw body fields.
func CoerceDetails(age, height, weight interface{}) domain.UserDetails {
	return domain.UserDetails{
		Age:    CoerceInt(age),
		Height: CoerceInt(height),
		Weight: CoerceInt(weight),
	}
}

func truncateFloat(v float64) *int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	v = math.Trunc(v)
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if v < math.MinInt || v >= math.MaxInt {
		return nil
	}
	n := int(v)
	return &n
}

func parseIntPrefix(s string) *int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}

	// Atoi fails with ErrRange on overflow, which yields nil like an
	// out-of-range float.
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
