package service

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultPortionGrams is the legacy fallback for simple-snack portion
// strings that carry no "(NNNg)" marker. Callers apply it themselves
// after logging the parse failure, so bad data stays visible.
const DefaultPortionGrams = 100

var portionPattern = regexp.MustCompile(`\((\d+(?:[.,]\d+)?)\s*g\)`)

// ParsePortion extracts the gram amount from a human-readable portion
// string such as "1 unidad (150g)". ok is false when the string has no
// parseable gram marker.
func ParsePortion(portion string) (grams float64, ok bool) {
	m := portionPattern.FindStringSubmatch(portion)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
