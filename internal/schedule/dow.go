package schedule

import (
	"fmt"
	"unicode/utf8"

	"beeminder-dow/internal/domain"
)

// OffMarker is the character that marks a weekday as a holiday.
const OffMarker = '-'

// ParseDowPattern converts a seven-character day-of-week spec into a pattern.
//
// Length is counted in runes, so "ΔΤΤΠΠ--" is valid.
func ParseDowPattern(spec string) (domain.DowPattern, error) {
	var p domain.DowPattern
	if n := utf8.RuneCountInString(spec); n != len(p) {
		return p, fmt.Errorf("%q should be exactly %d characters long, got %d: %w",
			spec, len(p), n, domain.ErrInvalidDowPattern)
	}
	i := 0
	for _, r := range spec {
		p[i] = r != OffMarker
		i++
	}
	return p, nil
}
