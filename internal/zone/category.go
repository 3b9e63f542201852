// Package zone holds the pure derivations for parking-zone categories:
// display names, color assignment, feature styling and popup rendering.
// Everything in here is a deterministic function of its inputs so the
// server can recompute view state on every request without bookkeeping.
package zone

import (
	"strings"
	"unicode"
)

// DisplayName converts a raw zone identifier of the form
// "CODE = free text label" into its human-readable form: the trimmed
// code, a space, and the label with every word's first letter upper-cased.
// "E = alter Friedhof" becomes "E Alter Friedhof". A raw value without
// exactly one "=" is returned trimmed but otherwise unchanged.
func DisplayName(raw string) string {
	parts := strings.Split(raw, "=")
	if len(parts) != 2 {
		return strings.TrimSpace(raw)
	}

	code := strings.TrimSpace(parts[0])
	words := strings.Fields(parts[1])
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	if len(words) == 0 {
		return code
	}
	return code + " " + strings.Join(words, " ")
}
