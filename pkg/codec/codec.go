// Package codec turns entity records into single delimited store lines and
// back. Free-text fields must be sanitized at input capture so a field can
// never grow an extra separator; the decoders rely on that contract.
package codec

import (
	"strconv"
	"strings"
)

// Separator joins record fields on a store line.
const Separator = ","

// substitute replaces reserved characters in free-text input.
const substitute = ";"

// Sanitize rewrites the reserved characters of the store format. It is
// applied to every free-text value at the point of input capture.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, ",", substitute)
	return strings.ReplaceAll(s, "|", substitute)
}

// Join encodes one record's fields as a store line.
func Join(fields ...string) string {
	return strings.Join(fields, Separator)
}

// Split cuts a store line into exactly n fields; the final field keeps any
// remaining text untouched. ok is false when the line holds fewer than n-1
// separators, in which case the loaders skip the line.
func Split(line string, n int) ([]string, bool) {
	parts := strings.SplitN(line, Separator, n)
	if len(parts) < n {
		return nil, false
	}
	return parts, true
}

// Float parses a numeric token, yielding 0 on any token that does not
// parse. Loading never aborts over a bad number.
func Float(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Int parses an integer token, yielding 0 on failure.
func Int(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// Bool decodes the stored boolean form: "1" is true, anything else false.
func Bool(s string) bool {
	return strings.TrimSpace(s) == "1"
}

// FormatFloat encodes a float in the shortest form that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatBool encodes a boolean as "1" or "0".
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
