// Bracketed pseudo-list decoding. The input dataset stores list-valued fields
// as display-formatted text such as ['boil water', 'steep leaves']. The decode
// is deliberately lossy: one bracket stripped per side, split on every comma,
// one quote character stripped per element side. Embedded commas or quotes
// inside an element are not recoverable and are not attempted.
package csvfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dukaforge/ladle/pkg/types"
)

// DecodeStringList decodes a bracketed pseudo-list into its elements in split
// order. Empty elements are preserved, so "[]" yields a single empty string.
// It never fails: input that does not look like a list comes back as one
// element.
func DecodeStringList(raw string) []string {
	parts := strings.Split(trimBrackets(raw), ",")
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = trimQuotes(strings.TrimSpace(part))
	}
	return out
}

// DecodeFloatList decodes a bracketed comma-separated numeric list. Any
// element that does not parse as a decimal number fails the whole field with
// ErrMalformedNumber.
func DecodeFloatList(raw string) ([]float64, error) {
	parts := strings.Split(trimBrackets(raw), ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d of %q", types.ErrMalformedNumber, i, raw)
		}
		out[i] = f
	}
	return out, nil
}

// trimBrackets strips one leading and one trailing bracket character, each
// only if present.
func trimBrackets(s string) string {
	if len(s) > 0 && (s[0] == '[' || s[0] == ']') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '[' || s[len(s)-1] == ']') {
		s = s[:len(s)-1]
	}
	return s
}

// trimQuotes strips one leading and one trailing single- or double-quote
// character, each only if present. The two sides are independent; no matching
// pair is required.
func trimQuotes(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}
