// Package textutil turns arbitrary user-supplied values into clean text
// suitable for classification and display.
package textutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean converts any value into its trimmed string form. Nil, NaN, and
// unparseable values become the empty string, which is the canonical
// "no content" signal for every caller. Clean never fails.
func Clean(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeText(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return Clean(float64(t))
	default:
		return normalizeText(fmt.Sprint(t))
	}
}

// normalizeText applies NFKC normalization, drops control characters
// other than newlines and tabs, and trims surrounding whitespace.
func normalizeText(s string) string {
	normed := norm.NFKC.String(s)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return strings.TrimSpace(normed)
}
