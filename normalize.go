package numfmt

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize coerces loosely formatted numeric input into a canonical float64.
// It accepts numbers of any Go numeric kind, textual values with mixed
// thousands/decimal separators and currency decorations, and nil. The second
// return value reports whether a finite value could be extracted; NaN and
// infinities never pass through.
//
// Separator handling: when both "." and "," appear, the one occurring last is
// the decimal separator and every earlier separator is grouping. A lone
// separator followed by exactly three digits is read as grouping, so "1,234"
// yields 1234 even when the writer meant 1.234. That ambiguity is inherent to
// the input, not resolvable here.
func Normalize(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		return normalizeText(string(v))
	case string:
		return normalizeText(v)
	}
	return 0, false
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func normalizeText(text string) (float64, bool) {
	stripped := stripNonNumeric(text)
	if stripped == "" {
		return 0, false
	}

	canonical := canonicalize(stripped)

	parsed, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		return 0, false
	}
	return finite(parsed)
}

// stripNonNumeric keeps digits, separators, and the minus sign; currency
// symbols, spaces, and locale words all fall away here.
func stripNonNumeric(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',' || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalize rewrites a stripped numeric string into a plain base-10
// float literal with "." as the only separator.
func canonicalize(stripped string) string {
	sep := decimalSeparator(stripped)
	if sep < 0 {
		return dropSeparators(stripped)
	}
	return dropSeparators(stripped[:sep]) + "." + stripped[sep+1:]
}

// decimalSeparator returns the index of the decimal separator in stripped,
// or -1 when every separator is grouping. The later of the last "." and the
// last "," wins. When only one separator kind is present, exactly three
// trailing digits demote it to grouping, which is how "1,234" ends up as a
// thousand-grouped integer.
func decimalSeparator(stripped string) int {
	lastDot := strings.LastIndexByte(stripped, '.')
	lastComma := strings.LastIndexByte(stripped, ',')

	if lastDot < 0 && lastComma < 0 {
		return -1
	}

	sep := lastDot
	if lastComma > lastDot {
		sep = lastComma
	}

	if (lastDot < 0 || lastComma < 0) && len(stripped)-sep-1 == 3 {
		return -1
	}
	return sep
}

func dropSeparators(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", "")
}
