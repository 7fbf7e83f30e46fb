package calc

import (
	"math"
	"strconv"
	"strings"
)

// MaxDigits is the cap on entered digits, not counting the sign,
// separators or the decimal point.
const MaxDigits = 16

// Format inserts a thousands separator every three digits left of the
// decimal point. The fractional part is never grouped. Format and Parse
// are strict inverses: Parse(Format(raw)) == raw for every valid raw
// operand string, including partial entries like "0." or "-".
func Format(raw string) string {
	if raw == "" {
		return ""
	}

	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}

	intPart, frac, hasDot := strings.Cut(raw, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if hasDot {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Parse strips thousands separators, recovering the exact operand string
// that was passed to Format.
func Parse(formatted string) string {
	return strings.ReplaceAll(formatted, ",", "")
}

// FormatFloat renders a computed value as a grouped display string using
// the shortest decimal representation that round-trips through float64.
func FormatFloat(v float64) string {
	return Format(strconv.FormatFloat(v, 'f', -1, 64))
}

// Value converts a formatted display string to its float64 value.
// The empty string is the zero operand.
func Value(formatted string) float64 {
	raw := Parse(formatted)
	if raw == "" || raw == "-" || raw == "." {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// HexString renders the truncated integer part of v as an uppercase
// hexadecimal string with an 0x prefix. Negative values keep a leading
// minus sign outside the prefix.
func HexString(v float64) string {
	n := int64(math.Trunc(v))
	if n < 0 {
		return "-0x" + strings.ToUpper(strconv.FormatInt(-n, 16))
	}
	return "0x" + strings.ToUpper(strconv.FormatInt(n, 16))
}

// digitCount returns the number of decimal digits in a raw operand string.
func digitCount(raw string) int {
	n := 0
	for _, c := range raw {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
