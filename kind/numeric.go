package kind

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// parseFinite parses s as a numeric literal and reports whether it denotes a
// finite number. Surrounding white space is ignored. Accepted forms are
// decimal literals with an optional sign, fraction and exponent ("-1.5e3",
// ".5", "5.") and unsigned 0x/0o/0b integers. Empty strings, trailing
// garbage ("1a"), digit separators and spelled-out values ("Infinity",
// "NaN") are rejected, as are decimal literals that overflow to infinity.
func parseFinite(s string) (float64, bool) {
	t := strings.TrimFunc(s, isSpace)
	if t == "" {
		return 0, false
	}
	if len(t) > 2 && t[0] == '0' {
		base := 0
		switch t[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := t[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return 0, false
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, !math.IsInf(f, 0)
		}
	}
	for _, r := range t {
		switch {
		case r >= '0' && r <= '9', r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return 0, false
		}
	}
	// Underflow parses to zero, which is finite; overflow yields an infinity.
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, !math.IsInf(f, 0)
}

// isSpace reports whether r is white space or a line terminator in numeric
// text. NEL (U+0085) is not; the byte order mark is.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
