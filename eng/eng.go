// Package eng formats and parses numeric magnitudes in engineering
// notation with SPICE-style suffixes (f p n u m k Meg G T).
package eng

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadNumber = errors.New("bad engineering number")

var suffixScale = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"Meg": 1e6,
	"meg": 1e6,
	"MEG": 1e6,
	"K":   1e3,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

// Format renders value with the largest suffix that leaves a mantissa
// in [1,1000). Values outside the suffix table fall back to
// exponential notation. The mantissa is rescaled on the decimal text,
// not in floating point, so short inputs stay short (3300 -> "3.3k").
func Format(value float64) string {
	if value == 0 {
		return "0"
	}
	sci := strconv.FormatFloat(value, 'e', -1, 64)
	mant, exp := splitExp(sci)
	e := exp / 3
	if exp < 0 && exp%3 != 0 {
		e--
	}
	var suffix string
	switch {
	case e == 0:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case e >= -5 && e < 0:
		suffix = [...]string{"f", "p", "n", "u", "m"}[e+5]
	case e == 1:
		suffix = "k"
	case e == 2:
		suffix = "Meg"
	case e == 3:
		suffix = "G"
	case e == 4:
		suffix = "T"
	default:
		return strconv.FormatFloat(value, 'E', 6, 64)
	}
	return shiftPoint(mant, exp-3*e) + suffix
}

// splitExp takes strconv's 'e' output ("-4.7e-09") apart.
func splitExp(sci string) (mant string, exp int) {
	i := strings.IndexByte(sci, 'e')
	mant = sci[:i]
	exp, _ = strconv.Atoi(sci[i+1:])
	return mant, exp
}

// shiftPoint moves the decimal point of a d.ddd mantissa right by
// shift places (0..2), padding with zeros as needed.
func shiftPoint(mant string, shift int) string {
	sign := ""
	if strings.HasPrefix(mant, "-") {
		sign = "-"
		mant = mant[1:]
	}
	digits := strings.Replace(mant, ".", "", 1)
	intLen := 1 + shift
	for len(digits) < intLen {
		digits += "0"
	}
	frac := strings.TrimRight(digits[intLen:], "0")
	if frac == "" {
		return sign + digits[:intLen]
	}
	return sign + digits[:intLen] + "." + frac
}

// FormatValue renders value for a token: numeric kinds go through
// Format, strings pass verbatim.
func FormatValue(value any) (string, error) {
	switch x := value.(type) {
	case string:
		return x, nil
	case int:
		return Format(float64(x)), nil
	case int64:
		return Format(float64(x)), nil
	case float64:
		return Format(x), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrBadNumber, value)
	}
}

// Parse reads a number with an optional engineering suffix. Trailing
// unit text after the suffix is not accepted.
func Parse(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadNumber)
	}
	end := numberEnd(v)
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, v)
	}
	mantissa, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, v)
	}
	suffix := v[end:]
	if suffix == "" {
		return mantissa, nil
	}
	scale, ok := suffixScale[suffix]
	if !ok {
		return 0, fmt.Errorf("%w: unknown suffix %q in %q", ErrBadNumber, suffix, v)
	}
	return mantissa * scale, nil
}

func numberEnd(v string) int {
	i := 0
	if v[i] == '+' || v[i] == '-' {
		i++
	}
	seenDigit := false
	for i < len(v) {
		c := v[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.':
		case (c == 'e' || c == 'E') && seenDigit && i+1 < len(v) &&
			(v[i+1] == '+' || v[i+1] == '-' || (v[i+1] >= '0' && v[i+1] <= '9')):
			// exponent, consume sign too
			i++
			if v[i] == '+' || v[i] == '-' {
				i++
			}
			continue
		default:
			if !seenDigit {
				return 0
			}
			return i
		}
		i++
	}
	if !seenDigit {
		return 0
	}
	return i
}
