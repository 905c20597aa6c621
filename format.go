package keycalc

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders a result the way the calculator displays it: the
// shortest decimal that round-trips, always with a fractional part, and in
// E notation outside [1e-3, 1e7). E.g. 8 is "8.0", 1e7 is "1.0E7", and
// 0.0001 is "1.0E-4".
func FormatResult(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(x); a >= 1e-3 && a < 1e7 {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	k := strings.IndexByte(s, 'e')
	mant, exp := s[:k], s[k+1:]
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := exp[0] == '-'
	exp = strings.TrimLeft(exp[1:], "0")
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}
