package svg

import (
	"math"
	"strconv"
	"strings"
)

// NumberFormatter converts coordinates and lengths to their textual form.
// Implementations must be locale independent and render NaN and the
// infinities as NaN, Infinity and -Infinity.
type NumberFormatter interface {
	Format(v float64) string
}

// ShortestFormatter produces the shortest decimal string that parses
// back to the same float64. Magnitudes in [1e-6, 1e21) are written
// positionally, others in exponent form (1e+21, 5e-324). Negative zero
// is written as 0. This is the default formatter.
type ShortestFormatter struct{}

// Format implements NumberFormatter.
func (ShortestFormatter) Format(v float64) string {
	if s, ok := specialNumber(v); ok {
		return s
	}
	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	// strconv pads exponents to two digits; drop the padding.
	if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+3 && s[i+2] == '0' {
		s = s[:i+2] + s[i+3:]
	}
	return s
}

// FixedFormatter rounds to at most Places decimal places and trims
// trailing zeros. Negative Places is treated as zero.
type FixedFormatter struct {
	Places int
}

// Format implements NumberFormatter.
func (f FixedFormatter) Format(v float64) string {
	if s, ok := specialNumber(v); ok {
		return s
	}
	s := strconv.FormatFloat(v, 'f', max(f.Places, 0), 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

func specialNumber(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	case v == 0:
		return "0", true
	}
	return "", false
}
