package currency

import "fmt"

// Scale is the closed set of decimal scales the core understands. Every
// Price carries exactly one of these; there is no open integer exponent.
type Scale int8

// The six supported scales, named by SI prefix, in order from coarsest to
// finest. The zero value is Whole so an uninitialized Scale still names a
// real, valid scale.
const (
	Whole Scale = iota
	Centi
	Milli
	Micro
	Nano
	Pico
)

// allScales is ordered by increasing fineness (increasingly negative
// magnitude); it doubles as the "smallest built-in scale with digits >= k"
// search order used by the parser's scale inference.
var allScales = [...]Scale{Whole, Centi, Milli, Micro, Nano, Pico}

var magnitudes = map[Scale]int{
	Whole: 0,
	Centi: -2,
	Milli: -3,
	Micro: -6,
	Nano:  -9,
	Pico:  -12,
}

var names = map[Scale]string{
	Whole: "whole",
	Centi: "centi",
	Milli: "milli",
	Micro: "micro",
	Nano:  "nano",
	Pico:  "pico",
}

var byName = map[string]Scale{
	"whole": Whole,
	"centi": Centi,
	"milli": Milli,
	"micro": Micro,
	"nano":  Nano,
	"pico":  Pico,
}

// Magnitude returns the scale's power-of-ten exponent, e.g. -2 for Centi.
func (s Scale) Magnitude() int {
	return magnitudes[s]
}

// Digits returns the number of fractional digits the scale represents,
// i.e. |Magnitude()|.
func (s Scale) Digits() int {
	m := s.Magnitude()
	if m < 0 {
		return -m
	}
	return m
}

// String returns the scale's canonical lowercase token (also the shape
// wire token, see ParseScaleToken).
func (s Scale) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Scale(%d)", int8(s))
}

// IsValid reports whether s is one of the six known scales.
func (s Scale) IsValid() bool {
	_, ok := names[s]
	return ok
}

// ParseScaleToken resolves a shape scale token ("whole", "centi", ...) to a
// Scale. It fails when the token is not one of the six known tokens.
func ParseScaleToken(token string) (Scale, bool) {
	s, ok := byName[token]
	return s, ok
}

// Finer returns whichever of a, b has the more negative magnitude (i.e. the
// finer scale). Ties return a.
func Finer(a, b Scale) Scale {
	if b.Magnitude() < a.Magnitude() {
		return b
	}
	return a
}

// MinScale returns the finest scale among scales. It is associative and
// well-defined for any non-empty multiset; MinScale() with no arguments
// returns Whole as a harmless identity (callers with genuinely empty input
// should reject it before reaching here).
func MinScale(scales ...Scale) Scale {
	if len(scales) == 0 {
		return Whole
	}
	finest := scales[0]
	for _, s := range scales[1:] {
		finest = Finer(finest, s)
	}
	return finest
}

// ScaleWithAtLeastDigits returns the coarsest built-in scale whose Digits()
// is >= k, and whether such a scale exists (k <= Pico.Digits()). This is
// the parser's "smallest built-in scale S' with digits(S') >= k" rule.
func ScaleWithAtLeastDigits(k int) (Scale, bool) {
	for _, s := range allScales {
		if s.Digits() >= k {
			return s, true
		}
	}
	return Pico, false
}
