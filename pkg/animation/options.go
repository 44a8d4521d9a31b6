package animation

import (
	"fmt"
	"strings"
)

// Option is a single animation flag.
type Option uint8

const (
	// AllowInteraction keeps gesture delivery enabled while animating.
	AllowInteraction Option = iota
	// BeginFromCurrentState starts a new transition from the in-flight
	// presentation value instead of the last committed value.
	BeginFromCurrentState
	// Repeat restarts the transition indefinitely.
	Repeat
	// Autoreverse plays each cycle forward and then backward.
	Autoreverse
	// CurveEaseInOut selects [EaseInOut].
	CurveEaseInOut
	// CurveEaseIn selects [EaseIn].
	CurveEaseIn
	// CurveEaseOut selects [EaseOut].
	CurveEaseOut
	// CurveLinear selects [LinearCurve].
	CurveLinear

	optionCount
)

var optionNames = [...]string{
	AllowInteraction:      "allowInteraction",
	BeginFromCurrentState: "beginFromCurrentState",
	Repeat:                "repeat",
	Autoreverse:           "autoreverse",
	CurveEaseInOut:        "easeInOut",
	CurveEaseIn:           "easeIn",
	CurveEaseOut:          "easeOut",
	CurveLinear:           "linear",
}

// String returns the flag's name.
func (o Option) String() string {
	if o < optionCount {
		return optionNames[o]
	}
	return fmt.Sprintf("Option(%d)", int(o))
}

// Options is a set of independent Option flags. The zero value is empty.
//
// Combining sets is always a union; flags are only removed through
// [Options.Without] or by assigning a whole new set.
type Options uint32

// NewOptions returns the set containing opts.
func NewOptions(opts ...Option) Options {
	return Options(0).With(opts...)
}

// With returns the union of s and opts.
func (s Options) With(opts ...Option) Options {
	for _, o := range opts {
		if o < optionCount {
			s |= 1 << o
		}
	}
	return s
}

// Union returns s | other.
func (s Options) Union(other Options) Options {
	return s | other
}

// Without returns s with opts removed.
func (s Options) Without(opts ...Option) Options {
	for _, o := range opts {
		if o < optionCount {
			s &^= 1 << o
		}
	}
	return s
}

// Has reports whether o is in the set.
func (s Options) Has(o Option) bool {
	return o < optionCount && s&(1<<o) != 0
}

// List returns the flags in declaration order.
func (s Options) List() []Option {
	var out []Option
	for o := Option(0); o < optionCount; o++ {
		if s.Has(o) {
			out = append(out, o)
		}
	}
	return out
}

// Curve returns the easing function selected by the set. When several curve
// flags are present the precedence is linear, easeIn, easeOut, easeInOut;
// with none the curve is [EaseInOut].
func (s Options) Curve() func(float64) float64 {
	switch {
	case s.Has(CurveLinear):
		return LinearCurve
	case s.Has(CurveEaseIn):
		return EaseIn
	case s.Has(CurveEaseOut):
		return EaseOut
	default:
		return EaseInOut
	}
}

// String formats the set as flag names joined by "|".
func (s Options) String() string {
	list := s.List()
	if len(list) == 0 {
		return "none"
	}
	names := make([]string, len(list))
	for i, o := range list {
		names[i] = o.String()
	}
	return strings.Join(names, "|")
}

// ParseOptions parses the String form. Names are case-insensitive and may
// be separated by "|", "," or spaces.
func ParseOptions(text string) (Options, error) {
	var s Options
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})
	for _, f := range fields {
		if strings.EqualFold(f, "none") {
			continue
		}
		found := false
		for o := Option(0); o < optionCount; o++ {
			if strings.EqualFold(f, optionNames[o]) {
				s = s.With(o)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("animation: unknown option %q", f)
		}
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Options) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Options) UnmarshalText(text []byte) error {
	parsed, err := ParseOptions(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Decode implements envconfig.Decoder.
func (s *Options) Decode(value string) error {
	return s.UnmarshalText([]byte(value))
}
