package layer

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"layercss/common"
)

// IterationCount is a positive number of animation cycles or
// IterationInfinite. Zero value means "not set" and is treated as 1.
type IterationCount int

const IterationInfinite IterationCount = -1

const infiniteName = "infinite"

// ParseIterationCount accepts positive integer or "infinite".
func ParseIterationCount(raw string) (IterationCount, error) {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, infiniteName) {
		return IterationInfinite, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("iteration count %q must be positive integer or %q: %w", raw, infiniteName, ErrValidation)
	}
	return IterationCount(n), nil
}

// String returns CSS representation, unset count is rendered as 1.
func (c IterationCount) String() string {
	switch {
	case c == IterationInfinite:
		return infiniteName
	case c <= 0:
		return "1"
	default:
		return strconv.Itoa(int(c))
	}
}

func (c IterationCount) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *IterationCount) UnmarshalText(text []byte) error {
	v, err := ParseIterationCount(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalJSON accepts both JSON numbers and strings.
func (c *IterationCount) UnmarshalJSON(data []byte) error {
	return c.UnmarshalText(bytes.Trim(data, `"`))
}

// Animation is the single timing profile shared by every layer. Durations
// are in seconds. Unset iteration count is left out of documents so it reads
// back unset.
type Animation struct {
	Duration       float64          `json:"duration" yaml:"duration"`
	Delay          float64          `json:"delay" yaml:"delay"`
	IterationCount IterationCount   `json:"iterationCount,omitempty" yaml:"iterationCount,omitempty"`
	Direction      common.Direction `json:"direction" yaml:"direction"`
	TimingFunction string           `json:"timingFunction" yaml:"timingFunction"`
}

// DefaultTimingFunction is used when profile does not specify one.
const DefaultTimingFunction = "ease"

// DefaultAnimation returns profile with every field set to what generated
// CSS would use for a missing value.
func DefaultAnimation() Animation {
	return Animation{
		IterationCount: 1,
		Direction:      common.DirectionNormal,
		TimingFunction: DefaultTimingFunction,
	}
}

// Timing returns timing function, falling back to default.
func (a Animation) Timing() string {
	if a.TimingFunction == "" {
		return DefaultTimingFunction
	}
	return a.TimingFunction
}

var (
	easingKeywords = []string{"ease", "linear", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end"}
	easingFunction = regexp.MustCompile(`^(cubic-bezier|steps|linear)\([-0-9.,%\s a-z]*\)$`)
)

// ValidTimingFunction reports whether s is an easing keyword or easing
// function call.
func ValidTimingFunction(s string) bool {
	for _, k := range easingKeywords {
		if s == k {
			return true
		}
	}
	return easingFunction.MatchString(s)
}

// Set updates one field of the profile from textual input.
func (a *Animation) Set(f AnimationField, raw string) error {
	switch f {
	case AnimationFieldDuration, AnimationFieldDelay:
		v, err := ParseNumber(f.String(), raw)
		if err != nil {
			return err
		}
		if err := checkNonNegative(f.String(), v); err != nil {
			return err
		}
		if f == AnimationFieldDuration {
			a.Duration = v
		} else {
			a.Delay = v
		}
	case AnimationFieldIterationCount:
		v, err := ParseIterationCount(raw)
		if err != nil {
			return err
		}
		a.IterationCount = v
	case AnimationFieldDirection:
		v, err := common.ParseDirection(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("direction: %w: %w", err, ErrValidation)
		}
		a.Direction = v
	case AnimationFieldTimingFunction:
		v := strings.TrimSpace(raw)
		if !ValidTimingFunction(v) {
			return fmt.Errorf("timing function %q: %w", raw, ErrValidation)
		}
		a.TimingFunction = v
	default:
		return fmt.Errorf("animation field %s: %w", f, ErrValidation)
	}
	return nil
}

// Validate checks every field of the profile. Unset iteration count and
// timing function are accepted.
func (a Animation) Validate() error {
	if err := checkNonNegative("duration", a.Duration); err != nil {
		return err
	}
	if err := checkNonNegative("delay", a.Delay); err != nil {
		return err
	}
	if a.IterationCount < IterationInfinite {
		return fmt.Errorf("iteration count %d: %w", a.IterationCount, ErrValidation)
	}
	if !a.Direction.IsValid() {
		return fmt.Errorf("direction %d: %w", a.Direction, ErrValidation)
	}
	if a.TimingFunction != "" && !ValidTimingFunction(a.TimingFunction) {
		return fmt.Errorf("timing function %q: %w", a.TimingFunction, ErrValidation)
	}
	return nil
}
