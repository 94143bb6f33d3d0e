// Package layer holds the visual state of composed layers: the records
// themselves, the ordered store that owns them, the shared animation profile
// and saved gradient presets.
package layer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"layercss/common"
)

// Default visual state of a freshly added layer.
const (
	DefaultBaseName      = "Base Layer"
	DefaultWidth         = 200.0
	DefaultHeight        = 200.0
	DefaultGradientAngle = 45.0
	DefaultStartColor    = "#3498db"
	DefaultEndColor      = "#e74c3c"
	DefaultShadowColor   = "#000000"
	DefaultShadowBlur    = 10.0
	DefaultStopColor     = "#ffffff"

	// cascade step for default layers and for duplicates
	cascadeOffset = 10.0
	// added stop is positioned this far after the last one
	stopStep = 10.0
)

// Transforms are the nine 3-D transform components. Translation in px,
// rotation in degrees, scale is unitless.
type Transforms struct {
	TranslateX float64 `json:"translateX" yaml:"translateX"`
	TranslateY float64 `json:"translateY" yaml:"translateY"`
	TranslateZ float64 `json:"translateZ" yaml:"translateZ"`
	ScaleX     float64 `json:"scaleX" yaml:"scaleX"`
	ScaleY     float64 `json:"scaleY" yaml:"scaleY"`
	ScaleZ     float64 `json:"scaleZ" yaml:"scaleZ"`
	RotateX    float64 `json:"rotateX" yaml:"rotateX"`
	RotateY    float64 `json:"rotateY" yaml:"rotateY"`
	RotateZ    float64 `json:"rotateZ" yaml:"rotateZ"`
}

// IdentityTransforms returns transforms which leave element untouched.
func IdentityTransforms() Transforms {
	return Transforms{ScaleX: 1, ScaleY: 1, ScaleZ: 1}
}

// Get returns value of a single component.
func (t Transforms) Get(f TransformField) float64 {
	return *t.ref(f)
}

func (t *Transforms) ref(f TransformField) *float64 {
	switch f {
	case TransformFieldTranslateX:
		return &t.TranslateX
	case TransformFieldTranslateY:
		return &t.TranslateY
	case TransformFieldTranslateZ:
		return &t.TranslateZ
	case TransformFieldScaleX:
		return &t.ScaleX
	case TransformFieldScaleY:
		return &t.ScaleY
	case TransformFieldScaleZ:
		return &t.ScaleZ
	case TransformFieldRotateX:
		return &t.RotateX
	case TransformFieldRotateY:
		return &t.RotateY
	case TransformFieldRotateZ:
		return &t.RotateZ
	default:
		// this should never happen
		panic(fmt.Sprintf("unsupported transform field %s", f))
	}
}

// ColorStop is one point along a gradient.
type ColorStop struct {
	Color    string  `json:"color" yaml:"color"`
	Alpha    float64 `json:"alpha" yaml:"alpha"`
	Position float64 `json:"position" yaml:"position"`
}

// Gradient is the layer background. Angle is only meaningful for linear
// gradients. There are always at least two stops.
type Gradient struct {
	Type  common.GradientType `json:"type" yaml:"type"`
	Angle float64             `json:"angle" yaml:"angle"`
	Stops []ColorStop         `json:"stops" yaml:"stops"`
}

// Shadow is the layer box shadow.
type Shadow struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Color   string  `json:"color" yaml:"color"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Blur    float64 `json:"blur" yaml:"blur"`
}

// Layer is one visual rectangle. Invisible layers are still present in
// generated CSS.
type Layer struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Visible    bool       `json:"visible" yaml:"visible"`
	Opacity    float64    `json:"opacity" yaml:"opacity"`
	Width      float64    `json:"width" yaml:"width"`
	Height     float64    `json:"height" yaml:"height"`
	Transforms Transforms `json:"transforms" yaml:"transforms"`
	Gradient   Gradient   `json:"gradient" yaml:"gradient"`
	Shadow     Shadow     `json:"shadow" yaml:"shadow"`
}

var errEmpty = fmt.Errorf("must not be empty: %w", ErrValidation)

// newLayer builds layer with full default state.
func newLayer(id, name string, offset, width, height float64) *Layer {
	t := IdentityTransforms()
	t.TranslateX = offset
	t.TranslateY = offset
	return &Layer{
		ID:         id,
		Name:       name,
		Visible:    true,
		Opacity:    1,
		Width:      width,
		Height:     height,
		Transforms: t,
		Gradient: Gradient{
			Type:  common.GradientTypeLinear,
			Angle: DefaultGradientAngle,
			Stops: []ColorStop{
				{Color: DefaultStartColor, Alpha: 1, Position: 0},
				{Color: DefaultEndColor, Alpha: 1, Position: 100},
			},
		},
		Shadow: Shadow{Color: DefaultShadowColor, Blur: DefaultShadowBlur},
	}
}

// Clone returns deep copy of the layer.
func (l *Layer) Clone() Layer {
	c := *l
	c.Gradient.Stops = append([]ColorStop(nil), l.Gradient.Stops...)
	return c
}

// Validate checks that every field of the layer is within its domain. All
// problems are reported, each wrapping ErrValidation.
func (l *Layer) Validate() error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if strings.TrimSpace(l.Name) == "" {
		check(fmt.Errorf("name: %w", errEmpty))
	}
	check(checkRange("opacity", l.Opacity, 0, 1))
	check(checkPositive("width", l.Width))
	check(checkPositive("height", l.Height))
	for _, f := range TransformFieldValues() {
		check(checkFinite(f.String(), l.Transforms.Get(f)))
	}
	if !l.Gradient.Type.IsValid() {
		check(fmt.Errorf("gradient type %d: %w", l.Gradient.Type, ErrValidation))
	}
	check(checkFinite("gradient angle", l.Gradient.Angle))
	if len(l.Gradient.Stops) < 2 {
		check(fmt.Errorf("gradient has %d stops, at least 2 required: %w", len(l.Gradient.Stops), ErrValidation))
	}
	for i, st := range l.Gradient.Stops {
		if _, err := ParseHexColor(st.Color); err != nil {
			check(fmt.Errorf("stop %d: %w", i, err))
		}
		check(checkRange(fmt.Sprintf("stop %d alpha", i), st.Alpha, 0, 1))
		check(checkRange(fmt.Sprintf("stop %d position", i), st.Position, 0, 100))
	}
	if _, err := ParseHexColor(l.Shadow.Color); err != nil {
		check(fmt.Errorf("shadow: %w", err))
	}
	check(checkFinite("shadow x", l.Shadow.X))
	check(checkFinite("shadow y", l.Shadow.Y))
	check(checkNonNegative("shadow blur", l.Shadow.Blur))

	return multierr.Combine(errs...)
}

// canonicalColors rewrites every color of a validated layer to "#rrggbb".
func (l *Layer) canonicalColors() {
	for i := range l.Gradient.Stops {
		if c, err := ParseHexColor(l.Gradient.Stops[i].Color); err == nil {
			l.Gradient.Stops[i].Color = c
		}
	}
	if c, err := ParseHexColor(l.Shadow.Color); err == nil {
		l.Shadow.Color = c
	}
}

// ParseHexColor accepts 6 hex digit RGB color with or without leading '#'
// and returns it in canonical "#rrggbb" form.
func ParseHexColor(s string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return "", fmt.Errorf("color %q must have 6 hex digits: %w", s, ErrValidation)
	}
	if _, err := strconv.ParseUint(v, 16, 32); err != nil {
		return "", fmt.Errorf("color %q is not hexadecimal: %w", s, ErrValidation)
	}
	return "#" + strings.ToLower(v), nil
}

// RGB decodes canonical or bare 6 hex digit color into its components.
func RGB(color string) (r, g, b uint8, err error) {
	c, err := ParseHexColor(color)
	if err != nil {
		return 0, 0, 0, err
	}
	n, _ := strconv.ParseUint(c[1:], 16, 32)
	return uint8(n >> 16), uint8(n >> 8), uint8(n), nil
}

// ParseNumber parses textual numeric input as UI sends it.
func ParseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number: %w", field, raw, ErrValidation)
	}
	if err := checkFinite(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: value is not finite: %w", field, ErrValidation)
	}
	return nil
}

func checkRange(field string, v, lo, hi float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return fmt.Errorf("%s: %v is out of range [%v, %v]: %w", field, v, lo, hi, ErrValidation)
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%s: %v must be positive: %w", field, v, ErrValidation)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s: %v must not be negative: %w", field, v, ErrValidation)
	}
	return nil
}
