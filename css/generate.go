package css

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"layercss/common"
	"layercss/layer"
)

// DefaultHeader is the comment text prefixed to generated CSS.
const DefaultHeader = "CSS Animation Generated by CSS Animation Viewport"

const (
	// fixed angle of linear gradients unless stored angle is honored
	fixedLinearAngle = 45.0
	borderRadius     = "8px"
)

// Options control generated text. Zero value produces no header and no
// indentation, use DefaultOptions as a starting point.
type Options struct {
	Header     string
	Indent     int
	HonorAngle bool // emit stored linear gradient angle instead of fixed 45deg
}

func DefaultOptions() Options {
	return Options{Header: DefaultHeader, Indent: 4}
}

// Generator turns layers and the shared animation profile into CSS. It keeps
// no state between calls, same input always yields the same text.
type Generator struct {
	log  *zap.Logger
	opts Options
}

func NewGenerator(log *zap.Logger, opts Options) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log.Named("css-generator"), opts: opts}
}

// Options returns generator settings.
func (g *Generator) Options() Options {
	return g.opts
}

// Serialize is a shortcut producing CSS text with default options.
func Serialize(layers []layer.Layer, anim layer.Animation) string {
	return NewGenerator(nil, DefaultOptions()).Serialize(layers, anim)
}

// Serialize returns CSS text for layers in given order.
func (g *Generator) Serialize(layers []layer.Layer, anim layer.Animation) string {
	return g.Stylesheet(layers, anim).String()
}

// Stylesheet builds one rule and one @keyframes block per layer.
func (g *Generator) Stylesheet(layers []layer.Layer, anim layer.Animation) *Stylesheet {
	sheet := &Stylesheet{
		Header: g.opts.Header,
		Indent: g.opts.Indent,
		Items:  make([]StylesheetItem, 0, 2*len(layers)),
	}
	for i := range layers {
		l := &layers[i]
		sheet.Items = append(sheet.Items,
			StylesheetItem{Rule: g.rule(l, anim)},
			StylesheetItem{Keyframes: g.keyframes(l)},
		)
	}
	g.log.Debug("Stylesheet generated", zap.Int("layers", len(layers)), zap.Int("items", len(sheet.Items)))
	return sheet
}

func (g *Generator) rule(l *layer.Layer, anim layer.Animation) *Rule {
	r := &Rule{Selector: "#" + l.ID}
	r.Add("width", Number(l.Width)+"px").
		Add("height", Number(l.Height)+"px").
		Add("position", "absolute").
		Add("background", GradientValue(l.Gradient, g.opts.HonorAngle)).
		Add("border-radius", borderRadius).
		Add("opacity", Number(l.Opacity)).
		Add("box-shadow", ShadowValue(l.Shadow)).
		Add("transform", TransformValue(l.Transforms)).
		Add("transition", TransitionValue(anim)).
		Add("animation", AnimationValue(l.ID, anim))
	return r
}

func (g *Generator) keyframes(l *layer.Layer) *Keyframes {
	from := Rule{Selector: "from"}
	from.Add("transform", TransformValue(layer.IdentityTransforms()))
	to := Rule{Selector: "to"}
	to.Add("transform", TransformValue(l.Transforms))
	return &Keyframes{Name: KeyframesName(l.ID), Frames: []Rule{from, to}}
}

// KeyframesName returns name of the layer animation.
func KeyframesName(id string) string {
	return id + "-animation"
}

// Number formats value the shortest way which reads back exactly.
func Number(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RGBA renders color stop as rgba() literal. Malformed color renders black.
func RGBA(st layer.ColorStop) string {
	r, g, b, err := layer.RGB(st.Color)
	if err != nil {
		r, g, b = 0, 0, 0
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, Number(st.Alpha))
}

// GradientValue renders linear-gradient() or radial-gradient() function.
// Unless honorAngle is set linear gradients always use 45deg.
func GradientValue(gr layer.Gradient, honorAngle bool) string {
	stops := make([]string, 0, len(gr.Stops))
	for _, st := range gr.Stops {
		stops = append(stops, RGBA(st)+" "+Number(st.Position)+"%")
	}
	list := strings.Join(stops, ", ")

	if gr.Type == common.GradientTypeRadial {
		return "radial-gradient(circle, " + list + ")"
	}
	angle := fixedLinearAngle
	if honorAngle {
		angle = gr.Angle
	}
	return "linear-gradient(" + Number(angle) + "deg, " + list + ")"
}

// TransformValue renders transform functions in fixed order.
func TransformValue(t layer.Transforms) string {
	return fmt.Sprintf("translate3d(%spx, %spx, %spx) scale3d(%s, %s, %s) rotateX(%sdeg) rotateY(%sdeg) rotateZ(%sdeg)",
		Number(t.TranslateX), Number(t.TranslateY), Number(t.TranslateZ),
		Number(t.ScaleX), Number(t.ScaleY), Number(t.ScaleZ),
		Number(t.RotateX), Number(t.RotateY), Number(t.RotateZ))
}

// ShadowValue renders box-shadow value or "none" when shadow is disabled.
func ShadowValue(s layer.Shadow) string {
	if !s.Enabled {
		return "none"
	}
	return fmt.Sprintf("%spx %spx %spx %s", Number(s.X), Number(s.Y), Number(s.Blur), s.Color)
}

// TransitionValue renders transition shorthand for transform changes.
func TransitionValue(a layer.Animation) string {
	return fmt.Sprintf("transform %ss %s %ss", Number(a.Duration), a.Timing(), Number(a.Delay))
}

// AnimationValue renders animation shorthand for the layer, this is also what
// is set on an element to play its animation.
func AnimationValue(id string, a layer.Animation) string {
	dir := a.Direction
	if !dir.IsValid() {
		dir = common.DirectionNormal
	}
	return fmt.Sprintf("%s %ss %s %ss %s %s",
		KeyframesName(id), Number(a.Duration), a.Timing(), Number(a.Delay), a.IterationCount, dir)
}
