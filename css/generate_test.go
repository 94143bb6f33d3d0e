package css

import (
	"math"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"layercss/common"
	"layercss/layer"
)

const identity = "translate3d(0px, 0px, 0px) scale3d(1, 1, 1) rotateX(0deg) rotateY(0deg) rotateZ(0deg)"

func defaultLayers(t *testing.T, n int) (*layer.Store, []layer.Layer) {
	t.Helper()
	s := layer.NewStore(zaptest.NewLogger(t), layer.WithIDGenerator(&layer.SequenceIDs{Prefix: "L"}))
	if _, err := s.Init(); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if _, err := s.AddLayer("layer"); err != nil {
			t.Fatal(err)
		}
	}
	return s, s.Layers()
}

func profile() layer.Animation {
	return layer.Animation{Duration: 2, Delay: 0, IterationCount: 1, Direction: common.DirectionNormal, TimingFunction: "ease"}
}

func TestSerialize_DefaultLayer(t *testing.T) {
	_, layers := defaultLayers(t, 1)

	want := `/* CSS Animation Generated by CSS Animation Viewport */

#L1 {
    width: 200px;
    height: 200px;
    position: absolute;
    background: linear-gradient(45deg, rgba(52, 152, 219, 1) 0%, rgba(231, 76, 60, 1) 100%);
    border-radius: 8px;
    opacity: 1;
    box-shadow: none;
    transform: ` + identity + `;
    transition: transform 2s ease 0s;
    animation: L1-animation 2s ease 0s 1 normal;
}

@keyframes L1-animation {
    from {
        transform: ` + identity + `;
    }
    to {
        transform: ` + identity + `;
    }
}
`
	got := NewGenerator(zaptest.NewLogger(t), DefaultOptions()).Serialize(layers, profile())
	if got != want {
		t.Errorf("Serialize() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	for _, sub := range []string{
		"background: linear-gradient(45deg, rgba(52, 152, 219, 1) 0%, rgba(231, 76, 60, 1) 100%)",
		"animation: L1-animation 2s ease 0s 1 normal",
	} {
		if !strings.Contains(got, sub) {
			t.Errorf("output does not contain %q", sub)
		}
	}
}

func TestSerialize_Idempotent(t *testing.T) {
	_, layers := defaultLayers(t, 3)
	anim := profile()
	g := NewGenerator(zaptest.NewLogger(t), DefaultOptions())
	if a, b := g.Serialize(layers, anim), g.Serialize(layers, anim); a != b {
		t.Error("serialization is not idempotent")
	}
	if Serialize(layers, anim) != g.Serialize(layers, anim) {
		t.Error("package shortcut differs from default generator")
	}
}

func TestSerialize_LayerOrderAndFields(t *testing.T) {
	s, _ := defaultLayers(t, 2)
	for _, step := range []struct {
		f   layer.Field
		raw string
	}{
		{layer.FieldTranslateX, "-12.5"},
		{layer.FieldRotateZ, "45"},
		{layer.FieldScaleY, "1.5"},
		{layer.FieldOpacity, "0.75"},
		{layer.FieldShadowEnabled, "true"},
		{layer.FieldShadowX, "2"},
		{layer.FieldShadowY, "-3"},
		{layer.FieldShadowColor, "#102030"},
		{layer.FieldGradientType, "radial"},
	} {
		if err := s.Set("L2", step.f, step.raw); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.ToggleVisibility("L2"); err != nil {
		t.Fatal(err)
	}
	anim := layer.Animation{Duration: 1.25, Delay: 0.5, IterationCount: layer.IterationInfinite,
		Direction: common.DirectionAlternateReverse, TimingFunction: "linear"}

	sheet := NewGenerator(zaptest.NewLogger(t), DefaultOptions()).Stylesheet(s.Layers(), anim)
	rules := sheet.Rules()
	if len(rules) != 2 || rules[0].Selector != "#L1" || rules[1].Selector != "#L2" {
		t.Fatalf("rules = %v", rules)
	}

	props := make([]string, 0, len(rules[1].Declarations))
	for _, d := range rules[1].Declarations {
		props = append(props, d.Property)
	}
	if got := strings.Join(props, ","); got != "width,height,position,background,border-radius,opacity,box-shadow,transform,transition,animation" {
		t.Errorf("property order = %s", got)
	}

	expect := map[string]string{
		"opacity":    "0.75",
		"box-shadow": "2px -3px 10px #102030",
		"transform":  "translate3d(-12.5px, 10px, 0px) scale3d(1, 1.5, 1) rotateX(0deg) rotateY(0deg) rotateZ(45deg)",
		"background": "radial-gradient(circle, rgba(52, 152, 219, 1) 0%, rgba(231, 76, 60, 1) 100%)",
		"transition": "transform 1.25s linear 0.5s",
		"animation":  "L2-animation 1.25s linear 0.5s infinite alternate-reverse",
	}
	for prop, want := range expect {
		if got, _ := rules[1].Get(prop); got != want {
			t.Errorf("%s = %q, want %q", prop, got, want)
		}
	}

	kf := sheet.KeyframesByName("L2-animation")
	if kf == nil || len(kf.Frames) != 2 {
		t.Fatalf("keyframes = %+v", kf)
	}
	if from, _ := kf.Frames[0].Get("transform"); from != identity {
		t.Errorf("from = %q", from)
	}
	if to, _ := kf.Frames[1].Get("transform"); to != expect["transform"] {
		t.Errorf("to = %q", to)
	}
}

func TestSerialize_MissingProfileFields(t *testing.T) {
	_, layers := defaultLayers(t, 1)
	sheet := NewGenerator(nil, DefaultOptions()).Stylesheet(layers, layer.Animation{})
	if got, _ := sheet.RuleBySelector("#L1").Get("animation"); got != "L1-animation 0s ease 0s 1 normal" {
		t.Errorf("animation = %q", got)
	}
	if got, _ := sheet.RuleBySelector("#L1").Get("transition"); got != "transform 0s ease 0s" {
		t.Errorf("transition = %q", got)
	}
}

func TestGradientValue(t *testing.T) {
	gr := layer.Gradient{
		Type:  common.GradientTypeLinear,
		Angle: 120,
		Stops: []layer.ColorStop{{Color: "#000000", Alpha: 0.5, Position: 12.5}, {Color: "#ffffff", Alpha: 1, Position: 100}},
	}
	if got := GradientValue(gr, false); got != "linear-gradient(45deg, rgba(0, 0, 0, 0.5) 12.5%, rgba(255, 255, 255, 1) 100%)" {
		t.Errorf("fixed angle = %q", got)
	}
	if got := GradientValue(gr, true); !strings.HasPrefix(got, "linear-gradient(120deg, ") {
		t.Errorf("honored angle = %q", got)
	}
	gr.Type = common.GradientTypeRadial
	if got := GradientValue(gr, true); !strings.HasPrefix(got, "radial-gradient(circle, rgba(0, 0, 0, 0.5)") {
		t.Errorf("radial = %q", got)
	}
}

func TestNumber(t *testing.T) {
	for v, want := range map[float64]string{0: "0", 1: "1", -2.5: "-2.5", 0.1: "0.1", 1e21: "1000000000000000000000", 1.0 / 3: "0.3333333333333333"} {
		if got := Number(v); got != want {
			t.Errorf("Number(%v) = %q, want %q", v, got, want)
		}
	}
	if got := Number(math.Copysign(0, -1)); got != "0" {
		t.Errorf("Number(-0) = %q", got)
	}
}

func TestStylesheetWriteTo(t *testing.T) {
	r := &Rule{Selector: "#a"}
	r.Add("color", "red")
	sheet := &Stylesheet{Header: "x */ y", Indent: 2, Items: []StylesheetItem{{Rule: r}, {Keyframes: &Keyframes{Name: "k"}}}}
	want := "/* x * / y */\n\n#a {\n  color: red;\n}\n\n@keyframes k {\n}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var sb strings.Builder
	n, err := sheet.WriteTo(&sb)
	if err != nil || int(n) != len(want) {
		t.Errorf("WriteTo() = %d, %v", n, err)
	}

	if got := (&Stylesheet{}).String(); got != "" {
		t.Errorf("empty stylesheet = %q", got)
	}
	if got := (&Stylesheet{Header: "h"}).String(); got != "/* h */\n" {
		t.Errorf("header only = %q", got)
	}
}

func TestGeneratedCSSIsWellFormed(t *testing.T) {
	s, _ := defaultLayers(t, 3)
	if _, err := s.AddGradientStop("L2"); err != nil {
		t.Fatal(err)
	}
	text := NewGenerator(nil, Options{Header: DefaultHeader, Indent: 4, HonorAngle: true}).Serialize(s.Layers(), profile())

	outline, err := NewParser(zaptest.NewLogger(t)).Check([]byte(text), "generated")
	if err != nil {
		t.Fatalf("Check() error = %v\n%s", err, text)
	}
	for _, id := range s.IDs() {
		if !outline.Has("#" + id) {
			t.Errorf("selector #%s not found in %v", id, outline.Selectors)
		}
		if !outline.HasKeyframes(KeyframesName(id)) {
			t.Errorf("keyframes %s not found in %v", KeyframesName(id), outline.Keyframes)
		}
	}
	if len(outline.Selectors) != 3 {
		t.Errorf("frames must not be reported as top-level rules: %v", outline.Selectors)
	}
	// 10 per rule, one per frame
	if outline.Declarations != 3*10+3*2 {
		t.Errorf("Declarations = %d", outline.Declarations)
	}
}

func TestCheckRejectsNamelessKeyframes(t *testing.T) {
	if _, err := NewParser(nil).Check([]byte("@keyframes { from { opacity: 0; } }")); err == nil {
		t.Error("expected error")
	}
}
