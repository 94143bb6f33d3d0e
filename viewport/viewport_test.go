package viewport

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"layercss/common"
	"layercss/css"
	"layercss/layer"
)

func newTestViewport(t *testing.T) *Viewport {
	t.Helper()
	opts := DefaultOptions()
	opts.IDs = &layer.SequenceIDs{Prefix: "L"}
	opts.Animation.Duration = 2
	v, err := New(zaptest.NewLogger(t), opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return v
}

func TestNew(t *testing.T) {
	v := newTestViewport(t)
	if v.Active() != "L1" || len(v.Layers()) != 1 {
		t.Fatalf("initial state:\n%s", v)
	}
	for _, sub := range []string{
		"/* CSS Animation Generated by CSS Animation Viewport */",
		"background: linear-gradient(45deg, rgba(52, 152, 219, 1) 0%, rgba(231, 76, 60, 1) 100%)",
		"animation: L1-animation 2s ease 0s 1 normal",
	} {
		if !strings.Contains(v.CSS(), sub) {
			t.Errorf("CSS does not contain %q:\n%s", sub, v.CSS())
		}
	}
}

func TestNew_InvalidAnimation(t *testing.T) {
	opts := DefaultOptions()
	opts.Animation.Duration = -1
	if _, err := New(nil, opts); !errors.Is(err, layer.ErrValidation) {
		t.Errorf("New() error = %v, want ErrValidation", err)
	}
}

func TestListenerNotifications(t *testing.T) {
	v := newTestViewport(t)

	var got []string
	v.Subscribe(func(text string) { got = append(got, text) })
	if len(got) != 1 || got[0] != v.CSS() {
		t.Fatalf("Subscribe() did not deliver current CSS")
	}

	id, err := v.AddLayer("Second")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !strings.Contains(got[1], "#"+id+" {") {
		t.Fatalf("AddLayer() notifications = %d", len(got))
	}

	// rejected operations and those not affecting CSS stay silent
	if err := v.DeleteLayer("nope"); !errors.Is(err, layer.ErrNotFound) {
		t.Errorf("DeleteLayer() error = %v", err)
	}
	if err := v.Set("", layer.FieldOpacity, "2"); !errors.Is(err, layer.ErrValidation) {
		t.Errorf("Set() error = %v", err)
	}
	if err := v.SetActiveLayer("L1"); err != nil {
		t.Fatal(err)
	}
	if _, err := v.ToggleVisibility(""); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("unexpected notifications: %d", len(got))
	}

	if err := v.SetAnimationField(layer.AnimationFieldIterationCount, "infinite"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || !strings.Contains(got[2], "L1-animation 2s ease 0s infinite normal") {
		t.Errorf("SetAnimationField() did not refresh CSS:\n%s", got[len(got)-1])
	}
}

func TestResolveUsesActiveLayer(t *testing.T) {
	v := newTestViewport(t)
	if _, err := v.AddLayer("Second"); err != nil {
		t.Fatal(err)
	}
	if err := v.SetActiveLayer("L1"); err != nil {
		t.Fatal(err)
	}
	if v.Resolve("") != "L1" || v.Resolve("L2") != "L2" {
		t.Errorf("Resolve() mismatch")
	}

	if err := v.UpdateTransform("", layer.TransformFieldRotateZ, 30); err != nil {
		t.Fatal(err)
	}
	if rule := v.Stylesheet().RuleBySelector("#L1"); rule == nil {
		t.Fatal("rule #L1 missing")
	} else if tr, _ := rule.Get("transform"); !strings.HasSuffix(tr, "rotateZ(30deg)") {
		t.Errorf("transform = %q", tr)
	}

	if err := v.ResetTransforms(""); err != nil {
		t.Fatal(err)
	}
	if l, _ := v.Layer("L1"); l.Transforms != layer.IdentityTransforms() {
		t.Errorf("transforms = %+v", l.Transforms)
	}

	dup, err := v.DuplicateLayer("")
	if err != nil {
		t.Fatal(err)
	}
	if l, _ := v.Layer(dup); l.Name != "Base Layer copy" || v.Active() != dup {
		t.Errorf("duplicate = %+v, active %q", l, v.Active())
	}
}

func TestGradientStops(t *testing.T) {
	v := newTestViewport(t)
	idx, err := v.AddGradientStop("")
	if err != nil {
		t.Fatal(err)
	}
	if err := v.SetGradientStopField("", idx, layer.StopFieldColor, "#00FF00"); err != nil {
		t.Fatal(err)
	}
	if err := v.SetGradientStopField("", idx, layer.StopFieldPosition, "50"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(v.CSS(), "rgba(0, 255, 0, 1) 50%") {
		t.Errorf("new stop missing from CSS:\n%s", v.CSS())
	}
	if err := v.RemoveGradientStop("", idx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(v.CSS(), "rgba(0, 255, 0, 1)") {
		t.Error("removed stop still in CSS")
	}
	if err := v.RemoveGradientStop("", 0); !errors.Is(err, layer.ErrInvalidOperation) {
		t.Errorf("RemoveGradientStop() error = %v", err)
	}
}

func TestPresets(t *testing.T) {
	v := newTestViewport(t)
	if err := v.SavePreset("base", ""); err != nil {
		t.Fatal(err)
	}
	if err := v.SavePreset("", ""); !errors.Is(err, layer.ErrValidation) {
		t.Errorf("SavePreset() with empty name error = %v", err)
	}
	if err := v.SavePreset("x", "missing"); !errors.Is(err, layer.ErrNotFound) {
		t.Errorf("SavePreset() for missing layer error = %v", err)
	}

	p := v.Presets()
	if p["base"] != "linear-gradient(45deg, rgba(52, 152, 219, 1) 0%, rgba(231, 76, 60, 1) 100%)" {
		t.Errorf("preset = %q", p["base"])
	}
	p["other"] = "changed"
	if len(v.Presets()) != 1 {
		t.Error("Presets() returned live map")
	}

	if err := v.MergePresets(layer.Presets{"a": "linear-gradient(red, blue)", "base": "radial-gradient(red, blue)"}); err != nil {
		t.Fatal(err)
	}
	if got := v.Presets().Names(); strings.Join(got, ",") != "a,base" {
		t.Errorf("Names() = %v", got)
	}
	if err := v.DeletePreset("a"); err != nil {
		t.Fatal(err)
	}
	if err := v.DeletePreset("a"); !errors.Is(err, layer.ErrNotFound) {
		t.Errorf("DeletePreset() error = %v", err)
	}
}

func TestPlayCommand(t *testing.T) {
	v := newTestViewport(t)
	cmd, err := v.PlayCommand("")
	if err != nil {
		t.Fatal(err)
	}
	if cmd != "L1-animation 2s ease 0s 1 normal" {
		t.Errorf("PlayCommand() = %q", cmd)
	}
	if _, err := v.PlayCommand("missing"); !errors.Is(err, layer.ErrNotFound) {
		t.Errorf("PlayCommand() error = %v", err)
	}
}

func TestExportImport(t *testing.T) {
	src := newTestViewport(t)
	if _, err := src.AddLayer("Second"); err != nil {
		t.Fatal(err)
	}
	if err := src.SetAnimationField(layer.AnimationFieldDirection, "reverse"); err != nil {
		t.Fatal(err)
	}
	if err := src.SavePreset("p", "L2"); err != nil {
		t.Fatal(err)
	}

	dst := newTestViewport(t)
	var notified int
	dst.Subscribe(func(string) { notified++ })

	if err := dst.Restore(src.Export()); err != nil {
		t.Fatal(err)
	}
	if dst.CSS() != src.CSS() {
		t.Errorf("CSS differs after restore\ngot:\n%s\nwant:\n%s", dst.CSS(), src.CSS())
	}
	if dst.Active() != "L1" || len(dst.Presets()) != 1 || notified != 2 {
		t.Errorf("active %q, presets %v, notified %d", dst.Active(), dst.Presets(), notified)
	}

	before := dst.CSS()
	err := dst.Import([]byte(`{"layers": [{"id": "x"}]}`), common.SettingsFormatJson)
	if !errors.Is(err, layer.ErrParse) {
		t.Errorf("Import() error = %v, want ErrParse", err)
	}
	if err := dst.Import([]byte("{"), common.SettingsFormatJson); !errors.Is(err, layer.ErrParse) {
		t.Errorf("Import() error = %v, want ErrParse", err)
	}
	if dst.CSS() != before || notified != 2 {
		t.Error("failed import changed state")
	}
}

func TestImport_CanonicalColors(t *testing.T) {
	v := newTestViewport(t)
	doc := `{"version": 1, "layers": [{"id": "hex", "name": "Hex", "visible": true, "opacity": 1, "width": 10, "height": 10,
		"gradient": {"type": "linear", "angle": 45, "stops": [{"color": "ABCDEF", "alpha": 1, "position": 0}, {"color": "#FFFFFF", "alpha": 1, "position": 100}]},
		"shadow": {"enabled": true, "color": "ff0000", "x": 1, "y": 2, "blur": 3}}]}`
	if err := v.Import([]byte(doc), common.SettingsFormatJson); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	l, err := v.Layer("hex")
	if err != nil {
		t.Fatal(err)
	}
	if l.Shadow.Color != "#ff0000" || l.Gradient.Stops[0].Color != "#abcdef" || l.Gradient.Stops[1].Color != "#ffffff" {
		t.Errorf("colors not canonical: shadow %q, stops %+v", l.Shadow.Color, l.Gradient.Stops)
	}
	if !strings.Contains(v.CSS(), "box-shadow: 1px 2px 3px #ff0000;") {
		t.Errorf("unexpected shadow in:\n%s", v.CSS())
	}
	if _, err := css.NewParser(nil).Check([]byte(v.CSS())); err != nil {
		t.Errorf("Check() error = %v", err)
	}
}

func TestString(t *testing.T) {
	v := newTestViewport(t)
	if err := v.SavePreset("sunset", ""); err != nil {
		t.Fatal(err)
	}
	dump := v.String()
	for _, sub := range []string{
		`Layers: 1, active "L1"`,
		"Animation: <id>-animation 2s ease 0s 1 normal\n",
		"Presets: 1\n",
		`  sunset: "linear-gradient(45deg, `,
	} {
		if !strings.Contains(dump, sub) {
			t.Errorf("dump does not contain %q:\n%s", sub, dump)
		}
	}
}
