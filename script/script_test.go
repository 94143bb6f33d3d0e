package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"layercss/layer"
	"layercss/viewport"
)

const sample = `
steps:
  - op: add
    name: Sun
  - op: set
    field: rotateZ
    value: "90"
  - op: set
    layer: L1
    field: gradientType
    value: radial
  - op: add-stop
  - op: set-stop
    index: 2
    field: color
    value: "#00ff00"
  - op: animation
    field: iterationCount
    value: infinite
  - op: duplicate
    layer: L2
  - op: rename
    name: Moon
  - op: save-preset
    name: green
  - op: activate
    layer: L1
  - op: delete
    layer: L3
  - op: toggle
`

func newTestViewport(t *testing.T) *viewport.Viewport {
	t.Helper()
	opts := viewport.DefaultOptions()
	opts.IDs = &layer.SequenceIDs{Prefix: "L"}
	v, err := viewport.New(zaptest.NewLogger(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(s.Steps) != 12 {
		t.Fatalf("steps = %d", len(s.Steps))
	}
	if st := s.Steps[4]; st.Op != OpSetStop || st.Index != 2 || st.Value != "#00ff00" {
		t.Errorf("step 5 = %+v", st)
	}

	empty, err := Parse(nil)
	if err != nil || len(empty.Steps) != 0 {
		t.Errorf("Parse(nil) = %+v, %v", empty, err)
	}
}

func TestParse_Errors(t *testing.T) {
	for name, data := range map[string]string{
		"unknown op":    "steps:\n  - op: explode\n",
		"unknown key":   "steps:\n  - op: add\n    color: red\n",
		"not a list":    "steps: 1\n",
		"broken syntax": "steps: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); !errors.Is(err, layer.ErrParse) {
				t.Errorf("Parse() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil || len(s.Steps) != 12 {
		t.Fatalf("Load() = %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	v := newTestViewport(t)
	applied, err := NewRunner(zaptest.NewLogger(t), false).Run(v, s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if applied != len(s.Steps) {
		t.Errorf("applied = %d", applied)
	}

	layers := v.Layers()
	if len(layers) != 2 || layers[0].ID != "L1" || layers[1].ID != "L2" {
		t.Fatalf("layers:\n%s", v)
	}
	if layers[0].Visible {
		t.Error("L1 must be hidden by the last step")
	}
	sun := layers[1]
	if sun.Name != "Sun" || sun.Transforms.RotateZ != 90 || len(sun.Gradient.Stops) != 3 || sun.Gradient.Stops[2].Color != "#00ff00" {
		t.Errorf("L2 = %+v", sun)
	}
	if v.Animation().IterationCount != layer.IterationInfinite {
		t.Errorf("animation = %+v", v.Animation())
	}
	if got := v.Presets()["green"]; !strings.Contains(got, "rgba(0, 255, 0, 1) 100%") {
		t.Errorf("preset = %q", got)
	}
	if !strings.Contains(v.CSS(), "radial-gradient(circle, ") {
		t.Error("L1 gradient type not applied")
	}
}

func TestRun_StopsOnError(t *testing.T) {
	s := &Script{Steps: []Step{
		{Op: OpAdd, Name: "one"},
		{Op: OpSet, Field: "opacity", Value: "5"},
		{Op: OpAdd, Name: "two"},
	}}
	v := newTestViewport(t)
	applied, err := NewRunner(zaptest.NewLogger(t), false).Run(v, s)
	if applied != 1 || !errors.Is(err, layer.ErrValidation) {
		t.Fatalf("Run() = %d, %v", applied, err)
	}
	if !strings.HasPrefix(err.Error(), "step 2 (set): ") {
		t.Errorf("error = %q", err)
	}
	if len(v.Layers()) != 2 {
		t.Errorf("layers = %d, run must stop at failed step", len(v.Layers()))
	}
}

func TestRun_KeepGoing(t *testing.T) {
	s := &Script{Steps: []Step{
		{Op: OpSet, Field: "bogus", Value: "1"},
		{Op: OpAdd, Name: "one"},
		{Op: OpDelete, Layer: "missing"},
		{Op: OpRemoveStop, Index: 0},
		{Op: OpAnimation, Field: "duration", Value: "3"},
	}}
	v := newTestViewport(t)
	applied, err := NewRunner(zaptest.NewLogger(t), true).Run(v, s)
	if applied != 2 {
		t.Errorf("applied = %d", applied)
	}
	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("errors = %v", errs)
	}
	if !errors.Is(errs[0], layer.ErrValidation) || !errors.Is(errs[1], layer.ErrNotFound) || !errors.Is(errs[2], layer.ErrInvalidOperation) {
		t.Errorf("errors = %v", errs)
	}
	if v.Animation().Duration != 3 || len(v.Layers()) != 2 {
		t.Errorf("state:\n%s", v)
	}
}

func TestRun_UnsupportedOp(t *testing.T) {
	v := newTestViewport(t)
	_, err := NewRunner(nil, false).Run(v, &Script{Steps: []Step{{Op: Op(99)}}})
	if !errors.Is(err, layer.ErrInvalidOperation) {
		t.Errorf("Run() error = %v", err)
	}
}
