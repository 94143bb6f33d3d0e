// Package viewport is the editor core UI collaborators hold a handle to: it
// owns the layer store, shared animation profile and gradient presets, and
// re-serializes CSS after every successful mutation.
package viewport

import (
	"fmt"

	"go.uber.org/zap"

	"layercss/common"
	"layercss/css"
	"layercss/layer"
	"layercss/settings"
	"layercss/utils/debug"
)

// Listener receives freshly generated CSS after every successful change.
type Listener func(text string)

// Options define initial state and CSS flavor.
type Options struct {
	BaseName  string
	IDs       layer.IDGenerator
	Width     float64
	Height    float64
	Animation layer.Animation
	CSS       css.Options
}

// DefaultOptions mirrors built-in defaults of the store and generator.
func DefaultOptions() Options {
	return Options{
		BaseName:  layer.DefaultBaseName,
		IDs:       layer.NewIDGenerator(common.IDStyleUuid),
		Width:     layer.DefaultWidth,
		Height:    layer.DefaultHeight,
		Animation: layer.DefaultAnimation(),
		CSS:       css.DefaultOptions(),
	}
}

type Viewport struct {
	log       *zap.Logger
	store     *layer.Store
	anim      layer.Animation
	presets   layer.Presets
	gen       *css.Generator
	listeners []Listener
	text      string
}

// New creates viewport with single base layer.
func New(log *zap.Logger, opts Options) (*Viewport, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Animation.Validate(); err != nil {
		return nil, fmt.Errorf("initial animation profile: %w", err)
	}
	v := &Viewport{
		log: log.Named("viewport"),
		store: layer.NewStore(log,
			layer.WithIDGenerator(opts.IDs),
			layer.WithBaseName(opts.BaseName),
			layer.WithDefaultSize(opts.Width, opts.Height)),
		anim:    opts.Animation,
		presets: layer.Presets{},
		gen:     css.NewGenerator(log, opts.CSS),
	}
	if _, err := v.store.Init(); err != nil {
		return nil, err
	}
	v.refresh()
	return v, nil
}

// Subscribe registers listener and immediately hands it current CSS.
func (v *Viewport) Subscribe(l Listener) {
	v.listeners = append(v.listeners, l)
	l(v.text)
}

func (v *Viewport) refresh() {
	v.text = v.gen.Serialize(v.store.Layers(), v.anim)
	for _, l := range v.listeners {
		l(v.text)
	}
}

// change runs mutation and re-serializes when it succeeded.
func (v *Viewport) change(op string, fn func() error) error {
	if err := fn(); err != nil {
		v.log.Debug("Operation rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	v.refresh()
	return nil
}

// CSS returns CSS text for the current state.
func (v *Viewport) CSS() string {
	return v.text
}

// Stylesheet returns structured form of the current CSS.
func (v *Viewport) Stylesheet() *css.Stylesheet {
	return v.gen.Stylesheet(v.store.Layers(), v.anim)
}

// Layers gives read access to the store. Mutations must go through viewport
// methods so CSS stays current.
func (v *Viewport) Layers() []layer.Layer {
	return v.store.Layers()
}

func (v *Viewport) Layer(id string) (layer.Layer, error) {
	return v.store.Layer(id)
}

func (v *Viewport) Active() string {
	return v.store.Active()
}

func (v *Viewport) Animation() layer.Animation {
	return v.anim
}

func (v *Viewport) Presets() layer.Presets {
	return v.presets.Clone()
}

// Resolve maps empty reference to the active layer.
func (v *Viewport) Resolve(id string) string {
	if id == "" {
		return v.store.Active()
	}
	return id
}

func (v *Viewport) AddLayer(name string) (id string, err error) {
	err = v.change("add", func() (err error) {
		id, err = v.store.AddLayer(name)
		return
	})
	return
}

func (v *Viewport) DuplicateLayer(id string) (newID string, err error) {
	err = v.change("duplicate", func() (err error) {
		newID, err = v.store.DuplicateLayer(v.Resolve(id))
		return
	})
	return
}

func (v *Viewport) DeleteLayer(id string) error {
	return v.change("delete", func() error { return v.store.DeleteLayer(v.Resolve(id)) })
}

// SetActiveLayer does not change CSS, listeners are not notified.
func (v *Viewport) SetActiveLayer(id string) error {
	return v.store.SetActiveLayer(id)
}

// ToggleVisibility does not change CSS, listeners are not notified.
func (v *Viewport) ToggleVisibility(id string) (bool, error) {
	return v.store.ToggleVisibility(v.Resolve(id))
}

func (v *Viewport) Set(id string, f layer.Field, raw string) error {
	return v.change("set "+f.String(), func() error { return v.store.Set(v.Resolve(id), f, raw) })
}

func (v *Viewport) UpdateTransform(id string, f layer.TransformField, val float64) error {
	return v.change("transform", func() error { return v.store.UpdateTransform(v.Resolve(id), f, val) })
}

func (v *Viewport) ResetTransforms(id string) error {
	return v.change("reset", func() error { return v.store.ResetTransforms(v.Resolve(id)) })
}

func (v *Viewport) AddGradientStop(id string) (index int, err error) {
	err = v.change("add stop", func() (err error) {
		index, err = v.store.AddGradientStop(v.Resolve(id))
		return
	})
	return
}

func (v *Viewport) RemoveGradientStop(id string, index int) error {
	return v.change("remove stop", func() error { return v.store.RemoveGradientStop(v.Resolve(id), index) })
}

func (v *Viewport) SetGradientStopField(id string, index int, f layer.StopField, raw string) error {
	return v.change("set stop", func() error { return v.store.SetGradientStopField(v.Resolve(id), index, f, raw) })
}

// SetAnimationField changes the profile shared by all layers.
func (v *Viewport) SetAnimationField(f layer.AnimationField, raw string) error {
	return v.change("animation "+f.String(), func() error { return v.anim.Set(f, raw) })
}

// SavePreset stores gradient of the layer under name.
func (v *Viewport) SavePreset(name, id string) error {
	l, err := v.store.Layer(v.Resolve(id))
	if err != nil {
		return err
	}
	return v.presets.Save(name, css.GradientValue(l.Gradient, v.gen.Options().HonorAngle))
}

// MergePresets adds presets, overwriting those with the same name.
func (v *Viewport) MergePresets(p layer.Presets) error {
	for _, name := range p.Names() {
		if err := v.presets.Save(name, p[name]); err != nil {
			return err
		}
	}
	return nil
}

func (v *Viewport) DeletePreset(name string) error {
	return v.presets.Delete(name)
}

// PlayCommand returns animation shorthand UI sets on the layer element to
// (re)start its animation.
func (v *Viewport) PlayCommand(id string) (string, error) {
	l, err := v.store.Layer(v.Resolve(id))
	if err != nil {
		return "", err
	}
	return css.AnimationValue(l.ID, v.anim), nil
}

// Export takes snapshot of the whole state.
func (v *Viewport) Export() *settings.Snapshot {
	return settings.Export(v.store, v.anim, v.presets)
}

// Import replaces whole state with decoded settings document. On error state
// is left untouched.
func (v *Viewport) Import(data []byte, format common.SettingsFormat) error {
	snap, err := settings.Unmarshal(data, format)
	if err != nil {
		return err
	}
	return v.Restore(snap)
}

// Restore replaces whole state with snapshot content.
func (v *Viewport) Restore(snap *settings.Snapshot) error {
	return v.change("import", func() error { return snap.Restore(v.store, &v.anim, &v.presets) })
}

// String returns human readable dump of the state.
func (v *Viewport) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Animation: %s", css.AnimationValue("<id>", v.anim))
	tw.Line(0, "Presets: %d", len(v.presets))
	tw.Pairs(1, v.presets)
	return v.store.String() + tw.String()
}
