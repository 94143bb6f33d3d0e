package layer

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"layercss/common"
	"layercss/utils/debug"
)

// Store is an ordered collection of layers keyed by identifier with a single
// active layer. It exclusively owns layer records: callers only ever get
// copies and refer to layers by id. Store is not safe for concurrent use,
// all mutations are expected to come from one event loop.
type Store struct {
	log      *zap.Logger
	ids      IDGenerator
	baseName string
	width    float64
	height   float64

	layers []*Layer // in insertion order
	active string
}

// Option configures Store.
type Option func(*Store)

// WithIDGenerator replaces default UUID based identifiers.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithDefaultSize sets width and height of freshly added layers.
func WithDefaultSize(width, height float64) Option {
	return func(s *Store) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

// WithBaseName sets name of the layer created when store has to be
// repopulated from nothing.
func WithBaseName(name string) Option {
	return func(s *Store) {
		if strings.TrimSpace(name) != "" {
			s.baseName = name
		}
	}
}

// NewStore creates empty store. Use Init to add the base layer.
func NewStore(log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		log:      log.Named("store"),
		ids:      UUIDs{},
		baseName: DefaultBaseName,
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init adds the base layer to empty store. After that store never becomes
// empty again.
func (s *Store) Init() (string, error) {
	if len(s.layers) > 0 {
		return "", fmt.Errorf("store already holds %d layers: %w", len(s.layers), ErrInvalidOperation)
	}
	return s.AddLayer(s.baseName)
}

// Len returns number of layers.
func (s *Store) Len() int {
	return len(s.layers)
}

// IDs returns layer identifiers in store order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.layers))
	for _, l := range s.layers {
		ids = append(ids, l.ID)
	}
	return ids
}

// Active returns identifier of the active layer, empty when store is empty.
func (s *Store) Active() string {
	return s.active
}

// Layer returns copy of the layer.
func (s *Store) Layer(id string) (Layer, error) {
	l, err := s.find(id)
	if err != nil {
		return Layer{}, err
	}
	return l.Clone(), nil
}

// Layers returns copies of all layers in store order.
func (s *Store) Layers() []Layer {
	out := make([]Layer, 0, len(s.layers))
	for _, l := range s.layers {
		out = append(out, l.Clone())
	}
	return out
}

func (s *Store) find(id string) (*Layer, error) {
	if i := s.index(id); i >= 0 {
		return s.layers[i], nil
	}
	return nil, fmt.Errorf("layer %q: %w", id, ErrNotFound)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.layers, func(l *Layer) bool { return l.ID == id })
}

func (s *Store) nextID(name string) string {
	for {
		id := s.ids.NextID(name)
		if ValidID(id) && s.index(id) < 0 {
			return id
		}
	}
}

// AddLayer creates layer with default state, appends it and makes it active.
// Successive default layers cascade diagonally.
func (s *Store) AddLayer(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("layer name: %w", errEmpty)
	}
	offset := cascadeOffset * float64(len(s.layers))
	l := newLayer(s.nextID(name), name, offset, s.width, s.height)
	s.layers = append(s.layers, l)
	s.active = l.ID

	s.log.Debug("Layer added", zap.String("layer", l.ID), zap.String("name", name))
	return l.ID, nil
}

// DuplicateLayer copies full state of existing layer under new id, nudging
// it so copies do not overlap exactly. Copy is appended and made active.
func (s *Store) DuplicateLayer(id string) (string, error) {
	src, err := s.find(id)
	if err != nil {
		return "", err
	}
	dup := src.Clone()
	dup.Name = src.Name + " copy"
	dup.ID = s.nextID(dup.Name)
	dup.Transforms.TranslateX += cascadeOffset
	dup.Transforms.TranslateY += cascadeOffset
	s.layers = append(s.layers, &dup)
	s.active = dup.ID

	s.log.Debug("Layer duplicated", zap.String("layer", id), zap.String("copy", dup.ID))
	return dup.ID, nil
}

// DeleteLayer removes layer. Last remaining layer could not be deleted. When
// active layer goes away the first remaining layer becomes active.
func (s *Store) DeleteLayer(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("layer %q: %w", id, ErrNotFound)
	}
	if len(s.layers) <= 1 {
		return fmt.Errorf("cannot delete the last layer: %w", ErrInvalidOperation)
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	if s.active == id {
		s.active = s.layers[0].ID
	}

	s.log.Debug("Layer deleted", zap.String("layer", id), zap.String("active", s.active))
	return nil
}

// SetActiveLayer moves active pointer.
func (s *Store) SetActiveLayer(id string) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	s.active = id
	return nil
}

// RenameLayer changes user facing label.
func (s *Store) RenameLayer(id, name string) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("layer name: %w", errEmpty)
	}
	l.Name = name
	return nil
}

// ToggleVisibility flips on-screen visibility and returns new state. It has
// no effect on generated CSS.
func (s *Store) ToggleVisibility(id string) (bool, error) {
	l, err := s.find(id)
	if err != nil {
		return false, err
	}
	l.Visible = !l.Visible
	return l.Visible, nil
}

// UpdateTransform sets single transform component.
func (s *Store) UpdateTransform(id string, f TransformField, v float64) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if !f.IsValid() {
		return fmt.Errorf("transform field %s: %w", f, ErrValidation)
	}
	if err := checkFinite(f.String(), v); err != nil {
		return err
	}
	*l.Transforms.ref(f) = v
	return nil
}

// ResetTransforms restores identity transforms.
func (s *Store) ResetTransforms(id string) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	l.Transforms = IdentityTransforms()
	return nil
}

// UpdateOpacity sets opacity in [0,1].
func (s *Store) UpdateOpacity(id string, v float64) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if err := checkRange("opacity", v, 0, 1); err != nil {
		return err
	}
	l.Opacity = v
	return nil
}

// UpdateSize sets width or height, both must be positive.
func (s *Store) UpdateSize(id string, f SizeField, v float64) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if err := checkPositive(f.String(), v); err != nil {
		return err
	}
	switch f {
	case SizeFieldWidth:
		l.Width = v
	case SizeFieldHeight:
		l.Height = v
	default:
		return fmt.Errorf("size field %s: %w", f, ErrValidation)
	}
	return nil
}

// UpdateShadowField sets single shadow attribute from textual input.
func (s *Store) UpdateShadowField(id string, f ShadowField, raw string) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	name := "shadow " + f.String()
	switch f {
	case ShadowFieldEnabled:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean: %w", name, raw, ErrValidation)
		}
		l.Shadow.Enabled = v
	case ShadowFieldColor:
		v, err := ParseHexColor(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		l.Shadow.Color = v
	case ShadowFieldX, ShadowFieldY, ShadowFieldBlur:
		v, err := ParseNumber(name, raw)
		if err != nil {
			return err
		}
		switch f {
		case ShadowFieldX:
			l.Shadow.X = v
		case ShadowFieldY:
			l.Shadow.Y = v
		default:
			if err := checkNonNegative(name, v); err != nil {
				return err
			}
			l.Shadow.Blur = v
		}
	default:
		return fmt.Errorf("shadow field %s: %w", f, ErrValidation)
	}
	return nil
}

// UpdateGradientType switches between linear and radial fill.
func (s *Store) UpdateGradientType(id string, t common.GradientType) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if !t.IsValid() {
		return fmt.Errorf("gradient type %s: %w", t, ErrValidation)
	}
	l.Gradient.Type = t
	return nil
}

// UpdateGradientAngle sets linear gradient angle in degrees.
func (s *Store) UpdateGradientAngle(id string, v float64) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if err := checkFinite("gradient angle", v); err != nil {
		return err
	}
	l.Gradient.Angle = v
	return nil
}

// AddGradientStop appends white opaque stop 10% after the last one (capped
// at 100) and re-sorts stops by position. Returns index of the new stop.
func (s *Store) AddGradientStop(id string) (int, error) {
	l, err := s.find(id)
	if err != nil {
		return 0, err
	}
	stops := l.Gradient.Stops
	pos := 0.0
	if n := len(stops); n > 0 {
		pos = min(100, stops[n-1].Position+stopStep)
	}
	// sort is stable, new stop lands after all stops at the same position
	idx := 0
	for _, st := range stops {
		if st.Position <= pos {
			idx++
		}
	}
	stops = append(stops, ColorStop{Color: DefaultStopColor, Alpha: 1, Position: pos})
	slices.SortStableFunc(stops, func(a, b ColorStop) int {
		return cmp.Compare(a.Position, b.Position)
	})
	l.Gradient.Stops = stops
	return idx, nil
}

// RemoveGradientStop removes stop by index keeping order of the rest.
// Gradient never drops below two stops.
func (s *Store) RemoveGradientStop(id string, index int) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(l.Gradient.Stops) {
		return fmt.Errorf("stop %d of layer %q: %w", index, id, ErrNotFound)
	}
	if len(l.Gradient.Stops) <= 2 {
		return fmt.Errorf("gradient needs at least 2 stops: %w", ErrInvalidOperation)
	}
	l.Gradient.Stops = slices.Delete(l.Gradient.Stops, index, index+1)
	return nil
}

// SetGradientStopField mutates one stop attribute. Stops are not re-sorted,
// out of order stops are tolerated until the next AddGradientStop.
func (s *Store) SetGradientStopField(id string, index int, f StopField, raw string) error {
	l, err := s.find(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(l.Gradient.Stops) {
		return fmt.Errorf("stop %d of layer %q: %w", index, id, ErrNotFound)
	}
	st := &l.Gradient.Stops[index]
	name := fmt.Sprintf("stop %d %s", index, f)
	switch f {
	case StopFieldColor:
		v, err := ParseHexColor(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		st.Color = v
	case StopFieldAlpha, StopFieldPosition:
		v, err := ParseNumber(name, raw)
		if err != nil {
			return err
		}
		if f == StopFieldAlpha {
			if err := checkRange(name, v, 0, 1); err != nil {
				return err
			}
			st.Alpha = v
		} else {
			if err := checkRange(name, v, 0, 100); err != nil {
				return err
			}
			st.Position = v
		}
	default:
		return fmt.Errorf("stop field %s: %w", f, ErrValidation)
	}
	return nil
}

// Replace swaps whole content of the store with given layers. Layers are
// validated first and store is left untouched on any error. Colors are
// stored in canonical "#rrggbb" form. Identifiers are
// kept when they are valid and unique, otherwise new ones are generated.
// Empty input produces single default layer. First layer becomes active.
func (s *Store) Replace(layers []Layer) error {
	var errs []error
	for i := range layers {
		if err := layers[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("layer %d (%q): %w", i, layers[i].ID, err))
		}
	}
	if len(errs) > 0 {
		return multierr.Combine(errs...)
	}

	old := s.layers
	s.layers = make([]*Layer, 0, max(len(layers), 1))
	for i := range layers {
		l := layers[i].Clone()
		l.canonicalColors()
		if !ValidID(l.ID) || s.index(l.ID) >= 0 {
			was := l.ID
			l.ID = s.nextID(l.Name)
			s.log.Debug("Layer id regenerated", zap.String("was", was), zap.String("now", l.ID))
		}
		s.layers = append(s.layers, &l)
	}
	if len(s.layers) == 0 {
		s.layers = append(s.layers, newLayer(s.nextID(s.baseName), s.baseName, 0, s.width, s.height))
	}
	s.active = s.layers[0].ID

	s.log.Debug("Store replaced", zap.Int("was", len(old)), zap.Int("now", len(s.layers)))
	return nil
}

// String returns human readable dump of the store for debugging.
func (s *Store) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Layers: %d, active %q", len(s.layers), s.active)
	for i, l := range s.layers {
		tw.Line(1, "[%d] %q name %q visible %t opacity %v size %vx%v", i, l.ID, l.Name, l.Visible, l.Opacity, l.Width, l.Height)
		t := l.Transforms
		tw.Line(2, "translate(%v, %v, %v) scale(%v, %v, %v) rotate(%v, %v, %v)",
			t.TranslateX, t.TranslateY, t.TranslateZ, t.ScaleX, t.ScaleY, t.ScaleZ, t.RotateX, t.RotateY, t.RotateZ)
		tw.Line(2, "gradient %s angle %v stops %d", l.Gradient.Type, l.Gradient.Angle, len(l.Gradient.Stops))
		for j, st := range l.Gradient.Stops {
			tw.Line(3, "[%d] %s alpha %v at %v%%", j, st.Color, st.Alpha, st.Position)
		}
		if l.Shadow.Enabled {
			tw.Line(2, "shadow %s (%v, %v) blur %v", l.Shadow.Color, l.Shadow.X, l.Shadow.Y, l.Shadow.Blur)
		}
	}
	return tw.String()
}
