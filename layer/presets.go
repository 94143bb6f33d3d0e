package layer

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Presets maps user chosen name to literal CSS gradient value. Presets are
// independent of layers.
type Presets map[string]string

// Save stores (or overwrites) preset.
func (p Presets) Save(name, gradient string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("preset name: %w", errEmpty)
	}
	if strings.TrimSpace(gradient) == "" {
		return fmt.Errorf("preset %q value: %w", name, errEmpty)
	}
	p[name] = gradient
	return nil
}

// Get returns preset value.
func (p Presets) Get(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}
	return v, nil
}

// Delete removes preset.
func (p Presets) Delete(name string) error {
	if _, ok := p[name]; !ok {
		return fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}
	delete(p, name)
	return nil
}

// Names returns preset names in natural order ("sunset 2" before "sunset 10").
func (p Presets) Names() []string {
	names := slices.Collect(maps.Keys(p))
	sort.Sort(natural.StringSlice(names))
	return names
}

// Clone returns independent copy, never nil.
func (p Presets) Clone() Presets {
	c := make(Presets, len(p))
	maps.Copy(c, p)
	return c
}
