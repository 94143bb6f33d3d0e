// Package settings converts editor state to and from a plain structural
// snapshot which is written to and read from settings files.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"layercss/common"
	"layercss/layer"
)

// Version of the snapshot layout.
const Version = 1

// Snapshot is everything needed to reconstruct editor state. It holds no
// references to live store records.
type Snapshot struct {
	Version        int             `json:"version" yaml:"version"`
	Layers         []layer.Layer   `json:"layers" yaml:"layers"`
	Animation      layer.Animation `json:"animation" yaml:"animation"`
	SavedGradients layer.Presets   `json:"savedGradients" yaml:"savedGradients"`
}

// Export takes deep copy of current state.
func Export(store *layer.Store, anim layer.Animation, presets layer.Presets) *Snapshot {
	return &Snapshot{
		Version:        Version,
		Layers:         store.Layers(),
		Animation:      anim,
		SavedGradients: presets.Clone(),
	}
}

// Restore replaces store content, animation profile and presets with
// snapshot values. Snapshot is fully validated first, on any error nothing
// is changed and error wraps layer.ErrParse.
func (s *Snapshot) Restore(store *layer.Store, anim *layer.Animation, presets *layer.Presets) error {
	if s.Version != 0 && s.Version != Version {
		return fmt.Errorf("unsupported settings version %d: %w", s.Version, layer.ErrParse)
	}
	if err := s.Animation.Validate(); err != nil {
		return fmt.Errorf("animation: %w: %w", layer.ErrParse, err)
	}
	saved := make(layer.Presets, len(s.SavedGradients))
	for _, name := range s.SavedGradients.Names() {
		if err := saved.Save(name, s.SavedGradients[name]); err != nil {
			return fmt.Errorf("saved gradients: %w: %w", layer.ErrParse, err)
		}
	}
	// store validates layers and stays untouched on error
	if err := store.Replace(s.Layers); err != nil {
		return fmt.Errorf("layers: %w: %w", layer.ErrParse, err)
	}
	*anim = s.Animation
	*presets = saved
	return nil
}

// FormatFromPath selects document format by file extension, JSON unless
// extension says YAML.
func FormatFromPath(path string) common.SettingsFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return common.SettingsFormatYaml
	default:
		return common.SettingsFormatJson
	}
}

// Marshal encodes snapshot.
func Marshal(s *Snapshot, format common.SettingsFormat) ([]byte, error) {
	switch format {
	case common.SettingsFormatYaml:
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings to yaml: %w", err)
		}
		return data, nil
	case common.SettingsFormatJson:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings to json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported settings format %s", format)
	}
}

// Unmarshal decodes snapshot. Unknown fields are rejected. Any problem is
// reported as layer.ErrParse.
func Unmarshal(data []byte, format common.SettingsFormat) (*Snapshot, error) {
	s := &Snapshot{}
	switch format {
	case common.SettingsFormatYaml:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("failed to decode yaml settings: %w: %w", layer.ErrParse, err)
		}
	case common.SettingsFormatJson:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("failed to decode json settings: %w: %w", layer.ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %s: %w", format, layer.ErrParse)
	}
	return s, nil
}
