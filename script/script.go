// Package script replays editing actions described in a YAML document
// against a viewport. It is how editor state is changed from the command
// line.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"layercss/layer"
	"layercss/viewport"
)

// Step is a single editing action. Empty Layer refers to the layer active at
// the time step runs.
type Step struct {
	Op    Op     `yaml:"op"`
	Layer string `yaml:"layer,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Field string `yaml:"field,omitempty"`
	Value string `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
}

// Script is ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads script from file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes script, unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode script: %w: %w", layer.ErrParse, err)
	}
	return s, nil
}

// Runner executes scripts.
type Runner struct {
	log       *zap.Logger
	keepGoing bool
}

// NewRunner creates runner. With keepGoing set failed steps are reported
// and execution continues with the next one.
func NewRunner(log *zap.Logger, keepGoing bool) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log.Named("script"), keepGoing: keepGoing}
}

// Run applies steps in order. Returns number of steps applied successfully
// and all errors encountered.
func (r *Runner) Run(v *viewport.Viewport, s *Script) (applied int, err error) {
	for i, st := range s.Steps {
		if serr := r.step(v, st); serr != nil {
			serr = fmt.Errorf("step %d (%s): %w", i+1, st.Op, serr)
			if !r.keepGoing {
				return applied, serr
			}
			r.log.Warn("Step failed", zap.Int("step", i+1), zap.Error(serr))
			err = multierr.Append(err, serr)
			continue
		}
		applied++
		r.log.Debug("Step applied", zap.Int("step", i+1), zap.Stringer("op", st.Op), zap.String("active", v.Active()))
	}
	return applied, err
}

func (r *Runner) step(v *viewport.Viewport, st Step) error {
	switch st.Op {
	case OpAdd:
		_, err := v.AddLayer(st.Name)
		return err
	case OpDuplicate:
		_, err := v.DuplicateLayer(st.Layer)
		return err
	case OpDelete:
		return v.DeleteLayer(st.Layer)
	case OpActivate:
		return v.SetActiveLayer(st.Layer)
	case OpRename:
		return v.Set(st.Layer, layer.FieldName, st.Name)
	case OpSet:
		f, err := layer.ParseField(st.Field)
		if err != nil {
			return fmt.Errorf("%w: %w", err, layer.ErrValidation)
		}
		return v.Set(st.Layer, f, st.Value)
	case OpToggle:
		_, err := v.ToggleVisibility(st.Layer)
		return err
	case OpReset:
		return v.ResetTransforms(st.Layer)
	case OpAddStop:
		_, err := v.AddGradientStop(st.Layer)
		return err
	case OpRemoveStop:
		return v.RemoveGradientStop(st.Layer, st.Index)
	case OpSetStop:
		f, err := layer.ParseStopField(st.Field)
		if err != nil {
			return fmt.Errorf("%w: %w", err, layer.ErrValidation)
		}
		return v.SetGradientStopField(st.Layer, st.Index, f, st.Value)
	case OpAnimation:
		f, err := layer.ParseAnimationField(st.Field)
		if err != nil {
			return fmt.Errorf("%w: %w", err, layer.ErrValidation)
		}
		return v.SetAnimationField(f, st.Value)
	case OpSavePreset:
		return v.SavePreset(st.Name, st.Layer)
	case OpDeletePreset:
		return v.DeletePreset(st.Name)
	}
	return fmt.Errorf("unsupported operation %d: %w", st.Op, layer.ErrInvalidOperation)
}
