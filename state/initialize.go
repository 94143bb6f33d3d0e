package state

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"layercss/css"
	"layercss/layer"
	"layercss/viewport"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// ViewportOptions translates configuration into initial editor state. Command
// line flags take precedence over configuration.
func (e *LocalEnv) ViewportOptions() (viewport.Options, error) {
	opts := viewport.DefaultOptions()
	if e.Cfg == nil {
		opts.CSS.HonorAngle = e.HonorAngle
		return opts, nil
	}

	lc, ac, cc := e.Cfg.Layers, e.Cfg.Animation, e.Cfg.CSS

	opts.BaseName = lc.BaseName
	opts.IDs = layer.NewIDGenerator(lc.IDStyle)
	opts.Width, opts.Height = lc.Width, lc.Height

	count, err := layer.ParseIterationCount(ac.IterationCount)
	if err != nil {
		return opts, fmt.Errorf("animation.iteration_count: %w", err)
	}
	opts.Animation = layer.Animation{
		Duration:       ac.Duration,
		Delay:          ac.Delay,
		IterationCount: count,
		Direction:      ac.Direction,
		TimingFunction: ac.TimingFunction,
	}
	if err := opts.Animation.Validate(); err != nil {
		return opts, fmt.Errorf("animation: %w", err)
	}

	header, err := cc.Header()
	if err != nil {
		return opts, err
	}
	opts.CSS = css.Options{
		Header:     header,
		Indent:     cc.Indent,
		HonorAngle: cc.HonorGradientAngle || e.HonorAngle,
	}
	return opts, nil
}

// NewViewport creates editor with single base layer.
func (e *LocalEnv) NewViewport() (*viewport.Viewport, error) {
	opts, err := e.ViewportOptions()
	if err != nil {
		return nil, err
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	return viewport.New(log, opts)
}
