package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"layercss/archive"
	"layercss/common"
	"layercss/config"
	"layercss/css"
	"layercss/layer"
	"layercss/library"
	"layercss/script"
	"layercss/settings"
	"layercss/state"
	"layercss/viewport"
)

// loadViewport creates editor and fills it from settings document.
func loadViewport(env *state.LocalEnv, path string) (*viewport.Viewport, error) {
	if len(path) == 0 {
		return nil, errors.New("no settings document has been specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read settings: %w", err)
	}
	if err := env.Rpt.StoreCopy("input/"+filepath.Base(path), path); err != nil {
		env.Log.Warn("Unable to store settings in the report", zap.Error(err))
	}
	v, err := env.NewViewport()
	if err != nil {
		return nil, err
	}
	if err := v.Import(data, settings.FormatFromPath(path)); err != nil {
		return nil, fmt.Errorf("unable to import settings '%s': %w", path, err)
	}
	env.Log.Debug("Settings loaded", zap.String("file", path), zap.Int("layers", len(v.Layers())))
	return v, nil
}

// writeOutput writes data refusing to replace existing files unless
// overwrite is requested. Empty path means STDOUT.
func writeOutput(env *state.LocalEnv, path string, data []byte) error {
	if len(path) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}
	if _, err := os.Stat(path); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	env.Rpt.StoreData("output/"+filepath.Base(path), data)
	return nil
}

func saveSettings(env *state.LocalEnv, v *viewport.Viewport, path string) error {
	data, err := settings.Marshal(v.Export(), settings.FormatFromPath(path))
	if err != nil {
		return err
	}
	return writeOutput(env, path, data)
}

// produceCSS returns current CSS of the viewport checking it when requested.
func produceCSS(env *state.LocalEnv, v *viewport.Viewport, name string) ([]byte, error) {
	text := []byte(v.CSS())
	if env.CheckCSS || (env.Cfg != nil && env.Cfg.CSS.Check) {
		outline, err := css.NewParser(env.Log).Check(text, name)
		if err != nil {
			return nil, fmt.Errorf("generated CSS is malformed: %w", err)
		}
		env.Log.Debug("Generated CSS checked", zap.Int("rules", len(outline.Selectors)), zap.Int("keyframes", len(outline.Keyframes)))
	}
	return text, nil
}

func commonFlags(env *state.LocalEnv, cmd *cli.Command) {
	env.Overwrite = cmd.Bool("overwrite")
	env.HonorAngle = cmd.Bool("honor-angle")
	env.CheckCSS = cmd.Bool("check")
	env.KeepGoing = cmd.Bool("keep-going")
}

func newSettings(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	commonFlags(env, cmd)

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		dst = config.SettingsFileName(env.Cfg.Layers.BaseName, common.SettingsFormatJson.Ext())
	}
	v, err := env.NewViewport()
	if err != nil {
		return err
	}
	if err := saveSettings(env, v, dst); err != nil {
		return err
	}
	env.Log.Info("Settings created", zap.String("file", dst), zap.String("layer", v.Active()))
	return nil
}

func generateCSS(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	commonFlags(env, cmd)

	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	v, err := loadViewport(env, src)
	if err != nil {
		return err
	}
	text, err := produceCSS(env, v, src)
	if err != nil {
		return err
	}
	return writeOutput(env, dst, text)
}

func editSettings(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	commonFlags(env, cmd)

	src, scriptPath, dst := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)
	if len(scriptPath) == 0 {
		return errors.New("no editing script has been specified")
	}
	if len(dst) == 0 {
		// updating in place
		dst, env.Overwrite = src, true
	}

	v, err := loadViewport(env, src)
	if err != nil {
		return err
	}
	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}
	env.Rpt.Store("input/"+filepath.Base(scriptPath), scriptPath)

	applied, runErr := script.NewRunner(env.Log, env.KeepGoing).Run(v, s)
	env.Log.Info("Script replayed", zap.Int("applied", applied), zap.Int("steps", len(s.Steps)))
	if runErr != nil && !env.KeepGoing {
		return runErr
	}

	if err := saveSettings(env, v, dst); err != nil {
		return err
	}
	if cssPath := cmd.String("css"); len(cssPath) > 0 {
		text, err := produceCSS(env, v, cssPath)
		if err != nil {
			return err
		}
		if err := writeOutput(env, cssPath, text); err != nil {
			return err
		}
	}
	return runErr
}

func playLayer(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	v, err := loadViewport(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	value, err := v.PlayCommand(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}

func listPresets(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	v, err := loadViewport(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	presets := v.Presets()
	for _, name := range presets.Names() {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", name, presets[name])
	}
	return nil
}

func openLibrary(env *state.LocalEnv) (*library.Library, error) {
	return library.Open(env.Cfg.Library.Path, env.Log)
}

// collectPresets gathers presets from settings documents and zip bundles of
// them. Every document is fully imported so broken ones are rejected.
func collectPresets(env *state.LocalEnv, sources []string) (layer.Presets, error) {
	if len(sources) == 0 {
		return nil, errors.New("no settings document has been specified")
	}
	all := layer.Presets{}
	for _, src := range sources {
		if !archive.IsBundle(src) {
			v, err := loadViewport(env, src)
			if err != nil {
				return nil, err
			}
			if err := mergeInto(all, v.Presets()); err != nil {
				return nil, err
			}
			continue
		}

		isSettings := func(name string) bool {
			ext := strings.ToLower(path.Ext(name))
			return ext == ".json" || ext == ".yaml" || ext == ".yml"
		}
		err := archive.Walk(src, isSettings, func(name string, data []byte) error {
			v, err := env.NewViewport()
			if err != nil {
				return err
			}
			if err := v.Import(data, settings.FormatFromPath(name)); err != nil {
				return fmt.Errorf("unable to import settings '%s' from '%s': %w", name, src, err)
			}
			env.Log.Debug("Bundled settings loaded", zap.String("bundle", src), zap.String("file", name))
			return mergeInto(all, v.Presets())
		})
		if err != nil {
			return nil, err
		}
	}
	return all, nil
}

func mergeInto(dst, src layer.Presets) error {
	for _, name := range src.Names() {
		if err := dst.Save(name, src[name]); err != nil {
			return err
		}
	}
	return nil
}

func libraryPush(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	presets, err := collectPresets(env, cmd.Args().Slice())
	if err != nil {
		return err
	}
	lib, err := openLibrary(env)
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.PutAll(presets); err != nil {
		return err
	}
	env.Log.Info("Presets pushed", zap.Int("count", len(presets)), zap.String("library", env.Cfg.Library.Path))
	return nil
}

func libraryPull(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	commonFlags(env, cmd)

	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if len(dst) == 0 {
		dst, env.Overwrite = src, true
	}
	v, err := loadViewport(env, src)
	if err != nil {
		return err
	}
	lib, err := openLibrary(env)
	if err != nil {
		return err
	}
	defer lib.Close()

	presets, err := lib.Presets()
	if err != nil {
		return err
	}
	if err := v.MergePresets(presets); err != nil {
		return err
	}
	env.Log.Info("Presets pulled", zap.Int("count", len(presets)), zap.String("library", env.Cfg.Library.Path))
	return saveSettings(env, v, dst)
}

func libraryList(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)

	lib, err := openLibrary(env)
	if err != nil {
		return err
	}
	defer lib.Close()

	entries, err := lib.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", e.Name, e.Updated.Format("2006-01-02 15:04:05"), e.Gradient)
	}
	return nil
}

func libraryDelete(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	name := cmd.Args().Get(0)
	if len(name) == 0 {
		return errors.New("no preset name has been specified")
	}
	lib, err := openLibrary(env)
	if err != nil {
		return err
	}
	defer lib.Close()

	return lib.Delete(name)
}
