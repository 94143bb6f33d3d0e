package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"layercss/config"
	"layercss/misc"
	"layercss/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Subcommands return regular errors, urfave/cli exit codes are not used.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	overwriteFlag := &cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing destination files"}
	honorAngleFlag := &cli.BoolFlag{Name: "honor-angle", Usage: "write stored angle of linear gradients instead of fixed 45deg"}
	checkFlag := &cli.BoolFlag{Name: "check", Usage: "parse produced CSS back to make sure it is well formed"}

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "editor core for layered CSS 3-D transform animations",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "new",
				Usage:        "Creates settings document with a single base layer",
				OnUsageError: usageErrorHandler,
				Action:       newSettings,
				Flags:        []cli.Flag{overwriteFlag},
				ArgsUsage:    "[DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
DESTINATION:
    settings file to create, ".yaml" or ".yml" extension selects YAML, JSON otherwise
    if absent - name is derived from configured base layer name
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "generate",
				Usage:        "Generates CSS for all layers of settings document",
				OnUsageError: usageErrorHandler,
				Action:       generateCSS,
				Flags:        []cli.Flag{overwriteFlag, honorAngleFlag, checkFlag},
				ArgsUsage:    "SETTINGS [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SETTINGS:
    settings document (JSON or YAML) previously exported or created with "new"

DESTINATION:
    CSS file to write, if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "edit",
				Usage:        "Replays editing script against settings document",
				OnUsageError: usageErrorHandler,
				Action:       editSettings,
				Flags: []cli.Flag{overwriteFlag, honorAngleFlag, checkFlag,
					&cli.BoolFlag{Name: "keep-going", Aliases: []string{"k"}, Usage: "do not stop on failed step, report all failures at the end"},
					&cli.StringFlag{Name: "css", Usage: "also write resulting CSS to `FILE`"},
				},
				ArgsUsage: "SETTINGS SCRIPT [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SETTINGS:
    settings document to start from

SCRIPT:
    YAML document with "steps" list, each step has "op" (add, duplicate, delete,
    activate, rename, set, toggle, reset, add-stop, remove-stop, set-stop,
    animation, save-preset, delete-preset) and operation arguments ("layer",
    "name", "field", "value", "index"). Step without "layer" applies to the
    active layer.

DESTINATION:
    where to write resulting settings, if absent - SETTINGS is updated in place
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "play",
				Usage:        "Prints animation value which starts layer animation",
				OnUsageError: usageErrorHandler,
				Action:       playLayer,
				ArgsUsage:    "SETTINGS [LAYER]",
			},
			{
				Name:         "presets",
				Usage:        "Lists gradient presets saved in settings document",
				OnUsageError: usageErrorHandler,
				Action:       listPresets,
				ArgsUsage:    "SETTINGS",
			},
			{
				Name:  "library",
				Usage: "Shares gradient presets between settings documents",
				Commands: []*cli.Command{
					{
						Name:         "push",
						Usage:        "Stores presets of settings documents (or zip bundles of them) in the library",
						OnUsageError: usageErrorHandler,
						Action:       libraryPush,
						ArgsUsage:    "SETTINGS...",
					},
					{
						Name:         "pull",
						Usage:        "Adds library presets to settings document",
						OnUsageError: usageErrorHandler,
						Action:       libraryPull,
						Flags:        []cli.Flag{overwriteFlag},
						ArgsUsage:    "SETTINGS [DESTINATION]",
					},
					{
						Name:         "list",
						Usage:        "Lists library presets",
						OnUsageError: usageErrorHandler,
						Action:       libraryList,
					},
					{
						Name:         "delete",
						Usage:        "Removes preset from the library",
						OnUsageError: usageErrorHandler,
						Action:       libraryDelete,
						ArgsUsage:    "NAME",
					},
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", "STDOUT"))
		_, err = os.Stdout.Write(data)
	} else {
		env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))
		err = os.WriteFile(fname, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
