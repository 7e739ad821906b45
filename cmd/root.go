package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/config"
	"github.com/mj1618/ymsp/internal/output"
	"github.com/mj1618/ymsp/internal/session"
	"github.com/mj1618/ymsp/internal/version"
	"github.com/spf13/cobra"
)

// defaultLogFile is the --log-file value used when the flag is given
// without a path.
const defaultLogFile = "default"

var rootCmd = &cobra.Command{
	Use:   "ymsp",
	Short: "Master/stack tiling layout for yabai",
	Long: `ymsp keeps the windows of the focused yabai space in a master/stack layout:
a master column on one side and a stack column on the other.

It is meant to be run from yabai signals and key bindings, e.g.

  yabai -m signal --add event=window_created action="ymsp window-created"
  yabai -m signal --add event=window_moved action="ymsp window-moved"
  yabai -m signal --add event=dock_did_restart action="ymsp on-yabai-start"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// activeLogger is the logger built by setup, used to report the final error.
var activeLogger = log.Default()

// logFile is the open --log-file, closed when Execute returns.
var logFile *os.File

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		activeLogger.Error(err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: first of ~/.config/ymsp/ymsp.config.{json,yaml,yml,toml})")
	flags.BoolP("dry-run", "n", false, "Log yabai commands and state changes instead of applying them")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-file", "", "Append logs to this file instead of stderr (default path when given without a value)")
	flags.Lookup("log-file").NoOptDefVal = defaultLogFile
	flags.String("format", "", "Output format: yaml, json, text (default: text on a terminal, yaml when piped)")
	rootCmd.PersistentPreRunE = setup
}

// setup loads the config, picks the output format and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	// Use the root persistent flags directly so subcommand local flags
	// cannot shadow them.
	flags := rootCmd.PersistentFlags()
	configPath, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")
	logPath, _ := flags.GetString("log-file")
	format, _ := flags.GetString("format")

	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if verbose {
		level = log.DebugLevel
	}
	if logPath == "" {
		logPath = cfg.LogFile
	}
	w := os.Stderr
	if logPath != "" {
		if logFile, err = openLogFile(logPath); err != nil {
			return err
		}
		w = logFile
	}
	logger := newLogger(w, level)
	activeLogger = logger
	logger.Debug("config loaded", "yabai", cfg.YabaiPath, "position", cfg.MasterPosition, "moveNewWindowsToMaster", cfg.MoveNewWindowsToMaster)

	ctx := withLogger(cmd.Context(), logger)
	ctx = withConfig(ctx, cfg)
	cmd.SetContext(ctx)
	return nil
}

// loadConfig reads path, or the first config file found in the config
// directory. Having no config file at all is fine.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return config.Config{}, err
		}
		path, err = config.Discover(dir)
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

type configKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the config set up by the root command, or the
// defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// newRunner builds the session runner for a command.
func newRunner(cmd *cobra.Command) (*session.Runner, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDir(dir); err != nil {
		return nil, err
	}
	dryRun, _ := rootCmd.PersistentFlags().GetBool("dry-run")
	return session.New(session.Options{
		Config: configFromContext(cmd.Context()),
		Dir:    dir,
		Logger: loggerFromContext(cmd.Context()),
		DryRun: dryRun,
	}), nil
}

// runLocked runs fn in a session holding the exclusivity lock.
func runLocked(cmd *cobra.Command, fn func(ctx context.Context, s *session.Session) error) error {
	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}
	return runner.Locked(cmd.Context(), fn)
}

// sessionCommand is a command that runs one session operation and prints
// nothing.
func sessionCommand(use, short string, op func(*session.Session, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocked(cmd, func(ctx context.Context, s *session.Session) error {
				return op(s, ctx)
			})
		},
	}
}
