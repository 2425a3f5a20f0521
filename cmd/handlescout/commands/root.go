// Package commands implements the CLI commands for handlescout.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmarden/handlescout/internal/config"
	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// cfgFile holds the value of the --config flag.
var cfgFile string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// appConfig is the loaded configuration, populated by initConfig.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/handlescout/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("handlescout version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	appConfig, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "handlescout",
	Short: "Find usernames that are still free across platforms",
	Long: `handlescout generates username candidates and checks whether they are
still available on the platforms you care about.

Six generation styles produce candidates, from pronounceable random
strings to adjective-noun pairs and leetspeak mashes. Availability is
resolved per platform with the probing approach that platform needs:
a plain status check where 404 is honest, content heuristics where it
is not, and internal JSON endpoints where pages render a script shell.

Platforms without a reliable automated check are reported as unknown
together with the profile URL to check by hand.`,
	Example: `  # Generate five candidates
  handlescout generate -n 5

  # Check a specific name on GitHub and Instagram
  handlescout check octoseven --platform github --platform instagram

  # Search until a name is free on every configured platform
  handlescout find --style adjective_noun

  See Also: handlescout platforms, handlescout init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("HANDLESCOUT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load and validation problems before any
// command runs.
func checkConfig(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if errs := config.Validate(appConfig); len(errs) > 0 {
		return errors.NewConfigError(errs[0])
	}

	return nil
}

// currentConfig returns the loaded configuration, falling back to
// defaults when commands are run outside Execute (tests).
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
