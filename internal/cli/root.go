// Package cli provides the command-line interface for rcli.
package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/logging"
	"github.com/mrz1836/rcli/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE and should be accessed via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// Before the root command's PersistentPreRunE has run it returns a
// zero-value logger that discards all output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the rcli CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rcli",
		Short: "rcli - sign, verify and convert data from the command line",
		Long: `rcli is a small toolbox for everyday data handling.

Features:
  • Sign and verify text with BLAKE3 keyed hashes or Ed25519 signatures
  • Generate signing keys
  • Convert CSV to JSON, YAML or TOML
  • Generate strong passwords
  • Encode and decode base64`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Environment (RCLI_OUTPUT) applies when the flag was not given.
			flags.Output = v.GetString("output")
			if !IsValidOutputFormat(flags.Output) {
				return errors.NewExitCode2Error(
					fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats()))
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger := InitLogger(flags.Verbose, flags.Quiet, cfg.Log.File)
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			logChangedFlags(logger, cmd)

			ec := &ExecutionContext{
				Config:       cfg,
				OutputFormat: flags.Output,
				Quiet:        flags.Quiet,
				Logger:       logger,
			}
			cmd.SetContext(WithExecutionContext(logger.WithContext(cmd.Context()), ec))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			CloseLogFile()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd)
	AddCSVCommand(cmd)
	AddGenPassCommand(cmd)
	AddBase64Command(cmd)

	return cmd
}

// logChangedFlags records the flags the user set explicitly.
// Values of secret-looking flags are redacted.
func logChangedFlags(logger zerolog.Logger, cmd *cobra.Command) {
	if logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	event := logger.Debug().Str("command", cmd.CommandPath())
	cmd.Flags().Visit(func(f *pflag.Flag) {
		event = event.Str(f.Name, logging.RedactIfSensitive(f.Name, f.Value.String()))
	})
	event.Msg("command started")
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// A returned error has already been reported on the command's error stream;
// callers only need to map it to an exit code with ExitCodeForError.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return executeCmd(ctx, cmd, flags)
}

func executeCmd(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// reportError prints err with the user-facing message and suggested action.
func reportError(w io.Writer, format string, err error) {
	msg, action := errors.Actionable(err)
	ae := tui.NewActionableError(msg, action).WithCause(err)
	if detail := err.Error(); detail != msg {
		ae = ae.WithContext(detail)
	}
	tui.NewOutput(w, format).Error(ae)
}
