package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/config"
)

// ExecutionContext holds what every subcommand needs after the root command
// has parsed global flags and loaded configuration.
type ExecutionContext struct {
	// Config is the merged configuration (defaults, files, environment).
	Config *config.Config

	// OutputFormat is the validated --output value.
	OutputFormat string

	// Quiet suppresses informational output on stderr.
	Quiet bool

	// Logger is the CLI logger.
	Logger zerolog.Logger
}

// executionContextKey is the context key for ExecutionContext.
type executionContextKey struct{}

// WithExecutionContext returns a new context with the ExecutionContext attached.
func WithExecutionContext(ctx context.Context, ec *ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey{}, ec)
}

// GetExecutionContext retrieves the ExecutionContext from the context.
// Returns nil if no execution context was set.
func GetExecutionContext(ctx context.Context) *ExecutionContext {
	ec, _ := ctx.Value(executionContextKey{}).(*ExecutionContext)
	return ec
}

// executionContext returns the command's ExecutionContext, falling back to
// defaults when the command runs outside the root command.
func executionContext(cmd *cobra.Command) *ExecutionContext {
	if ec := GetExecutionContext(cmd.Context()); ec != nil {
		return ec
	}
	return &ExecutionContext{
		Config:       config.DefaultConfig(),
		OutputFormat: OutputText,
		Logger:       GetLogger(),
	}
}

// JSON reports whether results should be printed as JSON.
func (ec *ExecutionContext) JSON() bool {
	return ec.OutputFormat == OutputJSON
}
