package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution, including a verification
	// that ran and printed false.
	ExitSuccess = 0
	// ExitError indicates a runtime failure such as unreadable input.
	ExitError = 1
	// ExitInvalidInput indicates a configuration error: bad flags, unknown
	// format tokens or invalid configuration files.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = constants.OutputFormatText
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = constants.OutputFormatJSON
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// --output has no shorthand because -o names the output file or directory
// of individual subcommands.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(&flags.Output, "output", OutputText, "result format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for environment variable
// support. The RCLI_ prefix is used (e.g., RCLI_OUTPUT, RCLI_VERBOSE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Root().PersistentFlags() finds the flags even when called from a subcommand.
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{"output", "verbose", "quiet"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	return slices.Contains(ValidOutputFormats(), format)
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for
// configuration errors (invalid flags, unknown tokens, bad config files), and
// ExitError (1) for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.IsExitCode2Error(err) || errors.IsConfigurationError(err) {
		return ExitInvalidInput
	}

	// Cobra and pflag report parse failures as plain strings. OS errors are
	// excluded first since EINVAL reads "invalid argument".
	if !errors.IsSystemError(err) && isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// invalidInputPatterns lists the message fragments Cobra and pflag use for
// parse failures. A pattern with several fragments matches only when all are
// present.
//
//nolint:gochecknoglobals // read-only lookup table
var invalidInputPatterns = [][]string{
	{"unknown flag: "},
	{"unknown shorthand flag: "},
	{"flag needs an argument: "},
	{`invalid argument "`, `" flag`},
	{"if any flags in the group ["},
	{"at least one of the flags in the group ["},
	{`required flag(s) "`},
	{`unknown command "`, `" for "`},
	{"arg(s), received "},
	{"arg(s), only received "},
}

// isInvalidInputError checks if an error message is one of Cobra's built-in
// flag or argument validation errors.
func isInvalidInputError(errMsg string) bool {
	for _, fragments := range invalidInputPatterns {
		if containsAll(errMsg, fragments) {
			return true
		}
	}
	return false
}

func containsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}
