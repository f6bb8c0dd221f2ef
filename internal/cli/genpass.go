package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/genpass"
	"github.com/mrz1836/rcli/internal/tui"
)

// genpassResult is the JSON output of the genpass command.
type genpassResult struct {
	Password string           `json:"password"`
	Strength genpass.Strength `json:"strength"`
}

// newPasswordGenerator is the generator used by the genpass command.
// Tests replace it with a deterministic entropy source.
//
//nolint:gochecknoglobals // Test injection point
var newPasswordGenerator = genpass.NewDefault

// AddGenPassCommand adds the genpass command to the root command.
func AddGenPassCommand(root *cobra.Command) {
	root.AddCommand(newGenPassCmd())
}

func newGenPassCmd() *cobra.Command {
	opts := genpass.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: fmt.Sprintf(`Generate a random password and print it on standard output.

Every enabled character class appears at least once. Look-alike characters
(0, O, I and l) are never used. The estimated strength is reported on
standard error so the password can be piped safely.

Length must be between %d and %d.

Examples:
  rcli genpass
  rcli genpass -l 32 --symbol=false`, constants.MinPasswordLength, constants.MaxPasswordLength),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenPass(cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", opts.Length, "password length")
	cmd.Flags().BoolVar(&opts.Uppercase, "uppercase", opts.Uppercase, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.Lowercase, "lowercase", opts.Lowercase, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.Number, "number", opts.Number, "include digits")
	cmd.Flags().BoolVar(&opts.Symbol, "symbol", opts.Symbol, "include symbols")

	return cmd
}

// genPassOptions merges the configured defaults with the flags the user set.
func genPassOptions(cmd *cobra.Command, ec *ExecutionContext, flags genpass.Options) genpass.Options {
	cfg := ec.Config.GenPass
	opts := genpass.Options{
		Length:    cfg.Length,
		Uppercase: cfg.Uppercase,
		Lowercase: cfg.Lowercase,
		Number:    cfg.Number,
		Symbol:    cfg.Symbol,
	}

	changed := cmd.Flags().Changed
	if changed("length") {
		opts.Length = flags.Length
	}
	if changed("uppercase") {
		opts.Uppercase = flags.Uppercase
	}
	if changed("lowercase") {
		opts.Lowercase = flags.Lowercase
	}
	if changed("number") {
		opts.Number = flags.Number
	}
	if changed("symbol") {
		opts.Symbol = flags.Symbol
	}
	return opts
}

func runGenPass(cmd *cobra.Command, flags *genpass.Options) error {
	ec := executionContext(cmd)
	opts := genPassOptions(cmd, ec, *flags)
	if err := opts.Validate(); err != nil {
		return errors.NewExitCode2Error(err)
	}

	password, err := newPasswordGenerator().Generate(opts)
	if err != nil {
		return errors.Wrap(err, "failed to generate password")
	}
	strength := genpass.Estimate(password)

	ec.Logger.Debug().
		Int("length", opts.Length).
		Int("score", strength.Score).
		Msg("password generated")

	if ec.JSON() {
		return tui.NewJSONOutput(cmd.OutOrStdout()).JSON(genpassResult{Password: password, Strength: strength})
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
		return err
	}
	if !ec.Quiet {
		tui.NewOutput(cmd.ErrOrStderr(), ec.OutputFormat).Table(
			[]string{"Score", "Entropy", "Crack time", "Strength"},
			[][]string{{
				strconv.Itoa(strength.Score) + "/4",
				fmt.Sprintf("%.1f bits", strength.Entropy),
				strength.CrackTime,
				tui.StrengthStyle(strength.Score).Render(tui.StrengthLabel(strength.Score)),
			}},
		)
	}
	return nil
}
