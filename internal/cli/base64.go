package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/codec"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/source"
)

// base64Flags holds flags shared by the base64 subcommands.
type base64Flags struct {
	input  string
	format codec.Format
}

// base64Result is the JSON output of base64 encode.
type base64Result struct {
	Format  string `json:"format"`
	Encoded string `json:"encoded"`
}

// AddBase64Command adds the base64 command and its subcommands to the root command.
func AddBase64Command(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
		Long: `Encode or decode base64 with the standard or URL-safe alphabet.

  standard  RFC 4648 standard alphabet with padding
  urlsafe   RFC 4648 URL alphabet without padding`,
	}

	cmd.AddCommand(newBase64EncodeCmd(), newBase64DecodeCmd())
	root.AddCommand(cmd)
}

func addBase64Flags(cmd *cobra.Command, flags *base64Flags) {
	flags.format = codec.FormatStandard
	cmd.Flags().StringVarP(&flags.input, "input", "i", constants.StdinSentinel, "input file, or - for standard input")
	cmd.Flags().Var(&flags.format, "format", "alphabet (standard|urlsafe); defaults to base64.format from config")
}

func newBase64EncodeCmd() *cobra.Command {
	flags := &base64Flags{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		Long: `Encode the input bytes and print the base64 text.

Examples:
  rcli base64 encode -i image.png
  echo -n hello | rcli base64 encode --format urlsafe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBase64(cmd, flags, true)
		},
	}

	addBase64Flags(cmd, flags)
	return cmd
}

func newBase64DecodeCmd() *cobra.Command {
	flags := &base64Flags{}

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		Long: `Decode base64 text and write the raw bytes to standard output.
Surrounding whitespace, such as a trailing newline, is ignored.
The decoded bytes are written as-is even with --output json.

Examples:
  rcli base64 decode -i image.b64 > image.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBase64(cmd, flags, false)
		},
	}

	addBase64Flags(cmd, flags)
	return cmd
}

func runBase64(cmd *cobra.Command, flags *base64Flags, encode bool) error {
	ec := executionContext(cmd)

	format := codec.Format(ec.Config.Base64.Format)
	if cmd.Flags().Changed("format") {
		format = flags.format
	}

	resolver := source.NewResolver(afero.NewOsFs(), cmd.InOrStdin())
	data, err := resolver.ReadAll(cmd.Context(), flags.input)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	if encode {
		encoded := codec.Encode(format, data)
		return writeResult(cmd.OutOrStdout(), ec, encoded, base64Result{Format: string(format), Encoded: encoded})
	}

	decoded, err := codec.Decode(format, data)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}
