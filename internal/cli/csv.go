package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/csvconv"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/source"
	"github.com/mrz1836/rcli/internal/tui"
)

// csvFlags holds flags for the csv command.
type csvFlags struct {
	input     string
	out       string
	format    csvconv.Format
	delimiter csvconv.Delimiter
	header    bool
}

// csvResult is the JSON output of the csv command.
type csvResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Format string `json:"format"`
}

// AddCSVCommand adds the csv command to the root command.
func AddCSVCommand(root *cobra.Command) {
	root.AddCommand(newCSVCmd())
}

func newCSVCmd() *cobra.Command {
	flags := &csvFlags{
		format:    csvconv.FormatJSON,
		delimiter: ',',
		header:    true,
	}

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON, YAML or TOML",
		Long: `Convert a CSV file into JSON, YAML or TOML.

With a header row every record becomes an object keyed by column name;
with --header=false every record is a list of fields. TOML output keeps
the records under a top-level "records" key.

Examples:
  rcli csv -i players.csv
  rcli csv -i players.csv --format yaml -o players.yaml
  rcli csv -i data.tsv -d tab --header=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSV(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "CSV file, or - for standard input")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (default: output.<format>)")
	cmd.Flags().Var(&flags.format, "format", "output format (json|yaml|toml); defaults to csv.format from config")
	cmd.Flags().VarP(&flags.delimiter, "delimiter", "d", "field delimiter; defaults to csv.delimiter from config")
	cmd.Flags().BoolVar(&flags.header, "header", true, "treat the first record as column names")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCSV(cmd *cobra.Command, flags *csvFlags) error {
	ec := executionContext(cmd)
	cfg := ec.Config.CSV

	opts := csvconv.Options{
		Format:    csvconv.Format(cfg.Format),
		Delimiter: cfg.Delimiter,
		Header:    cfg.Header,
	}
	if cmd.Flags().Changed("format") {
		opts.Format = flags.format
	}
	if cmd.Flags().Changed("delimiter") {
		opts.Delimiter = rune(flags.delimiter)
	}
	if cmd.Flags().Changed("header") {
		opts.Header = flags.header
	}

	fs := afero.NewOsFs()
	resolver := source.NewResolver(fs, cmd.InOrStdin())
	if err := resolver.Check(flags.input); err != nil {
		return errors.NewExitCode2Error(err)
	}

	written, err := csvconv.NewConverter(resolver, fs, ec.Logger).Convert(cmd.Context(), csvconv.Request{
		Input:   flags.input,
		Output:  flags.out,
		Options: opts,
	})
	if err != nil {
		return err
	}

	if ec.JSON() {
		return tui.NewJSONOutput(cmd.OutOrStdout()).JSON(csvResult{
			Input:  flags.input,
			Output: written,
			Format: string(opts.Format),
		})
	}
	tui.NewOutput(cmd.OutOrStdout(), ec.OutputFormat).Success("wrote " + written)
	return nil
}
