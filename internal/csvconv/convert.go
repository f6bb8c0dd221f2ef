// Package csvconv converts CSV data into JSON, YAML or TOML documents.
//
// With a header row every record becomes an object keyed by column name;
// without one every record is a plain list of fields.
package csvconv

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/source"
)

// tomlRootKey holds the records in TOML output, whose root must be a table.
const tomlRootKey = "records"

// outputFilePerm is the permission used for converted files.
const outputFilePerm = 0o644

// Options controls how CSV is read and rendered.
type Options struct {
	Format    Format
	Delimiter rune
	Header    bool
}

// Validate checks that opts can be used for a conversion.
func (o Options) Validate() error {
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return ValidateDelimiter(o.Delimiter)
}

// ValidateDelimiter rejects delimiters encoding/csv cannot use.
func ValidateDelimiter(r rune) error {
	if r == 0 || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidDelimiter, r)
	}
	return nil
}

// Convert reads CSV from r and renders it in opts.Format.
func Convert(r io.Reader, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	data, err := readRecords(r, opts)
	if err != nil {
		return nil, err
	}
	return render(data, opts.Format)
}

func readRecords(r io.Reader, opts Options) (any, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidCSV, err)
	}

	if !opts.Header {
		if rows == nil {
			rows = [][]string{}
		}
		return rows, nil
	}

	records := make([]map[string]string, 0, len(rows))
	if len(rows) == 0 {
		return records, nil
	}
	header := rows[0]
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", errors.ErrInvalidCSV, name)
		}
		seen[name] = struct{}{}
	}
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			record[name] = row[i]
		}
		records = append(records, record)
	}
	return records, nil
}

func render(data any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(map[string]any{tomlRootKey: data}); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedOutputFormat, format)
	}
}

// Converter converts CSV files through a source resolver and writes results
// to a filesystem.
type Converter struct {
	resolver *source.Resolver
	fs       afero.Fs
	logger   zerolog.Logger
}

// NewConverter creates a Converter.
func NewConverter(resolver *source.Resolver, fs afero.Fs, logger zerolog.Logger) *Converter {
	return &Converter{
		resolver: resolver,
		fs:       fs,
		logger:   logger.With().Str("component", "csv").Logger(),
	}
}

// Request describes one conversion. An empty Output selects the format's
// default file name.
type Request struct {
	Input  string
	Output string
	Options
}

// Convert performs req and returns the path written.
func (c *Converter) Convert(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", errors.NewExitCode2Error(err)
	}

	input, err := c.resolver.ReadAll(ctx, req.Input)
	if err != nil {
		return "", errors.Wrap(err, "failed to read csv")
	}

	out, err := Convert(bytes.NewReader(input), req.Options)
	if err != nil {
		return "", errors.Wrapf(err, "failed to convert %s", req.Input)
	}

	output := req.Output
	if output == "" {
		output = req.Format.DefaultOutput()
	}
	if err := afero.WriteFile(c.fs, output, out, outputFilePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}

	c.logger.Debug().
		Str("input", req.Input).
		Str("output", output).
		Str("format", string(req.Format)).
		Bool("header", req.Header).
		Int("bytes", len(out)).
		Msg("csv converted")

	return output, nil
}
