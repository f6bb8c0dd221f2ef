package csvconv

import (
	"fmt"
	"unicode/utf8"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Format is a conversion target. It implements pflag.Value.
type Format string

// Supported conversion targets.
const (
	FormatJSON Format = constants.CSVFormatJSON
	FormatYAML Format = constants.CSVFormatYAML
	FormatTOML Format = constants.CSVFormatTOML
)

// ParseFormat converts a format token into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatTOML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q must be one of %v", errors.ErrUnsupportedOutputFormat, s, Formats())
	}
}

// Formats returns the accepted format tokens.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// DefaultOutput is the file written when no output path is given.
func (f Format) DefaultOutput() string {
	return "output." + string(f)
}

// String implements pflag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Delimiter is a field separator given on the command line. It accepts a
// single character, or "tab" and `\t` for a tab. It implements pflag.Value.
type Delimiter rune

// ParseDelimiter converts a delimiter token into a rune.
func ParseDelimiter(s string) (rune, error) {
	if s == "tab" || s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) {
		return 0, fmt.Errorf("%w: %q must be a single character", errors.ErrInvalidDelimiter, s)
	}
	if err := ValidateDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}

// String implements pflag.Value.
func (d *Delimiter) String() string {
	if *d == '\t' {
		return "tab"
	}
	return string(rune(*d))
}

// Set implements pflag.Value.
func (d *Delimiter) Set(s string) error {
	r, err := ParseDelimiter(s)
	if err != nil {
		return err
	}
	*d = Delimiter(r)
	return nil
}

// Type implements pflag.Value.
func (d *Delimiter) Type() string {
	return "char"
}
