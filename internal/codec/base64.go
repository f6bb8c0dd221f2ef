package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Format selects the base64 alphabet for the standalone encode/decode commands.
// It implements pflag.Value so it can be bound directly to a command flag.
type Format string

// Supported formats.
const (
	FormatStandard Format = constants.Base64Standard
	FormatURLSafe  Format = constants.Base64URLSafe
)

// ParseFormat converts a format token into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatStandard, FormatURLSafe:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidBase64Format, s, Formats())
	}
}

// Formats returns the accepted format tokens.
func Formats() []string {
	return []string{string(FormatStandard), string(FormatURLSafe)}
}

// String implements fmt.Stringer and pflag.Value.
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

func (f Format) encoding() *base64.Encoding {
	if f == FormatURLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Encode encodes data with the alphabet selected by format.
func Encode(format Format, data []byte) string {
	return format.encoding().EncodeToString(data)
}

// Decode decodes text with the alphabet selected by format.
// Leading and trailing whitespace (such as a final newline) is ignored.
func Decode(format Format, text []byte) ([]byte, error) {
	trimmed := strings.TrimSpace(string(text))
	out, err := format.encoding().DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidBase64, err)
	}
	return out, nil
}
