// Package codec provides the base64 text encodings used by rcli.
//
// Authentication tags always travel as URL-safe base64 without padding. The
// decoder is strict: every tag has exactly one accepted spelling, so changing
// any character of a tag either changes the decoded bytes or is rejected.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mrz1836/rcli/internal/errors"
)

//nolint:gochecknoglobals // Immutable encoding shared by EncodeTag and DecodeTag
var tagEncoding = base64.RawURLEncoding.Strict()

// EncodeTag encodes raw tag bytes for textual transport.
func EncodeTag(raw []byte) string {
	return tagEncoding.EncodeToString(raw)
}

// DecodeTag decodes tag text produced by EncodeTag and checks that it holds
// exactly size bytes. Surrounding whitespace is ignored. Any failure is
// reported as ErrMalformedSignature.
func DecodeTag(text string, size int) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty signature", errors.ErrMalformedSignature)
	}

	raw, err := tagEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedSignature, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", errors.ErrMalformedSignature, len(raw), size)
	}
	return raw, nil
}
