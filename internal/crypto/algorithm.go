package crypto

import (
	"fmt"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto/keyed"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
)

// Algorithm selects a signing scheme. The zero value is not a valid algorithm,
// so an unset Algorithm is rejected instead of silently picking a default.
//
// Algorithm implements pflag.Value: binding it to a flag rejects unknown
// tokens while arguments are parsed, before any file is touched.
type Algorithm uint8

const (
	// Blake3 is the BLAKE3 keyed hash: 32-byte shared key, 32-byte tag.
	Blake3 Algorithm = iota + 1

	// Ed25519 is the Ed25519 signature scheme: 32-byte private seed,
	// 32-byte public key, 64-byte signature.
	Ed25519
)

// ParseAlgorithm maps a case-sensitive format token to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case constants.FormatBlake3:
		return Blake3, nil
	case constants.FormatEd25519:
		return Ed25519, nil
	default:
		return 0, fmt.Errorf("%w: %q must be one of %v", errors.ErrUnknownAlgorithm, s, AlgorithmNames())
	}
}

// AlgorithmNames returns the accepted format tokens.
func AlgorithmNames() []string {
	return []string{constants.FormatBlake3, constants.FormatEd25519}
}

// String returns the format token for a.
func (a Algorithm) String() string {
	switch a {
	case Blake3:
		return constants.FormatBlake3
	case Ed25519:
		return constants.FormatEd25519
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Valid reports whether a is one of the defined algorithms.
func (a Algorithm) Valid() bool {
	return a == Blake3 || a == Ed25519
}

// Symmetric reports whether signing and verification share one key.
func (a Algorithm) Symmetric() bool {
	return a == Blake3
}

// SigningKeySize is the length in bytes of the key used to sign.
func (a Algorithm) SigningKeySize() int {
	switch a {
	case Blake3:
		return keyed.KeySize
	case Ed25519:
		return native.SeedSize
	default:
		return 0
	}
}

// VerifyingKeySize is the length in bytes of the key used to verify.
func (a Algorithm) VerifyingKeySize() int {
	switch a {
	case Blake3:
		return keyed.KeySize
	case Ed25519:
		return native.PublicKeySize
	default:
		return 0
	}
}

// TagSize is the length in bytes of a raw tag.
func (a Algorithm) TagSize() int {
	switch a {
	case Blake3:
		return keyed.TagSize
	case Ed25519:
		return native.SignatureSize
	default:
		return 0
	}
}

// MarshalText renders the format token, so JSON output shows "blake3"/"ed25519".
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText parses a format token.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Set implements pflag.Value.
func (a *Algorithm) Set(s string) error {
	return a.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string {
	return "format"
}
