// Package crypto defines the signing interfaces used by rcli and selects a
// backend for each Algorithm.
package crypto

import (
	"context"

	"github.com/mrz1836/rcli/internal/crypto/keyed"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
)

// Signer provides signing capabilities.
// Implementations must be deterministic: signing the same message twice produces the same signature.
type Signer interface {
	// Sign signs the given message and returns the raw tag.
	Sign(ctx context.Context, message []byte) ([]byte, error)

	// Verify checks that a raw tag is valid for the given message.
	// Returns nil if valid, ErrMalformedSignature if the tag has the wrong
	// length and ErrInvalidSignature if it does not match.
	Verify(ctx context.Context, message, signature []byte) error
}

// Verifier provides signature verification capabilities.
// This is a read-only subset of Signer for consumers that only need to verify.
type Verifier interface {
	Verify(ctx context.Context, message, signature []byte) error
}

// NewSigner builds a Signer for alg from the raw signing key bytes
// (the shared key for Blake3, the private seed for Ed25519).
func NewSigner(alg Algorithm, key []byte) (Signer, error) {
	switch alg {
	case Blake3:
		s, err := keyed.NewSigner(key)
		if err != nil {
			return nil, errors.Wrapf(err, "%s signing key", alg)
		}
		return s, nil
	case Ed25519:
		s, err := native.NewSigner(key)
		if err != nil {
			return nil, errors.Wrapf(err, "%s signing key", alg)
		}
		return s, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "signer for %s", alg)
	}
}

// NewVerifier builds a Verifier for alg from the raw verifying key bytes
// (the shared key for Blake3, the public key for Ed25519).
func NewVerifier(alg Algorithm, key []byte) (Verifier, error) {
	switch alg {
	case Blake3:
		s, err := keyed.NewSigner(key)
		if err != nil {
			return nil, errors.Wrapf(err, "%s verifying key", alg)
		}
		return s, nil
	case Ed25519:
		v, err := native.NewVerifier(key)
		if err != nil {
			return nil, errors.Wrapf(err, "%s verifying key", alg)
		}
		return v, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "verifier for %s", alg)
	}
}
