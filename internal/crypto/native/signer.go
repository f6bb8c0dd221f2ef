// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"io"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

const (
	// SeedSize is the length of the private seed stored on disk.
	SeedSize = ed25519.SeedSize

	// PublicKeySize is the length of a public key.
	PublicKeySize = ed25519.PublicKeySize

	// SignatureSize is the length of a signature.
	SignatureSize = ed25519.SignatureSize
)

// Signer implements the crypto.Signer interface using a specific Ed25519 key.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner expands a 32-byte private seed into a Signer.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rclierrors.ErrInvalidKeySize, SeedSize, len(seed))
	}
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign signs the message using Ed25519.
func (s *Signer) Sign(_ context.Context, message []byte) ([]byte, error) {
	return ed25519.Sign(s.privKey, message), nil
}

// Verify checks the signature against the public half of the key.
func (s *Signer) Verify(ctx context.Context, message, signature []byte) error {
	return (&Verifier{pubKey: s.Public()}).Verify(ctx, message, signature)
}

// Public returns the public key that matches the signing seed.
func (s *Signer) Public() ed25519.PublicKey {
	return s.privKey.Public().(ed25519.PublicKey) //nolint:errcheck,forcetypeassert // ed25519.PrivateKey always returns ed25519.PublicKey
}

// Verifier checks Ed25519 signatures with a public key only.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier creates a Verifier from a 32-byte public key. The key is copied.
func NewVerifier(pub []byte) (*Verifier, error) {
	if len(pub) != PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rclierrors.ErrInvalidKeySize, PublicKeySize, len(pub))
	}
	return &Verifier{pubKey: append(ed25519.PublicKey(nil), pub...)}, nil
}

// Verify checks the signature using Ed25519.
func (v *Verifier) Verify(_ context.Context, message, signature []byte) error {
	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", rclierrors.ErrMalformedSignature, SignatureSize, len(signature))
	}
	if !ed25519.Verify(v.pubKey, message, signature) {
		return rclierrors.ErrInvalidSignature
	}
	return nil
}

// GenerateKey creates a new key pair from rand and returns the raw private
// seed and public key.
func GenerateKey(rand io.Reader) (seed, pub []byte, err error) {
	seed = make([]byte, SeedSize)
	if _, err = io.ReadFull(rand, seed); err != nil {
		return nil, nil, fmt.Errorf("generating ed25519 key: %w", err)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub = append([]byte(nil), priv.Public().(ed25519.PublicKey)...) //nolint:errcheck,forcetypeassert // always ed25519.PublicKey
	return seed, pub, nil
}
