// Package keyed implements message authentication with the BLAKE3 keyed hash.
//
// The same 32-byte key is used to produce and to check a tag, so anyone able
// to verify is also able to sign.
package keyed

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"

	"lukechampine.com/blake3"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

const (
	// KeySize is the length of a BLAKE3 key in bytes.
	KeySize = 32

	// TagSize is the length of the tag produced by Sign.
	TagSize = 32
)

// Signer computes and checks BLAKE3 keyed-hash tags.
type Signer struct {
	key [KeySize]byte
}

// NewSigner creates a Signer from a 32-byte key. The key is copied.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rclierrors.ErrInvalidKeySize, KeySize, len(key))
	}
	s := &Signer{}
	copy(s.key[:], key)
	return s, nil
}

// Sign returns the 32-byte keyed hash of message.
func (s *Signer) Sign(_ context.Context, message []byte) ([]byte, error) {
	return s.sum(message), nil
}

// Verify recomputes the tag for message and compares it in constant time.
func (s *Signer) Verify(_ context.Context, message, tag []byte) error {
	if len(tag) != TagSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", rclierrors.ErrMalformedSignature, TagSize, len(tag))
	}
	if subtle.ConstantTimeCompare(s.sum(message), tag) != 1 {
		return rclierrors.ErrInvalidSignature
	}
	return nil
}

func (s *Signer) sum(message []byte) []byte {
	h := blake3.New(TagSize, s.key[:])
	_, _ = h.Write(message)
	return h.Sum(nil)
}

// GenerateKey reads a fresh key from rand.
func GenerateKey(rand io.Reader) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand, key); err != nil {
		return nil, fmt.Errorf("generating blake3 key: %w", err)
	}
	return key, nil
}
