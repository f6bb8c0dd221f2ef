package crypto

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/crypto/keyed"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/testutil"
)

// TestSignerImplementsVerifier verifies that Signer interface embeds Verifier behavior.
func TestSignerImplementsVerifier(_ *testing.T) {
	var _ Verifier = (Signer)(nil)
	var _ Signer = (*keyed.Signer)(nil)
	var _ Signer = (*native.Signer)(nil)
	var _ Verifier = (*native.Verifier)(nil)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, alg := range []Algorithm{Blake3, Ed25519} {
		t.Run(alg.String(), func(t *testing.T) {
			files, err := GenerateKeys(alg, bytes.NewReader(bytes.Repeat([]byte{3}, 64)))
			require.NoError(t, err)

			signKey := files[0].Data
			verifyKey := files[len(files)-1].Data

			s, err := NewSigner(alg, signKey)
			require.NoError(t, err)
			v, err := NewVerifier(alg, verifyKey)
			require.NoError(t, err)

			for _, msg := range [][]byte{nil, []byte("x"), bytes.Repeat([]byte("abc"), 5000)} {
				tag, signErr := s.Sign(ctx, msg)
				require.NoError(t, signErr)
				assert.Len(t, tag, alg.TagSize())
				require.NoError(t, v.Verify(ctx, msg, tag))
			}
		})
	}
}

func TestNewSigner_Errors(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := NewSigner(Algorithm(0), make([]byte, 32))
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	})

	t.Run("blake3 short key", func(t *testing.T) {
		_, err := NewSigner(Blake3, make([]byte, 16))
		require.ErrorIs(t, err, errors.ErrInvalidKeySize)
		assert.Contains(t, err.Error(), "blake3 signing key")
	})

	t.Run("ed25519 expanded private key", func(t *testing.T) {
		_, err := NewSigner(Ed25519, make([]byte, 64))
		require.ErrorIs(t, err, errors.ErrInvalidKeySize)
	})
}

func TestNewVerifier_Errors(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := NewVerifier(Algorithm(9), make([]byte, 32))
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	})

	t.Run("ed25519 long public key", func(t *testing.T) {
		_, err := NewVerifier(Ed25519, make([]byte, 33))
		require.ErrorIs(t, err, errors.ErrInvalidKeySize)
		assert.Contains(t, err.Error(), "ed25519 verifying key")
	})
}

func TestNewVerifier_Ed25519RejectsSecretKey(t *testing.T) {
	ctx := context.Background()
	files, err := GenerateKeys(Ed25519, testutil.ZeroReader{})
	require.NoError(t, err)
	seed := files[0].Data

	s, err := NewSigner(Ed25519, seed)
	require.NoError(t, err)
	sig, err := s.Sign(ctx, []byte("msg"))
	require.NoError(t, err)

	// The seed has the right length, so it is accepted as a public key but
	// cannot verify anything the matching private key signed.
	v, err := NewVerifier(Ed25519, seed)
	require.NoError(t, err)
	assert.ErrorIs(t, v.Verify(ctx, []byte("msg"), sig), errors.ErrInvalidSignature)
}
