package keyed

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/testutil"
)

// vectorInput builds the repeating 0..250 byte pattern used by the BLAKE3 test vectors.
func vectorInput(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestSigner_KnownVectors(t *testing.T) {
	elvish := []byte("whats the Elvish word for friend")

	tests := []struct {
		name    string
		key     []byte
		message []byte
		want    string
	}{
		{"reference empty", elvish, vectorInput(0), "92b2b75604ed3c761f9d6f62392c8a9227ad0ea3f09573e783f1498a4ed60d26"},
		{"reference one byte", elvish, vectorInput(1), "6d7878dfff2f485635d39013278ae14f1454b8c0a3a2d34bc1ab38228a80c95b"},
		{"reference multi chunk", elvish, vectorInput(1023), "c951ecdf03288d0fcc96ee3413563d8a6d3589547f2c2fb36d9786470f1b9d6e"},
		{"zero key hello", make([]byte, KeySize), []byte("hello"), "e0f68bfec361216ec02fc15736643a70471d96260b0fe6f273a909bb8b6dbd81"},
		{"zero key empty", make([]byte, KeySize), nil, "a7f91ced0533c12cd59706f2dc38c2a8c39c007ae89ab6492698778c8684c483"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSigner(tc.key)
			require.NoError(t, err)

			tag, err := s.Sign(context.Background(), tc.message)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hex.EncodeToString(tag))
			require.NoError(t, s.Verify(context.Background(), tc.message, tag))
		})
	}
}

func TestSigner_ZeroKeyHelloTagText(t *testing.T) {
	s, err := NewSigner(make([]byte, KeySize))
	require.NoError(t, err)

	tag, err := s.Sign(context.Background(), []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "4PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE", base64.RawURLEncoding.EncodeToString(tag))
}

func TestNewSigner_InvalidKeySize(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := NewSigner(make([]byte, n))
		require.ErrorIs(t, err, rclierrors.ErrInvalidKeySize, "key of %d bytes", n)
	}
}

func TestNewSigner_CopiesKey(t *testing.T) {
	key := bytes.Repeat([]byte{7}, KeySize)
	s, err := NewSigner(key)
	require.NoError(t, err)

	before, err := s.Sign(context.Background(), []byte("msg"))
	require.NoError(t, err)

	key[0] ^= 0xff
	after, err := s.Sign(context.Background(), []byte("msg"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSigner_Verify(t *testing.T) {
	ctx := context.Background()
	s, err := NewSigner(bytes.Repeat([]byte{1}, KeySize))
	require.NoError(t, err)

	msg := []byte("attack at dawn")
	tag, err := s.Sign(ctx, msg)
	require.NoError(t, err)
	require.Len(t, tag, TagSize)

	t.Run("deterministic", func(t *testing.T) {
		again, signErr := s.Sign(ctx, msg)
		require.NoError(t, signErr)
		assert.Equal(t, tag, again)
	})

	t.Run("altered message", func(t *testing.T) {
		assert.ErrorIs(t, s.Verify(ctx, []byte("attack at dusk"), tag), rclierrors.ErrInvalidSignature)
	})

	t.Run("every flipped bit is rejected", func(t *testing.T) {
		for i := range len(tag) * 8 {
			mutated := bytes.Clone(tag)
			mutated[i/8] ^= 1 << (i % 8)
			require.ErrorIs(t, s.Verify(ctx, msg, mutated), rclierrors.ErrInvalidSignature, "bit %d", i)
		}
	})

	t.Run("different key", func(t *testing.T) {
		other, newErr := NewSigner(bytes.Repeat([]byte{2}, KeySize))
		require.NoError(t, newErr)
		assert.ErrorIs(t, other.Verify(ctx, msg, tag), rclierrors.ErrInvalidSignature)
	})

	t.Run("wrong length", func(t *testing.T) {
		assert.ErrorIs(t, s.Verify(ctx, msg, tag[:31]), rclierrors.ErrMalformedSignature)
		assert.ErrorIs(t, s.Verify(ctx, msg, append(bytes.Clone(tag), 0)), rclierrors.ErrMalformedSignature)
		assert.ErrorIs(t, s.Verify(ctx, msg, nil), rclierrors.ErrMalformedSignature)
	})
}

func TestGenerateKey(t *testing.T) {
	t.Run("reads exactly KeySize bytes", func(t *testing.T) {
		key, err := GenerateKey(testutil.ZeroReader{})
		require.NoError(t, err)
		assert.Equal(t, make([]byte, KeySize), key)
	})

	t.Run("short entropy source", func(t *testing.T) {
		_, err := GenerateKey(bytes.NewReader(make([]byte, 10)))
		require.Error(t, err)
	})

	t.Run("failing entropy source", func(t *testing.T) {
		_, err := GenerateKey(iotest.ErrReader(testutil.ErrMockRandom))
		require.ErrorIs(t, err, testutil.ErrMockRandom)
	})
}
