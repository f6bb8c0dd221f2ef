package crypto

import (
	"os"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/testutil"
)

func TestGenerateKeys(t *testing.T) {
	t.Run("blake3 writes one secret key", func(t *testing.T) {
		files, err := GenerateKeys(Blake3, testutil.ZeroReader{})
		require.NoError(t, err)
		require.Len(t, files, 1)

		assert.Equal(t, "blake3.key", files[0].Name)
		assert.Len(t, files[0].Data, 32)
		assert.Equal(t, os.FileMode(0o600), files[0].Perm)
	})

	t.Run("ed25519 writes seed then public key", func(t *testing.T) {
		files, err := GenerateKeys(Ed25519, testutil.ZeroReader{})
		require.NoError(t, err)
		require.Len(t, files, 2)

		assert.Equal(t, "ed25519.sk", files[0].Name)
		assert.Len(t, files[0].Data, 32)
		assert.Equal(t, os.FileMode(0o600), files[0].Perm)

		assert.Equal(t, "ed25519.pk", files[1].Name)
		assert.Len(t, files[1].Data, 32)
		assert.Equal(t, os.FileMode(0o644), files[1].Perm)
		assert.NotEqual(t, files[0].Data, files[1].Data)
	})

	t.Run("entropy failure", func(t *testing.T) {
		for _, alg := range []Algorithm{Blake3, Ed25519} {
			_, err := GenerateKeys(alg, iotest.ErrReader(testutil.ErrMockRandom))
			require.ErrorIs(t, err, testutil.ErrMockRandom, alg.String())
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := GenerateKeys(Algorithm(0), testutil.ZeroReader{})
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	})
}

func TestKeyFileNames(t *testing.T) {
	assert.Equal(t, []string{"blake3.key"}, KeyFileNames(Blake3))
	assert.Equal(t, []string{"ed25519.sk", "ed25519.pk"}, KeyFileNames(Ed25519))
	assert.Nil(t, KeyFileNames(Algorithm(0)))

	for _, alg := range []Algorithm{Blake3, Ed25519} {
		files, err := GenerateKeys(alg, testutil.ZeroReader{})
		require.NoError(t, err)
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name)
		}
		assert.Equal(t, KeyFileNames(alg), names)
	}
}
