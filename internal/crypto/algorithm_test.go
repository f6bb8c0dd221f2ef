package crypto

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"blake3", Blake3, false},
		{"ed25519", Ed25519, false},
		{"BLAKE3", 0, true},
		{"Ed25519", 0, true},
		{"sha256", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}
}

func TestAlgorithm_Sizes(t *testing.T) {
	assert.Equal(t, 32, Blake3.SigningKeySize())
	assert.Equal(t, 32, Blake3.VerifyingKeySize())
	assert.Equal(t, 32, Blake3.TagSize())
	assert.True(t, Blake3.Symmetric())

	assert.Equal(t, 32, Ed25519.SigningKeySize())
	assert.Equal(t, 32, Ed25519.VerifyingKeySize())
	assert.Equal(t, 64, Ed25519.TagSize())
	assert.False(t, Ed25519.Symmetric())

	var zero Algorithm
	assert.False(t, zero.Valid())
	assert.Zero(t, zero.TagSize())
	assert.Equal(t, "Algorithm(0)", zero.String())
}

func TestAlgorithm_JSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Algorithm Algorithm `json:"algorithm"`
	}{Ed25519})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"ed25519"}`, string(out))

	var decoded struct {
		Algorithm Algorithm `json:"algorithm"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"algorithm":"blake3"}`), &decoded))
	assert.Equal(t, Blake3, decoded.Algorithm)

	_, err = json.Marshal(Algorithm(7))
	require.Error(t, err)
}

func TestAlgorithm_Flag(t *testing.T) {
	alg := Blake3
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&alg, "format", "algorithm")

	require.NoError(t, fs.Parse([]string{"--format", "ed25519"}))
	assert.Equal(t, Ed25519, alg)
	assert.Equal(t, "format", alg.Type())

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&alg, "format", "algorithm")
	err := fs.Parse([]string{"--format", "rsa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), errors.ErrUnknownAlgorithm.Error())
	assert.Equal(t, Ed25519, alg)
}
