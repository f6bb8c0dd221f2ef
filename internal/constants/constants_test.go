package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFileNames(t *testing.T) {
	t.Run("all key files are distinct", func(t *testing.T) {
		names := []string{Blake3KeyFileName, Ed25519SecretKeyFileName, Ed25519PublicKeyFileName}
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			assert.False(t, seen[n], "duplicate key file name %q", n)
			seen[n] = true
		}
	})

	t.Run("secret keys are not group or world readable", func(t *testing.T) {
		assert.Equal(t, 0, SecretKeyFileMode&0o077)
	})
}

func TestPasswordLengthBounds(t *testing.T) {
	assert.Less(t, MinPasswordLength, DefaultPasswordLength)
	assert.Less(t, DefaultPasswordLength, MaxPasswordLength)
}

func TestStdinSentinel(t *testing.T) {
	assert.Equal(t, "-", StdinSentinel)
}
