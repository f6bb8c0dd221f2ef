package crypto

import (
	"io"
	"os"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto/keyed"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
)

// KeyFile is one file of a freshly generated key set.
type KeyFile struct {
	// Name is the base file name, e.g. "blake3.key".
	Name string

	// Data is the raw key material, written verbatim.
	Data []byte

	// Perm is the permission the file is created with.
	Perm os.FileMode
}

// KeyFileNames returns the file names GenerateKeys produces for alg, in order.
func KeyFileNames(alg Algorithm) []string {
	switch alg {
	case Blake3:
		return []string{constants.Blake3KeyFileName}
	case Ed25519:
		return []string{constants.Ed25519SecretKeyFileName, constants.Ed25519PublicKeyFileName}
	default:
		return nil
	}
}

// GenerateKeys creates new key material for alg, drawing entropy from rand.
// Blake3 yields one shared key file; Ed25519 yields the private seed followed
// by the public key.
func GenerateKeys(alg Algorithm, rand io.Reader) ([]KeyFile, error) {
	switch alg {
	case Blake3:
		key, err := keyed.GenerateKey(rand)
		if err != nil {
			return nil, err
		}
		return []KeyFile{
			{Name: constants.Blake3KeyFileName, Data: key, Perm: constants.SecretKeyFileMode},
		}, nil
	case Ed25519:
		seed, pub, err := native.GenerateKey(rand)
		if err != nil {
			return nil, err
		}
		return []KeyFile{
			{Name: constants.Ed25519SecretKeyFileName, Data: seed, Perm: constants.SecretKeyFileMode},
			{Name: constants.Ed25519PublicKeyFileName, Data: pub, Perm: constants.PublicKeyFileMode},
		}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "generate keys for %s", alg)
	}
}
