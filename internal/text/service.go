// Package text implements signing, verification and key generation for
// arbitrary message bytes.
//
// Each operation is a single, stateless pass: the message and key are read in
// full from their locations, the tag is computed or checked, and nothing is
// kept between calls. Tags travel as URL-safe unpadded base64.
package text

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/codec"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/keystore"
	"github.com/mrz1836/rcli/internal/source"
)

// Service runs the text signing workflows.
type Service struct {
	resolver *source.Resolver
	store    *keystore.Store
	random   io.Reader
	logger   zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRandom replaces the entropy source used for key generation.
// Tests use it to get reproducible keys; production code keeps crypto/rand.
func WithRandom(r io.Reader) ServiceOption {
	return func(s *Service) {
		s.random = r
	}
}

// NewService creates a Service that reads through resolver and writes keys through store.
func NewService(resolver *source.Resolver, store *keystore.Store, logger zerolog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		resolver: resolver,
		store:    store,
		random:   rand.Reader,
		logger:   logger.With().Str("component", "text").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignRequest describes a signing operation.
type SignRequest struct {
	Input     string
	KeyPath   string
	Algorithm crypto.Algorithm
}

// VerifyRequest describes a verification operation.
type VerifyRequest struct {
	Input     string
	KeyPath   string
	Algorithm crypto.Algorithm
	Signature string
}

// VerifyResult is the outcome of a verification that ran to completion.
// Reason explains a negative result and is advisory only: a malformed
// signature and a mismatching one are both simply not Valid.
type VerifyResult struct {
	Valid  bool
	Reason error
}

// GenerateRequest describes a key generation operation.
type GenerateRequest struct {
	Algorithm crypto.Algorithm
	OutputDir string
	Force     bool
}

// Sign reads the message and signing key and returns the encoded tag.
func (s *Service) Sign(ctx context.Context, req SignRequest) (string, error) {
	if err := checkLocations(req.Algorithm, req.Input, req.KeyPath); err != nil {
		return "", err
	}

	key, err := s.readKey(ctx, req.KeyPath, req.Algorithm, req.Algorithm.SigningKeySize())
	if err != nil {
		return "", err
	}
	signer, err := crypto.NewSigner(req.Algorithm, key)
	if err != nil {
		return "", errors.Wrapf(err, "key %s", req.KeyPath)
	}

	message, err := s.resolver.ReadAll(ctx, req.Input)
	if err != nil {
		return "", errors.Wrap(err, "failed to read message")
	}

	tag, err := signer.Sign(ctx, message)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign message")
	}

	s.logger.Debug().
		Str("algorithm", req.Algorithm.String()).
		Str("input", req.Input).
		Int("message_bytes", len(message)).
		Msg("message signed")

	return codec.EncodeTag(tag), nil
}

// Verify reads the message and verifying key and checks req.Signature.
//
// An error is returned only when the check could not run (bad algorithm,
// unreadable or wrongly sized key, unreadable message). A signature that
// fails to decode or does not match yields a VerifyResult with Valid false.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	if err := checkLocations(req.Algorithm, req.Input, req.KeyPath); err != nil {
		return VerifyResult{}, err
	}

	key, err := s.readKey(ctx, req.KeyPath, req.Algorithm, req.Algorithm.VerifyingKeySize())
	if err != nil {
		return VerifyResult{}, err
	}
	verifier, err := crypto.NewVerifier(req.Algorithm, key)
	if err != nil {
		return VerifyResult{}, errors.Wrapf(err, "key %s", req.KeyPath)
	}

	message, err := s.resolver.ReadAll(ctx, req.Input)
	if err != nil {
		return VerifyResult{}, errors.Wrap(err, "failed to read message")
	}

	result := VerifyResult{Valid: true}
	tag, err := codec.DecodeTag(req.Signature, req.Algorithm.TagSize())
	if err == nil {
		err = verifier.Verify(ctx, message, tag)
	}
	if err != nil {
		result = VerifyResult{Valid: false, Reason: err}
	}

	s.logger.Debug().
		Str("algorithm", req.Algorithm.String()).
		Str("input", req.Input).
		Int("message_bytes", len(message)).
		Bool("valid", result.Valid).
		Msg("signature checked")

	return result, nil
}

// KeyPaths returns where Generate would write keys for alg inside dir.
func (s *Service) KeyPaths(alg crypto.Algorithm, dir string) []string {
	return keystore.Paths(dir, crypto.KeyFileNames(alg))
}

// ExistingKeys returns the key paths for alg inside dir that already exist.
func (s *Service) ExistingKeys(alg crypto.Algorithm, dir string) ([]string, error) {
	return s.store.Existing(s.KeyPaths(alg, dir))
}

// Generate creates fresh key material and writes it into req.OutputDir.
// It returns the written paths, private key first.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !req.Algorithm.Valid() {
		return nil, errors.NewExitCode2Error(errors.ErrUnknownAlgorithm)
	}
	if req.OutputDir == "" {
		return nil, errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "output directory"))
	}

	files, err := crypto.GenerateKeys(req.Algorithm, s.random)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate keys")
	}

	paths, err := s.store.Save(req.OutputDir, files, req.Force)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save keys")
	}

	s.logger.Info().
		Str("algorithm", req.Algorithm.String()).
		Strs("files", paths).
		Bool("overwrite", req.Force).
		Msg("keys generated")

	return paths, nil
}

// readKey reads the key at path and checks it has the size alg expects, so a
// key for the other algorithm is reported as such rather than misused.
func (s *Service) readKey(ctx context.Context, path string, alg crypto.Algorithm, size int) ([]byte, error) {
	key, err := s.resolver.ReadAll(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read key")
	}
	if len(key) != size {
		return nil, fmt.Errorf("%w: %s holds %d bytes, %s needs %d",
			errors.ErrInvalidKeySize, displayKey(path), len(key), alg, size)
	}
	return key, nil
}

func displayKey(path string) string {
	if source.IsStdin(path) {
		return "standard input"
	}
	return path
}

// checkLocations rejects requests that cannot run before any I/O happens.
// Standard input can only be consumed once, so message and key cannot both
// come from it.
func checkLocations(alg crypto.Algorithm, input, keyPath string) error {
	if !alg.Valid() {
		return errors.NewExitCode2Error(errors.ErrUnknownAlgorithm)
	}
	if input == "" {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "input"))
	}
	if keyPath == "" {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "key"))
	}
	if source.IsStdin(input) && source.IsStdin(keyPath) {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrConflictingFlags, "message and key cannot both be read from standard input"))
	}
	return nil
}
