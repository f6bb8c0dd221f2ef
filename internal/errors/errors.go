// Package errors provides centralized error handling for rcli.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrUnknownAlgorithm indicates a signing format token other than the supported ones.
	ErrUnknownAlgorithm = errors.New("unknown signing algorithm")

	// ErrInvalidKeySize indicates key material whose length does not match the algorithm.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedSignature indicates signature text that cannot be decoded, or that
	// decodes to the wrong number of bytes for the algorithm.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrInvalidSignature indicates that a signature does not match the message and key.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrKeyExists indicates that key generation would overwrite an existing key file.
	ErrKeyExists = errors.New("key file already exists")

	// ErrSourceUnavailable indicates that an input location cannot be opened or read.
	ErrSourceUnavailable = errors.New("input source unavailable")

	// ErrInputNotFound indicates that an input path given on the command line does not exist.
	ErrInputNotFound = errors.New("input file does not exist")

	// ErrOutputNotDirectory indicates that a key output location is not a directory.
	ErrOutputNotDirectory = errors.New("output path is not a directory")

	// ErrConflictingFlags indicates that mutually exclusive flags were specified.
	ErrConflictingFlags = errors.New("conflicting flags specified")

	// ErrInvalidOutputFormat indicates an invalid --output value was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrUnsupportedOutputFormat indicates an unsupported conversion format was specified.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")

	// ErrInvalidBase64Format indicates an unknown base64 alphabet token.
	ErrInvalidBase64Format = errors.New("invalid base64 format")

	// ErrInvalidBase64 indicates input that is not valid base64 for the selected alphabet.
	ErrInvalidBase64 = errors.New("invalid base64 input")

	// ErrInvalidCSV indicates that CSV input could not be parsed.
	ErrInvalidCSV = errors.New("invalid csv input")

	// ErrInvalidDelimiter indicates a CSV delimiter that is not a single usable character.
	ErrInvalidDelimiter = errors.New("invalid csv delimiter")

	// ErrNoCharacterClasses indicates a password request with every character class disabled.
	ErrNoCharacterClasses = errors.New("no character classes enabled")

	// ErrInvalidPasswordLength indicates a password length outside the supported range.
	ErrInvalidPasswordLength = errors.New("invalid password length")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrConfigInvalidCSV indicates an invalid CSV configuration value.
	ErrConfigInvalidCSV = errors.New("invalid csv configuration")

	// ErrConfigInvalidGenPass indicates an invalid password generator configuration value.
	ErrConfigInvalidGenPass = errors.New("invalid genpass configuration")

	// ErrConfigInvalidBase64 indicates an invalid base64 configuration value.
	ErrConfigInvalidBase64 = errors.New("invalid base64 configuration")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}

// IsConfigurationError reports whether err belongs to the configuration class:
// problems detected before any I/O that re-running will not fix.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range []error{
		ErrUnknownAlgorithm,
		ErrConflictingFlags,
		ErrInvalidOutputFormat,
		ErrUnsupportedOutputFormat,
		ErrInvalidBase64Format,
		ErrInvalidDelimiter,
		ErrNoCharacterClasses,
		ErrInvalidPasswordLength,
		ErrInvalidArgument,
		ErrConfigInvalidText,
		ErrConfigInvalidCSV,
		ErrConfigInvalidGenPass,
		ErrConfigInvalidBase64,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return IsExitCode2Error(err)
}

// IsSystemError reports whether err carries an operating system failure,
// such as a path or syscall error. Their text can resemble flag parse errors
// ("invalid argument" for EINVAL) but they are runtime failures.
func IsSystemError(err error) bool {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
		errno      syscall.Errno
	)
	return errors.As(err, &pathErr) ||
		errors.As(err, &linkErr) ||
		errors.As(err, &syscallErr) ||
		errors.As(err, &errno)
}
