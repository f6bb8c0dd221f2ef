// Package source resolves input locations to readable byte streams.
//
// A location is either the stdin sentinel "-" or a filesystem path. The
// resolver performs no existence check of its own; callers that want to fail
// early use Check before any work starts, and a missing or unreadable file
// surfaces from Open or ReadAll as ErrSourceUnavailable.
package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Resolver opens byte sources on a filesystem or standard input.
// A new handle is opened for every call; nothing is cached.
type Resolver struct {
	fs    afero.Fs
	stdin io.Reader
}

// NewResolver creates a Resolver over the given filesystem and stdin reader.
func NewResolver(fs afero.Fs, stdin io.Reader) *Resolver {
	return &Resolver{fs: fs, stdin: stdin}
}

// NewOSResolver creates a Resolver over the real filesystem and os.Stdin.
func NewOSResolver() *Resolver {
	return NewResolver(afero.NewOsFs(), os.Stdin)
}

// IsStdin reports whether location selects standard input.
func IsStdin(location string) bool {
	return location == constants.StdinSentinel
}

// Open returns a readable source for location. The caller must Close it.
// Closing a stdin source does not close the process's standard input.
func (r *Resolver) Open(location string) (io.ReadCloser, error) {
	if IsStdin(location) {
		return io.NopCloser(r.stdin), nil
	}

	f, err := r.fs.Open(location)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", errors.ErrSourceUnavailable, location, err)
	}
	return f, nil
}

// ReadAll reads the whole source at location into memory.
// The handle is closed on every return path.
func (r *Resolver) ReadAll(ctx context.Context, location string) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := r.Open(location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", errors.ErrSourceUnavailable, location, closeErr)
		}
	}()

	data, err = io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", errors.ErrSourceUnavailable, displayName(location), err)
	}
	return data, nil
}

// Check validates a location the way the command layer expects before any
// work starts: the stdin sentinel is always accepted, anything else must be
// an existing regular file.
func (r *Resolver) Check(location string) error {
	if location == "" {
		return fmt.Errorf("%w: input location", errors.ErrEmptyValue)
	}
	if IsStdin(location) {
		return nil
	}

	info, err := r.fs.Stat(location)
	if err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInputNotFound, location)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", errors.ErrInvalidArgument, location)
	}
	return nil
}

func displayName(location string) string {
	if IsStdin(location) {
		return "standard input"
	}
	return location
}
