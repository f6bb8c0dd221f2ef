package errors_test

import (
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUnknownAlgorithm", rclierrors.ErrUnknownAlgorithm, "unknown signing algorithm"},
		{"ErrInvalidKeySize", rclierrors.ErrInvalidKeySize, "invalid key size"},
		{"ErrMalformedSignature", rclierrors.ErrMalformedSignature, "malformed signature"},
		{"ErrInvalidSignature", rclierrors.ErrInvalidSignature, "invalid signature"},
		{"ErrKeyExists", rclierrors.ErrKeyExists, "key file already exists"},
		{"ErrSourceUnavailable", rclierrors.ErrSourceUnavailable, "input source unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		rclierrors.ErrUnknownAlgorithm,
		rclierrors.ErrInvalidKeySize,
		rclierrors.ErrMalformedSignature,
		rclierrors.ErrInvalidSignature,
		rclierrors.ErrKeyExists,
		rclierrors.ErrSourceUnavailable,
		rclierrors.ErrConflictingFlags,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, err1, err2, "%v should not match %v", err1, err2)
		}
	}
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	wrapped := rclierrors.Wrap(rclierrors.ErrInvalidKeySize, "failed to read key")

	require.Error(t, wrapped)
	require.ErrorIs(t, wrapped, rclierrors.ErrInvalidKeySize)
	assert.Equal(t, "failed to read key: invalid key size", wrapped.Error())
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, rclierrors.Wrap(nil, "context"))
}

func TestWrapf_MessageFormat(t *testing.T) {
	wrapped := rclierrors.Wrapf(rclierrors.ErrSourceUnavailable, "open %s", "msg.txt")

	require.ErrorIs(t, wrapped, rclierrors.ErrSourceUnavailable)
	assert.Equal(t, "open msg.txt: input source unavailable", wrapped.Error())
}

func TestWrapf_NilError(t *testing.T) {
	assert.NoError(t, rclierrors.Wrapf(nil, "context %d", 1))
}

func TestUserMessage_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("reading key.bin: %w", rclierrors.ErrInvalidKeySize)

	msg := rclierrors.UserMessage(err)
	assert.Contains(t, msg, "expected size")
}

func TestUserMessage_NilError(t *testing.T) {
	assert.Empty(t, rclierrors.UserMessage(nil))
}

func TestUserMessage_UnknownError(t *testing.T) {
	err := testError{msg: "something odd"}
	assert.Equal(t, "something odd", rclierrors.UserMessage(err))
}

func TestActionable_Mappings(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantAction   string
		expectAction bool
	}{
		{"unknown algorithm", rclierrors.ErrUnknownAlgorithm, "blake3", true},
		{"key exists", rclierrors.ErrKeyExists, "--force", true},
		{"non-interactive", rclierrors.ErrNonInteractiveMode, "--force", true},
		{"invalid signature", rclierrors.ErrInvalidSignature, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, action := rclierrors.Actionable(fmt.Errorf("wrapped: %w", tc.err))
			assert.NotEmpty(t, msg)
			if tc.expectAction {
				assert.Contains(t, action, tc.wantAction)
			} else {
				assert.Empty(t, action)
			}
		})
	}
}

func TestActionable_NilError(t *testing.T) {
	msg, action := rclierrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	inner := rclierrors.ErrUnknownAlgorithm
	err := rclierrors.NewExitCode2Error(inner)

	assert.Equal(t, inner.Error(), err.Error())
	require.ErrorIs(t, err, inner)
	assert.True(t, rclierrors.IsExitCode2Error(fmt.Errorf("outer: %w", err)))
	assert.False(t, rclierrors.IsExitCode2Error(inner))
	assert.False(t, rclierrors.IsExitCode2Error(nil))
}

func TestIsConfigurationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unknown algorithm", fmt.Errorf("parse: %w", rclierrors.ErrUnknownAlgorithm), true},
		{"conflicting flags", rclierrors.ErrConflictingFlags, true},
		{"exit code 2 wrapper", rclierrors.NewExitCode2Error(testError{msg: "bad"}), true},
		{"invalid config file", fmt.Errorf("load: %w", rclierrors.ErrConfigInvalidCSV), true},
		{"io failure", rclierrors.ErrSourceUnavailable, false},
		{"key size", rclierrors.ErrInvalidKeySize, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rclierrors.IsConfigurationError(tc.err))
		})
	}
}

func TestIsSystemError(t *testing.T) {
	assert.True(t, rclierrors.IsSystemError(&fs.PathError{Op: "open", Path: "k", Err: syscall.EINVAL}))
	assert.True(t, rclierrors.IsSystemError(fmt.Errorf("rename: %w", &os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.EXDEV})))
	assert.True(t, rclierrors.IsSystemError(rclierrors.Wrap(syscall.EINVAL, "read key")))
	assert.False(t, rclierrors.IsSystemError(rclierrors.ErrInvalidArgument))
	assert.False(t, rclierrors.IsSystemError(fmt.Errorf("invalid argument")))
	assert.False(t, rclierrors.IsSystemError(nil))
}
