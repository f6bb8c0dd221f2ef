// Package testutil provides testing utilities for rcli.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import (
	"errors"
	"io"
)

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockRead indicates a mock read failure (used in tests).
	ErrMockRead = errors.New("mock read failure")

	// ErrMockWrite indicates a mock write failure (used in tests).
	ErrMockWrite = errors.New("mock write failure")

	// ErrMockRandom indicates a mock entropy source failure (used in tests).
	ErrMockRandom = errors.New("mock entropy failure")
)

// ZeroReader is an io.Reader that yields an endless stream of zero bytes.
// It stands in for crypto/rand when a test needs reproducible key material.
type ZeroReader struct{}

// Read fills p with zeros.
func (ZeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// FailingWriter is an io.Writer that always fails with ErrMockWrite.
type FailingWriter struct{}

// Write implements io.Writer.
func (FailingWriter) Write(_ []byte) (int, error) {
	return 0, ErrMockWrite
}

var (
	_ io.Reader = ZeroReader{}
	_ io.Writer = FailingWriter{}
)
