// Package logging provides logging utilities including sensitive data filtering.
// This package contains hooks and utilities for zerolog that help ensure
// key material and passwords are never written to log files.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns contains compiled regular expressions for detecting sensitive values.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// Passwords and other secrets given as name=value or "name":"value"
	regexp.MustCompile(`(?i)(password|passwd|passphrase|pwd|secret)["']?\s*[:=]\s*["']?[^\s"',]{4,}["']?`),

	// Hex-encoded 32-byte key material (seeds, shared keys, private keys)
	regexp.MustCompile(`(?i)(key|seed)["']?\s*[:=]\s*["']?[0-9a-f]{64}["']?`),

	// Base64-encoded 32-byte key material
	regexp.MustCompile(`(?i)(key|seed)["']?\s*[:=]\s*["']?[A-Za-z0-9+/_-]{43}=?["']?`),

	// PEM private key blocks
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]*PRIVATE KEY-----`),
}

// sensitiveFieldNames contains field names that should always have their values redacted.
// Case-insensitive substring matching is performed.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // Package-level patterns for reuse
	"password",
	"passwd",
	"passphrase",
	"secret",
	"seed",
	"private_key",
	"privatekey",
	"private-key",
	"shared_key",
	"key_material",
	"key_bytes",
}

// SensitiveDataHook is a zerolog hook that flags log entries whose message
// looks like it carries key material or a password.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
// zerolog does not let a hook rewrite the message, so the hook only marks the
// entry; FilteringWriter does the redaction on the way to disk.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData checks if a string contains any sensitive data patterns.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces any matches of sensitive patterns with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName checks if a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// RedactIfSensitive returns [REDACTED] if the field name indicates sensitive data,
// otherwise returns the value with any sensitive patterns filtered out.
//
// Usage:
//
//	logger.Debug().Str(name, logging.RedactIfSensitive(name, value)).Msg("flag set")
func RedactIfSensitive(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and filters sensitive data from output.
// It wraps the log file writer so that secrets never reach disk, even if
// they appear in log messages or field values.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps the given writer.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer, filtering sensitive data before writing.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	// Report the original length so callers don't see a short write.
	return len(p), nil
}
