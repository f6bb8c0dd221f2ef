// Package constants provides centralized constant values used throughout rcli.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// StdinSentinel is the location token that selects standard input instead of a file.
const StdinSentinel = "-"

// Signing format tokens accepted on the command line and in configuration.
const (
	// FormatBlake3 selects the BLAKE3 keyed hash (symmetric).
	FormatBlake3 = "blake3"

	// FormatEd25519 selects Ed25519 signatures (asymmetric).
	FormatEd25519 = "ed25519"
)

// Key file names written by key generation.
const (
	// Blake3KeyFileName holds the 32-byte shared key.
	Blake3KeyFileName = "blake3.key"

	// Ed25519SecretKeyFileName holds the 32-byte Ed25519 private seed.
	Ed25519SecretKeyFileName = "ed25519.sk"

	// Ed25519PublicKeyFileName holds the 32-byte Ed25519 public key.
	Ed25519PublicKeyFileName = "ed25519.pk"
)

// File permissions for generated key material.
const (
	// SecretKeyFileMode is used for files that must stay private.
	SecretKeyFileMode = 0o600

	// PublicKeyFileMode is used for files that may be shared.
	PublicKeyFileMode = 0o644
)

// CSV conversion formats.
const (
	CSVFormatJSON = "json"
	CSVFormatYAML = "yaml"
	CSVFormatTOML = "toml"
)

// Base64 alphabets for the standalone codec.
const (
	// Base64Standard is the padded standard alphabet (RFC 4648 §4).
	Base64Standard = "standard"

	// Base64URLSafe is the URL alphabet without padding (RFC 4648 §5).
	Base64URLSafe = "urlsafe"
)

// Password generator bounds and defaults.
const (
	DefaultPasswordLength = 16
	MinPasswordLength     = 4
	MaxPasswordLength     = 128
)

// Output formats for the global --output flag.
const (
	// OutputFormatText prints plain or styled text.
	OutputFormatText = "text"

	// OutputFormatJSON prints one JSON document per result.
	OutputFormatJSON = "json"
)
