package config

import (
	"slices"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - text.format must be blake3 or ed25519
//   - csv.format must be json, yaml or toml
//   - csv.delimiter must be usable as a CSV separator
//   - genpass.length must be between 4 and 128 with at least one class enabled
//   - base64.format must be standard or urlsafe
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateTextConfig(&cfg.Text); err != nil {
		return err
	}
	if err := validateCSVConfig(&cfg.CSV); err != nil {
		return err
	}
	if err := validateGenPassConfig(&cfg.GenPass); err != nil {
		return err
	}
	return validateBase64Config(&cfg.Base64)
}

func validateTextConfig(cfg *TextConfig) error {
	if !slices.Contains([]string{constants.FormatBlake3, constants.FormatEd25519}, cfg.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.format must be %q or %q, got %q", constants.FormatBlake3, constants.FormatEd25519, cfg.Format)
	}
	return nil
}

func validateCSVConfig(cfg *CSVConfig) error {
	formats := []string{constants.CSVFormatJSON, constants.CSVFormatYAML, constants.CSVFormatTOML}
	if !slices.Contains(formats, cfg.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.format must be one of %v, got %q", formats, cfg.Format)
	}

	switch cfg.Delimiter {
	case 0, '"', '\r', '\n':
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.delimiter %q cannot separate fields", cfg.Delimiter)
	}
	return nil
}

func validateGenPassConfig(cfg *GenPassConfig) error {
	if cfg.Length < constants.MinPasswordLength || cfg.Length > constants.MaxPasswordLength {
		return errors.Wrapf(errors.ErrConfigInvalidGenPass,
			"genpass.length must be between %d and %d, got %d",
			constants.MinPasswordLength, constants.MaxPasswordLength, cfg.Length)
	}
	if !cfg.Uppercase && !cfg.Lowercase && !cfg.Number && !cfg.Symbol {
		return errors.Wrap(errors.ErrConfigInvalidGenPass,
			"genpass must enable at least one character class")
	}
	return nil
}

func validateBase64Config(cfg *Base64Config) error {
	if cfg.Format != constants.Base64Standard && cfg.Format != constants.Base64URLSafe {
		return errors.Wrapf(errors.ErrConfigInvalidBase64,
			"base64.format must be %q or %q, got %q", constants.Base64Standard, constants.Base64URLSafe, cfg.Format)
	}
	return nil
}
