package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
// These defaults are the base layer that config files, environment
// variables and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Format: constants.FormatBlake3,
			KeyDir: ".",
		},
		CSV: CSVConfig{
			Format:    constants.CSVFormatJSON,
			Delimiter: ',',
			Header:    true,
		},
		GenPass: GenPassConfig{
			Length:    constants.DefaultPasswordLength,
			Uppercase: true,
			Lowercase: true,
			Number:    true,
			Symbol:    true,
		},
		Base64: Base64Config{
			Format: constants.Base64Standard,
		},
		Log: LogConfig{
			File: true,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("text.format", d.Text.Format)
	v.SetDefault("text.key_dir", d.Text.KeyDir)

	v.SetDefault("csv.format", d.CSV.Format)
	v.SetDefault("csv.delimiter", string(d.CSV.Delimiter))
	v.SetDefault("csv.header", d.CSV.Header)

	v.SetDefault("genpass.length", d.GenPass.Length)
	v.SetDefault("genpass.uppercase", d.GenPass.Uppercase)
	v.SetDefault("genpass.lowercase", d.GenPass.Lowercase)
	v.SetDefault("genpass.number", d.GenPass.Number)
	v.SetDefault("genpass.symbol", d.GenPass.Symbol)

	v.SetDefault("base64.format", d.Base64.Format)

	v.SetDefault("log.file", d.Log.File)
}
