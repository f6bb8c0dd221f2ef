// Package config provides configuration management for rcli with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the command layer when a flag is explicitly set)
//  2. Environment variables (RCLI_* prefix, e.g. RCLI_TEXT_FORMAT)
//  3. Project config (.rcli/config.yaml)
//  4. Global config ($RCLI_HOME/config.yaml, default ~/.rcli/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for rcli.
type Config struct {
	// Text contains defaults for the text sign/verify/generate commands.
	Text TextConfig `yaml:"text" mapstructure:"text"`

	// CSV contains defaults for the csv conversion command.
	CSV CSVConfig `yaml:"csv" mapstructure:"csv"`

	// GenPass contains defaults for the password generator.
	GenPass GenPassConfig `yaml:"genpass" mapstructure:"genpass"`

	// Base64 contains defaults for the base64 encode/decode commands.
	Base64 Base64Config `yaml:"base64" mapstructure:"base64"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// TextConfig contains settings for text signing.
type TextConfig struct {
	// Format is the signing algorithm token ("blake3" or "ed25519").
	// Default: "blake3"
	Format string `yaml:"format" mapstructure:"format"`

	// KeyDir is where generated keys are written when no output is given.
	// Default: "."
	KeyDir string `yaml:"key_dir" mapstructure:"key_dir"`
}

// CSVConfig contains settings for CSV conversion.
type CSVConfig struct {
	// Format is the conversion target ("json", "yaml" or "toml").
	// Default: "json"
	Format string `yaml:"format" mapstructure:"format"`

	// Delimiter separates fields. Config files and environment variables
	// give it as a one-character string, or "tab".
	// Default: ','
	Delimiter rune `yaml:"delimiter" mapstructure:"delimiter"`

	// Header treats the first record as column names.
	// Default: true
	Header bool `yaml:"header" mapstructure:"header"`
}

// GenPassConfig contains settings for password generation.
type GenPassConfig struct {
	// Length of generated passwords. Valid range: 4-128.
	// Default: 16
	Length int `yaml:"length" mapstructure:"length"`

	Uppercase bool `yaml:"uppercase" mapstructure:"uppercase"`
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
	Number    bool `yaml:"number" mapstructure:"number"`
	Symbol    bool `yaml:"symbol" mapstructure:"symbol"`
}

// Base64Config contains settings for base64 encoding.
type Base64Config struct {
	// Format is the alphabet ("standard" or "urlsafe").
	// Default: "standard"
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File enables the rotating log file under $RCLI_HOME/logs.
	// Default: true
	File bool `yaml:"file" mapstructure:"file"`
}
