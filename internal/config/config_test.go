package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/constants"
)

func TestDefaultConfig_ReturnsValidConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg, "DefaultConfig should not return nil")

	assert.Equal(t, constants.FormatBlake3, cfg.Text.Format, "default signing algorithm")
	assert.Equal(t, ".", cfg.Text.KeyDir, "default key directory")

	assert.Equal(t, constants.CSVFormatJSON, cfg.CSV.Format, "default csv format")
	assert.Equal(t, ',', cfg.CSV.Delimiter, "default csv delimiter")
	assert.True(t, cfg.CSV.Header, "default csv header")

	assert.Equal(t, 16, cfg.GenPass.Length, "default password length")
	assert.True(t, cfg.GenPass.Uppercase)
	assert.True(t, cfg.GenPass.Lowercase)
	assert.True(t, cfg.GenPass.Number)
	assert.True(t, cfg.GenPass.Symbol)

	assert.Equal(t, constants.Base64Standard, cfg.Base64.Format, "default base64 format")
	assert.True(t, cfg.Log.File, "file logging enabled by default")

	require.NoError(t, Validate(cfg))
}

func TestConfig_YAMLKeys(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))

	assert.Contains(t, raw["text"], "key_dir")
	assert.Contains(t, raw["csv"], "delimiter")
	assert.Contains(t, raw["genpass"], "length")
	assert.Contains(t, raw["base64"], "format")
	assert.Contains(t, raw["log"], "file")
}
