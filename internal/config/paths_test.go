package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/constants"
)

func TestGlobalConfigDir_Default(t *testing.T) {
	t.Setenv(constants.RcliHomeEnv, "")

	dir, err := GlobalConfigDir()
	require.NoError(t, err)

	assert.Equal(t, constants.RcliHome, filepath.Base(dir))
	assert.True(t, filepath.IsAbs(dir))
}

func TestGlobalConfigDir_EnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.RcliHomeEnv, home)

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	logs, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs"), logs)
}

func TestProjectConfigPath(t *testing.T) {
	assert.Equal(t, ".rcli", ProjectConfigDir())
	assert.Equal(t, filepath.Join(".rcli", "config.yaml"), ProjectConfigPath())
}
