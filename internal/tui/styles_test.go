package tui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticColors_AllColorsExported(t *testing.T) {
	colors := []lipgloss.AdaptiveColor{ColorPrimary, ColorSuccess, ColorWarning, ColorError, ColorMuted}
	for _, c := range colors {
		assert.NotEmpty(t, c.Light)
		assert.NotEmpty(t, c.Dark)
	}
}

func TestNewOutputStyles(t *testing.T) {
	styles := NewOutputStyles()
	assert.NotNil(t, styles)
	assert.True(t, styles.Success.GetBold())
	assert.True(t, styles.Error.GetBold())
}

func TestNewTableStyles(t *testing.T) {
	styles := NewTableStyles()
	assert.True(t, styles.Header.GetBold())
}

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})

	t.Run("regular terminal", func(t *testing.T) {
		t.Setenv("TERM", "xterm-256color")
		t.Setenv("NO_COLOR", "")
		require.NoError(t, os.Unsetenv("NO_COLOR"))
		assert.True(t, HasColorSupport())
	})
}

func TestCheckNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	CheckNoColor()
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}

func TestStrengthLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{-1, "very weak"},
		{0, "very weak"},
		{1, "weak"},
		{2, "fair"},
		{3, "good"},
		{4, "strong"},
		{9, "strong"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StrengthLabel(tc.score), "score %d", tc.score)
	}
}

func TestStrengthStyle(t *testing.T) {
	assert.Equal(t, ColorError, StrengthStyle(0).GetForeground())
	assert.Equal(t, ColorError, StrengthStyle(1).GetForeground())
	assert.Equal(t, ColorWarning, StrengthStyle(2).GetForeground())
	assert.Equal(t, ColorSuccess, StrengthStyle(4).GetForeground())
}

func TestPadRight_Unicode(t *testing.T) {
	assert.Equal(t, "✓  ", padRight("✓", 3))
	assert.Equal(t, "abc", padRight("abc", 2), "longer strings are not truncated")
}
