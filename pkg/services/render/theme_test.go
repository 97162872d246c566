package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTheme_Fallback(t *testing.T) {
	dark := themes["dark"]

	// Unknown names yield the dark palette in its entirety.
	assert.Equal(t, dark, ResolveTheme("no-such-theme"))
	assert.Equal(t, dark, ResolveTheme(""))
}

func TestResolveTheme_Known(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := ResolveTheme(name)
		assert.NotEmpty(t, theme.Background, "theme %s", name)
		assert.NotEmpty(t, theme.YearLabel, "theme %s", name)
		assert.NotEmpty(t, theme.MonthLabel, "theme %s", name)
		assert.NotEmpty(t, theme.DayLabel, "theme %s", name)
		for i, color := range theme.Levels {
			assert.NotEmpty(t, color, "theme %s level %d", name, i)
		}
	}
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{
		"dark",
		"light",
		"nord-aurora",
		"nord-frost",
		"nord-polar-night",
		"solarized-dark",
		"solarized-light",
	}, ThemeNames())
	assert.True(t, IsValidTheme("dark"))
	assert.False(t, IsValidTheme("Dark"))
}
