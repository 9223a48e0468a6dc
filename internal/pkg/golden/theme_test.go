package golden

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhiCSS(t *testing.T) {
	assert.Equal(t, ":root{--phi:1.618034;--phi-small:0.618034;--phi-squared:2.618034;}", PhiCSS(DefaultCSSPrecision))
	assert.Equal(t, ":root{--phi:1.62;--phi-small:0.62;--phi-squared:2.62;}", PhiCSS(2))
}

func TestRootVariables(t *testing.T) {
	r := RootVariables()
	assert.Equal(t, ":root", r.Selector)
	assert.Equal(t, []string{"--phi", "--phi-small", "--phi-squared"}, r.Declarations.Keys())
	v, _ := r.Declarations.Get("--phi")
	assert.Equal(t, "1.618033988749895", v)
}

func TestRadiusTokens(t *testing.T) {
	got := RadiusTokens(NewPowerCache(), 4, 100, 2)
	assert.Equal(t, Scale{
		{"phi-2", "38.20px"},
		{"phi-3", "23.61px"},
		{"phi-4", "14.59px"},
		{"phi-5", "9.02px"},
	}, got)

	assert.Empty(t, RadiusTokens(nil, 0, 100, 2))
	assert.Empty(t, RadiusTokens(nil, -1, 100, 2))
}

func TestBuildTheme(t *testing.T) {
	theme, err := BuildTheme(NewPowerCache(), DefaultThemeOptions())
	require.NoError(t, err)

	require.Len(t, theme.Base, 1)
	assert.Equal(t, ":root", theme.Base[0].Selector)
	assert.Len(t, theme.Base[0].Declarations, 6)
	first, _ := theme.Base[0].Declarations.Get("--phi-color-0")
	assert.Equal(t, "oklch(0.780 0.160 0.0)", first)

	c1, _ := theme.Colors.Get("phi-1")
	assert.Equal(t, "var(--phi-color-1)", c1)

	require.Len(t, theme.Utilities, 4)
	assert.Equal(t, ".rounded-phi-2", theme.Utilities[0].Selector)
	assert.Equal(t, Scale{{"border-radius", "38.20px"}}, theme.Utilities[0].Declarations)
	assert.Equal(t, []string{"phi-2", "phi-3", "phi-4", "phi-5"}, theme.BorderRadius.Keys())
}

func TestBuildTheme_InvalidColorSteps(t *testing.T) {
	opts := DefaultThemeOptions()
	opts.ColorSteps = 0

	_, err := BuildTheme(NewPowerCache(), opts)
	assert.ErrorIs(t, err, ErrStepsOutOfRange)
}

func TestTheme_CSS(t *testing.T) {
	opts := DefaultThemeOptions()
	opts.ColorSteps = 1
	opts.RadiusSteps = 1
	theme, err := BuildTheme(NewPowerCache(), opts)
	require.NoError(t, err)

	css := theme.CSS()
	lines := strings.Split(strings.TrimSpace(css), "\n")
	assert.Equal(t, []string{
		":root{--phi-color-0:oklch(0.780 0.160 0.0);}",
		".rounded-phi-2{border-radius:38.20px;}",
	}, lines)
}

func TestTheme_JSON(t *testing.T) {
	opts := DefaultThemeOptions()
	opts.ColorSteps = 1
	opts.RadiusSteps = 1
	theme, err := BuildTheme(NewPowerCache(), opts)
	require.NoError(t, err)

	data, err := json.Marshal(theme)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"base": [{"selector": ":root", "declarations": {"--phi-color-0": "oklch(0.780 0.160 0.0)"}}],
		"utilities": [{"selector": ".rounded-phi-2", "declarations": {"border-radius": "38.20px"}}],
		"colors": {"phi-0": "var(--phi-color-0)"},
		"border_radius": {"phi-2": "38.20px"}
	}`, string(data))
}
