package ui

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestThemePresets(t *testing.T) {
	presets := ThemePresets()
	require.Contains(t, presets, "dark")
	require.Contains(t, presets, "light")

	th, ok := GetTheme("Light")
	require.True(t, ok)
	assert.Equal(t, lightTheme(), th)

	_, ok = GetTheme("solarized")
	assert.False(t, ok)
}

func TestCurrentThemeFallsBackToDefault(t *testing.T) {
	themeMu.Lock()
	currentTheme = Theme{}
	themeMu.Unlock()

	assert.Equal(t, DefaultTheme(), CurrentTheme())
}

func TestSetThemeNormalizesBorderStyle(t *testing.T) {
	th := DefaultTheme()
	th.BorderStyle = "ROUND"
	SetTheme(th)
	defer SetTheme(DefaultTheme())

	assert.Equal(t, "rounded", CurrentTheme().BorderStyle)
}

func TestThemeFromConfigOverridesOnlySetFields(t *testing.T) {
	cfg := ThemeConfig{
		PanelBorder: "201",
		BorderStyle: "normal",
	}
	th := ThemeFromConfig(cfg)

	assert.Equal(t, lipgloss.Color("201"), th.PanelBorder)
	assert.Equal(t, "normal", th.BorderStyle)
	assert.Equal(t, DefaultTheme().TooltipBG, th.TooltipBG)
}

func TestThemeConfigYAMLRoundTrip(t *testing.T) {
	in := ThemeConfig{
		PanelBorder: "81",
		TooltipBG:   "#ffd787",
		BorderStyle: "rounded",
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	// Numeric tokens marshal as bare ints, not quoted strings.
	assert.Contains(t, string(data), "panel_border: 81")

	var out ThemeConfig
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestNormalizeBorderStyle(t *testing.T) {
	tests := map[string]string{
		"":        "normal",
		"normal":  "normal",
		"square":  "normal",
		"rounded": "rounded",
		"round":   "rounded",
		"ROUNDED": "rounded",
		"weird":   "normal",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeBorderStyle(in), "input %q", in)
	}
}

func TestBorderForStyle(t *testing.T) {
	assert.Equal(t, lipgloss.RoundedBorder(), borderForStyle("rounded"))
	assert.Equal(t, lipgloss.NormalBorder(), borderForStyle("normal"))
	assert.Equal(t, lipgloss.NormalBorder(), borderForStyle("anything"))
}
