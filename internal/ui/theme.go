package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"
)

// Theme defines colors and styles used by the widget chrome. Host apps can
// supply their own theme.
type Theme struct {
	BackdropFG     color.Color // Dimmed backdrop text while a modal is open
	PanelFG        color.Color // Modal panel text
	PanelBG        color.Color // Modal panel background
	PanelBorder    color.Color // Modal panel border
	BorderStyle    string      // Border style (normal|rounded)
	TitleFG        color.Color // Modal title slot text
	ButtonFG       color.Color // Unselected button text
	ButtonBG       color.Color // Unselected button background
	ButtonActiveFG color.Color // Selected button text
	ButtonActiveBG color.Color // Selected button background
	TooltipFG      color.Color // Tooltip bubble text
	TooltipBG      color.Color // Tooltip bubble background
	IconFG         color.Color // Tooltip trigger icon
	StatusColor    color.Color // Normal status bar text
	StatusError    color.Color // Error status bar text
	StatusSuccess  color.Color // Success status bar text
	HintFG         color.Color // Key-hint footer text
}

var (
	themeMu      sync.RWMutex
	currentTheme Theme
)

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() Theme {
	return Theme{
		BackdropFG:     lipgloss.Color("240"), // dimmed gray backdrop
		PanelFG:        lipgloss.Color("252"),
		PanelBG:        lipgloss.Color("235"),
		PanelBorder:    lipgloss.Color("81"), // cyan accent
		BorderStyle:    "rounded",
		TitleFG:        lipgloss.Color("81"),
		ButtonFG:       lipgloss.Color("250"),
		ButtonBG:       lipgloss.Color("238"),
		ButtonActiveFG: lipgloss.Color("232"),
		ButtonActiveBG: lipgloss.Color("81"),
		TooltipFG:      lipgloss.Color("232"),
		TooltipBG:      lipgloss.Color("222"), // soft yellow bubble
		IconFG:         lipgloss.Color("222"),
		StatusColor:    lipgloss.Color("81"),
		StatusError:    lipgloss.Color("203"),
		StatusSuccess:  lipgloss.Color("114"),
		HintFG:         lipgloss.Color("244"),
	}
}

// lightTheme is the built-in light preset.
func lightTheme() Theme {
	return Theme{
		BackdropFG:     lipgloss.Color("250"),
		PanelFG:        lipgloss.Color("236"),
		PanelBG:        lipgloss.Color("255"),
		PanelBorder:    lipgloss.Color("25"),
		BorderStyle:    "normal",
		TitleFG:        lipgloss.Color("25"),
		ButtonFG:       lipgloss.Color("236"),
		ButtonBG:       lipgloss.Color("252"),
		ButtonActiveFG: lipgloss.Color("255"),
		ButtonActiveBG: lipgloss.Color("25"),
		TooltipFG:      lipgloss.Color("236"),
		TooltipBG:      lipgloss.Color("187"),
		IconFG:         lipgloss.Color("130"),
		StatusColor:    lipgloss.Color("25"),
		StatusError:    lipgloss.Color("124"),
		StatusSuccess:  lipgloss.Color("28"),
		HintFG:         lipgloss.Color("243"),
	}
}

// ThemePresets maps preset names to built-in themes.
func ThemePresets() map[string]Theme {
	return map[string]Theme{
		"dark":  DefaultTheme(),
		"light": lightTheme(),
	}
}

// GetTheme returns a preset theme by name.
func GetTheme(name string) (Theme, bool) {
	th, ok := ThemePresets()[strings.TrimSpace(strings.ToLower(name))]
	return th, ok
}

// SetTheme overrides the global theme.
func SetTheme(t Theme) {
	t.BorderStyle = normalizeBorderStyle(t.BorderStyle)
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
}

// CurrentTheme returns the currently configured theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	th := currentTheme
	themeMu.RUnlock()
	if th == (Theme{}) {
		return DefaultTheme()
	}
	return th
}

// ColorValue stores a color token (number or name) and marshals numerics as
// YAML ints.
type ColorValue string

func (c ColorValue) MarshalYAML() (interface{}, error) {
	if c == "" {
		return "", nil
	}
	s := string(c)
	if _, err := strconv.Atoi(s); err == nil {
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: s,
		}, nil
	}
	return s, nil
}

func (c *ColorValue) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*c = ""
		return nil
	}
	// Accept both ints and strings; store the literal value.
	*c = ColorValue(value.Value)
	return nil
}

// ThemeConfig is the serializable theme form. YAML colors accept ints or
// strings; TOML colors must be quoted strings.
type ThemeConfig struct {
	BackdropFG     ColorValue `yaml:"backdrop_fg,omitempty" toml:"backdrop_fg,omitempty"`
	PanelFG        ColorValue `yaml:"panel_fg,omitempty" toml:"panel_fg,omitempty"`
	PanelBG        ColorValue `yaml:"panel_bg,omitempty" toml:"panel_bg,omitempty"`
	PanelBorder    ColorValue `yaml:"panel_border,omitempty" toml:"panel_border,omitempty"`
	BorderStyle    string     `yaml:"border_style,omitempty" toml:"border_style,omitempty"`
	TitleFG        ColorValue `yaml:"title_fg,omitempty" toml:"title_fg,omitempty"`
	ButtonFG       ColorValue `yaml:"button_fg,omitempty" toml:"button_fg,omitempty"`
	ButtonBG       ColorValue `yaml:"button_bg,omitempty" toml:"button_bg,omitempty"`
	ButtonActiveFG ColorValue `yaml:"button_active_fg,omitempty" toml:"button_active_fg,omitempty"`
	ButtonActiveBG ColorValue `yaml:"button_active_bg,omitempty" toml:"button_active_bg,omitempty"`
	TooltipFG      ColorValue `yaml:"tooltip_fg,omitempty" toml:"tooltip_fg,omitempty"`
	TooltipBG      ColorValue `yaml:"tooltip_bg,omitempty" toml:"tooltip_bg,omitempty"`
	IconFG         ColorValue `yaml:"icon_fg,omitempty" toml:"icon_fg,omitempty"`
	StatusColor    ColorValue `yaml:"status_color,omitempty" toml:"status_color,omitempty"`
	StatusError    ColorValue `yaml:"status_error,omitempty" toml:"status_error,omitempty"`
	StatusSuccess  ColorValue `yaml:"status_success,omitempty" toml:"status_success,omitempty"`
	HintFG         ColorValue `yaml:"hint_fg,omitempty" toml:"hint_fg,omitempty"`
}

// ThemeFromConfig builds a Theme from a ThemeConfig, falling back to the
// default palette for empty fields.
func ThemeFromConfig(cfg ThemeConfig) Theme {
	return themeFromConfigWithBase(cfg, DefaultTheme())
}

func themeFromConfigWithBase(cfg ThemeConfig, base Theme) Theme {
	th := base
	set := func(val ColorValue, dst *color.Color) {
		if val != "" {
			*dst = lipgloss.Color(string(val))
		}
	}
	set(cfg.BackdropFG, &th.BackdropFG)
	set(cfg.PanelFG, &th.PanelFG)
	set(cfg.PanelBG, &th.PanelBG)
	set(cfg.PanelBorder, &th.PanelBorder)
	if cfg.BorderStyle != "" {
		th.BorderStyle = normalizeBorderStyle(cfg.BorderStyle)
	}
	set(cfg.TitleFG, &th.TitleFG)
	set(cfg.ButtonFG, &th.ButtonFG)
	set(cfg.ButtonBG, &th.ButtonBG)
	set(cfg.ButtonActiveFG, &th.ButtonActiveFG)
	set(cfg.ButtonActiveBG, &th.ButtonActiveBG)
	set(cfg.TooltipFG, &th.TooltipFG)
	set(cfg.TooltipBG, &th.TooltipBG)
	set(cfg.IconFG, &th.IconFG)
	set(cfg.StatusColor, &th.StatusColor)
	set(cfg.StatusError, &th.StatusError)
	set(cfg.StatusSuccess, &th.StatusSuccess)
	set(cfg.HintFG, &th.HintFG)
	th.BorderStyle = normalizeBorderStyle(th.BorderStyle)
	return th
}

// colorToColorValue converts a color.Color interface to a ColorValue string.
// Best-effort: color.Color is an interface without a String() method.
func colorToColorValue(c color.Color) ColorValue {
	if c == nil {
		return ""
	}
	r, g, b, a := c.RGBA()
	if a == 0 && r == 0 && g == 0 && b == 0 {
		return ""
	}
	// RGBA returns 16-bit channels; divide by 257 to scale to 8-bit.
	return ColorValue(fmt.Sprintf("#%02x%02x%02x", r/257, g/257, b/257))
}

// ThemeConfigFromTheme converts a Theme into its YAML-friendly config form.
func ThemeConfigFromTheme(th Theme) ThemeConfig {
	return ThemeConfig{
		BackdropFG:     colorToColorValue(th.BackdropFG),
		PanelFG:        colorToColorValue(th.PanelFG),
		PanelBG:        colorToColorValue(th.PanelBG),
		PanelBorder:    colorToColorValue(th.PanelBorder),
		BorderStyle:    th.BorderStyle,
		TitleFG:        colorToColorValue(th.TitleFG),
		ButtonFG:       colorToColorValue(th.ButtonFG),
		ButtonBG:       colorToColorValue(th.ButtonBG),
		ButtonActiveFG: colorToColorValue(th.ButtonActiveFG),
		ButtonActiveBG: colorToColorValue(th.ButtonActiveBG),
		TooltipFG:      colorToColorValue(th.TooltipFG),
		TooltipBG:      colorToColorValue(th.TooltipBG),
		IconFG:         colorToColorValue(th.IconFG),
		StatusColor:    colorToColorValue(th.StatusColor),
		StatusError:    colorToColorValue(th.StatusError),
		StatusSuccess:  colorToColorValue(th.StatusSuccess),
		HintFG:         colorToColorValue(th.HintFG),
	}
}

func normalizeBorderStyle(val string) string {
	v := strings.TrimSpace(strings.ToLower(val))
	switch v {
	case "", "normal", "square":
		return "normal"
	case "rounded", "round":
		return "rounded"
	default:
		return "normal"
	}
}

func borderForStyle(style string) lipgloss.Border {
	switch normalizeBorderStyle(style) {
	case "rounded":
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
