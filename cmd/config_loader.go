package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/federicobaldini/native-components/internal/ui"
	"github.com/federicobaldini/native-components/pkg/settings"
)

// themeConfigFile is the on-disk configuration: an optional default theme
// name plus named theme definitions layered over the built-in presets.
type themeConfigFile struct {
	Theme struct {
		Default string `yaml:"default,omitempty" toml:"default,omitempty"`
	} `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Themes map[string]ui.ThemeConfig `yaml:"themes,omitempty" toml:"themes,omitempty"`
}

// resolveConfigPath returns the explicit path if set, otherwise the XDG
// location ($XDG_CONFIG_HOME/native-components/config.yaml, falling back to
// ~/.config/native-components/, trying .yaml then .toml) when one exists.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	base := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		base = filepath.Join(xdg, settings.CliBinaryName)
	} else if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".config", settings.CliBinaryName)
	}
	if base == "" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.toml"} {
		candidate := filepath.Join(base, name)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadThemeFile decodes a config file by extension: .toml via go-toml,
// everything else as YAML. TOML color values must be quoted strings.
func loadThemeFile(path string) (themeConfigFile, error) {
	var cfg themeConfigFile
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode TOML config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode YAML config %s: %w", path, err)
	}
	return cfg, nil
}

// loadMergedThemes returns the built-in presets with any config-file themes
// layered on top. File entries win over presets of the same name. Theme
// names are normalized to lower case.
func loadMergedThemes(path string) (map[string]ui.Theme, error) {
	merged := ui.ThemePresets()
	if path == "" {
		return merged, nil
	}
	cfg, err := loadThemeFile(path)
	if err != nil {
		return nil, err
	}
	for name, tc := range cfg.Themes {
		merged[strings.ToLower(strings.TrimSpace(name))] = ui.ThemeFromConfig(tc)
	}
	return merged, nil
}

// configuredDefaultTheme returns the config file's default theme name, or
// "" when no file or no default is set.
func configuredDefaultTheme(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	cfg, err := loadThemeFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(cfg.Theme.Default)), nil
}

// renderMergedConfig marshals the merged theme set back to YAML, the shape
// a user would copy into their own config file.
func renderMergedConfig(path string) (string, error) {
	merged, err := loadMergedThemes(path)
	if err != nil {
		return "", err
	}
	var out themeConfigFile
	out.Themes = make(map[string]ui.ThemeConfig, len(merged))
	for name, th := range merged {
		out.Themes[name] = ui.ThemeConfigFromTheme(th)
	}
	if out.Theme.Default, err = configuredDefaultTheme(path); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode merged config: %w", err)
	}
	return string(data), nil
}
