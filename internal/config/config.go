package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all assess configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig selects how totals are rendered.
type ReportConfig struct {
	Format string `yaml:"format"` // text, table, json, markdown
}

// UIConfig configures the interactive front-end.
type UIConfig struct {
	Mode  string `yaml:"mode"`  // line, tui
	Theme string `yaml:"theme"` // auto, light, dark, none
}

// Accepted values, in the order they are listed in help text.
var (
	ValidFormats   = []string{"text", "table", "json", "markdown"}
	ValidModes     = []string{"line", "tui"}
	ValidThemes    = []string{"auto", "light", "dark", "none"}
	ValidLogLevels = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Format: "text",
		},
		UI: UIConfig{
			Mode:  "line",
			Theme: "auto",
		},
		Logging: LoggingConfig{},
	}
}

// DefaultDir returns ~/.assess, or .assess when no home directory is known.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".assess"
	}
	return filepath.Join(home, ".assess")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(filepath.Dir(path), "logs", "assess.log")
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ASSESS_FORMAT"); v != "" {
		c.Report.Format = strings.ToLower(v)
	}
	if v := os.Getenv("ASSESS_UI"); v != "" {
		c.UI.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("ASSESS_THEME"); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv("NO_COLOR") != "" {
		c.UI.Theme = "none"
	}

	if v := os.Getenv("ASSESS_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ASSESS_DEBUG"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidFormats, c.Report.Format) {
		return fmt.Errorf("invalid report format: %s (valid: %v)", c.Report.Format, ValidFormats)
	}
	if !contains(ValidModes, c.UI.Mode) {
		return fmt.Errorf("invalid ui mode: %s (valid: %v)", c.UI.Mode, ValidModes)
	}
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if c.Logging.Level != "" && !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
