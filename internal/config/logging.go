package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error; empty = EffectiveLevel
	File       string          `yaml:"file"`       // defaults to <config dir>/logs/assess.log
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// EffectiveLevel returns Level, or the default when it is unset: debug when
// debug_mode is on, info otherwise.
func (c *LoggingConfig) EffectiveLevel() string {
	if c.Level != "" {
		return c.Level
	}
	if c.DebugMode {
		return "debug"
	}
	return "info"
}
