// Package logging provides config-driven categorized logging for assess.
// Logs go to a file, never to stdout, which carries the survey transcript.
// Logging is controlled by logging.debug_mode - when false, every category
// gets a no-op logger and nothing is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"assess/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategorySurvey Category = "survey" // Prompting, validation, accumulation
	CategoryReport Category = "report" // Report rendering
	CategoryTUI    Category = "tui"    // Terminal UI front-end
)

// Loggers hands out one named zap logger per category.
type Loggers struct {
	cfg  config.LoggingConfig
	root *zap.Logger

	mu     sync.Mutex
	byName map[Category]*zap.Logger
}

// Nop returns a Loggers whose categories all discard output.
func Nop() *Loggers {
	return &Loggers{root: zap.NewNop(), byName: make(map[Category]*zap.Logger)}
}

// New builds category loggers from cfg. With debug mode off it returns Nop
// and touches no files.
func New(cfg config.LoggingConfig) (*Loggers, error) {
	if !cfg.DebugMode {
		return Nop(), nil
	}
	if cfg.File == "" {
		return nil, fmt.Errorf("log file path required in debug mode")
	}

	level, err := zapcore.ParseLevel(cfg.EffectiveLevel())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.EffectiveLevel(), err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil

	root, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	l := &Loggers{cfg: cfg, root: root, byName: make(map[Category]*zap.Logger)}
	l.Get(CategoryBoot).Info("logging initialized",
		zap.String("file", cfg.File),
		zap.String("level", level.String()))
	return l, nil
}

// Get returns the logger for category. Disabled categories get a no-op
// logger.
func (l *Loggers) Get(category Category) *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lg, ok := l.byName[category]; ok {
		return lg
	}
	lg := zap.NewNop()
	if l.cfg.IsCategoryEnabled(string(category)) {
		lg = l.root.Named(string(category))
	}
	l.byName[category] = lg
	return lg
}

// Sync flushes buffered entries.
func (l *Loggers) Sync() error {
	return l.root.Sync()
}
