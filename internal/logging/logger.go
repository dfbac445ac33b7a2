// Package logging provides categorized file-based logging for countup.
// Logs are written to <dir>/<date>_<category>.log, one file per category.
// Logging is controlled by debug_mode - when false, every logger is a no-op
// so nothing competes with the terminal UI for stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config load
	CategoryAnimation Category = "animation" // Count-up sequences and hosts
	CategoryUI        Category = "ui"        // Terminal landing page
	CategoryConfig    Category = "config"    // Config load/save/watch
	CategoryExercises Category = "exercises" // String exercises
)

// Options mirrors config.LoggingConfig to avoid circular imports.
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	JSONFormat bool
	Dir        string
	Categories map[string]bool
}

// Logger wraps a sugared zap logger bound to one category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
	base     *zap.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	opts      Options
	optsMu    sync.RWMutex
	level     = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Initialize applies the options. Should be called once at startup.
func Initialize(o Options) error {
	CloseAll()

	optsMu.Lock()
	opts = o
	optsMu.Unlock()

	lvl, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)

	if !o.DebugMode {
		return nil
	}
	if o.Dir == "" {
		return fmt.Errorf("log directory required in debug mode")
	}
	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== countup logging initialized ===")
	boot.Info("Logs directory: %s", o.Dir)
	boot.Info("Log level: %s", lvl)
	return nil
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	optsMu.RLock()
	defer optsMu.RUnlock()

	if !opts.DebugMode {
		return false
	}
	if opts.Categories == nil {
		return true
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return nopLogger(category)
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	optsMu.RLock()
	dir, jsonFormat := opts.Dir, opts.JSONFormat
	optsMu.RUnlock()

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return nopLogger(category)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if jsonFormat {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	base := zap.New(zapcore.NewCore(enc, zapcore.AddSync(file), level)).
		With(zap.String("cat", string(category)))

	l := &Logger{
		category: category,
		base:     base,
		sugar:    base.Sugar(),
		file:     file,
	}
	loggers[category] = l
	return l
}

func nopLogger(category Category) *Logger {
	base := zap.NewNop()
	return &Logger{category: category, base: base, sugar: base.Sugar()}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With returns a logger carrying extra key-value context.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	sugar := l.sugar.With(keysAndValues...)
	return &Logger{category: l.category, sugar: sugar, base: sugar.Desugar()}
}

// CloseAll syncs and closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		_ = l.base.Sync()
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// CONVENIENCE FUNCTIONS - no-ops if the category is disabled
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// Animation logs to the animation category
func Animation(format string, args ...interface{}) {
	Get(CategoryAnimation).Info(format, args...)
}

// AnimationDebug logs debug to the animation category
func AnimationDebug(format string, args ...interface{}) {
	Get(CategoryAnimation).Debug(format, args...)
}

// UI logs to the ui category
func UI(format string, args ...interface{}) {
	Get(CategoryUI).Info(format, args...)
}

// UIDebug logs debug to the ui category
func UIDebug(format string, args ...interface{}) {
	Get(CategoryUI).Debug(format, args...)
}

// Config logs to the config category
func Config(format string, args ...interface{}) {
	Get(CategoryConfig).Info(format, args...)
}

// ConfigWarn logs a warning to the config category
func ConfigWarn(format string, args ...interface{}) {
	Get(CategoryConfig).Warn(format, args...)
}

// =============================================================================
// TIMING
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
