// Package logger wraps log/slog with a rotating log file and an optional
// stderr mirror. The TUI owns the terminal, so by default everything goes to
// the file only.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is for verbose debugging information
	LevelDebug LogLevel = iota
	// LevelInfo is for general operational information
	LevelInfo
	// LevelWarn is for warning conditions
	LevelWarn
	// LevelError is for error conditions
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a config string ("debug", "info", "warn", "error") to a
// LogLevel. Unknown values map to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	fileWriter   io.WriteCloser
	mu           sync.Mutex
	logPath      string
	initDone     bool
	mirrorStderr bool
	currentLevel LogLevel = LevelInfo
)

// DefaultLogPath is the default log file.
const DefaultLogPath = "/tmp/postview-debug.log"

// SetLevel sets the minimum log level to output
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// MirrorToStderr makes subsequent Init calls also write to stderr.
// Only headless commands should enable this; the TUI owns the terminal.
func MirrorToStderr(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	mirrorStderr = enabled
}

// MirroringStderr reports whether Init will also write to stderr.
func MirroringStderr() bool {
	mu.Lock()
	defer mu.Unlock()
	return mirrorStderr
}

// Init initializes the logger with a custom path. Repeated calls are no-ops
// until Reset. Passing os.DevNull discards all output.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return initLocked(path)
}

func initLocked(path string) error {
	levelVar.Set(currentLevel.toSlogLevel())

	var fileHandler slog.Handler
	if path == os.DevNull {
		fileHandler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar})
	} else {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create log dir %s: %w", dir, err)
			}
		}
		w := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		fileWriter = w
		fileHandler = tint.NewHandler(w, &tint.Options{
			Level:      levelVar,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}

	handler := fileHandler
	if mirrorStderr {
		noColor := !isatty.IsTerminal(os.Stderr.Fd()) || os.Getenv("NO_COLOR") != ""
		stderrHandler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelVar,
			TimeFormat: time.TimeOnly,
			NoColor:    noColor,
		})
		handler = &MultiHandler{handlers: []slog.Handler{fileHandler, stderrHandler}}
	}

	logPath = path
	slogLogger = slog.New(handler)
	initDone = true

	slogLogger.Debug("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	if err := initLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
	}
}

// Path returns the active log file path, or "" before initialization.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func logWithLevel(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return
	}
	if !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message to the log
func Debug(format string, args ...any) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an info message to the log
func Info(format string, args ...any) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning message to the log
func Warn(format string, args ...any) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message to the log
func Error(format string, args ...any) {
	logWithLevel(slog.LevelError, format, args...)
}

// Close flushes and closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if fileWriter != nil {
		fileWriter.Close()
		fileWriter = nil
	}
	slogLogger = nil
}

// Reset resets the logger state, allowing reinitialization.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if fileWriter != nil {
		fileWriter.Close()
		fileWriter = nil
	}
	initDone = false
	logPath = ""
	slogLogger = nil
	mirrorStderr = false
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}

// WithComponent returns a slog.Logger with the component attribute pre-attached.
//
// Example:
//
//	log := logger.WithComponent("api")
//	log.Debug("request", "method", "GET", "path", "/users")
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(slog.String("component", component))
}

// Logger returns the underlying slog.Logger for advanced use cases.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return slogLogger
}
