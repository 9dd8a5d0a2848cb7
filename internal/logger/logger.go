package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/awawa/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger

	// defaultLogDir is where debug logs go when no LogDir is configured
	defaultLogDir = func() (string, error) {
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, constants.AppName), nil
	}
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// LogDir enables the rotating log file. When empty, a file is written
	// only in debug mode, under the user cache directory.
	LogDir string
	// Stderr mirrors debug output to stderr. Leave off while the TUI owns
	// the terminal.
	Stderr bool
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	var writers []io.Writer

	logDir := cfg.LogDir
	if logDir == "" && cfg.Debug {
		dir, err := defaultLogDir()
		if err != nil {
			return fmt.Errorf("resolve log directory: %w", err)
		}
		logDir = dir
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, constants.LogFileName),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	if cfg.Debug && cfg.Stderr {
		writers = append(writers, os.Stderr)
	}

	var writer io.Writer = io.Discard
	if len(writers) > 0 {
		writer = io.MultiWriter(writers...)
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
