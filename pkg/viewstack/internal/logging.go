// Package internal contains shared infrastructure for the viewstack packages:
// logger setup, the configuration error type and the callback fault boundary.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

var (
	logMu   sync.Mutex
	logFile *os.File
	logPath string
	toFile  bool

	output   io.Writer = os.Stdout
	levelVar           = &slog.LevelVar{}

	loggerOnce sync.Once
	logger     *slog.Logger
)

// SetLogPath sets the full path for the log file, including filename,
// and creates any missing parent directories. An empty path keeps
// logging on stdout only.
func SetLogPath(path string) {
	logMu.Lock()
	defer logMu.Unlock()

	logPath = strings.TrimSpace(path)
	toFile = logPath != ""
	reopen()
}

// EnableFileLogging writes to the default log file in the working directory
// in addition to stdout.
func EnableFileLogging() {
	SetLogPath(constants.DefaultLogFilename)
}

func reopen() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	output = os.Stdout
	if !toFile {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		// Can't create the directory, stay on console-only
		return
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return
	}
	logFile = f
	output = io.MultiWriter(os.Stdout, logFile)
}

type switchWriter struct{}

func (switchWriter) Write(p []byte) (int, error) {
	logMu.Lock()
	w := output
	logMu.Unlock()
	return w.Write(p)
}

// GetLogger returns the shared JSON logger. Components fall back to it when
// no logger is injected.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar.Set(slog.LevelInfo)
		handler := slog.NewJSONHandler(switchWriter{}, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// LoggerOr returns l when non-nil, otherwise the shared logger.
func LoggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return GetLogger()
}

// SetLogLevel sets the minimum level of the shared logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file, if any, and returns to stdout only.
func CloseLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	output = os.Stdout
}
