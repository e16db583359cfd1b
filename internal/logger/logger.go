// Package logger provides the process-wide structured logger. Output is
// discarded until Init is called.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// L is the global logger instance. It discards all output until Init.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "nowplaying-"
	logSuffix     = ".log"
	retentionDays = 30
)

var current io.Closer

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	File    string     // Explicit log file. Overrides LogDir.
	LogDir  string     // Directory for dated log files. Default: $XDG_STATE_HOME/nowplaying/logs
	Level   slog.Level // Minimum log level. Default: LevelInfo
}

// Init configures logging. Call from main before any log calls.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	filename := opts.File
	if filename == "" {
		logDir := opts.LogDir
		if logDir == "" {
			logDir = filepath.Join(xdg.StateHome, "nowplaying", "logs")
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return err
		}
		cleanOldLogs(logDir, time.Now())
		filename = filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	} else if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	current = f

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close releases the log file opened by Init and discards further output.
func Close() {
	if current == nil {
		return
	}
	_ = current.Close() //nolint:errcheck // nothing left to log to
	current = nil
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cleanOldLogs removes dated log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// nowplaying-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name)) //nolint:errcheck // best-effort cleanup
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
