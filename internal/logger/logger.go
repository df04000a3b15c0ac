// Package logger provides the process logger used by mrdfctl and mrdfexplorer.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global logger instance. It discards all output until Init enables it.
var L = zap.NewNop().Sugar()

const (
	logPrefix     = "mrdfkit-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool   // If false, all logging is discarded
	LogDir  string // Directory for log files. Default: ~/.mrdfkit/logs
	Level   string // debug, info, warn or error. Default: info
}

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = zap.NewNop().Sugar()
		return nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		level = lvl
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".mrdfkit", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// best-effort
	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, FileName(time.Now()))
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), level)
	L = zap.New(core).Sugar()
	return nil
}

// FileName returns the log file name for day t.
func FileName(t time.Time) string {
	return logPrefix + t.Format("2006-01-02") + logSuffix
}

// cleanOldLogs removes log files older than retentionDays.
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
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Sync flushes buffered log entries.
func Sync() { _ = L.Sync() }

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, kv ...any) { L.Debugw(msg, kv...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, kv ...any) { L.Infow(msg, kv...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, kv ...any) { L.Warnw(msg, kv...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, kv ...any) { L.Errorw(msg, kv...) }
