// Package logger builds structured loggers for the simulation core. Unlike
// the teacher application's process-wide singleton, the core hands callers
// an explicit *logf.Logger: a library has no business owning global state
// its embedder didn't ask for.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/zerodha/logf"
)

var defaultOpts = logf.Opts{
	EnableCaller:    true,
	TimestampFormat: "15:04:05",
	EnableColor:     false,
	Level:           logf.InfoLevel,
}

func levelFromString(level string) logf.Level {
	switch level {
	case "debug":
		return logf.DebugLevel
	case "info":
		return logf.InfoLevel
	case "warn":
		return logf.WarnLevel
	case "error":
		return logf.ErrorLevel
	case "fatal":
		return logf.FatalLevel
	default:
		return logf.InfoLevel
	}
}

// New builds a logger at level, writing to stdout.
func New(level string) logf.Logger {
	opts := defaultOpts
	opts.Level = levelFromString(level)
	opts.Writer = os.Stdout
	return logf.New(opts)
}

// NewFile builds a logger at level that writes to both stdout and a file
// named "<appName>-<pid>.log" under dir, appending if it already exists.
func NewFile(level, appName, dir string) (logf.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logf.Logger{}, fmt.Errorf("logger: failed to create log dir %s: %w", dir, err)
	}

	path := fmt.Sprintf("%s/%s-%d.log", dir, appName, os.Getpid())
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return logf.Logger{}, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
	}

	opts := defaultOpts
	opts.Level = levelFromString(level)
	opts.Writer = io.MultiWriter(os.Stdout, f)
	return logf.New(opts), nil
}
