// Package logging configures colored structured logging with tint and adapts
// it to the printf-style Logger used by the calculation engine.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options controls the handler built by New.
type Options struct {
	Level   slog.Level
	NoColor bool
}

// New returns a tint-backed slog logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}))
}

// Setup installs a stderr logger as the slog default. verbose forces debug
// level; otherwise LOG_LEVEL decides.
func Setup(verbose bool) *slog.Logger {
	level := LevelFromEnv()
	if verbose {
		level = slog.LevelDebug
	}
	logger := New(os.Stderr, Options{Level: level})
	slog.SetDefault(logger)
	return logger
}

// LevelFromEnv reads LOG_LEVEL.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Printf adapts a slog logger to the Debugf/Infof/Warnf/Errorf interface.
type Printf struct {
	Logger *slog.Logger
}

// NewPrintf wraps l, or the slog default when l is nil.
func NewPrintf(l *slog.Logger) Printf {
	if l == nil {
		l = slog.Default()
	}
	return Printf{Logger: l}
}

func (p Printf) Debugf(format string, args ...any) { p.log(slog.LevelDebug, format, args...) }
func (p Printf) Infof(format string, args ...any)  { p.log(slog.LevelInfo, format, args...) }
func (p Printf) Warnf(format string, args ...any)  { p.log(slog.LevelWarn, format, args...) }
func (p Printf) Errorf(format string, args ...any) { p.log(slog.LevelError, format, args...) }

func (p Printf) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !p.Logger.Enabled(ctx, level) {
		return
	}
	p.Logger.Log(ctx, level, fmt.Sprintf(format, args...))
}
