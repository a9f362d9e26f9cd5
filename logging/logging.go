// Package logging builds the zerolog logger used for diagnostics.
// Human-facing progress output does not go through it.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lukemcguire/nistcheck/config"
)

// New returns a logger writing to console (or JSON) on w, and additionally to
// a rotated file when cfg.File is set.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	writers := []io.Writer{consoleWriter(cfg.Format, w)}
	if cfg.File != "" {
		writers = append(writers, fileWriter(cfg))
	}

	var out io.Writer = writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a config level to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return parsed
}

func consoleWriter(format string, w io.Writer) io.Writer {
	if strings.EqualFold(format, "json") {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// fileWriter receives raw JSON lines regardless of the console format.
func fileWriter(cfg config.LogConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
}
