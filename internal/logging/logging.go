// Package logging sets up the application logger. The terminal belongs to the
// game screen, so log entries go to a rotating file instead of stdout.
package logging

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/diegok/pong/internal/config"
)

// New creates a JSON logger writing into the rotating file described by cfg.
// The returned closer flushes and closes the file.
func New(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	if cfg.File == "" {
		return nil, nil, errors.New("log file not set")
	}

	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	// Open the file now; lumberjack otherwise waits for the first entry.
	if _, err := out.Write(nil); err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", cfg.File)
	}

	log := NewWithWriter(out, cfg.Level)
	return log, out, nil
}

// NewWithWriter creates a JSON logger writing to w.
func NewWithWriter(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(w)
	log.SetLevel(level)
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return NewWithWriter(io.Discard, logrus.PanicLevel)
}
