// Package logger builds the process-wide logrus logger from LogConfig.
//
// Go Learning Note — "github.com/sirupsen/logrus":
// logrus is a structured logger: instead of formatting values into the
// message, you attach them as fields (WithField, WithFields) and let the
// formatter decide the layout. The text formatter prints key=value pairs; the
// JSON formatter emits one object per line for log shippers.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"ridesharing/internal/config"
)

// New returns a logger writing to stderr. Stdout is reserved for the
// text-rendering sink, so logs never interleave with program output.
func New(cfg config.LogConfig) *logrus.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit destination. An unknown level falls
// back to info; an unknown format falls back to text.
func NewWithOutput(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	return log
}

// Discard returns a logger that drops everything. Tests use it to keep
// output quiet.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
