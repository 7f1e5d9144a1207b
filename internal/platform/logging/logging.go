package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"fxdash/internal/config"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logrus logger. The returned closer flushes the
// rotated log file, if any.
func Setup(cfg config.Logging) io.Closer {
	return configure(logrus.StandardLogger(), cfg)
}

func configure(l *logrus.Logger, cfg config.Logging) io.Closer {
	if lvl, err := logrus.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.File == "" {
		l.SetOutput(os.Stdout)
		return nopCloser{}
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	l.SetOutput(io.MultiWriter(os.Stdout, rotated))
	return rotated
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
