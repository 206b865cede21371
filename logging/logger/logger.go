package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ncobase/svcresp/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with payload masking.
type Logger struct {
	*logrus.Logger
	masker  *Masker
	logFile *os.File
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StdLogger returns the process logger.
func StdLogger() *Logger {
	once.Do(func() {
		standardLogger = &Logger{
			Logger: logrus.New(),
			masker: NewMasker(config.DefaultDesensitization()),
		}
		standardLogger.SetFormatter(&logrus.JSONFormatter{})
	})
	return standardLogger
}

// New configures the standard logger and returns a cleanup function.
func New(c *config.Config) (func(), error) {
	return StdLogger().Init(c)
}

// Init applies c to l.
func (l *Logger) Init(c *config.Config) (func(), error) {
	if c == nil {
		c = config.Default()
	}

	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := os.MkdirAll(filepath.Dir(c.OutputFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(c.OutputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return nil, err
		}
		l.logFile = f
		l.SetOutput(f)
	default:
		l.SetOutput(os.Stderr)
	}

	if c.Desensitization != nil {
		l.masker = NewMasker(c.Desensitization)
	}

	return func() {
		if l.logFile != nil {
			_ = l.logFile.Close()
			l.logFile = nil
		}
	}, nil
}

// MaskFields returns fields with sensitive values masked.
func (l *Logger) MaskFields(fields logrus.Fields) logrus.Fields {
	if l.masker == nil {
		return fields
	}
	return l.masker.MaskFields(fields)
}
