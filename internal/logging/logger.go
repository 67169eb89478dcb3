// Package logging builds the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stdout. Production environments get JSON
// output, everything else human-readable text.
func New(level, env string) *logrus.Logger {
	return NewWithOutput(level, env, os.Stdout)
}

// NewWithOutput is New with an explicit writer.
func NewWithOutput(level, env string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
