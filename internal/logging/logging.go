// Package logging builds the logrus logger shared across the pipeline.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a configured logger writing to stderr. Unknown level strings
// fall back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
