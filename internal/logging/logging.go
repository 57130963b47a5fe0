package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger used across the server. An unknown level
// falls back to info.
func SetupLogging(level string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logLevel,
	}

	return &logger
}
