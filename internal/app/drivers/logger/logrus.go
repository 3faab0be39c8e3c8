package logger

import (
	"os"

	"clinic-portal/internal/app/config"
	"clinic-portal/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewAccessLogger returns the logger used for one line per HTTP request.
// Production appends JSON lines to accessLogFile and falls back to stderr
// when the file cannot be opened.
func NewAccessLogger(internalConfig *config.InternalConfig, accessLogFile string) *logrus.Logger {
	accessLogger := logrus.New()
	if internalConfig.App.Env != constvars.AppEnvProduction {
		accessLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return accessLogger
	}

	accessLogger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(accessLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		accessLogger.WithError(err).Warn("Failed to open access log file, using stderr")
		return accessLogger
	}
	accessLogger.SetOutput(file)
	return accessLogger
}
