package main

import (
	"io"

	"github.com/osse101/CookieMonster_Go/internal/config"
	"github.com/osse101/CookieMonster_Go/internal/logger"
)

// loggerConfig starts from the environment's preset and applies explicit overrides
func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.ConfigForEnvironment(cfg.Environment)
	lc.ServiceName = cfg.ServiceName
	lc.Version = cfg.Version

	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	return lc
}

// initLogger initializes the logger using centralized app configuration.
// Logs go to w so stdout stays reserved for the monster's narration.
func initLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(loggerConfig(cfg), w)
}
