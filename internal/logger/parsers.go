package logger

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
	"github.com/edutools/moourl/internal/errorwrapper"
)

// ParseLevel parses a string log level to zerolog.Level
func ParseLevel(levelStr string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

// ParseFormat parses a string format to LogFormat, defaulting to console
func ParseFormat(formatStr string) LogFormat {
	switch strings.ToLower(formatStr) {
	case "json":
		return FormatJSON
	case "console":
		return FormatConsole
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// ConvertConfig converts application config to logger config
func ConvertConfig(cfg config.LogConfig) LoggerConfig {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel // fallback to default
	}

	loggerConfig := DefaultLoggerConfig()
	loggerConfig.Level = level
	loggerConfig.Format = ParseFormat(cfg.LogFormat)
	loggerConfig.EnableFile = cfg.LogFile != ""
	loggerConfig.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig
}
