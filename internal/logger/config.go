package logger

import (
	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
)

// LoggerConfig is the resolved logging setup built from a config.LogConfig
// by ConvertConfig.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// LogFormat represents available log formats
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// DefaultLoggerConfig returns the resolved form of the config package
// defaults: console-only output at info level.
func DefaultLoggerConfig() LoggerConfig {
	level, err := ParseLevel(config.DefaultLogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return LoggerConfig{
		Level:         level,
		Format:        ParseFormat(config.DefaultLogFormat),
		EnableConsole: true,
		EnableFile:    false,
		MaxSizeMB:     config.DefaultMaxLogSizeMB,
		MaxBackups:    config.DefaultMaxLogBackups,
	}
}
