package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field

	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
	"github.com/edutools/moourl/internal/errorwrapper"
)

// New creates a zerolog logger from application log configuration
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return build(ConvertConfig(cfg))
}

// build assembles a logger from the resolved logger configuration
func build(cfg LoggerConfig) (zerolog.Logger, error) {
	if cfg.EnableFile && cfg.FilePath == "" {
		return zerolog.Logger{}, errorwrapper.NewValidationError("file_path", cfg.FilePath, "file path required when file logging enabled")
	}
	if cfg.MaxSizeMB <= 0 {
		return zerolog.Logger{}, errorwrapper.NewValidationError("max_size_mb", cfg.MaxSizeMB, "max size must be positive")
	}

	factory := NewWriterFactory()

	var writers []io.Writer
	if cfg.EnableConsole {
		writers = append(writers, factory.CreateConsoleWriter(cfg.Format))
	}
	if cfg.EnableFile {
		writers = append(writers, factory.CreateFileWriter(cfg))
	}
	if len(writers) == 0 {
		return zerolog.Logger{}, errorwrapper.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(cfg.Level)
	stdlog.SetOutput(zerologInstance)
	stdlog.SetFlags(0)

	return zerologInstance, nil
}
