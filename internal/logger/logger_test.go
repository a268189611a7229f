package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
)

func TestNew_DefaultLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_ = log // ensure variable is used
}

func TestNew_FileLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "moourl.log")
	cfg.LogFormat = "json"

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	log.Info().Msg("file logger smoke test")

	if _, err := os.Stat(cfg.LogFile); err != nil {
		t.Errorf("expected log file to exist: %v", err)
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()

	if cfg.Level != zerolog.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("expected console format, got %v", cfg.Format)
	}
	if !cfg.EnableConsole || cfg.EnableFile {
		t.Error("expected console-only output by default")
	}
	if cfg.MaxSizeMB != config.DefaultMaxLogSizeMB {
		t.Errorf("expected max size %d, got %d", config.DefaultMaxLogSizeMB, cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != config.DefaultMaxLogBackups {
		t.Errorf("expected max backups %d, got %d", config.DefaultMaxLogBackups, cfg.MaxBackups)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if level != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v", level)
	}

	if _, err := ParseLevel("not-a-level"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"json", FormatJSON},
		{"console", FormatConsole},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"unknown", FormatConsole},
		{"", FormatConsole},
	}

	for _, tt := range tests {
		if result := ParseFormat(tt.input); result != tt.expected {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}
