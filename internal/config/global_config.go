package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edutools/moourl/internal/errorwrapper"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	ExtractorConfig ExtractorConfig `json:"extractor_config,omitempty" yaml:"extractor_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	SiteConfig      SiteConfig      `json:"site_config,omitempty" yaml:"site_config,omitempty"`
	WellKnownConfig WellKnownConfig `json:"well_known_config,omitempty" yaml:"well_known_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ExtractorConfig: NewDefaultExtractorConfig(),
		LogConfig:       NewDefaultLogConfig(),
		SiteConfig:      NewDefaultSiteConfig(),
		WellKnownConfig: NewDefaultWellKnownConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default
// locations. The file path is determined by GetConfigPath; both JSON and
// YAML formats are supported, chosen by file extension. A missing config
// file is not an error: defaults are returned.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	if !fileExists(filePath) {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.NewParseError(filePath, "invalid YAML config", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewParseError(filePath, "invalid JSON config", err)
	}
	return nil
}
