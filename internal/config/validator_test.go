package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *GlobalConfig)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(cfg *GlobalConfig) {},
			wantErr: false,
		},
		{
			name: "valid site url",
			mutate: func(cfg *GlobalConfig) {
				cfg.SiteConfig.BaseURL = "https://school.example.org"
			},
			wantErr: false,
		},
		{
			name: "site url with raw space",
			mutate: func(cfg *GlobalConfig) {
				cfg.SiteConfig.BaseURL = "https://bad host"
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			mutate: func(cfg *GlobalConfig) {
				cfg.LogConfig.LogLevel = "verbose"
			},
			wantErr: true,
		},
		{
			name: "unknown log format",
			mutate: func(cfg *GlobalConfig) {
				cfg.LogConfig.LogFormat = "xml"
			},
			wantErr: true,
		},
		{
			name: "well-known entry without domain",
			mutate: func(cfg *GlobalConfig) {
				cfg.WellKnownConfig.Entries = []WellKnownEntry{{URL: "https://campus.example.edu"}}
			},
			wantErr: true,
		},
		{
			name: "complete well-known entry",
			mutate: func(cfg *GlobalConfig) {
				cfg.WellKnownConfig.Entries = []WellKnownEntry{{
					URL:      "https://campus.example.edu",
					Protocol: "https",
					Domain:   "campus.example.edu",
					Path:     "/",
				}}
			},
			wantErr: false,
		},
		{
			name: "negative content size",
			mutate: func(cfg *GlobalConfig) {
				cfg.ExtractorConfig.MaxContentSize = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
