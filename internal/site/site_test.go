package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutools/moourl/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.SiteConfig
		expectedURL string
		wantErr     bool
	}{
		{
			name:        "base url kept verbatim",
			cfg:         config.SiteConfig{BaseURL: "https://school.example.org", Token: "secret-token"},
			expectedURL: "https://school.example.org",
		},
		{
			name:        "trailing slash removed",
			cfg:         config.SiteConfig{BaseURL: "https://school.example.org/"},
			expectedURL: "https://school.example.org",
		},
		{
			name:    "empty base url",
			cfg:     config.SiteConfig{},
			wantErr: true,
		},
		{
			name:    "base url with raw space",
			cfg:     config.SiteConfig{BaseURL: "https://bad host"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, s.URL())
			assert.Equal(t, tt.cfg.Token, s.Token())
		})
	}
}
