// Package site models the connected platform instance whose base address
// and session token are embedded into rewritten media URLs.
package site

import (
	"github.com/edutools/moourl/internal/config"
	"github.com/edutools/moourl/internal/errorwrapper"
	"github.com/edutools/moourl/internal/urlhandler"
)

// Site is a connected platform instance. It satisfies urlhandler.Site.
type Site struct {
	baseURL string
	token   string
}

// New creates a Site from configuration. The base URL is stored without a
// trailing slash so joined paths carry exactly one separator.
func New(cfg config.SiteConfig) (*Site, error) {
	if cfg.BaseURL == "" {
		return nil, errorwrapper.NewValidationError("base_url", cfg.BaseURL, "site base URL is required")
	}
	if !urlhandler.IsValidMoodleURL(cfg.BaseURL) {
		return nil, errorwrapper.NewValidationError("base_url", cfg.BaseURL, "site base URL is not a valid URL")
	}

	return &Site{
		baseURL: urlhandler.RemoveEndingSlash(cfg.BaseURL),
		token:   cfg.Token,
	}, nil
}

// URL returns the site's base address
func (s *Site) URL() string {
	return s.baseURL
}

// Token returns the current session token
func (s *Site) Token() string {
	return s.token
}
