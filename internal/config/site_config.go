package config

// SiteConfig identifies the connected platform instance used to rewrite
// authenticated media URLs. Both fields are optional; media rewriting is
// skipped when no site is configured.
type SiteConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,siteurl"`
	Token   string `json:"token,omitempty" yaml:"token,omitempty"`
}

// NewDefaultSiteConfig creates default site configuration
func NewDefaultSiteConfig() SiteConfig {
	return SiteConfig{}
}
