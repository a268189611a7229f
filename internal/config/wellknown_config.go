package config

// WellKnownEntry pins the decomposition of one exact URL string, bypassing
// the URL grammar for that input.
type WellKnownEntry struct {
	URL         string `json:"url" yaml:"url" validate:"required,siteurl"`
	Protocol    string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Domain      string `json:"domain" yaml:"domain" validate:"required"`
	Port        string `json:"port,omitempty" yaml:"port,omitempty"`
	Credentials string `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Query       string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment    string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// WellKnownConfig lists extra well-known URL entries registered at startup
type WellKnownConfig struct {
	Entries []WellKnownEntry `json:"entries,omitempty" yaml:"entries,omitempty" validate:"omitempty,dive"`
}

// NewDefaultWellKnownConfig creates default well-known URL configuration
func NewDefaultWellKnownConfig() WellKnownConfig {
	return WellKnownConfig{}
}
