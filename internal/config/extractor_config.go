package config

// ExtractorConfig defines configuration for link extraction from content
type ExtractorConfig struct {
	EnableScriptAnalysis bool   `json:"enable_script_analysis" yaml:"enable_script_analysis"`
	MaxContentSize       int64  `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,gt=0"`
	ContextSnippetSize   int    `json:"context_snippet_size,omitempty" yaml:"context_snippet_size,omitempty" validate:"omitempty,gte=0"`
	ScriptExtensions     string `json:"script_extensions,omitempty" yaml:"script_extensions,omitempty"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		EnableScriptAnalysis: true,
		MaxContentSize:       DefaultExtractorMaxContentSize,
		ContextSnippetSize:   DefaultExtractorContextSnippetSize,
		ScriptExtensions:     DefaultExtractorScriptExtensions,
	}
}
