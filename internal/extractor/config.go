package extractor

// ExtractedLink is one reference discovered in analyzed content.
type ExtractedLink struct {
	SourceURL string `json:"source_url"`
	Raw       string `json:"raw"`
	Absolute  string `json:"absolute"`
	Type      string `json:"type"`
	Context   string `json:"context,omitempty"`
}

// Link types assigned by the analyzers. Script analysis keeps the type
// reported by jsluice when it has one.
const (
	TypeHTMLAttribute = "html_attribute"
	TypeVimeoEmbed    = "vimeo_embed"
	TypeScriptDefault = "script_literal"
)
