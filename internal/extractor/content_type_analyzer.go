package extractor

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
)

// ContentTypeAnalyzer decides which analyzer handles a piece of content
type ContentTypeAnalyzer struct {
	logger           zerolog.Logger
	scriptExtensions []string
}

// NewContentTypeAnalyzer creates a new content type analyzer
func NewContentTypeAnalyzer(extractorConfig config.ExtractorConfig, logger zerolog.Logger) *ContentTypeAnalyzer {
	extensions := strings.Split(extractorConfig.ScriptExtensions, ",")
	for i, ext := range extensions {
		extensions[i] = strings.TrimSpace(ext)
	}

	return &ContentTypeAnalyzer{
		logger:           logger.With().Str("component", "ContentTypeAnalyzer").Logger(),
		scriptExtensions: extensions,
	}
}

// ShouldAnalyzeAsScript determines if content should go through the script
// analyzer instead of the HTML analyzer
func (cta *ContentTypeAnalyzer) ShouldAnalyzeAsScript(sourceURL, contentType string) bool {
	isScript := strings.Contains(contentType, "javascript")

	// If not detected by content type, check URL extension
	if !isScript {
		urlLower := strings.ToLower(sourceURL)
		for _, ext := range cta.scriptExtensions {
			if ext != "" && strings.HasSuffix(urlLower, ext) {
				isScript = true
				break
			}
		}
	}

	cta.logger.Debug().
		Str("source_url", sourceURL).
		Str("content_type", contentType).
		Bool("is_script", isScript).
		Msg("Content type analysis")

	return isScript
}
