// Package extractor discovers URL references inside HTML and JavaScript
// content held in memory, resolving each against the content's source URL.
package extractor

import (
	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
	"github.com/edutools/moourl/internal/errorwrapper"
	"github.com/edutools/moourl/internal/urlhandler"
)

// LinkExtractor orchestrates HTML and script analysis over content
type LinkExtractor struct {
	logger          zerolog.Logger
	extractorConfig config.ExtractorConfig
	contentType     *ContentTypeAnalyzer
	html            *HTMLAnalyzer
	script          *ScriptAnalyzer
}

// NewLinkExtractor creates a new link extractor. The site may be nil when
// no platform instance is configured.
func NewLinkExtractor(extractorConfig config.ExtractorConfig, platformSite urlhandler.Site, logger zerolog.Logger) *LinkExtractor {
	componentLogger := logger.With().Str("component", "LinkExtractor").Logger()
	contextExt := NewContextExtractor(extractorConfig.ContextSnippetSize, componentLogger)

	return &LinkExtractor{
		logger:          componentLogger,
		extractorConfig: extractorConfig,
		contentType:     NewContentTypeAnalyzer(extractorConfig, componentLogger),
		html:            NewHTMLAnalyzer(platformSite, contextExt, componentLogger),
		script:          NewScriptAnalyzer(contextExt, componentLogger),
	}
}

// ExtractLinks analyzes the content and returns the references found in
// it, deduplicated by resolved URL. Content larger than the configured
// maximum is rejected.
func (le *LinkExtractor) ExtractLinks(sourceURL, contentType string, content []byte) ([]ExtractedLink, error) {
	if le.extractorConfig.MaxContentSize > 0 && int64(len(content)) > le.extractorConfig.MaxContentSize {
		return nil, errorwrapper.NewValidationError("content", len(content), "content exceeds maximum size")
	}

	var links []ExtractedLink
	if le.contentType.ShouldAnalyzeAsScript(sourceURL, contentType) {
		if !le.extractorConfig.EnableScriptAnalysis {
			le.logger.Debug().Str("source_url", sourceURL).Msg("Script analysis disabled")
			return nil, nil
		}
		links = le.script.Analyze(sourceURL, content)
	} else {
		links = le.html.Analyze(sourceURL, content)
	}

	return dedupeLinks(links), nil
}

// GroupByBaseDomain buckets links by the registrable base domain of their
// resolved URL. Links whose host cannot be reduced keep the parsed domain
// as the bucket key, and links without a host fall under the empty key.
func GroupByBaseDomain(links []ExtractedLink) map[string][]ExtractedLink {
	groups := make(map[string][]ExtractedLink)

	for _, link := range links {
		key := ""
		if parts := urlhandler.Parse(link.Absolute); parts != nil && parts.Domain != "" {
			key = parts.Domain
			if base, err := urlhandler.BaseDomain(parts.Domain); err == nil {
				key = base
			}
		}
		groups[key] = append(groups[key], link)
	}

	return groups
}

// dedupeLinks keeps the first occurrence of each resolved URL
func dedupeLinks(links []ExtractedLink) []ExtractedLink {
	seen := make(map[string]struct{}, len(links))
	deduped := make([]ExtractedLink, 0, len(links))

	for _, link := range links {
		if _, exists := seen[link.Absolute]; exists {
			continue
		}
		seen[link.Absolute] = struct{}{}
		deduped = append(deduped, link)
	}

	return deduped
}
