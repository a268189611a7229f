package extractor

import (
	"github.com/BishopFox/jsluice"
	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/urlhandler"
)

// ScriptAnalyzer extracts URLs from JavaScript content using jsluice
type ScriptAnalyzer struct {
	logger     zerolog.Logger
	contextExt *ContextExtractor
}

// NewScriptAnalyzer creates a new script analyzer
func NewScriptAnalyzer(contextExt *ContextExtractor, logger zerolog.Logger) *ScriptAnalyzer {
	return &ScriptAnalyzer{
		logger:     logger.With().Str("component", "ScriptAnalyzer").Logger(),
		contextExt: contextExt,
	}
}

// Analyze extracts URLs from JavaScript content, resolving each against
// the source URL and dropping ones that fail validation
func (sa *ScriptAnalyzer) Analyze(sourceURL string, content []byte) []ExtractedLink {
	analyzer := jsluice.NewAnalyzer(content)
	results := analyzer.GetURLs()

	sa.logger.Debug().Str("source_url", sourceURL).Int("url_count", len(results)).Msg("Script analysis completed")

	contentStr := string(content)
	links := make([]ExtractedLink, 0, len(results))

	for _, result := range results {
		absolute := urlhandler.ToAbsoluteURL(sourceURL, result.URL)
		if !urlhandler.IsAbsoluteURL(absolute) || !urlhandler.IsValidMoodleURL(absolute) {
			sa.logger.Debug().Str("url", result.URL).Msg("Dropping unresolvable script URL")
			continue
		}

		linkType := result.Type
		if linkType == "" {
			linkType = TypeScriptDefault
		}

		links = append(links, ExtractedLink{
			SourceURL: sourceURL,
			Raw:       result.URL,
			Absolute:  absolute,
			Type:      linkType,
			Context:   sa.contextExt.ExtractContext(contentStr, result.URL),
		})
	}

	return links
}
