package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ContextExtractor handles extraction of context snippets
type ContextExtractor struct {
	logger      zerolog.Logger
	snippetSize int
}

// NewContextExtractor creates a new context extractor
func NewContextExtractor(snippetSize int, logger zerolog.Logger) *ContextExtractor {
	return &ContextExtractor{
		logger:      logger.With().Str("component", "ContextExtractor").Logger(),
		snippetSize: snippetSize,
	}
}

// ExtractContext extracts context around a match in the content
func (ce *ContextExtractor) ExtractContext(contentStr string, match string) string {
	matchStartIndex := strings.Index(contentStr, match)
	if matchStartIndex == -1 {
		return ""
	}

	start := matchStartIndex - ce.snippetSize
	if start < 0 {
		start = 0
	}

	end := matchStartIndex + len(match) + ce.snippetSize
	if end > len(contentStr) {
		end = len(contentStr)
	}

	// Keep snippet bounds on rune boundaries so multi-byte characters
	// are never split.
	for start > 0 && !utf8.RuneStart(contentStr[start]) {
		start--
	}
	for end < len(contentStr) && !utf8.RuneStart(contentStr[end]) {
		end++
	}

	return contentStr[start:end]
}
