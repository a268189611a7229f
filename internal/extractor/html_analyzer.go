package extractor

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/urlhandler"
)

// htmlLinkSelector covers the elements whose attributes reference other
// resources. The attribute read depends on the tag.
const htmlLinkSelector = "a[href], link[href], script[src], img[src], iframe[src], source[src], video[poster], form[action], object[data], embed[src]"

// HTMLAnalyzer extracts links from HTML content
type HTMLAnalyzer struct {
	logger     zerolog.Logger
	site       urlhandler.Site
	contextExt *ContextExtractor
}

// NewHTMLAnalyzer creates a new HTML analyzer. The site may be nil, in
// which case Vimeo embeds are kept as-is instead of being rewritten.
func NewHTMLAnalyzer(site urlhandler.Site, contextExt *ContextExtractor, logger zerolog.Logger) *HTMLAnalyzer {
	return &HTMLAnalyzer{
		logger:     logger.With().Str("component", "HTMLAnalyzer").Logger(),
		site:       site,
		contextExt: contextExt,
	}
}

// Analyze extracts links from HTML content, resolving each reference
// against the source URL
func (ha *HTMLAnalyzer) Analyze(sourceURL string, content []byte) []ExtractedLink {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		ha.logger.Error().Err(err).Str("source_url", sourceURL).Msg("Failed to parse HTML content")
		return nil
	}

	contentStr := string(content)
	links := make([]ExtractedLink, 0, 16)

	doc.Find(htmlLinkSelector).Each(func(i int, s *goquery.Selection) {
		raw, ok := s.Attr(attributeForTag(goquery.NodeName(s)))
		if !ok {
			return
		}
		raw = strings.TrimSpace(raw)
		if skipReference(raw) {
			return
		}

		link := ha.buildLink(sourceURL, raw, contentStr)
		links = append(links, link)
	})

	ha.logger.Debug().Str("source_url", sourceURL).Int("link_count", len(links)).Msg("HTML analysis completed")

	return links
}

// buildLink resolves one raw reference and rewrites Vimeo embeds through
// the site's media player when a site is attached
func (ha *HTMLAnalyzer) buildLink(sourceURL, raw, contentStr string) ExtractedLink {
	link := ExtractedLink{
		SourceURL: sourceURL,
		Raw:       raw,
		Absolute:  urlhandler.ToAbsoluteURL(sourceURL, raw),
		Type:      TypeHTMLAttribute,
		Context:   ha.contextExt.ExtractContext(contentStr, raw),
	}

	if ha.site != nil && urlhandler.IsVimeoVideoURL(link.Absolute) {
		if player := urlhandler.GetVimeoPlayerURL(link.Absolute, ha.site); player != "" {
			link.Absolute = player
			link.Type = TypeVimeoEmbed
		}
	}

	return link
}

// attributeForTag maps an element name to the attribute holding its reference
func attributeForTag(tagName string) string {
	switch tagName {
	case "a", "link":
		return "href"
	case "form":
		return "action"
	case "object":
		return "data"
	case "video":
		return "poster"
	default:
		return "src"
	}
}

// skipReference filters out references that cannot name another resource
func skipReference(raw string) bool {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return true
	}
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "data:")
}
