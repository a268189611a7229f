package urlhandler

import (
	"regexp"
	"strings"
)

var (
	httpSchemeRegex = regexp.MustCompile(`^https?://`)

	// Path suffixes of common Moodle pages, tried in order. The non-greedy
	// prefix capture is the guessed domain plus any path prefix the site is
	// installed under.
	moodleSuffixRegex = regexp.MustCompile(
		`^https?://(.*?)(/my/?|/index\.php|/course/view\.php|/login/index\.php|/mod/page/view\.php|/\?redirect=0)`)

	// URI grammar with raw spaces forbidden in scheme, authority and path.
	moodleURLValidationRegex = regexp.MustCompile(
		`^(?:([^\s:/?#]+):)?(?://([^\s/?#]*))?([^\s?#]*)(?:\?([^#]*))?(?:#(.*))?$`)
)

// GuessMoodleDomain guesses the domain of a Moodle site from one of its
// page URLs. URLs without a scheme are assumed to be https. When the URL
// matches a known page suffix the prefix before it is returned, which may
// include a path prefix; otherwise the parsed domain is returned. The
// empty string means no guess could be made.
func GuessMoodleDomain(rawURL string) string {
	if !httpSchemeRegex.MatchString(rawURL) {
		rawURL = "https://" + rawURL
	}

	if match := moodleSuffixRegex.FindStringSubmatch(rawURL); match != nil {
		return match[1]
	}

	if parts := Parse(rawURL); parts != nil {
		return parts.Domain
	}
	return ""
}

// IsValidMoodleURL reports whether the URL matches the URI grammar without
// raw spaces in its scheme, authority or path. Well-known URLs are always
// valid.
func IsValidMoodleURL(rawURL string) bool {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false
	}
	if isWellKnownURL(trimmed) {
		return true
	}
	return moodleURLValidationRegex.MatchString(trimmed)
}
