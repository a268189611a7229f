package urlhandler

import (
	"regexp"
	"strings"
)

var (
	protocolRegex        = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`)
	schemeDelimiterRegex = regexp.MustCompile(`^[^/:.?]*://`)
)

// RemoveProtocol strips a leading scheme:// from the URL, case-insensitively.
func RemoveProtocol(rawURL string) string {
	return protocolRegex.ReplaceAllString(rawURL, "")
}

// SameDomainAndPath reports whether two URLs point to the same domain and
// path, ignoring scheme, port, credentials, query, fragment, letter case
// and a trailing slash on the path. Inputs without a scheme delimiter are
// assumed to be https. Well-known URLs only compare equal to themselves.
func SameDomainAndPath(urlA, urlB string) bool {
	if isWellKnownURL(urlA) || isWellKnownURL(urlB) {
		return urlA == urlB
	}

	if !schemeDelimiterRegex.MatchString(urlA) {
		urlA = "https://" + urlA
	}
	if !schemeDelimiterRegex.MatchString(urlB) {
		urlB = "https://" + urlB
	}

	var partsA, partsB URLParts
	if parsed := Parse(urlA); parsed != nil {
		partsA = *parsed
	}
	if parsed := Parse(urlB); parsed != nil {
		partsB = *parsed
	}

	return strings.ToLower(partsA.Domain) == strings.ToLower(partsB.Domain) &&
		RemoveEndingSlash(strings.ToLower(partsA.Path)) == RemoveEndingSlash(strings.ToLower(partsB.Path))
}

// GetURLAnchor returns the anchor of the URL from the first '#' onward,
// keeping any further '#' segments verbatim. The empty string means the
// URL has no anchor.
func GetURLAnchor(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[idx:]
	}
	return ""
}

// RemoveURLAnchor returns the URL without its anchor.
func RemoveURLAnchor(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}

// ToAbsoluteURL converts a URL to an absolute one, using the parent URL as
// the base. URLs that already carry a scheme are returned unchanged, and
// protocol-relative URLs only get the parent's scheme prepended. Relative
// URLs resolve against the parent's directory, not its full path.
func ToAbsoluteURL(parentURL, rawURL string) string {
	if parsed := Parse(rawURL); parsed != nil && parsed.Protocol != "" {
		return rawURL
	}

	var parent URLParts
	if parsed := Parse(parentURL); parsed != nil {
		parent = *parsed
	}

	if strings.HasPrefix(rawURL, "//") {
		protocol := parent.Protocol
		if protocol == "" {
			protocol = "https"
		}
		return protocol + ":" + rawURL
	}

	base := URLParts{
		Protocol:    parent.Protocol,
		Credentials: parent.Credentials,
		Domain:      parent.Domain,
		Port:        parent.Port,
	}
	if base.Protocol == "" {
		base.Protocol = "https"
	}
	if !strings.HasPrefix(rawURL, "/") {
		base.Path = pathDirectory(parent.Path)
	}

	return ConcatenatePaths(Assemble(base), rawURL)
}

// ToRelativeURL converts an absolute URL into one relative to the parent.
// URLs that do not contain the parent's address are returned unchanged.
// The parent is removed by plain text replacement of its first occurrence,
// not by structural resolution, so a URL that repeats the parent address
// elsewhere (e.g. inside a query parameter) is trimmed at the first match.
func ToRelativeURL(parentURL, rawURL string) string {
	parent := RemoveProtocol(parentURL)

	if !strings.Contains(RemoveProtocol(rawURL), parent) {
		return rawURL
	}

	return RemoveStartingSlash(strings.Replace(RemoveProtocol(rawURL), parent, "", 1))
}

// pathDirectory returns the path up to and excluding its last segment.
func pathDirectory(path string) string {
	if idx := strings.LastIndex(path, "/"); idx != -1 {
		return path[:idx]
	}
	return ""
}
