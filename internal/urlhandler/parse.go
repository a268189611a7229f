package urlhandler

import (
	"regexp"
	"strings"
)

// urlGrammarRegex is the generalized URI grammar from RFC 3986 appendix B,
// with the authority captured as a single group for further splitting.
var urlGrammarRegex = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// Parse decomposes a URL string into its parts. Leading and trailing
// whitespace is trimmed first. Registered well-known URLs return their
// pinned decomposition without going through the grammar. Parse returns
// nil when the input does not match the grammar.
//
// Inside the authority, the rightmost '@' separates credentials from the
// host, the last ':' separates domain from port, and the first ':' inside
// the credentials separates username from password.
func Parse(rawURL string) *URLParts {
	trimmed := strings.TrimSpace(rawURL)

	if pinned, ok := lookupWellKnownURL(trimmed); ok {
		return &pinned
	}

	match := urlGrammarRegex.FindStringSubmatch(trimmed)
	if match == nil {
		return nil
	}

	parts := URLParts{
		Protocol: match[2],
		Path:     match[5],
		Query:    match[7],
		Fragment: match[9],
	}

	host := match[4]
	if at := strings.LastIndex(host, "@"); at != -1 {
		parts.Credentials = host[:at]
		host = host[at+1:]
	}
	if colon := strings.LastIndex(host, ":"); colon != -1 {
		parts.Domain = host[:colon]
		parts.Port = host[colon+1:]
	} else {
		parts.Domain = host
	}
	if parts.Credentials != "" {
		if colon := strings.Index(parts.Credentials, ":"); colon != -1 {
			parts.Username = parts.Credentials[:colon]
			parts.Password = parts.Credentials[colon+1:]
		} else {
			parts.Username = parts.Credentials
		}
	}

	return &parts
}

// Assemble is the inverse of Parse: it concatenates the present parts back
// into a URL string. Field contents are not validated, and empty fields
// contribute nothing to the result.
func Assemble(parts URLParts) string {
	assembled := ""
	if parts.Protocol != "" {
		assembled += parts.Protocol + "://"
	}
	if parts.Credentials != "" {
		assembled += parts.Credentials + "@"
	}
	assembled += parts.Domain
	if parts.Port != "" {
		assembled += ":" + parts.Port
	}
	assembled += parts.Path
	if parts.Query != "" {
		assembled += "?" + parts.Query
	}
	if parts.Fragment != "" {
		assembled += "#" + parts.Fragment
	}
	return assembled
}

// IsAbsoluteURL reports whether the URL carries an explicit scheme and host.
func IsAbsoluteURL(rawURL string) bool {
	parts := Parse(rawURL)
	return parts != nil && parts.Protocol != "" && parts.Domain != ""
}
