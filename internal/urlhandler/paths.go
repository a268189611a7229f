package urlhandler

import "strings"

// ConcatenatePaths joins two path fragments with exactly one slash between
// them, whether or not the fragments already carry their own.
func ConcatenatePaths(base, relative string) string {
	if base == "" {
		return relative
	}
	if relative == "" {
		return base
	}

	baseHasSlash := strings.HasSuffix(base, "/")
	relativeHasSlash := strings.HasPrefix(relative, "/")

	switch {
	case baseHasSlash && relativeHasSlash:
		return base + relative[1:]
	case !baseHasSlash && !relativeHasSlash:
		return base + "/" + relative
	default:
		return base + relative
	}
}

// RemoveEndingSlash strips exactly one trailing '/' if present.
func RemoveEndingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// RemoveStartingSlash strips exactly one leading '/' if present.
func RemoveStartingSlash(s string) string {
	return strings.TrimPrefix(s, "/")
}
