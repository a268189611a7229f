package urlhandler

// SchoolDemoSiteURL is served with a decomposition the grammar does not
// produce on its own, so it is pinned in the well-known table.
const SchoolDemoSiteURL = "https://school.moodledemo.net"

// wellKnownURLs maps exact URL strings to pre-built decompositions,
// checked before the grammar in Parse. Well-known URLs are always accepted
// by IsValidMoodleURL and compared by strict string equality in
// SameDomainAndPath.
var wellKnownURLs = map[string]URLParts{
	SchoolDemoSiteURL: {
		Protocol: "https",
		Domain:   "school.moodledemo.net",
		Path:     "/",
	},
}

// RegisterWellKnownURL pins the decomposition for an exact URL string.
// Call during startup; the table is not guarded for concurrent mutation.
func RegisterWellKnownURL(rawURL string, parts URLParts) {
	wellKnownURLs[rawURL] = parts
}

func lookupWellKnownURL(rawURL string) (URLParts, bool) {
	parts, ok := wellKnownURLs[rawURL]
	return parts, ok
}

func isWellKnownURL(rawURL string) bool {
	_, ok := wellKnownURLs[rawURL]
	return ok
}
