// Package urlhandler parses, compares and rewrites LMS site URLs.
//
// All functions are pure string transformations. Failures are signalled
// with zero values (nil, "" or false) rather than errors; callers decide
// what an absent result means.
package urlhandler

// URLParts holds the decomposed pieces of a URL as produced by Parse.
// The empty string marks a piece that was not present in the source
// string; Assemble emits nothing for empty fields.
type URLParts struct {
	Protocol    string `json:"protocol,omitempty"`
	Domain      string `json:"domain,omitempty"`
	Port        string `json:"port,omitempty"`
	Credentials string `json:"credentials,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	Path        string `json:"path,omitempty"`
	Query       string `json:"query,omitempty"`
	Fragment    string `json:"fragment,omitempty"`
}
