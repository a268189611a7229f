package urlhandler

import "regexp"

var (
	vimeoVideoRegex     = regexp.MustCompile(`^https?://player\.vimeo\.com/video/([0-9]+)`)
	vimeoQueryHashRegex = regexp.MustCompile(`[?&]h=([a-zA-Z0-9]+)`)
	vimeoPathHashRegex  = regexp.MustCompile(`^https?://player\.vimeo\.com/video/[0-9]+/([a-zA-Z0-9]+)`)
)

// Site exposes the pieces of a connected platform instance needed to build
// authenticated media URLs.
type Site interface {
	URL() string
	Token() string
}

// IsVimeoVideoURL reports whether the URL points to the Vimeo embed player.
func IsVimeoVideoURL(rawURL string) bool {
	return vimeoVideoRegex.MatchString(rawURL)
}

// GetVimeoPlayerURL converts a Vimeo embed URL into a redirect through the
// site's own media player script, carrying the video id, the site's session
// token and the privacy hash when the video has one. The hash is read from
// a ?h= or &h= parameter, falling back to the legacy /video/<id>/<hash>
// path form. The empty string means the URL is not a Vimeo embed.
func GetVimeoPlayerURL(rawURL string, site Site) string {
	match := vimeoVideoRegex.FindStringSubmatch(rawURL)
	if match == nil {
		return ""
	}
	videoID := match[1]

	hash := ""
	if m := vimeoQueryHashRegex.FindStringSubmatch(rawURL); m != nil {
		hash = m[1]
	} else if m := vimeoPathHashRegex.FindStringSubmatch(rawURL); m != nil {
		hash = m[1]
	}

	playerURL := ConcatenatePaths(site.URL(),
		"media/player/vimeo/wsplayer.php?video="+videoID+"&token="+site.Token())
	if hash != "" {
		playerURL += "&h=" + hash
	}
	return playerURL
}
