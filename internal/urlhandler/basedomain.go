package urlhandler

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/edutools/moourl/internal/errorwrapper"
)

// BaseDomain extracts the registrable base domain from a hostname, e.g.
// "example.com" from "sub.example.com" and "example.co.uk" from
// "www.example.co.uk". Single-label hosts such as "localhost" are returned
// as-is, and a port is stripped if present.
func BaseDomain(hostname string) (string, error) {
	hostname = strings.ToLower(strings.TrimSpace(hostname))
	if hostname == "" {
		return "", errorwrapper.NewError("hostname is empty")
	}

	if strings.Contains(hostname, ":") {
		if host, _, err := net.SplitHostPort(hostname); err == nil {
			hostname = host
		}
	}

	if !strings.Contains(hostname, ".") {
		return hostname, nil
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return "", errorwrapper.WrapError(err, "could not determine base domain")
	}
	return domain, nil
}
