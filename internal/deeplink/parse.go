package deeplink

import (
	"net/url"
	"strings"

	"github.com/applinkd/go-applink/internal/gperr"
	"github.com/applinkd/go-applink/internal/qs"
	"github.com/applinkd/go-applink/internal/utils/strutils"
)

// Parse decomposes a deep-link URL into its structured parts.
//
// When the app is served by the hosting service under a hosted scheme,
// the host-derived route prefix (host URI path segments plus the
// reserved separator) is stripped from the path and the hostname is
// dropped. Otherwise a path containing '+' keeps only the part after
// the first one, the bare-app convention for separating app identity
// from the route.
func (b *Builder) Parse(rawURL string) (*ParsedURL, error) {
	if rawURL == "" {
		return nil, ErrInvalidURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, gperr.Wrap(err, "parse URL")
	}

	res := &ParsedURL{
		QueryParams: qs.Parse(u.RawQuery),
	}
	if scheme := u.Scheme; scheme != "" {
		res.Scheme = &scheme
	}
	if hostname := u.Hostname(); hostname != "" {
		res.Hostname = &hostname
	}
	if u.Path == "" {
		return res, nil
	}

	hostURIStripped := strutils.RemovePort(
		strutils.RemoveTrailingSlashAndQueryString(b.host.HostURI()))

	path := strutils.RemoveLeadingSlash(u.Path)
	prefix := reservedPrefix(hostURIStripped)
	hostedRoute := b.host.IsHostedByScheme() && !b.host.HasCustomScheme()

	if stripped, ok := stripReservedPrefix(path, prefix); hostedRoute && ok {
		path = stripped
		res.Hostname = nil
	} else if i := strings.IndexRune(path, '+'); i >= 0 {
		path = path[i+1:]
	}
	res.Path = &path
	return res, nil
}
