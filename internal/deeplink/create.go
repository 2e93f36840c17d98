package deeplink

import (
	"strings"

	"github.com/applinkd/go-applink/internal/qs"
	"github.com/applinkd/go-applink/internal/utils/strutils"
)

// CreateURL builds a deep-link URL into the app at the given path.
//
// On web the link is absolute against the current page origin; ""
// is returned when no document is available (server rendering).
// On native the link uses the resolved scheme and the configured
// host URI, with the reserved separator inserted when the app is
// served by the hosting service.
func (b *Builder) CreateURL(path string, opts CreateURLOptions) string {
	if b.platform.IsWeb() {
		if !b.platform.IsDOMAvailable() {
			return ""
		}
		origin := strutils.EnsureTrailingSlash(b.platform.Origin(), false)
		queryString := qs.Encode(opts.QueryParams)
		if queryString != "" {
			queryString = "?" + queryString
		}
		return encodeURI(origin + strutils.EnsureLeadingSlash(path, true) + queryString)
	}

	scheme := opts.Scheme
	if scheme == "" {
		scheme = b.host.Scheme()
	}
	if scheme == "" {
		scheme = defaultScheme
	}

	hostURI := b.host.HostURI()
	if b.host.HasCustomScheme() && b.host.IsHostedByScheme() {
		// The custom scheme already routes to this app; host
		// addressing would be redundant.
		hostURI = ""
	}

	if path != "" {
		if b.host.IsHostedByScheme() && hostURI != "" {
			path = insertReservedPrefix(path)
		}
		if opts.IsTripleSlashed {
			path = strutils.EnsureLeadingSlash(path, true)
		}
	}

	// Parameters embedded in the host URI survive unless the caller
	// overrides them.
	params := map[string]string{}
	if i := strings.IndexRune(hostURI, '?'); i >= 0 {
		params = qs.Parse(hostURI[i+1:])
		hostURI = hostURI[:i]
	}
	for k, v := range opts.QueryParams {
		params[k] = v
	}
	queryString := qs.Encode(params)
	if queryString != "" {
		queryString = "?" + queryString
	}

	hostURI = strutils.EnsureLeadingSlash(hostURI, !opts.IsTripleSlashed)

	slashes := "/"
	if opts.IsTripleSlashed {
		slashes = "//"
	}
	return encodeURI(scheme + ":" + slashes + hostURI + path + queryString)
}

// Characters encodeURI leaves intact: RFC 3986 unreserved and reserved
// sets plus '%' so existing escape sequences pass through.
const uriSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	";,/?:@&=+$-_.!~*'()#%"

const upperhex = "0123456789ABCDEF"

func encodeURI(s string) string {
	encode := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(uriSafe, s[i]) < 0 {
			encode++
		}
	}
	if encode == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*encode)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(uriSafe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
