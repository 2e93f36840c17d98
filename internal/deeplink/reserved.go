package deeplink

import (
	"strings"

	"github.com/applinkd/go-applink/internal/utils/strutils"
)

// reservedSeparator is the path segment dividing host addressing from
// the app route in hosted URLs, e.g. "exp.host/@user/app/--/profile".
const reservedSeparator = "--"

// insertReservedPrefix puts the reserved separator in front of a route
// path. Counterpart of stripReservedPrefix.
func insertReservedPrefix(path string) string {
	return "/" + reservedSeparator + "/" + strutils.RemoveLeadingSlash(path)
}

// reservedPrefix returns the route prefix a stripped host URI implies:
// its path segments followed by the reserved separator. "" when there
// is no host URI.
func reservedPrefix(hostURIStripped string) string {
	if hostURIStripped == "" {
		return ""
	}
	parts := strutils.SplitSlash(hostURIStripped)
	return strutils.JoinSlash(append(parts[1:], reservedSeparator+"/"))
}

// stripReservedPrefix removes the given reserved prefix from path.
// Reports whether the prefix matched.
func stripReservedPrefix(path, prefix string) (string, bool) {
	if prefix != "" && strings.HasPrefix(path, prefix) {
		return path[len(prefix):], true
	}
	return path, false
}
