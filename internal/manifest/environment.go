package manifest

import (
	"strings"

	"github.com/applinkd/go-applink/internal/common"
	"github.com/applinkd/go-applink/internal/utils/strutils"
	"github.com/gobwas/glob"
)

// Schemes reserved by the shared hosting service. An app whose manifest
// declares any other scheme is treated as having a custom scheme.
var hostedSchemes = []string{"exp", "exps"}

// Domains the shared hosting service serves apps from.
var defaultHostedDomains = []string{
	"exp.host", "*.exp.host",
	"exp.direct", "*.exp.direct",
	"expo.io", "*.expo.io",
	"expo.dev", "*.expo.dev",
	"*.expo.test",
}

// Environment classifies the link-hosting context of a loaded manifest.
// It answers the three questions the URL builder branches on: what is
// the host URI, is the app served by the shared hosting service, and
// does it have its own scheme.
type Environment struct {
	m             *Manifest
	hostedDomains []glob.Glob
}

func NewEnvironment(m *Manifest) *Environment {
	patterns := m.HostedDomains
	if len(patterns) == 0 {
		patterns = defaultHostedDomains
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '.')
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return &Environment{m: m, hostedDomains: globs}
}

// HostURI returns the configured host URI,
// or "" for a standalone build. Env override wins.
func (e *Environment) HostURI() string {
	if common.HostURIOverride != "" {
		return common.HostURIOverride
	}
	return e.m.HostURI
}

// Scheme returns the app's configured scheme. Env override wins.
func (e *Environment) Scheme() string {
	if common.SchemeOverride != "" {
		return common.SchemeOverride
	}
	return e.m.Scheme
}

// IsHostedByScheme reports whether the host URI points at the shared
// hosting service.
func (e *Environment) IsHostedByScheme() bool {
	hostname := hostnameOf(e.HostURI())
	if hostname == "" {
		return false
	}
	for _, g := range e.hostedDomains {
		if g.Match(hostname) {
			return true
		}
	}
	return false
}

// HasCustomScheme reports whether the app declares a scheme of its own
// rather than one reserved by the hosting service.
func (e *Environment) HasCustomScheme() bool {
	scheme := e.Scheme()
	if scheme == "" {
		return false
	}
	for _, s := range hostedSchemes {
		if scheme == s {
			return false
		}
	}
	return true
}

func hostnameOf(uri string) string {
	host := strutils.RemovePort(strutils.RemoveScheme(uri))
	if i := strings.IndexRune(host, '/'); i >= 0 {
		host = host[:i]
	}
	if i := strings.IndexRune(host, '?'); i >= 0 {
		host = host[:i]
	}
	return host
}
