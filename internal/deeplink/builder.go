// Package deeplink builds and decomposes app deep-link URLs.
//
// All environment branching (web vs native, hosted vs custom scheme)
// goes through the injected HostConfig and Platform collaborators, so
// every branch is reachable from tests without a real runtime.
package deeplink

import "github.com/applinkd/go-applink/internal/gperr"

// HostConfig describes the link-hosting context the app runs in.
type HostConfig interface {
	// HostURI is the URI the app is served from when hosted,
	// "" for a standalone build. May carry a path and a query string.
	HostURI() string
	// Scheme is the app's configured URI scheme, "" if none.
	Scheme() string
	// IsHostedByScheme reports whether the app is served by the
	// shared hosting service.
	IsHostedByScheme() bool
	// HasCustomScheme reports whether the app declares its own scheme
	// rather than a hosted-service one.
	HasCustomScheme() bool
}

// Platform describes the runtime the builder executes in.
type Platform interface {
	IsWeb() bool
	IsDOMAvailable() bool
	Origin() string
}

// CreateURLOptions tune CreateURL. Zero value is valid.
type CreateURLOptions struct {
	// Scheme overrides the host environment's configured scheme.
	Scheme string
	// QueryParams are appended to the URL. On key collision they win
	// over parameters embedded in the host URI.
	QueryParams map[string]string
	// IsTripleSlashed selects the "scheme:///path" form with no
	// authority segment.
	IsTripleSlashed bool
}

// ParsedURL is the decomposition of a deep-link URL.
// Nil pointers mark components absent from the URL.
type ParsedURL struct {
	Hostname    *string           `json:"hostname"`
	Path        *string           `json:"path"`
	QueryParams map[string]string `json:"queryParams"`
	Scheme      *string           `json:"scheme"`
}

// ErrInvalidURL is returned by Parse for an empty URL.
var ErrInvalidURL = gperr.New("invalid URL, cannot be empty")

// Scheme used when neither the caller nor the environment supplies one.
const defaultScheme = "exp"

type Builder struct {
	host     HostConfig
	platform Platform
}

func NewBuilder(host HostConfig, platform Platform) *Builder {
	return &Builder{host: host, platform: platform}
}
