// Package platform models the runtime the link builder executes in.
// It is a plain value so tests and the CLI can pin every branch.
package platform

type Info struct {
	OS           string
	DOMAvailable bool
	PageOrigin   string
}

// Native returns the platform info for a non-browser runtime.
func Native(os string) Info {
	return Info{OS: os}
}

// Web returns the platform info for a browser runtime with a live
// document at the given origin. An empty origin models server-side
// rendering, where no document is available.
func Web(origin string) Info {
	return Info{OS: "web", DOMAvailable: origin != "", PageOrigin: origin}
}

func (i Info) IsWeb() bool {
	return i.OS == "web"
}

func (i Info) IsDOMAvailable() bool {
	return i.DOMAvailable
}

func (i Info) Origin() string {
	return i.PageOrigin
}
