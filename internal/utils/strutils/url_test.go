package strutils_test

import (
	"testing"

	. "github.com/applinkd/go-applink/internal/utils/strutils"
	. "github.com/applinkd/go-applink/internal/utils/testing"
)

func TestRemoveScheme(t *testing.T) {
	tests := map[string]string{
		"exp://exp.host/@user/app": "exp.host/@user/app",
		"https://example.com":      "example.com",
		"my-app+v1://route":        "route",
		"exp.host/@user/app":       "exp.host/@user/app",
		"/path/only":               "/path/only",
		"":                         "",
	}
	for input, expected := range tests {
		ExpectEqual(t, RemoveScheme(input), expected)
	}
}

func TestRemovePort(t *testing.T) {
	tests := map[string]string{
		"exp.host:19000/@user/app":       "exp.host/@user/app",
		"exp://exp.host:19000/@user/app": "exp://exp.host/@user/app",
		"exp.host/@user/app":             "exp.host/@user/app",
		"exp.host/@user/app:19000":       "exp.host/@user/app:19000",
		"exp.host:abc/@user/app":         "exp.host:abc/@user/app",
		"":                               "",
	}
	for input, expected := range tests {
		ExpectEqual(t, RemovePort(input), expected)
	}
}

func TestRemoveLeadingSlash(t *testing.T) {
	ExpectEqual(t, RemoveLeadingSlash("/path"), "path")
	ExpectEqual(t, RemoveLeadingSlash("//path"), "/path")
	ExpectEqual(t, RemoveLeadingSlash("path"), "path")
	ExpectEqual(t, RemoveLeadingSlash(""), "")
}

func TestRemoveTrailingSlashAndQueryString(t *testing.T) {
	tests := map[string]string{
		"exp.host/@user/app?release-channel=beta": "exp.host/@user/app",
		"exp.host/@user/app/?a=1":                 "exp.host/@user/app",
		"exp.host/@user/app/":                     "exp.host/@user/app",
		"exp.host/@user/app":                      "exp.host/@user/app",
		"?a=1":                                    "",
	}
	for input, expected := range tests {
		ExpectEqual(t, RemoveTrailingSlashAndQueryString(input), expected)
	}
}

func TestEnsureLeadingSlash(t *testing.T) {
	ExpectEqual(t, EnsureLeadingSlash("path", true), "/path")
	ExpectEqual(t, EnsureLeadingSlash("/path", true), "/path")
	ExpectEqual(t, EnsureLeadingSlash("/path", false), "path")
	ExpectEqual(t, EnsureLeadingSlash("path", false), "path")
	ExpectEqual(t, EnsureLeadingSlash("", true), "/")
	ExpectEqual(t, EnsureLeadingSlash("", false), "")
}

func TestEnsureTrailingSlash(t *testing.T) {
	ExpectEqual(t, EnsureTrailingSlash("path", true), "path/")
	ExpectEqual(t, EnsureTrailingSlash("path/", true), "path/")
	ExpectEqual(t, EnsureTrailingSlash("path/", false), "path")
	ExpectEqual(t, EnsureTrailingSlash("path", false), "path")
}
