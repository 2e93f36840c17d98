package strutils

import "strings"

// RemoveScheme strips a leading "scheme://" from s, if present.
func RemoveScheme(s string) string {
	i := strings.Index(s, "://")
	if i < 0 || !isScheme(s[:i]) {
		return s
	}
	return s[i+3:]
}

// RemovePort strips a ":port" suffix from the authority part of s.
// Works on both full URLs and bare "host:port/path" strings.
func RemovePort(s string) string {
	rest := RemoveScheme(s)
	prefix := s[:len(s)-len(rest)]
	authority := rest
	tail := ""
	if i := strings.IndexRune(rest, '/'); i >= 0 {
		authority, tail = rest[:i], rest[i:]
	}
	i := strings.LastIndexByte(authority, ':')
	if i < 0 || !isDigits(authority[i+1:]) {
		return s
	}
	return prefix + authority[:i] + tail
}

// RemoveLeadingSlash strips a single leading slash.
func RemoveLeadingSlash(s string) string {
	return strings.TrimPrefix(s, "/")
}

// RemoveTrailingSlashAndQueryString cuts everything from the first '?',
// then strips a single trailing slash.
func RemoveTrailingSlashAndQueryString(s string) string {
	if i := strings.IndexRune(s, '?'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "/")
}

// EnsureLeadingSlash returns s with a leading slash when want is true,
// without one when want is false.
func EnsureLeadingSlash(s string, want bool) string {
	if want {
		if strings.HasPrefix(s, "/") {
			return s
		}
		return "/" + s
	}
	return RemoveLeadingSlash(s)
}

// EnsureTrailingSlash returns s with a trailing slash when want is true,
// without one when want is false.
func EnsureTrailingSlash(s string, want bool) string {
	if want {
		if strings.HasSuffix(s, "/") {
			return s
		}
		return s + "/"
	}
	return strings.TrimSuffix(s, "/")
}

func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '+', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
