// Package qs implements a flat query-string codec.
//
// Parsing is lenient: pairs with malformed percent-escapes are kept
// verbatim instead of failing the whole parse, duplicate keys resolve
// last-wins, and a leading '?' is tolerated. Encoding is deterministic
// (keys sorted) so Parse(Encode(m)) == m for any flat string map.
package qs

import (
	"net/url"
	"sort"
	"strings"
)

// separators mirror the common arg separator set ('&' plus ';').
const separators = "&;"

// Parse decomposes a raw query string into a flat string map.
// It never fails; garbage input yields garbage pairs, not errors.
func Parse(query string) map[string]string {
	query = strings.TrimPrefix(query, "?")
	params := make(map[string]string)
	for _, pair := range splitPairs(query) {
		if pair == "" {
			continue
		}
		k, v := splitPair(pair)
		k = decode(k)
		if k == "" {
			continue
		}
		params[k] = decode(v)
	}
	return params
}

// Encode serializes params as a query string with keys in sorted order.
// Returns "" for an empty map.
func Encode(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

// splitPair splits a raw pair on the first '='; a pair without '='
// yields an empty value.
func splitPair(s string) (string, string) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func splitPairs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}

// decode applies application/x-www-form-urlencoded decoding.
// Malformed escapes leave the input unchanged apart from '+' → space.
func decode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "+", " ")
	}
	return decoded
}
