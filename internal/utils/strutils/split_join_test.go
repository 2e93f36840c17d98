package strutils_test

import (
	"strings"
	"testing"

	. "github.com/applinkd/go-applink/internal/utils/strutils"
	. "github.com/applinkd/go-applink/internal/utils/testing"
)

var segments = func() string {
	var s strings.Builder
	for i := rune(0); i < 'z'-'a'+1; i++ {
		s.WriteRune('a' + i)
		s.WriteRune('A' + i)
		s.WriteRune('/')
	}
	for i := rune(0); i < '9'-'0'+1; i++ {
		s.WriteRune('0' + i)
		s.WriteRune('/')
	}
	return s.String()
}()

func TestSplit(t *testing.T) {
	tests := map[string]rune{
		"":  0,
		"1": '1',
		"/": '/',
	}
	for sep, rsep := range tests {
		t.Run(sep, func(t *testing.T) {
			expected := strings.Split(segments, sep)
			ExpectDeepEqual(t, SplitRune(segments, rsep), expected)
			ExpectEqual(t, JoinRune(expected, rsep), segments)
		})
	}
}

func TestSplitJoinSlash(t *testing.T) {
	parts := SplitSlash("exp.host/@user/app")
	ExpectDeepEqual(t, parts, []string{"exp.host", "@user", "app"})
	ExpectEqual(t, JoinSlash(parts), "exp.host/@user/app")
}
