package strutils

import "github.com/applinkd/go-applink/internal/utils/strutils/ansi"

func DoYouMean(s string) string {
	return "Did you mean " + ansi.HighlightGreen + s + ansi.Reset + "?"
}
