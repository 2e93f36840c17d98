package common

import (
	"flag"
	"fmt"
	"os"

	"github.com/applinkd/go-applink/internal/utils/strutils"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	CommandStart    = ""
	CommandCreate   = "create"
	CommandParse    = "parse"
	CommandValidate = "validate"
)

var commands = []string{
	CommandCreate,
	CommandParse,
	CommandValidate,
}

type Args struct {
	Command string
	Args    []string
}

func GetArgs() Args {
	var args Args
	flag.Parse()
	args.Command = flag.Arg(0)
	if !isCommandValid(args.Command) {
		fmt.Fprintf(os.Stderr, "invalid command: %q\n", args.Command)
		if matches := fuzzy.RankFindFold(args.Command, commands); len(matches) > 0 {
			fmt.Fprintln(os.Stderr, strutils.DoYouMean(matches[0].Target))
		}
		os.Exit(1)
	}
	if len(flag.Args()) > 1 {
		args.Args = flag.Args()[1:]
	}
	return args
}

func isCommandValid(cmd string) bool {
	if cmd == CommandStart {
		return true
	}
	for _, c := range commands {
		if cmd == c {
			return true
		}
	}
	return false
}
