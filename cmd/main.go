package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/applinkd/go-applink/internal/common"
	"github.com/applinkd/go-applink/internal/deeplink"
	"github.com/applinkd/go-applink/internal/gperr"
	"github.com/applinkd/go-applink/internal/logging"
	"github.com/applinkd/go-applink/internal/manifest"
	"github.com/applinkd/go-applink/internal/platform"
	"github.com/applinkd/go-applink/internal/qs"
	"github.com/goccy/go-json"
)

var (
	scheme      = flag.String("scheme", "", "override the manifest scheme")
	query       = flag.String("query", "", "query parameters, e.g. \"a=1&b=2\"")
	tripleSlash = flag.Bool("triple-slash", false, "emit scheme:///path form")
	webOrigin   = flag.String("origin", "", "treat the runtime as web with this page origin")
)

func main() {
	logging.InitLogger(os.Stderr)
	args := common.GetArgs()

	if args.Command == common.CommandStart {
		flag.Usage()
		return
	}

	m, err := manifest.Load(common.ManifestPath)
	if err != nil {
		gperr.LogFatal("failed to load manifest", err)
	}

	if args.Command == common.CommandValidate {
		logging.Info().Str("manifest", common.ManifestPath).Msg("manifest OK")
		return
	}

	pl := platform.Native(runtime.GOOS)
	if *webOrigin != "" {
		pl = platform.Web(*webOrigin)
	}
	builder := deeplink.NewBuilder(manifest.NewEnvironment(m), pl)

	switch args.Command {
	case common.CommandCreate:
		path := ""
		if len(args.Args) > 0 {
			path = args.Args[0]
		}
		fmt.Println(builder.CreateURL(path, deeplink.CreateURLOptions{
			Scheme:          *scheme,
			QueryParams:     qs.Parse(*query),
			IsTripleSlashed: *tripleSlash,
		}))
	case common.CommandParse:
		if len(args.Args) == 0 {
			logging.Fatal().Msg("parse requires a URL argument")
		}
		parsed, err := builder.Parse(args.Args[0])
		if err != nil {
			gperr.LogFatal("failed to parse URL", err)
		}
		out, jsonErr := json.MarshalIndent(parsed, "", "  ")
		if jsonErr != nil {
			gperr.LogFatal("failed to encode result", jsonErr)
		}
		fmt.Println(string(out))
	}
}
