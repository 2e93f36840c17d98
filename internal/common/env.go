package common

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	prefixes = []string{"APPLINK_", ""}

	IsTest       = GetEnvBool("TEST", false) || strings.HasSuffix(os.Args[0], ".test")
	IsDebug      = GetEnvBool("DEBUG", IsTest)
	IsTrace      = GetEnvBool("TRACE", false) && IsDebug
	IsProduction = !IsTest && !IsDebug

	// Overrides for the app manifest; empty means "use the manifest value".
	SchemeOverride  = GetEnvString("SCHEME", "")
	HostURIOverride = GetEnvString("HOST_URI", "")

	ManifestPath = GetEnvString("MANIFEST", "app.json")
)

func GetEnv[T any](key string, defaultValue T, parser func(string) (T, error)) T {
	var value string
	var ok bool
	for _, prefix := range prefixes {
		value, ok = os.LookupEnv(prefix + key)
		if ok && value != "" {
			break
		}
	}
	if !ok || value == "" {
		return defaultValue
	}
	parsed, err := parser(value)
	if err == nil {
		return parsed
	}
	log.Fatal().Err(err).Msgf("env %s: invalid %T value: %s", key, parsed, value)
	return defaultValue
}

func GetEnvString(key string, defaultValue string) string {
	return GetEnv(key, defaultValue, func(s string) (string, error) {
		return s, nil
	})
}

func GetEnvBool(key string, defaultValue bool) bool {
	return GetEnv(key, defaultValue, strconv.ParseBool)
}
