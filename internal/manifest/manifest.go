package manifest

import (
	"errors"
	"os"
	"strings"

	"github.com/applinkd/go-applink/internal/gperr"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type (
	// Manifest is the app configuration the link builder reads:
	// the app's own URI scheme and the URI it is served from when
	// hosted by a link-hosting service.
	Manifest struct {
		Name   string `json:"name" yaml:"name"`
		Slug   string `json:"slug" yaml:"slug"`
		Scheme string `json:"scheme" yaml:"scheme" validate:"omitempty,uri_scheme"`
		// HostURI may carry a path and an embedded query string,
		// e.g. "exp.host/@user/app?release-channel=beta".
		HostURI string `json:"hostUri" yaml:"host_uri"`
		// HostedDomains overrides the built-in hosted-service domain
		// patterns. Glob syntax, matched against the host URI hostname.
		HostedDomains []string  `json:"hostedDomains" yaml:"hosted_domains"`
		Web           WebConfig `json:"web" yaml:"web"`
	}
	WebConfig struct {
		Output string `json:"output" yaml:"output"`
	}

	// wrapper accepts both a bare manifest and one nested under an
	// "expo" key, the layout app.json files commonly use.
	wrapper struct {
		Expo *Manifest `json:"expo" yaml:"expo"`
	}
)

var validate = validator.New()

func init() {
	err := validate.RegisterValidation("uri_scheme", func(fl validator.FieldLevel) bool {
		return isValidScheme(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Load reads and validates a manifest file. Format is chosen by
// extension: .json (default) or .yaml/.yml.
func Load(path string) (*Manifest, gperr.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gperr.Wrap(err).Subject(path)
	}
	m, perr := Unmarshal(data, strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"))
	if perr != nil {
		return nil, perr.Subject(path)
	}
	return m, nil
}

// Unmarshal parses manifest bytes, unwrapping a nested "expo" section
// when present, then validates the result.
func Unmarshal(data []byte, isYAML bool) (*Manifest, gperr.Error) {
	var w wrapper
	var m Manifest

	unmarshal := json.Unmarshal
	if isYAML {
		unmarshal = yaml.Unmarshal
	}
	if err := unmarshal(data, &w); err != nil {
		return nil, gperr.Wrap(err, "parse manifest")
	}
	if w.Expo != nil {
		m = *w.Expo
	} else if err := unmarshal(data, &m); err != nil {
		return nil, gperr.Wrap(err, "parse manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() gperr.Error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	b := gperr.NewBuilder("manifest validation failed")
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, fe := range valErrs {
			b.Addf("field %s: invalid value %q", fe.Field(), fe.Value())
		}
	} else {
		b.Add(err)
	}
	return b.Error()
}

func isValidScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
