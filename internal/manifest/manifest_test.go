package manifest_test

import (
	"testing"

	"github.com/applinkd/go-applink/internal/manifest"
	. "github.com/applinkd/go-applink/internal/utils/testing"
)

const bareJSON = `{
	"name": "My App",
	"slug": "my-app",
	"scheme": "myapp",
	"hostUri": "exp.host/@user/my-app"
}`

const nestedJSON = `{
	"expo": {
		"name": "My App",
		"slug": "my-app",
		"scheme": "myapp"
	}
}`

const yamlManifest = `
name: My App
slug: my-app
scheme: myapp
host_uri: exp.host/@user/my-app
`

func TestUnmarshalJSON(t *testing.T) {
	m := Must(manifest.Unmarshal([]byte(bareJSON), false))
	ExpectEqual(t, m.Name, "My App")
	ExpectEqual(t, m.Scheme, "myapp")
	ExpectEqual(t, m.HostURI, "exp.host/@user/my-app")
}

func TestUnmarshalNestedExpoSection(t *testing.T) {
	m := Must(manifest.Unmarshal([]byte(nestedJSON), false))
	ExpectEqual(t, m.Slug, "my-app")
	ExpectEqual(t, m.Scheme, "myapp")
}

func TestUnmarshalYAML(t *testing.T) {
	m := Must(manifest.Unmarshal([]byte(yamlManifest), true))
	ExpectEqual(t, m.Scheme, "myapp")
	ExpectEqual(t, m.HostURI, "exp.host/@user/my-app")
}

func TestUnmarshalInvalidScheme(t *testing.T) {
	_, err := manifest.Unmarshal([]byte(`{"scheme": "1bad"}`), false)
	ExpectHasError(t, err)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := manifest.Unmarshal([]byte(`{not json`), false)
	ExpectHasError(t, err)
}

func TestIsHostedByScheme(t *testing.T) {
	hosted := []string{
		"exp.host/@user/my-app",
		"exp://exp.host/@user/my-app",
		"u.expo.dev/12345678",
		"myapp.exp.direct:443",
		"expo.io/@user/my-app?release-channel=beta",
	}
	for _, uri := range hosted {
		env := manifest.NewEnvironment(&manifest.Manifest{HostURI: uri})
		ExpectTrue(t, env.IsHostedByScheme())
	}

	standalone := []string{
		"",
		"example.com/my-app",
		"links.my-company.dev/app",
	}
	for _, uri := range standalone {
		env := manifest.NewEnvironment(&manifest.Manifest{HostURI: uri})
		ExpectFalse(t, env.IsHostedByScheme())
	}
}

func TestHostedDomainsOverride(t *testing.T) {
	env := manifest.NewEnvironment(&manifest.Manifest{
		HostURI:       "links.my-company.dev/app",
		HostedDomains: []string{"links.my-company.dev"},
	})
	ExpectTrue(t, env.IsHostedByScheme())
}

func TestHasCustomScheme(t *testing.T) {
	ExpectTrue(t, manifest.NewEnvironment(&manifest.Manifest{Scheme: "myapp"}).HasCustomScheme())
	ExpectFalse(t, manifest.NewEnvironment(&manifest.Manifest{Scheme: "exp"}).HasCustomScheme())
	ExpectFalse(t, manifest.NewEnvironment(&manifest.Manifest{Scheme: "exps"}).HasCustomScheme())
	ExpectFalse(t, manifest.NewEnvironment(&manifest.Manifest{}).HasCustomScheme())
}
