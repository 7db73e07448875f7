package profile

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns the profile bundled with Docflow, used when no profile
// file is configured.
func Builtin() *Profile {
	var p Profile
	// The embedded profile is validated by tests; a parse failure here is
	// a build defect, not a runtime condition.
	if err := yaml.Unmarshal(builtinYAML, &p); err != nil {
		panic("builtin profile: " + err.Error())
	}
	p.Source = "builtin"
	return &p
}
