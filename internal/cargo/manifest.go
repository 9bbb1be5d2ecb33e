package cargo

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// manifestEntry is the TOML shape of one dependency table row.
type manifestEntry struct {
	Version  string   `toml:"version"`
	Features []string `toml:"features,omitempty"`
	Optional bool     `toml:"optional,omitempty"`
}

type manifestDoc struct {
	Dependencies      map[string]manifestEntry `toml:"dependencies,omitempty"`
	DevDependencies   map[string]manifestEntry `toml:"dev-dependencies,omitempty"`
	BuildDependencies map[string]manifestEntry `toml:"build-dependencies,omitempty"`
}

// RenderManifest renders the set as Cargo manifest dependency tables.
// Output is deterministic: entries are keyed by crate name and the TOML
// encoder emits map keys sorted.
func RenderManifest(set *DependencySet) (string, error) {
	doc := manifestDoc{}
	if set != nil {
		for _, d := range set.Sorted() {
			entry := manifestEntry{Version: d.Version, Features: d.Features, Optional: d.Optional}
			switch d.Scope {
			case ScopeDev:
				if doc.DevDependencies == nil {
					doc.DevDependencies = make(map[string]manifestEntry)
				}
				doc.DevDependencies[d.Name] = entry
			case ScopeBuild:
				if doc.BuildDependencies == nil {
					doc.BuildDependencies = make(map[string]manifestEntry)
				}
				doc.BuildDependencies[d.Name] = entry
			default:
				if doc.Dependencies == nil {
					doc.Dependencies = make(map[string]manifestEntry)
				}
				doc.Dependencies[d.Name] = entry
			}
		}
	}
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
