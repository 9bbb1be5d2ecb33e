// Package cargo models external crate dependencies recorded during
// rendering and their aggregation into a manifest fragment.
package cargo

import (
	"fmt"
	"sort"
)

// Scope says which Cargo dependency table an entry belongs to.
type Scope uint8

const (
	ScopeCompile Scope = iota
	ScopeDev
	ScopeBuild
)

func (s Scope) String() string {
	switch s {
	case ScopeCompile:
		return "dependencies"
	case ScopeDev:
		return "dev-dependencies"
	case ScopeBuild:
		return "build-dependencies"
	default:
		return fmt.Sprintf("Scope(%d)", s)
	}
}

// Dependency identifies an external crate a generated module needs to build.
type Dependency struct {
	Name     string
	Version  string
	Scope    Scope
	Features []string
	Optional bool
}

// Key returns the identity under which a dependency is deduplicated.
// Name and scope form the identity; features are merged on collision.
func (d Dependency) Key() string {
	return fmt.Sprintf("%s/%s", d.Name, d.Scope)
}

// DependencySet is an insertion-ordered set of dependencies with
// idempotent adds. Recording the same identity twice keeps one entry.
type DependencySet struct {
	order []string
	byKey map[string]Dependency
}

// NewDependencySet returns an empty set.
func NewDependencySet() *DependencySet {
	return &DependencySet{byKey: make(map[string]Dependency, 8)}
}

// Add records a dependency. Returns false when the identity was already
// present; in that case feature lists are unioned and the first-seen
// version wins.
func (s *DependencySet) Add(d Dependency) bool {
	key := d.Key()
	if existing, ok := s.byKey[key]; ok {
		existing.Features = unionFeatures(existing.Features, d.Features)
		s.byKey[key] = existing
		return false
	}
	s.order = append(s.order, key)
	s.byKey[key] = d
	return true
}

// Merge adds every entry of other into s, preserving other's order for
// entries s has not seen.
func (s *DependencySet) Merge(other *DependencySet) {
	if other == nil {
		return
	}
	for _, d := range other.List() {
		s.Add(d)
	}
}

// List returns the entries in insertion order.
func (s *DependencySet) List() []Dependency {
	out := make([]Dependency, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// Sorted returns the entries ordered by name, then scope.
func (s *DependencySet) Sorted() []Dependency {
	out := s.List()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Scope < out[j].Scope
	})
	return out
}

// Len reports the number of distinct entries.
func (s *DependencySet) Len() int {
	return len(s.order)
}

func unionFeatures(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, f := range a {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, f := range b {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}
