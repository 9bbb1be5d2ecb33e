package rust

import (
	"sort"

	"rustgen/internal/cargo"
)

// Derive is one capability marker in a derive set, identified by its
// canonical path and optionally tied to the crate providing it.
type Derive struct {
	Name       string
	Namespace  string
	Dependency *cargo.Dependency
}

// Path returns the canonical `::` path used for ordering and identity.
func (d Derive) Path() string {
	if d.Namespace == "" {
		return d.Name
	}
	return d.Namespace + "::" + d.Name
}

// Common std markers.
var (
	DeriveDebug     = Derive{Name: "Debug", Namespace: "std::fmt"}
	DeriveClone     = Derive{Name: "Clone", Namespace: "std::clone"}
	DeriveCopy      = Derive{Name: "Copy", Namespace: "std::marker"}
	DerivePartialEq = Derive{Name: "PartialEq", Namespace: "std::cmp"}
	DeriveEq        = Derive{Name: "Eq", Namespace: "std::cmp"}
	DeriveHash      = Derive{Name: "Hash", Namespace: "std::hash"}
	DeriveDefault   = Derive{Name: "Default", Namespace: "std::default"}
)

// DeriveSet is a set of markers keyed by canonical path. Insertion
// order never influences rendering: output is always sorted by path.
type DeriveSet struct {
	markers map[string]Derive
}

// NewDeriveSet builds a set from the given markers.
func NewDeriveSet(markers ...Derive) DeriveSet {
	s := DeriveSet{markers: make(map[string]Derive, len(markers))}
	for _, m := range markers {
		s.markers[m.Path()] = m
	}
	return s
}

// With returns the union of the set and the given markers.
func (s DeriveSet) With(markers ...Derive) DeriveSet {
	out := DeriveSet{markers: make(map[string]Derive, len(s.markers)+len(markers))}
	for path, m := range s.markers {
		out.markers[path] = m
	}
	for _, m := range markers {
		out.markers[m.Path()] = m
	}
	return out
}

// Without returns the set minus the given markers.
func (s DeriveSet) Without(markers ...Derive) DeriveSet {
	out := DeriveSet{markers: make(map[string]Derive, len(s.markers))}
	for path, m := range s.markers {
		out.markers[path] = m
	}
	for _, m := range markers {
		delete(out.markers, m.Path())
	}
	return out
}

// Contains reports whether a marker with the same canonical path is in
// the set.
func (s DeriveSet) Contains(marker Derive) bool {
	_, ok := s.markers[marker.Path()]
	return ok
}

// Len reports the number of markers.
func (s DeriveSet) Len() int {
	return len(s.markers)
}

// Sorted returns the markers ordered by canonical path, the order in
// which they render.
func (s DeriveSet) Sorted() []Derive {
	out := make([]Derive, 0, len(s.markers))
	for _, m := range s.markers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path() < out[j].Path() })
	return out
}
