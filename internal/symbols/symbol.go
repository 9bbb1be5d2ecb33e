// Package symbols defines the named, typed references to code entities
// that the symbol-provider layer hands to generators.
package symbols

import (
	"rustgen/internal/cargo"
	"rustgen/internal/rust"
)

// Symbol is a named reference to a generated or external code entity.
// It is created once per referenced entity and immutable thereafter.
// Dependency, when set, names the external crate the symbol resolves
// against; rendering a symbol records that dependency.
type Symbol struct {
	Name       string
	Namespace  string
	Type       *rust.Type
	Dependency *cargo.Dependency
}

// New builds a crate-local symbol.
func New(name, namespace string, t *rust.Type) Symbol {
	return Symbol{Name: name, Namespace: namespace, Type: t}
}

// External builds a symbol provided by an external crate.
func External(dep cargo.Dependency, namespace, name string) Symbol {
	d := dep
	return Symbol{
		Name:       name,
		Namespace:  namespace,
		Type:       rust.MakeOpaque(name, namespace),
		Dependency: &d,
	}
}

// FullName returns the namespace-qualified path of the symbol.
func (s Symbol) FullName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "::" + s.Name
}

// TypeExpr returns the symbol's type expression, deriving an opaque one
// from the name when none was attached.
func (s Symbol) TypeExpr() *rust.Type {
	if s.Type != nil {
		return s.Type
	}
	return rust.MakeOpaque(s.Name, s.Namespace)
}
