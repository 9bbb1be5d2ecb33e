// Package structgen emits struct definitions from resolved shapes. It
// is the reference consumer of the render engine: everything it writes
// goes through templates, attributes and the type algebra.
package structgen

import (
	"fmt"
	"strings"

	"rustgen/internal/cargo"
	"rustgen/internal/render"
	"rustgen/internal/rust"
)

var serdeDep = cargo.Dependency{Name: "serde", Version: "1.0", Features: []string{"derive"}}

// DeriveSerialize is the serde serialization marker; deriving it pulls
// in the serde crate.
var DeriveSerialize = rust.Derive{Name: "Serialize", Namespace: "serde", Dependency: &serdeDep}

// Field is one resolved member of a shape.
type Field struct {
	Name        string
	Doc         string
	Type        *rust.Type
	Optional    bool
	SerdeRename string
}

// Shape is a resolved data shape ready for emission.
type Shape struct {
	Name   string
	Doc    string
	Vis    rust.Visibility
	Fields []Field
}

// BaseDerives returns the markers every generated struct carries.
func BaseDerives() rust.DeriveSet {
	return rust.NewDeriveSet(rust.DeriveDebug, rust.DeriveClone, rust.DerivePartialEq)
}

// BuilderDerives returns the marker set for a shape's builder type: the
// base markers minus equality plus the default-value marker builders
// always need.
func BuilderDerives(base rust.DeriveSet) rust.DeriveSet {
	return base.Without(rust.DerivePartialEq).With(rust.DeriveDefault)
}

// Generator renders one shape as a struct definition.
type Generator struct {
	shape Shape
}

// New returns a generator for the shape.
func New(shape Shape) *Generator {
	return &Generator{shape: shape}
}

// Unit returns the deferred emission for the struct definition.
func (g *Generator) Unit() render.Unit {
	return g.render
}

func (g *Generator) render(w *render.Writer) error {
	derives := BaseDerives()
	if g.usesSerde() {
		derives = derives.With(DeriveSerialize)
	}
	var attrs []rust.Attribute
	if g.shape.Doc != "" {
		attrs = append(attrs, rust.Doc(g.shape.Doc))
	}
	attrs = append(attrs, rust.Derives(derives))
	writeAttributes(w, attrs, "")

	err := w.Template("#{vis:L}struct #{name:L} {\n", render.Args{
		"vis":  render.BindLiteral(g.shape.Vis.Qualifier()),
		"name": render.BindLiteral(rust.SafeName(g.shape.Name)),
	})
	if err != nil {
		return err
	}
	for _, f := range g.shape.Fields {
		if err := g.renderField(w, f); err != nil {
			return err
		}
	}
	w.Line("}")
	return nil
}

func (g *Generator) renderField(w *render.Writer, f Field) error {
	var attrs []rust.Attribute
	if f.Doc != "" {
		attrs = append(attrs, rust.Doc(f.Doc))
	}
	if f.SerdeRename != "" {
		attrs = append(attrs, rust.Custom(fmt.Sprintf("serde(rename = %q)", f.SerdeRename), serdeDep).AsHelper())
	}
	writeAttributes(w, attrs, "    ")

	ft := f.Type
	if f.Optional {
		ft = ft.AsOptional()
	}
	return w.Template("    pub #{field:L}: #{ty},\n", render.Args{
		"field": render.BindLiteral(rust.SafeName(f.Name)),
		"ty":    render.BindType(ft),
	})
}

func (g *Generator) usesSerde() bool {
	for _, f := range g.shape.Fields {
		if f.SerdeRename != "" {
			return true
		}
	}
	return false
}

// writeAttributes emits a rendered attribute block at the given indent
// and records the dependencies it requires.
func writeAttributes(w *render.Writer, attrs []rust.Attribute, indent string) {
	text, deps := rust.RenderAttributes(attrs)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			continue
		}
		w.Line(indent + line)
	}
	for _, d := range deps {
		w.RecordDependency(d)
	}
}
