package rust

import (
	"fmt"
	"strconv"
	"strings"

	"rustgen/internal/cargo"
)

// attrKind is the closed set of attribute shapes.
type attrKind uint8

const (
	attrCustom attrKind = iota
	attrDerive
	attrDeprecated
	attrCfg
	attrAllow
	attrDoc
	attrDocHidden
)

// Attribute is one annotation on a generated item: a derive set, a
// free-form custom annotation, or a semantic shorthand. DeriveHelper
// marks annotations that are only meaningful after the derive they
// augment; rendering order accounts for that.
type Attribute struct {
	kind         attrKind
	text         string
	since        string
	note         string
	derives      DeriveSet
	dependencies []cargo.Dependency
	inner        bool
	helper       bool
}

// Custom builds a free-form annotation from its inner text, plus the
// dependencies its expansion needs at build time.
func Custom(text string, deps ...cargo.Dependency) Attribute {
	return Attribute{kind: attrCustom, text: text, dependencies: deps}
}

// Derives builds the derive-set attribute.
func Derives(set DeriveSet) Attribute {
	return Attribute{kind: attrDerive, derives: set}
}

// Deprecated marks an item deprecated, optionally since a version and
// with a migration note.
func Deprecated(since, note string) Attribute {
	return Attribute{kind: attrDeprecated, since: since, note: note}
}

// Cfg guards an item behind a conditional-compilation predicate.
func Cfg(predicate string) Attribute {
	return Attribute{kind: attrCfg, text: predicate}
}

// Allow suppresses a lint on the item.
func Allow(lint string) Attribute {
	return Attribute{kind: attrAllow, text: lint}
}

// Doc attaches one line of documentation text.
func Doc(text string) Attribute {
	return Attribute{kind: attrDoc, text: text}
}

// DocHidden hides the item from generated documentation.
func DocHidden() Attribute {
	return Attribute{kind: attrDocHidden}
}

// AsHelper marks the attribute as a derive helper, forcing it to render
// after the derive-set attribute.
func (a Attribute) AsHelper() Attribute {
	a.helper = true
	return a
}

// AsInner makes the attribute apply to the enclosing container
// (`#![...]`) instead of the item that follows it.
func (a Attribute) AsInner() Attribute {
	a.inner = true
	return a
}

// IsHelper reports whether the attribute is a derive helper.
func (a Attribute) IsHelper() bool {
	return a.helper
}

// render produces the attribute line without a trailing newline and the
// dependencies it requires. An empty derive set renders nothing.
func (a Attribute) render() (string, []cargo.Dependency) {
	switch a.kind {
	case attrDerive:
		if a.derives.Len() == 0 {
			return "", nil
		}
		paths := make([]string, 0, a.derives.Len())
		var deps []cargo.Dependency
		for _, m := range a.derives.Sorted() {
			paths = append(paths, m.Path())
			if m.Dependency != nil {
				deps = append(deps, *m.Dependency)
			}
		}
		return "#[derive(" + strings.Join(paths, ", ") + ")]", deps
	case attrDeprecated:
		var parts []string
		if a.since != "" {
			parts = append(parts, fmt.Sprintf("since = %s", strconv.Quote(a.since)))
		}
		if a.note != "" {
			parts = append(parts, fmt.Sprintf("note = %s", strconv.Quote(a.note)))
		}
		if len(parts) == 0 {
			return "#[deprecated]", nil
		}
		return "#[deprecated(" + strings.Join(parts, ", ") + ")]", nil
	case attrCfg:
		return "#[cfg(" + a.text + ")]", nil
	case attrAllow:
		return "#[allow(" + a.text + ")]", nil
	case attrDoc:
		return "#[doc = " + strconv.Quote(a.text) + "]", nil
	case attrDocHidden:
		return "#[doc(hidden)]", nil
	default:
		open := "#["
		if a.inner {
			open = "#!["
		}
		return open + a.text + "]", a.dependencies
	}
}

// RenderAttributes renders a full annotation list in the order the
// target language mandates: plain attributes first, then the derive
// set, then derive helpers. Caller-supplied order is irrelevant.
// Returns the rendered block (one attribute per line, trailing newline
// when non-empty) and every dependency the attributes require.
func RenderAttributes(attrs []Attribute) (string, []cargo.Dependency) {
	var plain, derives, helpers []Attribute
	for _, a := range attrs {
		switch {
		case a.kind == attrDerive:
			derives = append(derives, a)
		case a.helper:
			helpers = append(helpers, a)
		default:
			plain = append(plain, a)
		}
	}

	var b strings.Builder
	var deps []cargo.Dependency
	emit := func(group []Attribute) {
		for _, a := range group {
			line, lineDeps := a.render()
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteString("\n")
			deps = append(deps, lineDeps...)
		}
	}
	emit(plain)
	emit(derives)
	emit(helpers)
	return b.String(), deps
}
