package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"rustgen/internal/rust"
	"rustgen/internal/symbols"
)

// Usage errors. These indicate a defect in a calling generator, never
// bad external input: they fail fast and are never recovered.
var (
	ErrDuplicateKey   = errors.New("duplicate template key under case-insensitive matching")
	ErrMissingBinding = errors.New("no binding for template key")
	ErrBadPlaceholder = errors.New("malformed template placeholder")
	ErrBindingKind    = errors.New("bound value outside the renderable set")
	ErrTagMismatch    = errors.New("formatter tag does not match bound value")
)

// bindKind is the closed set of renderable binding shapes.
type bindKind uint8

const (
	bindInvalid bindKind = iota
	bindType
	bindSymbol
	bindUnit
	bindModule
	bindLiteral
)

// Binding is one typed value a template placeholder can resolve to.
// Only the Bind* constructors produce valid bindings; the zero value
// trips the usage error on dispatch.
type Binding struct {
	kind    bindKind
	typ     *rust.Type
	sym     symbols.Symbol
	unit    Unit
	module  string
	literal string
}

// BindType binds a type expression, rendered fully qualified.
func BindType(t *rust.Type) Binding {
	return Binding{kind: bindType, typ: t}
}

// BindSymbol binds a symbol; rendering records its dependency.
func BindSymbol(s symbols.Symbol) Binding {
	return Binding{kind: bindSymbol, sym: s}
}

// BindUnit binds a nested emission unit, rendered into an isolated
// child context.
func BindUnit(u Unit) Binding {
	return Binding{kind: bindUnit, unit: u}
}

// BindModule binds an external module path, rendered verbatim.
func BindModule(path string) Binding {
	return Binding{kind: bindModule, module: path}
}

// BindLiteral binds literal text, referenced with the :L formatter.
func BindLiteral(text string) Binding {
	return Binding{kind: bindLiteral, literal: text}
}

// Args maps placeholder keys to bindings. Keys match case-insensitively.
type Args map[string]Binding

// Template returns a unit that resolves the template when run.
func Template(text string, args Args) Unit {
	return func(w *Writer) error {
		return w.template(text, args, 2)
	}
}

// Template resolves a template string against the bindings, writing the
// result and recording dependencies. Placeholders are written
// `#{key}` or `#{key:T|W|M|L}`; a bare placeholder implies the type
// formatter. `##{` escapes a literal `#{`.
func (w *Writer) Template(text string, args Args) error {
	return w.template(text, args, 2)
}

func (w *Writer) template(text string, args Args, callerSkip int) error {
	if err := verifyKeys(text); err != nil {
		return err
	}
	scope, err := normalizeArgs(text, args)
	if err != nil {
		return err
	}
	w.pushScope(scope)
	defer w.popScope()

	if w.debug && strings.TrimSpace(text) != "" {
		w.Writef("/* %s */\n", callSite(callerSkip+1))
	}
	return w.substitute(text)
}

// verifyKeys rejects templates that reference two distinct keys
// colliding under case-insensitive matching, before any substitution is
// attempted.
func verifyKeys(text string) error {
	seen := make(map[string]string)
	i := 0
	for i < len(text) {
		j := strings.Index(text[i:], "#{")
		if j < 0 {
			return nil
		}
		j += i
		if j > i && text[j-1] == '#' {
			i = j + 2
			continue
		}
		end := strings.IndexByte(text[j:], '}')
		if end < 0 {
			return fmt.Errorf("template %q: unterminated placeholder: %w", text, ErrBadPlaceholder)
		}
		end += j
		key := text[j+2 : end]
		if colon := strings.IndexByte(key, ':'); colon >= 0 {
			key = key[:colon]
		}
		key = strings.TrimSpace(key)
		norm := strings.ToLower(key)
		if prev, ok := seen[norm]; ok && prev != key {
			return fmt.Errorf("template %q: keys %q and %q: %w", text, prev, key, ErrDuplicateKey)
		}
		seen[norm] = key
		i = end + 1
	}
	return nil
}

// normalizeArgs lower-cases keys and rejects collisions before any
// substitution happens, so the authoring bug surfaces with the smallest
// possible blast radius.
func normalizeArgs(text string, args Args) (map[string]Binding, error) {
	scope := make(map[string]Binding, len(args))
	for key, b := range args {
		norm := strings.ToLower(key)
		if _, exists := scope[norm]; exists {
			return nil, fmt.Errorf("template %q: key %q: %w", text, key, ErrDuplicateKey)
		}
		scope[norm] = b
	}
	return scope, nil
}

func (w *Writer) substitute(text string) error {
	i := 0
	for i < len(text) {
		j := strings.Index(text[i:], "#{")
		if j < 0 {
			w.Write(text[i:])
			return nil
		}
		j += i
		if j > i && text[j-1] == '#' {
			w.Write(text[i : j-1])
			w.Write("#{")
			i = j + 2
			continue
		}
		w.Write(text[i:j])
		end := strings.IndexByte(text[j:], '}')
		if end < 0 {
			return fmt.Errorf("template %q: unterminated placeholder: %w", text, ErrBadPlaceholder)
		}
		end += j
		if err := w.expand(text, text[j+2:end]); err != nil {
			return err
		}
		i = end + 1
	}
	return nil
}

// expand resolves one placeholder reference. The dispatch set is
// closed; anything else is a generator bug reported immediately.
func (w *Writer) expand(template, ref string) error {
	key := ref
	tag := "T"
	if colon := strings.IndexByte(ref, ':'); colon >= 0 {
		key = ref[:colon]
		tag = strings.TrimSpace(ref[colon+1:])
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || tag == "" {
		return fmt.Errorf("template %q: placeholder %q: %w", template, ref, ErrBadPlaceholder)
	}
	switch tag {
	case "T", "W", "M", "L":
	default:
		return fmt.Errorf("template %q: placeholder %q: unknown formatter %q: %w", template, ref, tag, ErrBadPlaceholder)
	}

	b, ok := w.lookupBinding(key)
	if !ok {
		return fmt.Errorf("template %q: key %q: %w", template, key, ErrMissingBinding)
	}

	switch b.kind {
	case bindType:
		if tag != "T" {
			return tagMismatch(template, key, tag, "type")
		}
		w.Write(b.typ.Render(true))
	case bindSymbol:
		if tag != "T" {
			return tagMismatch(template, key, tag, "symbol")
		}
		w.Write(b.sym.TypeExpr().Render(true))
		if b.sym.Dependency != nil {
			w.RecordDependency(*b.sym.Dependency)
		}
	case bindUnit:
		if tag != "W" {
			return tagMismatch(template, key, tag, "unit")
		}
		child := w.child()
		if err := b.unit(child); err != nil {
			return err
		}
		text, deps := child.Finish()
		w.Write(strings.TrimRight(text, " \t\n"))
		w.deps.Merge(deps)
	case bindModule:
		if tag != "M" {
			return tagMismatch(template, key, tag, "module")
		}
		w.Write(b.module)
	case bindLiteral:
		if tag != "L" {
			return tagMismatch(template, key, tag, "literal")
		}
		w.Write(b.literal)
	default:
		return fmt.Errorf("template %q: key %q: %w", template, key, ErrBindingKind)
	}
	return nil
}

func tagMismatch(template, key, tag, bound string) error {
	return fmt.Errorf("template %q: key %q: formatter %q on %s binding: %w", template, key, tag, bound, ErrTagMismatch)
}

func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
