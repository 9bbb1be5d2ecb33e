package render

import (
	"errors"
	"strings"
	"testing"

	"rustgen/internal/cargo"
	"rustgen/internal/rust"
	"rustgen/internal/symbols"
)

func TestTemplateSubstitutesTypes(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("let value: #{ty} = make();", Args{
		"ty": BindType(rust.MakeVec(rust.MakeOption(rust.MakeString()))),
	})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	want := "let value: std::vec::Vec<std::option::Option<std::string::String>> = make();"
	if text != want {
		t.Fatalf("output = %q, want %q", text, want)
	}
}

func TestTemplateRecordsSymbolDependencyOnce(t *testing.T) {
	dep := cargo.Dependency{Name: "bytes", Version: "1.4"}
	blob := symbols.External(dep, "bytes", "Bytes")
	body := symbols.External(dep, "bytes", "BytesMut")

	w := NewWriter("crate::model")
	err := w.Template("fn take(a: #{a}, b: #{b}) {}", Args{
		"a": BindSymbol(blob),
		"b": BindSymbol(body),
	})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	_, deps := w.Finish()
	if deps.Len() != 1 {
		t.Fatalf("shared dependency identity must be recorded once, got %d entries", deps.Len())
	}
}

func TestTemplateDuplicateKeyInTemplateText(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{x} + #{X}", Args{"x": BindType(rust.MakeBool())})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	text, _ := w.Finish()
	if text != "" {
		t.Fatalf("no substitution may happen after a usage error, got %q", text)
	}
}

func TestTemplateDuplicateKeyInBindings(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{x}", Args{
		"x": BindType(rust.MakeBool()),
		"X": BindType(rust.MakeUnit()),
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestTemplateMissingBindingNamesTemplateAndKey(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("use #{missing};", Args{})
	if !errors.Is(err, ErrMissingBinding) {
		t.Fatalf("expected ErrMissingBinding, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") || !strings.Contains(err.Error(), "use #{missing};") {
		t.Fatalf("error must name template and key: %v", err)
	}
}

func TestTemplateRejectsZeroValueBinding(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{bad}", Args{"bad": {}})
	if !errors.Is(err, ErrBindingKind) {
		t.Fatalf("expected ErrBindingKind, got %v", err)
	}
}

func TestTemplateFormatterTagMismatch(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{ty:W}", Args{"ty": BindType(rust.MakeBool())})
	if !errors.Is(err, ErrTagMismatch) {
		t.Fatalf("expected ErrTagMismatch, got %v", err)
	}
}

func TestTemplateUnknownFormatter(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{ty:Q}", Args{"ty": BindType(rust.MakeBool())})
	if !errors.Is(err, ErrBadPlaceholder) {
		t.Fatalf("expected ErrBadPlaceholder, got %v", err)
	}
}

func TestTemplateKeysMatchCaseInsensitively(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{Shape}", Args{"shape": BindType(rust.MakeOpaque("Shape", "crate::model"))})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if text != "crate::model::Shape" {
		t.Fatalf("output = %q", text)
	}
}

func TestTemplateEscapesLiteralPlaceholder(t *testing.T) {
	w := NewWriter("crate::model")
	if err := w.Template("write!(f, \"##{}\")", Args{}); err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if text != "write!(f, \"#{}\")" {
		t.Fatalf("output = %q", text)
	}
}

func TestTemplateNestedUnitMergesDependencies(t *testing.T) {
	dep := cargo.Dependency{Name: "serde", Version: "1.0"}
	inner := func(w *Writer) error {
		w.RecordDependency(dep)
		w.Write("inner()   \n\n")
		return nil
	}
	w := NewWriter("crate::model")
	err := w.Template("fn outer() { #{body:W} }", Args{"body": BindUnit(inner)})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, deps := w.Finish()
	if text != "fn outer() { inner() }" {
		t.Fatalf("trailing whitespace must be trimmed from nested output, got %q", text)
	}
	if deps.Len() != 1 {
		t.Fatalf("nested dependencies must merge into the parent, got %d", deps.Len())
	}
}

func TestTemplateModuleBinding(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("use #{m:M}::Shape;", Args{"m": BindModule("crate::model")})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if text != "use crate::model::Shape;" {
		t.Fatalf("output = %q", text)
	}
}

func TestTemplateLiteralBinding(t *testing.T) {
	w := NewWriter("crate::model")
	err := w.Template("#{vis:L}struct #{name:L};", Args{
		"vis":  BindLiteral("pub "),
		"name": BindLiteral("Marker"),
	})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if text != "pub struct Marker;" {
		t.Fatalf("output = %q", text)
	}
}

func TestNestedTemplatesShadowWithoutLeaking(t *testing.T) {
	inner := func(w *Writer) error {
		return w.Template("#{ty}", Args{"ty": BindType(rust.MakeBool())})
	}
	w := NewWriter("crate::model")
	err := w.Template("#{ty} and #{body:W}", Args{
		"ty":   BindType(rust.MakeString()),
		"body": BindUnit(inner),
	})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if text != "std::string::String and bool" {
		t.Fatalf("output = %q", text)
	}
}

func TestDebugCommentsDoNotChangeFunctionalOutput(t *testing.T) {
	run := func(debug bool) string {
		w := NewWriter("crate::model")
		if debug {
			w.EnableDebug()
		}
		if err := w.Template("let x: #{ty};", Args{"ty": BindType(rust.MakeBool())}); err != nil {
			t.Fatalf("Template: %v", err)
		}
		text, _ := w.Finish()
		return text
	}
	plain := run(false)
	debugged := run(true)
	if plain == debugged {
		t.Fatalf("debug mode must interleave origin comments")
	}
	var kept []string
	for _, line := range strings.Split(debugged, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "/*") {
			continue
		}
		kept = append(kept, line)
	}
	if got := strings.Join(kept, "\n"); got != plain {
		t.Fatalf("output modulo comments must match: %q vs %q", got, plain)
	}
}

func TestTemplateUnitComposition(t *testing.T) {
	u := Template("const N: #{ty} = 1;", Args{"ty": BindType(rust.MakeInteger(rust.Width32))})
	w := NewWriter("crate::model")
	if err := u(w); err != nil {
		t.Fatalf("unit: %v", err)
	}
	text, _ := w.Finish()
	if text != "const N: i32 = 1;" {
		t.Fatalf("output = %q", text)
	}
}
