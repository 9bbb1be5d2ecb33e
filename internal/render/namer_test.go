package render

import (
	"strings"
	"testing"

	"rustgen/internal/rust"
)

func TestNamerIsMonotonicPerPrefix(t *testing.T) {
	n := NewNamer()
	if got := n.Next("tmp"); got != "tmp_0" {
		t.Fatalf("first name = %q", got)
	}
	if got := n.Next("tmp"); got != "tmp_1" {
		t.Fatalf("second name = %q", got)
	}
	if got := n.Next("var"); got != "var_0" {
		t.Fatalf("prefixes count independently, got %q", got)
	}
}

func TestNamerIsSharedWithNestedWriters(t *testing.T) {
	// Independently authored fragments must never collide on a local
	// name, no matter how deeply nested.
	inner := func(w *Writer) error {
		w.Write(w.NextName("tmp"))
		return nil
	}
	w := NewWriter("crate::model")
	first := w.NextName("tmp")
	err := w.Template("let #{a:L} = 1; let #{nested:W} = 2;", Args{
		"a":      BindLiteral(first),
		"nested": BindUnit(inner),
	})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if !strings.Contains(text, "tmp_0") || !strings.Contains(text, "tmp_1") {
		t.Fatalf("expected distinct names across nesting, got %q", text)
	}
}

func TestWriterNextNameUsableInTemplates(t *testing.T) {
	w := NewWriter("crate::model")
	name := w.NextName("guard")
	err := w.Template("let #{n:L}: #{ty};", Args{
		"n":  BindLiteral(name),
		"ty": BindType(rust.MakeBool()),
	})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	text, _ := w.Finish()
	if text != "let guard_0: bool;" {
		t.Fatalf("output = %q", text)
	}
}
