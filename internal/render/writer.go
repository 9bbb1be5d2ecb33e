// Package render is the deferred code-emission and template engine.
// A Writer collects output text for one generated module, resolves
// templates against typed bindings and accumulates the external
// dependencies the emitted code needs.
package render

import (
	"fmt"
	"strings"

	"rustgen/internal/cargo"
)

// Writer is the render context for one generated module. It has
// single-writer semantics: never share one across concurrent renders.
// Nested emission units run in short-lived child writers whose
// dependencies merge back into the parent.
type Writer struct {
	buf       strings.Builder
	namespace string
	scopes    []map[string]Binding
	deps      *cargo.DependencySet
	namer     *Namer
	debug     bool
}

// NewWriter returns a writer for a module in the given namespace.
func NewWriter(namespace string) *Writer {
	return &Writer{
		namespace: namespace,
		deps:      cargo.NewDependencySet(),
		namer:     NewNamer(),
	}
}

// Namespace returns the namespace identity the writer renders into.
func (w *Writer) Namespace() string {
	return w.namespace
}

// Write appends literal text.
func (w *Writer) Write(s string) {
	w.buf.WriteString(s)
}

// Writef appends formatted literal text.
func (w *Writer) Writef(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

// Line appends literal text followed by a newline.
func (w *Writer) Line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// RecordDependency adds a dependency to the accumulated set. Recording
// the same identity twice keeps one entry.
func (w *Writer) RecordDependency(d cargo.Dependency) {
	w.deps.Add(d)
}

// NextName returns a hygienic temporary identifier with the prefix.
// The counter is shared with child writers.
func (w *Writer) NextName(prefix string) string {
	return w.namer.Next(prefix)
}

// EnableDebug turns on origin comments: each template expansion is
// preceded by a synthetic comment naming its call site. Comments never
// change the functional content of the output.
func (w *Writer) EnableDebug() {
	w.debug = true
}

// Finish returns the accumulated text and dependency set. The writer
// must not be used afterwards.
func (w *Writer) Finish() (string, *cargo.DependencySet) {
	return w.buf.String(), w.deps
}

// child returns a writer for an isolated nested render: same namespace,
// shared namer and debug flag, fresh buffer and dependency set. The
// scope stack is inherited for lookup; pushes in the child never leak
// back.
func (w *Writer) child() *Writer {
	scopes := make([]map[string]Binding, len(w.scopes))
	copy(scopes, w.scopes)
	return &Writer{
		namespace: w.namespace,
		scopes:    scopes,
		deps:      cargo.NewDependencySet(),
		namer:     w.namer,
		debug:     w.debug,
	}
}

func (w *Writer) pushScope(scope map[string]Binding) {
	w.scopes = append(w.scopes, scope)
}

func (w *Writer) popScope() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}

// lookupBinding resolves a normalized key against the scope stack,
// innermost first.
func (w *Writer) lookupBinding(key string) (Binding, bool) {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if b, ok := w.scopes[i][key]; ok {
			return b, true
		}
	}
	return Binding{}, false
}
