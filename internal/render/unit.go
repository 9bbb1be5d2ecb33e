package render

import "fmt"

// Unit is a deferred, parameterless piece of code emission. Units are
// composed and passed around freely; nothing is written until a unit
// runs against a writer.
type Unit func(*Writer) error

// Text returns a unit that writes the literal text.
func Text(s string) Unit {
	return func(w *Writer) error {
		w.Write(s)
		return nil
	}
}

// Textf returns a unit that writes formatted literal text.
func Textf(format string, args ...any) Unit {
	return Text(fmt.Sprintf(format, args...))
}

// Seq runs the units in order into the same writer.
func Seq(units ...Unit) Unit {
	return func(w *Writer) error {
		for _, u := range units {
			if u == nil {
				continue
			}
			if err := u(w); err != nil {
				return err
			}
		}
		return nil
	}
}

// Join runs the units in order with sep strictly between elements,
// never trailing.
func Join(sep Unit, units ...Unit) Unit {
	return func(w *Writer) error {
		wrote := false
		for _, u := range units {
			if u == nil {
				continue
			}
			if wrote && sep != nil {
				if err := sep(w); err != nil {
					return err
				}
			}
			if err := u(w); err != nil {
				return err
			}
			wrote = true
		}
		return nil
	}
}

// JoinText joins units with a literal separator.
func JoinText(sep string, units ...Unit) Unit {
	return Join(Text(sep), units...)
}

// IsEmpty reports whether running the unit produces no output, by
// rendering into a disposable writer and comparing against a freshly
// initialized baseline. Callers use it to skip optional sections
// outright. A unit that fails is reported non-empty so the error
// surfaces at the real render site.
func IsEmpty(u Unit, namespace string) bool {
	if u == nil {
		return true
	}
	scratch := NewWriter(namespace)
	if err := u(scratch); err != nil {
		return false
	}
	text, _ := scratch.Finish()
	baseline, _ := NewWriter(namespace).Finish()
	return text == baseline
}
