package project

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"rustgen/internal/rust"
)

// ErrBadType indicates an unrecognized field type expression.
var ErrBadType = errors.New("unrecognized type expression")

// ParseType parses a manifest field type string into a type expression.
// The grammar is closed: unit, bool, string, i8..i64, f32/f64,
// vec<T>, option<T>, box<T>, set<T>, map<K, V>, and bare
// (possibly ::-qualified) opaque names, optionally with <args>.
func ParseType(s string) (*rust.Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty type: %w", ErrBadType)
	}

	head, args, err := splitGeneric(s)
	if err != nil {
		return nil, err
	}
	if args == nil {
		return parseScalar(head)
	}

	parsed := make([]*rust.Type, len(args))
	for i, arg := range args {
		t, err := ParseType(arg)
		if err != nil {
			return nil, err
		}
		parsed[i] = t
	}
	switch head {
	case "vec":
		if len(parsed) != 1 {
			return nil, arityError(s, 1, len(parsed))
		}
		return rust.MakeVec(parsed[0]), nil
	case "option":
		if len(parsed) != 1 {
			return nil, arityError(s, 1, len(parsed))
		}
		return rust.MakeOption(parsed[0]), nil
	case "box":
		if len(parsed) != 1 {
			return nil, arityError(s, 1, len(parsed))
		}
		return rust.MakeBox(parsed[0]), nil
	case "set":
		if len(parsed) != 1 {
			return nil, arityError(s, 1, len(parsed))
		}
		return rust.MakeHashSet(parsed[0]), nil
	case "map":
		if len(parsed) != 2 {
			return nil, arityError(s, 2, len(parsed))
		}
		return rust.MakeHashMap(parsed[0], parsed[1]), nil
	default:
		name, namespace := splitPath(head)
		return rust.MakeApplication(rust.MakeOpaque(name, namespace), parsed...), nil
	}
}

func parseScalar(s string) (*rust.Type, error) {
	switch s {
	case "unit", "()":
		return rust.MakeUnit(), nil
	case "bool":
		return rust.MakeBool(), nil
	case "string":
		return rust.MakeString(), nil
	}
	if len(s) > 1 && (s[0] == 'i' || s[0] == 'f') && allDigits(s[1:]) {
		width, ok := parseWidth(s[1:])
		if !ok {
			return nil, fmt.Errorf("type %q: unsupported width: %w", s, ErrBadType)
		}
		if s[0] == 'i' {
			return rust.MakeInteger(width), nil
		}
		if width == rust.Width32 || width == rust.Width64 {
			return rust.MakeFloat(width), nil
		}
		return nil, fmt.Errorf("type %q: unsupported width: %w", s, ErrBadType)
	}
	name, namespace := splitPath(s)
	if !validIdent(name) {
		return nil, fmt.Errorf("type %q: %w", s, ErrBadType)
	}
	return rust.MakeOpaque(name, namespace), nil
}

func arityError(s string, want, got int) error {
	return fmt.Errorf("type %q: expected %d type arguments, got %d: %w", s, want, got, ErrBadType)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func parseWidth(s string) (rust.Width, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	v, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, false
	}
	switch rust.Width(v) {
	case rust.Width8, rust.Width16, rust.Width32, rust.Width64:
		return rust.Width(v), true
	default:
		return 0, false
	}
}

// splitGeneric separates "head<a, b>" into head and top-level args.
// Returns nil args when the string has no generic suffix.
func splitGeneric(s string) (string, []string, error) {
	open := strings.IndexByte(s, '<')
	if open < 0 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, ">") {
		return "", nil, fmt.Errorf("type %q: unbalanced generics: %w", s, ErrBadType)
	}
	head := strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]

	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return "", nil, fmt.Errorf("type %q: unbalanced generics: %w", s, ErrBadType)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, fmt.Errorf("type %q: unbalanced generics: %w", s, ErrBadType)
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return head, args, nil
}

func splitPath(s string) (name, namespace string) {
	if idx := strings.LastIndex(s, "::"); idx >= 0 {
		return s[idx+2:], s[:idx]
	}
	return s, ""
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
