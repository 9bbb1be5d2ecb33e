package rust

// Structural rewrites. All operations are total: a rewrite that does not
// apply to the receiver returns the receiver unchanged rather than
// failing. Callers routinely attempt rewrites speculatively, so the
// identity fallback is part of the contract.

// Contains reports whether target occurs anywhere in the tree, compared
// by exact structural equality at each node.
func (t *Type) Contains(target *Type) bool {
	if t == nil {
		return false
	}
	if t.Equal(target) {
		return true
	}
	if t.Member.Contains(target) || t.Key.Contains(target) || t.Head.Contains(target) {
		return true
	}
	for _, arg := range t.Args {
		if arg.Contains(target) {
			return true
		}
	}
	return false
}

// StripOuter removes exactly one outer layer when the root matches the
// given container kind. Any other tree is returned unchanged; stripping
// a layer that is not there is a no-op, not an error.
func (t *Type) StripOuter(kind Kind) *Type {
	if t == nil || t.Kind != kind || !t.HasMember() {
		return t
	}
	return t.Member
}

// Map rebuilds a container node with fn applied to its single child.
// Non-container nodes have no child and are returned unchanged.
func (t *Type) Map(fn func(*Type) *Type) *Type {
	if t == nil || !t.HasMember() {
		return t
	}
	clone := *t
	clone.Member = fn(t.Member)
	return &clone
}

// AsOptional wraps the type in Option unless it already is one.
func (t *Type) AsOptional() *Type {
	if t == nil || t.Kind == KindOption {
		return t
	}
	return MakeOption(t)
}

// AsRef converts to a borrowed form. An optional pushes the reference
// inside: Option<T> becomes Option<&T>, never &Option<T>. Already
// borrowed types are returned unchanged.
func (t *Type) AsRef() *Type {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case KindReference:
		return t
	case KindOption:
		return MakeOption(t.Member.AsRef())
	default:
		return MakeReference("", t)
	}
}

// AsDeref computes the natural view type along deref coercion: an owned
// string views as str, an owned vec as a slice, a box as a reference to
// its contents. Optionals propagate the view into their member. Types
// with no deref target are returned unchanged.
func (t *Type) AsDeref() *Type {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case KindString:
		return MakeOpaque("str", "")
	case KindVec:
		return MakeSlice(t.Member)
	case KindBox:
		return MakeReference("", t.Member)
	case KindOption:
		return MakeOption(t.Member.AsDeref())
	default:
		return t
	}
}

// ReplaceLifetimes rewrites every lifetime tag in the tree to the given
// one. The mutable-reference tag is not a lifetime and is preserved.
// Used when a structure is regenerated as a single borrowed view that
// must share one lifetime parameter.
func (t *Type) ReplaceLifetimes(lifetime string) *Type {
	if t == nil {
		return nil
	}
	clone := *t
	if t.Kind == KindReference && t.Lifetime != LifetimeMut {
		clone.Lifetime = lifetime
	}
	clone.Member = t.Member.ReplaceLifetimes(lifetime)
	clone.Key = t.Key.ReplaceLifetimes(lifetime)
	clone.Head = t.Head.ReplaceLifetimes(lifetime)
	if len(t.Args) > 0 {
		clone.Args = make([]*Type, len(t.Args))
		for i, arg := range t.Args {
			clone.Args[i] = arg.ReplaceLifetimes(lifetime)
		}
	}
	return &clone
}
