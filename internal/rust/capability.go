package rust

// Capability predicates follow a fixed table per kind. Where a
// capability is inherited, the predicate recurses into the single child.

// IsCopy reports whether values of the type are Copy. References are
// always Copy regardless of their member; an optional is Copy iff its
// member is.
func (t *Type) IsCopy() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindUnit, KindBool, KindFloat, KindInteger, KindReference, KindSlice:
		return true
	case KindOption:
		return t.Member.IsCopy()
	default:
		return false
	}
}

// IsEq reports whether values of the type support total equality.
// Floats do not; collections and wrappers inherit from their member.
func (t *Type) IsEq() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindUnit, KindBool, KindInteger, KindString:
		return true
	case KindOption, KindBox, KindVec, KindSlice:
		return t.Member.IsEq()
	default:
		return false
	}
}

// IsDeref reports whether the type has a deref-coercion view (see
// AsDeref). Optionals inherit from their member.
func (t *Type) IsDeref() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindString, KindVec, KindBox:
		return true
	case KindOption:
		return t.Member.IsDeref()
	default:
		return false
	}
}
