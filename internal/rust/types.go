// Package rust models Rust type expressions as an immutable tree and
// provides the structural rewrites and capability predicates generators
// need when shaping generated code.
package rust

import "fmt"

// Kind enumerates all supported kinds of type expressions.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUnit
	KindBool
	KindFloat
	KindInteger
	KindString
	KindOpaque
	KindOption
	KindBox
	KindDyn
	KindReference
	KindVec
	KindSlice
	KindHashSet
	KindHashMap
	KindMaybeConstrained
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindOpaque:
		return "opaque"
	case KindOption:
		return "option"
	case KindBox:
		return "box"
	case KindDyn:
		return "dyn"
	case KindReference:
		return "reference"
	case KindVec:
		return "vec"
	case KindSlice:
		return "slice"
	case KindHashSet:
		return "hashset"
	case KindHashMap:
		return "hashmap"
	case KindMaybeConstrained:
		return "maybeconstrained"
	case KindApplication:
		return "application"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of integers/floats.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// LifetimeMut is the reference tag that renders as `&mut` instead of a
// named lifetime. It is not a lifetime and survives ReplaceLifetimes.
const LifetimeMut = "mut"

// Type is one node of a type expression. Values are immutable: every
// rewrite returns a new tree and shares untouched subtrees.
//
// Member is the single child of container kinds (Option, Box, Dyn,
// Reference, Vec, Slice, HashSet, HashMap, MaybeConstrained). Key is set
// for HashMap only. Head/Args are set for Application only.
type Type struct {
	Kind      Kind
	Width     Width  // numeric primitives
	Name      string // opaque types
	Namespace string // opaque types, "" for crate-local or primitive
	Lifetime  string // references; "" plain, "mut" mutable, else 'tag
	Member    *Type
	Key       *Type
	Head      *Type
	Args      []*Type
}

// Descriptor helpers ---------------------------------------------------------

// MakeUnit describes the unit type ().
func MakeUnit() *Type {
	return &Type{Kind: KindUnit}
}

// MakeBool describes bool.
func MakeBool() *Type {
	return &Type{Kind: KindBool}
}

// MakeFloat describes a floating-point type of the given width.
func MakeFloat(width Width) *Type {
	return &Type{Kind: KindFloat, Width: width}
}

// MakeInteger describes a signed integer of the given width.
func MakeInteger(width Width) *Type {
	return &Type{Kind: KindInteger, Width: width}
}

// MakeString describes the owned string type.
func MakeString() *Type {
	return &Type{Kind: KindString}
}

// MakeOpaque describes an external type by name. The optional namespace
// is a `::`-separated path prefix.
func MakeOpaque(name, namespace string) *Type {
	return &Type{Kind: KindOpaque, Name: name, Namespace: namespace}
}

// MakeOption describes Option<member>.
func MakeOption(member *Type) *Type {
	return &Type{Kind: KindOption, Member: member}
}

// MakeBox describes Box<member>.
func MakeBox(member *Type) *Type {
	return &Type{Kind: KindBox, Member: member}
}

// MakeDyn describes dyn member.
func MakeDyn(member *Type) *Type {
	return &Type{Kind: KindDyn, Member: member}
}

// MakeReference describes &member, &mut member or &'tag member depending
// on the lifetime tag.
func MakeReference(lifetime string, member *Type) *Type {
	return &Type{Kind: KindReference, Lifetime: lifetime, Member: member}
}

// MakeVec describes Vec<member>.
func MakeVec(member *Type) *Type {
	return &Type{Kind: KindVec, Member: member}
}

// MakeSlice describes &[member].
func MakeSlice(member *Type) *Type {
	return &Type{Kind: KindSlice, Member: member}
}

// MakeHashSet describes HashSet<member>.
func MakeHashSet(member *Type) *Type {
	return &Type{Kind: KindHashSet, Member: member}
}

// MakeHashMap describes HashMap<key, member>.
func MakeHashMap(key, member *Type) *Type {
	return &Type{Kind: KindHashMap, Key: key, Member: member}
}

// MakeMaybeConstrained describes MaybeConstrained<member>.
func MakeMaybeConstrained(member *Type) *Type {
	return &Type{Kind: KindMaybeConstrained, Member: member}
}

// MakeApplication describes head<args...>, a generic instantiation that
// is not one of the fixed containers.
func MakeApplication(head *Type, args ...*Type) *Type {
	return &Type{Kind: KindApplication, Head: head, Args: args}
}

// HasMember reports whether the kind follows the uniform single-child
// contract. Application carries an argument list instead.
func (t *Type) HasMember() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindOption, KindBox, KindDyn, KindReference, KindVec, KindSlice, KindHashSet, KindHashMap, KindMaybeConstrained:
		return true
	default:
		return false
	}
}

// Equal reports exact structural equality of two trees.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind || t.Width != other.Width ||
		t.Name != other.Name || t.Namespace != other.Namespace ||
		t.Lifetime != other.Lifetime {
		return false
	}
	if !t.Member.Equal(other.Member) || !t.Key.Equal(other.Key) || !t.Head.Equal(other.Head) {
		return false
	}
	if len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}
