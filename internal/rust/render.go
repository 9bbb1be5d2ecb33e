package rust

import (
	"fmt"
	"strings"
)

// Namespaces of the std containers, used when rendering fully qualified.
const (
	nsString      = "std::string"
	nsOption      = "std::option"
	nsBox         = "std::boxed"
	nsVec         = "std::vec"
	nsCollections = "std::collections"
	nsConstrained = "crate::constrained"
)

// Render produces source text for the type expression. When
// fullyQualified is set, named types carry their full `::` path;
// otherwise bare names are used. Rendering is deterministic and total.
func (t *Type) Render(fullyQualified bool) string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindInvalid:
		return ""
	case KindUnit:
		return "()"
	case KindBool:
		return "bool"
	case KindFloat:
		return fmt.Sprintf("f%d", t.Width)
	case KindInteger:
		return fmt.Sprintf("i%d", t.Width)
	case KindString:
		return pathName(fullyQualified, nsString, "String")
	case KindOpaque:
		return pathName(fullyQualified, t.Namespace, t.Name)
	case KindOption:
		return pathName(fullyQualified, nsOption, "Option") + "<" + t.Member.Render(fullyQualified) + ">"
	case KindBox:
		return pathName(fullyQualified, nsBox, "Box") + "<" + t.Member.Render(fullyQualified) + ">"
	case KindDyn:
		return "dyn " + t.Member.Render(fullyQualified)
	case KindReference:
		return renderReference(t, fullyQualified)
	case KindVec:
		return pathName(fullyQualified, nsVec, "Vec") + "<" + t.Member.Render(fullyQualified) + ">"
	case KindSlice:
		return "&[" + t.Member.Render(fullyQualified) + "]"
	case KindHashSet:
		return pathName(fullyQualified, nsCollections, "HashSet") + "<" + t.Member.Render(fullyQualified) + ">"
	case KindHashMap:
		return pathName(fullyQualified, nsCollections, "HashMap") + "<" + t.Key.Render(fullyQualified) + ", " + t.Member.Render(fullyQualified) + ">"
	case KindMaybeConstrained:
		return pathName(fullyQualified, nsConstrained, "MaybeConstrained") + "<" + t.Member.Render(fullyQualified) + ">"
	case KindApplication:
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = arg.Render(fullyQualified)
		}
		return t.Head.Render(fullyQualified) + "<" + strings.Join(args, ", ") + ">"
	default:
		return ""
	}
}

func renderReference(t *Type, fullyQualified bool) string {
	member := t.Member.Render(fullyQualified)
	switch t.Lifetime {
	case "":
		return "&" + member
	case LifetimeMut:
		return "&mut " + member
	default:
		return "&'" + t.Lifetime + " " + member
	}
}

// QualifiedName returns the path text of the root without generic
// arguments. Wrapper sigils (references, slices, dyn) delegate to their
// member; applications delegate to their head.
func (t *Type) QualifiedName() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindString:
		return pathName(true, nsString, "String")
	case KindOpaque:
		return pathName(true, t.Namespace, t.Name)
	case KindOption:
		return pathName(true, nsOption, "Option")
	case KindBox:
		return pathName(true, nsBox, "Box")
	case KindVec:
		return pathName(true, nsVec, "Vec")
	case KindHashSet:
		return pathName(true, nsCollections, "HashSet")
	case KindHashMap:
		return pathName(true, nsCollections, "HashMap")
	case KindMaybeConstrained:
		return pathName(true, nsConstrained, "MaybeConstrained")
	case KindDyn, KindReference, KindSlice:
		return t.Member.QualifiedName()
	case KindApplication:
		return t.Head.QualifiedName()
	default:
		return t.Render(true)
	}
}

func pathName(fullyQualified bool, namespace, name string) string {
	if !fullyQualified || namespace == "" {
		return name
	}
	return namespace + "::" + name
}
