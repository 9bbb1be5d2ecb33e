package rust

// Visibility describes how widely a generated item is reachable.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisCrate
	VisPublic
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisCrate:
		return "crate"
	default:
		return "private"
	}
}

// Qualifier renders the leading visibility qualifier, including the
// trailing space, or nothing for private items.
func (v Visibility) Qualifier() string {
	switch v {
	case VisPublic:
		return "pub "
	case VisCrate:
		return "pub(crate) "
	default:
		return ""
	}
}

// PublicIf returns VisPublic when cond holds, the fallback otherwise.
func PublicIf(cond bool, fallback Visibility) Visibility {
	if cond {
		return VisPublic
	}
	return fallback
}
