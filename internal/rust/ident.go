package rust

import "golang.org/x/text/unicode/norm"

// Keywords that cannot be used as bare identifiers in the target
// language. Strict and reserved keywords are treated alike.
var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true,
	"struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// Path keywords cannot take the r# prefix; those few get a trailing
// underscore instead.
var notRawEscapable = map[string]bool{
	"crate": true, "self": true, "Self": true, "super": true,
}

// SafeName normalizes an identifier and escapes target-language
// keywords so independently sourced model names always produce legal
// identifiers.
func SafeName(name string) string {
	name = norm.NFC.String(name)
	if !keywords[name] {
		return name
	}
	if notRawEscapable[name] {
		return name + "_"
	}
	return "r#" + name
}
