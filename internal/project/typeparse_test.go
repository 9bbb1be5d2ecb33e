package project

import (
	"errors"
	"testing"

	"rustgen/internal/rust"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in   string
		want *rust.Type
	}{
		{"unit", rust.MakeUnit()},
		{"()", rust.MakeUnit()},
		{"bool", rust.MakeBool()},
		{"string", rust.MakeString()},
		{"i8", rust.MakeInteger(rust.Width8)},
		{"i64", rust.MakeInteger(rust.Width64)},
		{"f32", rust.MakeFloat(rust.Width32)},
		{"f64", rust.MakeFloat(rust.Width64)},
		{"vec<string>", rust.MakeVec(rust.MakeString())},
		{"option<bool>", rust.MakeOption(rust.MakeBool())},
		{"box<Shape>", rust.MakeBox(rust.MakeOpaque("Shape", ""))},
		{"set<i32>", rust.MakeHashSet(rust.MakeInteger(rust.Width32))},
		{"map<string, vec<i64>>", rust.MakeHashMap(rust.MakeString(), rust.MakeVec(rust.MakeInteger(rust.Width64)))},
		{"crate::model::Shape", rust.MakeOpaque("Shape", "crate::model")},
		{"Instant", rust.MakeOpaque("Instant", "")},
		{
			"std::result::Result<string, Error>",
			rust.MakeApplication(rust.MakeOpaque("Result", "std::result"), rust.MakeString(), rust.MakeOpaque("Error", "")),
		},
		{" vec< option<string> > ", rust.MakeVec(rust.MakeOption(rust.MakeString()))},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseType(tc.in)
			if err != nil {
				t.Fatalf("ParseType(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseType(%q) = %q, want %q", tc.in, got.Render(true), tc.want.Render(true))
			}
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	cases := []string{
		"",
		"i7",
		"f16",
		"vec<>",
		"vec<string",
		"map<string>",
		"option<a, b>",
		"not an ident",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseType(in); !errors.Is(err, ErrBadType) {
				t.Fatalf("ParseType(%q): expected ErrBadType, got %v", in, err)
			}
		})
	}
}
