package rust

import "testing"

func TestIsCopyPropagation(t *testing.T) {
	cases := []struct {
		name string
		typ  *Type
		want bool
	}{
		{"integer", MakeInteger(Width32), true},
		{"float", MakeFloat(Width64), true},
		{"bool", MakeBool(), true},
		{"string", MakeString(), false},
		{"reference to non-copy", MakeReference("", MakeString()), true},
		{"option of copy", MakeOption(MakeInteger(Width8)), true},
		{"option of non-copy", MakeOption(MakeString()), false},
		{"vec", MakeVec(MakeInteger(Width8)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.IsCopy(); got != tc.want {
				t.Fatalf("IsCopy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsCopyMatchesOptionMember(t *testing.T) {
	members := []*Type{
		MakeInteger(Width16), MakeString(), MakeBool(), MakeVec(MakeBool()),
		MakeReference("", MakeString()),
	}
	for _, member := range members {
		if got := MakeOption(member).IsCopy(); got != member.IsCopy() {
			t.Fatalf("IsCopy(Option(%s)) = %v, want member's %v", member.Render(false), got, member.IsCopy())
		}
	}
}

func TestIsEq(t *testing.T) {
	cases := []struct {
		name string
		typ  *Type
		want bool
	}{
		{"integer", MakeInteger(Width64), true},
		{"string", MakeString(), true},
		{"float", MakeFloat(Width32), false},
		{"vec of string", MakeVec(MakeString()), true},
		{"vec of float", MakeVec(MakeFloat(Width64)), false},
		{"option inherits", MakeOption(MakeBool()), true},
		{"box inherits", MakeBox(MakeFloat(Width32)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.IsEq(); got != tc.want {
				t.Fatalf("IsEq() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsDeref(t *testing.T) {
	cases := []struct {
		name string
		typ  *Type
		want bool
	}{
		{"string", MakeString(), true},
		{"vec", MakeVec(MakeBool()), true},
		{"box", MakeBox(MakeBool()), true},
		{"option propagates", MakeOption(MakeString()), true},
		{"option of scalar", MakeOption(MakeBool()), false},
		{"bool", MakeBool(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.IsDeref(); got != tc.want {
				t.Fatalf("IsDeref() = %v, want %v", got, tc.want)
			}
		})
	}
}
