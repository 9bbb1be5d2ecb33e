package cargo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDependencySetAddIsIdempotent(t *testing.T) {
	set := NewDependencySet()
	dep := Dependency{Name: "serde", Version: "1.0"}
	if !set.Add(dep) {
		t.Fatalf("first add must report a new entry")
	}
	if set.Add(dep) {
		t.Fatalf("second add of the same identity must be a no-op")
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", set.Len())
	}
}

func TestDependencySetMergesFeatures(t *testing.T) {
	set := NewDependencySet()
	set.Add(Dependency{Name: "tokio", Version: "1", Features: []string{"rt"}})
	set.Add(Dependency{Name: "tokio", Version: "1", Features: []string{"macros", "rt"}})
	entries := set.List()
	if len(entries) != 1 {
		t.Fatalf("expected merged entry, got %d", len(entries))
	}
	if diff := cmp.Diff([]string{"macros", "rt"}, entries[0].Features); diff != "" {
		t.Fatalf("feature union mismatch (-want +got):\n%s", diff)
	}
}

func TestScopeSeparatesIdentity(t *testing.T) {
	set := NewDependencySet()
	set.Add(Dependency{Name: "serde", Version: "1.0"})
	set.Add(Dependency{Name: "serde", Version: "1.0", Scope: ScopeDev})
	if set.Len() != 2 {
		t.Fatalf("same crate in different scopes must be distinct entries, got %d", set.Len())
	}
}

func TestMergePreservesInsertionOrder(t *testing.T) {
	a := NewDependencySet()
	a.Add(Dependency{Name: "serde", Version: "1.0"})
	b := NewDependencySet()
	b.Add(Dependency{Name: "bytes", Version: "1.4"})
	b.Add(Dependency{Name: "serde", Version: "1.0"})
	a.Merge(b)

	names := make([]string, 0, a.Len())
	for _, d := range a.List() {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"serde", "bytes"}, names); diff != "" {
		t.Fatalf("merge order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderManifestIsDeterministic(t *testing.T) {
	build := func(order []Dependency) string {
		set := NewDependencySet()
		for _, d := range order {
			set.Add(d)
		}
		text, err := RenderManifest(set)
		if err != nil {
			t.Fatalf("RenderManifest: %v", err)
		}
		return text
	}
	deps := []Dependency{
		{Name: "serde", Version: "1.0", Features: []string{"derive"}},
		{Name: "bytes", Version: "1.4"},
		{Name: "proptest", Version: "1.0", Scope: ScopeDev},
	}
	reversed := []Dependency{deps[2], deps[1], deps[0]}

	left := build(deps)
	right := build(reversed)
	if left != right {
		t.Fatalf("manifest must not depend on insertion order:\n%s\nvs\n%s", left, right)
	}
	if !strings.Contains(left, "[dependencies]") || !strings.Contains(left, "[dev-dependencies]") {
		t.Fatalf("expected dependency tables, got:\n%s", left)
	}
	if !strings.Contains(left, `version = "1.0"`) {
		t.Fatalf("expected versions in manifest, got:\n%s", left)
	}
}

func TestRenderManifestEmptySet(t *testing.T) {
	text, err := RenderManifest(NewDependencySet())
	if err != nil {
		t.Fatalf("RenderManifest: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Fatalf("empty set must render an empty manifest, got %q", text)
	}
}
