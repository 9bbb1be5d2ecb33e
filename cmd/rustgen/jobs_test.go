package main

import (
	"testing"

	"rustgen/internal/project"
)

func TestModuleFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"City", "city.rs"},
		{"CityBlock", "city_block.rs"},
		{"HTTPRequest", "h_t_t_p_request.rs"},
		{"lower", "lower.rs"},
	}
	for _, tc := range cases {
		if got := moduleFileName(tc.in); got != tc.want {
			t.Fatalf("moduleFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildJobsFromConfig(t *testing.T) {
	cfg := project.Config{
		Package: project.PackageConfig{Name: "widget", Namespace: "crate::model"},
		Shapes: []project.ShapeConfig{
			{
				Name:   "City",
				Public: true,
				Fields: []project.FieldConfig{{Name: "name", Type: "string"}},
			},
		},
	}
	jobs, err := buildJobs(cfg)
	if err != nil {
		t.Fatalf("buildJobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Name != "City" || jobs[0].Namespace != "crate::model" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}

func TestBuildJobsRejectsBadFieldType(t *testing.T) {
	cfg := project.Config{
		Package: project.PackageConfig{Name: "widget"},
		Shapes: []project.ShapeConfig{
			{
				Name:   "City",
				Fields: []project.FieldConfig{{Name: "name", Type: "vec<"}},
			},
		},
	}
	if _, err := buildJobs(cfg); err == nil {
		t.Fatalf("expected error for malformed field type")
	}
}
