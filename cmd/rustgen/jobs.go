package main

import (
	"fmt"
	"strings"
	"unicode"

	"rustgen/internal/driver"
	"rustgen/internal/project"
	"rustgen/internal/rust"
	"rustgen/internal/structgen"
)

// buildJobs converts manifest shapes into render jobs.
func buildJobs(cfg project.Config) ([]driver.Job, error) {
	jobs := make([]driver.Job, 0, len(cfg.Shapes))
	for _, sc := range cfg.Shapes {
		shape, err := shapeFromConfig(sc)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, driver.Job{
			Name:      sc.Name,
			Namespace: cfg.Package.Namespace,
			Build:     structgen.New(shape).Unit(),
		})
	}
	return jobs, nil
}

func shapeFromConfig(sc project.ShapeConfig) (structgen.Shape, error) {
	shape := structgen.Shape{
		Name: sc.Name,
		Doc:  sc.Doc,
		Vis:  rust.PublicIf(sc.Public, rust.VisCrate),
	}
	for _, fc := range sc.Fields {
		t, err := project.ParseType(fc.Type)
		if err != nil {
			return structgen.Shape{}, fmt.Errorf("shape %s, field %s: %w", sc.Name, fc.Name, err)
		}
		shape.Fields = append(shape.Fields, structgen.Field{
			Name:        fc.Name,
			Doc:         fc.Doc,
			Type:        t,
			Optional:    fc.Optional,
			SerdeRename: fc.SerdeRename,
		})
	}
	return shape, nil
}

// moduleFileName maps a shape name to its snake_case output file name.
func moduleFileName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String() + ".rs"
}
