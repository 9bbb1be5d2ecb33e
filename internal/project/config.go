// Package project loads rustgen.toml, the project manifest describing
// the shapes to generate and where the output goes.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
	// ErrNoShapes indicates the manifest declares nothing to generate.
	ErrNoShapes = errors.New("no [[shape]] entries")
)

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name      string `toml:"name"`
	Namespace string `toml:"namespace"`
	Output    string `toml:"output"`
}

// GenerateConfig is the [generate] section.
type GenerateConfig struct {
	Jobs int `toml:"jobs"`
}

// FieldConfig is one [[shape.field]] entry.
type FieldConfig struct {
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Doc         string `toml:"doc"`
	Optional    bool   `toml:"optional"`
	SerdeRename string `toml:"serde_rename"`
}

// ShapeConfig is one [[shape]] entry.
type ShapeConfig struct {
	Name   string        `toml:"name"`
	Doc    string        `toml:"doc"`
	Public bool          `toml:"public"`
	Fields []FieldConfig `toml:"field"`
}

// Config is the whole manifest.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Generate GenerateConfig `toml:"generate"`
	Shapes   []ShapeConfig  `toml:"shape"`
}

// Load parses a rustgen.toml manifest.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if len(cfg.Shapes) == 0 {
		return Config{}, fmt.Errorf("%s: %w", path, ErrNoShapes)
	}
	if cfg.Package.Namespace == "" {
		cfg.Package.Namespace = "crate::model"
	}
	if cfg.Package.Output == "" {
		cfg.Package.Output = "gen"
	}
	return cfg, nil
}
