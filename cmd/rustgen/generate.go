package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"rustgen/internal/cargo"
	"rustgen/internal/driver"
	"rustgen/internal/project"
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate Rust sources for a project",
	Long:  "Generate Rust sources for every shape declared in the project's rustgen.toml.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  generateExecution,
}

func init() {
	generateCmd.Flags().Bool("no-cache", false, "ignore the render cache and rewrite every file")
}

type moduleStatus struct {
	name   string
	file   string
	bytes  int
	status string
}

func generateExecution(cmd *cobra.Command, args []string) error {
	jobsN, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	debugComments, err := cmd.Flags().GetBool("debug-comments")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	cfg, err := project.Load(filepath.Join(dir, "rustgen.toml"))
	if err != nil {
		return err
	}
	jobs, err := buildJobs(cfg)
	if err != nil {
		return err
	}

	opts := driver.Options{Jobs: jobsN, DebugComments: debugComments}
	var out driver.Output
	if shouldUseTUI(uiModeValue) {
		out, err = runGenerateWithUI(cmd.Context(), "generating "+cfg.Package.Name, jobs, opts)
	} else {
		out, err = driver.RenderAll(cmd.Context(), jobs, opts)
	}
	if err != nil {
		return err
	}

	var cache *driver.Cache
	if !noCache {
		cache, err = driver.OpenCache("rustgen")
		if err != nil {
			// A broken cache never blocks generation.
			cache = nil
		}
	}

	outputDir := filepath.Join(dir, cfg.Package.Output)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	statuses := make([]moduleStatus, 0, len(out.Modules))
	for _, m := range out.Modules {
		file := moduleFileName(m.Name)
		status, err := writeModule(cache, cfg.Package.Name, outputDir, file, m)
		if err != nil {
			return err
		}
		statuses = append(statuses, moduleStatus{name: m.Name, file: file, bytes: len(m.Text), status: status})
	}

	manifestText, err := cargo.RenderManifest(out.Manifest)
	if err != nil {
		return err
	}
	manifestPath := filepath.Join(outputDir, "manifest.toml")
	if err := os.WriteFile(manifestPath, []byte(manifestText), 0o644); err != nil {
		return err
	}

	printSummary(statuses, out.Manifest)
	return nil
}

// writeModule writes one rendered module, skipping the write when the
// cache shows the file content is unchanged.
func writeModule(cache *driver.Cache, pkg, outputDir, file string, m driver.Module) (string, error) {
	path := filepath.Join(outputDir, file)
	key := driver.HashKey(pkg+"/"+m.Name, nil)

	if cache != nil {
		var cached driver.Payload
		if ok, err := cache.Get(key, &cached); err == nil && ok && cached.Text == m.Text {
			if _, statErr := os.Stat(path); statErr == nil {
				return "unchanged", nil
			}
		}
	}
	if err := os.WriteFile(path, []byte(m.Text), 0o644); err != nil {
		return "", err
	}
	if cache != nil {
		payload := driver.Payload{Name: m.Name, Text: m.Text, Deps: m.Deps.List()}
		if err := cache.Put(key, &payload); err != nil {
			return "written", nil
		}
	}
	return "written", nil
}

func printSummary(statuses []moduleStatus, manifest *cargo.DependencySet) {
	nameWidth := 0
	for _, s := range statuses {
		if w := runewidth.StringWidth(s.file); w > nameWidth {
			nameWidth = w
		}
	}
	written := color.New(color.FgGreen).SprintFunc()
	unchanged := color.New(color.FgHiBlack).SprintFunc()

	for _, s := range statuses {
		label := written(s.status)
		if s.status == "unchanged" {
			label = unchanged(s.status)
		}
		fmt.Printf("  %s  %s (%d bytes)\n", runewidth.FillRight(s.file, nameWidth), label, s.bytes)
	}
	if manifest.Len() > 0 {
		fmt.Printf("  %d external %s recorded in manifest.toml\n", manifest.Len(), plural(manifest.Len(), "dependency", "dependencies"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
