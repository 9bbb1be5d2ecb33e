package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rustgen/internal/cargo"
	"rustgen/internal/driver"
	"rustgen/internal/project"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest [path]",
	Short: "Print the merged Cargo dependency tables",
	Long:  "Render every shape in memory and print the Cargo dependency tables the generated crate needs. No files are written.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  manifestExecution,
}

func manifestExecution(cmd *cobra.Command, args []string) error {
	jobsN, err := cmd.Flags().GetInt("jobs")
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
	out, err := driver.RenderAll(cmd.Context(), jobs, driver.Options{Jobs: jobsN})
	if err != nil {
		return err
	}
	text, err := cargo.RenderManifest(out.Manifest)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
