// Package main implements the rustgen CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rustgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rustgen",
	Short: "Model-driven Rust source generator",
	Long:  "rustgen renders resolved data shapes into Rust source files, using rustgen.toml as the project definition.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("ui", "auto", "progress UI (auto|on|off)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel render jobs (0 = all CPUs)")
	rootCmd.PersistentFlags().Bool("debug-comments", false, "interleave origin comments in generated output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
