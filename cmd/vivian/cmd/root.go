package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vivian",
	Short: "Vivian bound-tree evaluator and pretty-printer",
	Long: `vivian exercises the Vivian language's back-end core: a tree-walking
evaluator and pretty-printer over a lowered, type-checked intermediate
representation.

Parsing and binding Vivian source text are out of scope for this core, so
this CLI runs and prints the bound-tree fixtures in internal/demo rather
than arbitrary source files.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
}
