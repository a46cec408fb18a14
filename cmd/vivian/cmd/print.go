package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivian-lang/vivian/internal/demo"
	"github.com/vivian-lang/vivian/internal/printer"
)

var printCmd = &cobra.Command{
	Use:   "print <demo-name>",
	Short: "Pretty-print one of the internal/demo bound-tree fixtures",
	Args:  cobra.ExactArgs(1),
	RunE:  printDemo,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func printDemo(cmd *cobra.Command, args []string) error {
	name := args[0]
	program, _, ok := demo.Build(name)
	if !ok {
		return fmt.Errorf("unknown fixture %q (available: %s)", name, strings.Join(demo.Names, ", "))
	}

	entry := program.FunctionTable()[program.Entry()]
	w := printer.NewWriter(os.Stdout)
	if err := printer.WriteTo(w, entry); err != nil {
		return err
	}
	return w.Flush()
}
