package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivian-lang/vivian/internal/config"
	"github.com/vivian-lang/vivian/internal/demo"
	"github.com/vivian-lang/vivian/internal/eval"
	"github.com/vivian-lang/vivian/internal/printer"
)

var (
	seed   int64
	dumpIR bool
)

var runCmd = &cobra.Command{
	Use:   "run <demo-name>",
	Short: "Evaluate one of the internal/demo bound-tree fixtures",
	Long: fmt.Sprintf("Evaluate a named fixture and print its result and output.\n\nAvailable fixtures: %s",
		strings.Join(demo.Names, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64Var(&seed, "seed", 0, "seed the rnd builtin's PRNG")
	runCmd.Flags().BoolVar(&dumpIR, "dump-ir", false, "pretty-print the bound tree before running")
}

func runDemo(cmd *cobra.Command, args []string) error {
	name := args[0]
	program, globals, ok := demo.Build(name)
	if !ok {
		return fmt.Errorf("unknown fixture %q (available: %s)", name, strings.Join(demo.Names, ", "))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Evaluator.Seed = seed
	}

	if dumpIR {
		w := printer.NewWriter(os.Stdout)
		entry := program.FunctionTable()[program.Entry()]
		if err := printer.WriteTo(w, entry); err != nil {
			return fmt.Errorf("printing bound tree: %w", err)
		}
		w.Flush()
	}

	evaluator := eval.New(os.Stdout, os.Stdin, eval.WithSeed(cfg.Evaluator.Seed))
	value, err := evaluator.Evaluate(program, globals)
	if err != nil {
		return err
	}
	if value != nil {
		fmt.Printf("=> %v\n", value)
	}
	return nil
}
