package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/splice/internal/presentation/report"
)

// demoTraces are the fixed cases the original tool shipped with; they run when
// no trace is given on the command line.
var demoTraces = []string{
	"001_010_010_101_100_001_110_110",
	"111_010_000_100_110_101_110_000",
}

var solveCmd = &cobra.Command{
	Use:   "solve [trace...]",
	Short: "Solve one or more traces against the transducer model",
	Long: `Solve finds, for each trace, the cheapest extension of the model that
reproduces it. A trace is a string over {0,1}; any other characters (e.g.
underscores used as separators) are ignored. Without arguments the built-in
demo traces are solved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		if !cmd.Flags().Changed("pretty") {
			pretty = term.IsTerminal(int(os.Stdout.Fd()))
		}

		traces := args
		if len(traces) == 0 {
			traces = demoTraces
		}

		for i, raw := range traces {
			fmt.Println(strings.Repeat("-", 30))
			fmt.Printf("Testing case %d:\n%s\n\n", i+1, raw)

			completion, err := engine.Solve(raw)
			if err != nil {
				return err
			}

			if pretty {
				rendered, err := report.RenderMarkdown(report.Markdown(completion))
				if err == nil {
					fmt.Print(rendered)
					continue
				}
				// Fall through to plain text if the terminal renderer fails.
			}
			fmt.Print(report.Colorize(report.Text(completion)))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Bool("pretty", false, "Render the report as rich terminal markdown (default: auto-detect TTY)")

	// Make 'solve' the default if no command is provided.
	rootCmd.RunE = solveCmd.RunE
}
