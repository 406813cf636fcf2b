package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/splice"
	"github.com/aretw0/splice/internal/logging"
	"github.com/aretw0/splice/pkg/model"
)

var rootCmd = &cobra.Command{
	Use:   "splice",
	Short: "Splice completes a partial transducer against an input/output trace",
	Long: `Splice finds the minimum-cost set of extra transitions (and, when needed,
extra states) that make a partially specified finite-state transducer
reproduce a binary input/output trace exactly.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("model", "", "Path to a YAML/JSON transition table (default: built-in table)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// newEngine builds an engine from the persistent flags.
func newEngine(cmd *cobra.Command) (*splice.Engine, error) {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	opts := []splice.Option{splice.WithLogger(logger)}

	if path, _ := cmd.Flags().GetString("model"); path != "" {
		m, err := model.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, splice.WithModel(m))
	}

	return splice.New(opts...), nil
}
