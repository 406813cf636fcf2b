package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/aretw0/splice/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the splice engine as an MCP server so agents can call solve_trace as a tool.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing splice: %v\n", err)
			os.Exit(1)
		}

		if err := mcpAdapter.NewServer(engine).ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
