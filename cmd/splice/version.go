package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/splice"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of splice",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("splice version %s\n", strings.TrimSpace(splice.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
