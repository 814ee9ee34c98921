// Package main provides the narrows CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "narrows",
	Short: "Reference NaN-aware array reductions",
	Long: `narrows computes NaN-aware statistics (median, nanmean, nanstd, ...)
using the slow, always-correct reference path.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("narrows %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
