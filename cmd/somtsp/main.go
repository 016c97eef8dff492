package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "somtsp",
		Short: "Self-organizing ring heuristic for Euclidean TSP",
		Long: `somtsp trains a closed ring of neurons on a set of cities and reads the
settled ring back as a tour.

Instances are text files with one "x,y" city per line.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSolveCmd(),
	)
	return rootCmd
}
