package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lsys/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lsys",
		Short: "lsys expands L-systems and draws them with a turtle",
		Long: `lsys rewrites an axiom with production rules for a number of generations and
interprets the result as turtle-graphics commands (F, +, -, [, ]).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	cli.AddConfigFlags(rootCmd)

	rootCmd.AddCommand(
		newExpandCmd(),
		newRenderCmd(),
		newInspectCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
