package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/lsys/internal/cli"
	"github.com/aretw0/lsys/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Print the expanded symbol string",
		Long:  `Rewrites the axiom --depth times and prints the result. Output is colored when stdout is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, cfg, err := cli.NewSystem(cmd)
			if err != nil {
				return err
			}

			symbols, err := sys.Expand(cmd.Context(), cfg.Depth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if count, _ := cmd.Flags().GetBool("count"); count {
				fmt.Fprintln(out, utf8.RuneCountInString(symbols))
				return nil
			}
			fmt.Fprintln(out, tui.Colorize(cli.ColorProfile(out), tui.DefaultPalette, symbols))
			return nil
		},
	}
	cmd.Flags().Bool("count", false, "Print only the number of symbols")
	return cmd
}
