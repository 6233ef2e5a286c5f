package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/lsys/internal/cli"
	"github.com/aretw0/lsys/internal/presentation/graph"
	"github.com/aretw0/lsys/internal/presentation/tui"
	"github.com/aretw0/lsys/pkg/adapters/memory"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe the grammar and the outcome of a run",
		Long: `Prints a markdown report with the rules, the turtle parameters and run statistics.
Interpretation errors are part of the report rather than a failure of the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, cfg, err := cli.NewSystem(cmd)
			if err != nil {
				return err
			}

			report := tui.Report{Config: cfg}
			symbols, err := sys.Expand(cmd.Context(), cfg.Depth)
			if err != nil {
				return err
			}
			report.Expanded = utf8.RuneCountInString(symbols)

			summary, err := sys.Interpret(cmd.Context(), symbols, memory.NewRecorder())
			report.Summary = summary
			if err != nil {
				if !errors.Is(err, domain.ErrStackUnderflow) {
					return err
				}
				report.Err = err
			}

			if withGraph, _ := cmd.Flags().GetBool("mermaid"); withGraph {
				report.Mermaid = graph.GenerateMermaid(cfg.Axiom, cfg.Rules)
			}

			out := cmd.OutOrStdout()
			render := tui.NewPlainRenderer()
			if cli.IsTerminal(out) {
				render = tui.NewRenderer()
			}
			text, err := render(report.Markdown())
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			fmt.Fprint(out, text)
			return nil
		},
	}
	cmd.Flags().Bool("mermaid", false, "Include the rule graph as a Mermaid diagram")
	return cmd
}
