package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/lsys/internal/cli"
	"github.com/aretw0/lsys/pkg/adapters/pace"
	"github.com/aretw0/lsys/pkg/adapters/svg"
	"github.com/aretw0/lsys/pkg/ports"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the L-system as SVG",
		Long:  `Expands the axiom, runs the turtle over the result and writes the drawing as an SVG document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := cli.NewSystem(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			stroke, _ := flags.GetString("stroke")
			width, _ := flags.GetFloat64("stroke-width")
			margin, _ := flags.GetFloat64("margin")
			background, _ := flags.GetString("background")
			delay, _ := flags.GetDuration("delay")
			output, _ := flags.GetString("output")

			canvas := svg.New(
				svg.WithStroke(stroke),
				svg.WithStrokeWidth(width),
				svg.WithMargin(margin),
				svg.WithBackground(background),
			)
			var target ports.Canvas = canvas
			if delay > 0 {
				target = pace.Wrap(canvas, delay)
			}

			summary, err := sys.Render(cmd.Context(), target)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			if _, err := canvas.WriteTo(w); err != nil {
				return err
			}

			if output != "" && output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d segments to %s\n", summary.Segments, output)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "-", "Output file (- for stdout)")
	f.String("stroke", "black", "Line color")
	f.Float64("stroke-width", 1, "Line width")
	f.Float64("margin", 10, "Padding around the drawing")
	f.String("background", "", "Background color (default transparent)")
	f.Duration("delay", 0, "Pause between segments, to watch the turtle draw")
	return cmd
}
