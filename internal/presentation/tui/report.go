package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/lsys/pkg/domain"
)

// Report is what the inspect command shows about a run.
type Report struct {
	Config   domain.Config
	Expanded int // symbols after expansion
	Summary  domain.Summary
	Err      error
	Mermaid  string // optional rule graph
}

// Markdown formats the report as a markdown document.
func (r Report) Markdown() string {
	var sb strings.Builder
	cfg := r.Config

	sb.WriteString("# L-system\n\n")
	fmt.Fprintf(&sb, "**Axiom:** `%s`  \n", cfg.Axiom)
	fmt.Fprintf(&sb, "**Depth:** %d\n\n", cfg.Depth)

	sb.WriteString("## Rules\n\n")
	if len(cfg.Rules) == 0 {
		sb.WriteString("_No rules: every symbol rewrites to itself._\n\n")
	} else {
		sb.WriteString("| Symbol | Replacement |\n|---|---|\n")
		for _, s := range cfg.Rules.Symbols() {
			fmt.Fprintf(&sb, "| `%c` | `%s` |\n", s, cfg.Rules[s])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Turtle\n\n")
	fmt.Fprintf(&sb, "- Start: (%g, %g)\n", cfg.Start.X, cfg.Start.Y)
	fmt.Fprintf(&sb, "- Heading: %.4g rad (%.4g°)\n", cfg.Heading, degrees(cfg.Heading))
	fmt.Fprintf(&sb, "- Turn angle: %.4g rad (%.4g°)\n", cfg.TurnAngle, degrees(cfg.TurnAngle))
	fmt.Fprintf(&sb, "- Step length: %g\n\n", cfg.StepLength)

	sb.WriteString("## Run\n\n")
	fmt.Fprintf(&sb, "- Expanded symbols: %d\n", r.Expanded)
	fmt.Fprintf(&sb, "- Segments drawn: %d\n", r.Summary.Segments)
	fmt.Fprintf(&sb, "- Open branches at end: %d\n", r.Summary.OpenBranches)
	fmt.Fprintf(&sb, "- Final position: (%.4g, %.4g)\n", r.Summary.Final.Position.X, r.Summary.Final.Position.Y)
	if r.Err != nil {
		fmt.Fprintf(&sb, "\n> **Error:** %s\n", r.Err)
	}

	if r.Mermaid != "" {
		sb.WriteString("\n## Rule graph\n\n```mermaid\n")
		sb.WriteString(r.Mermaid)
		sb.WriteString("```\n")
	}
	return sb.String()
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
