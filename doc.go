/*
Package lsys is a small engine for L-systems: it expands a rewriting grammar over a number of
generations and interprets the resulting symbols as turtle-graphics commands.

It follows a Hexagonal Architecture. The core (expansion and the turtle state machine) is pure and
deterministic, while the drawing surface is a port (ports.Canvas) implemented by adapters such as
the in-memory recorder or the SVG writer.

# Concept

A grammar is an axiom plus production rules mapping one symbol to a replacement string. Each
expansion pass rewrites every symbol of the previous pass. The turtle then reads the result:

  - F moves forward and draws a line.
  - + and - turn by the configured angle.
  - [ and ] save and restore the turtle state, producing branches.

Any other symbol is ignored, which allows placeholder symbols that only drive expansion.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/lsys"
		"github.com/aretw0/lsys/pkg/adapters/svg"
		"github.com/aretw0/lsys/pkg/dsl"
	)

	func main() {
		b := dsl.New("F").Depth(3).HeadingDegrees(-90)
		b.Rule('F').Produces("F[+F]F[-F]F")

		cfg, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		canvas := svg.New()
		if _, err := lsys.New(cfg).Render(context.Background(), canvas); err != nil {
			log.Fatal(err)
		}
		canvas.WriteTo(os.Stdout)
	}

# Errors

A pop symbol with no saved state aborts interpretation with a *domain.UnderflowError
(errors.Is(err, domain.ErrStackUnderflow)). A negative depth yields a *domain.InvalidDepthError.
Ending with unclosed branches is not an error; see domain.Summary.OpenBranches.
*/
package lsys
