/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing lsys configurations.

It allows developers to define an L-system and its turtle parameters using a type-safe, fluent builder
pattern instead of assembling a domain.Config by hand.

Example usage:

	package main

	import (
		"math"

		"github.com/aretw0/lsys/pkg/dsl"
	)

	func main() {
		b := dsl.New("F")

		b.Rule('F').Produces("F[+F]F[-F]F")

		b.Depth(4).
			Start(300, 600).
			HeadingDegrees(-90).
			Turn(math.Pi / 7).
			Step(4)

		cfg, err := b.Build()
		// ... pass cfg to lsys.New(...)
	}
*/
package dsl
