/*
Package domain contains the core domain models of the lsys engine.

It defines the values the grammar expander and the turtle interpreter operate on.
This package is kept pure and free of external dependencies like I/O or rendering,
following Hexagonal Architecture principles.

# Key Entities

  - Grammar: an axiom plus production rules (single symbol to replacement string).
  - Turtle: the immutable pen state (position and heading in radians).
  - Segment: a line emitted to the canvas while interpreting.
  - Config: the full configuration surface of one run.
  - LifecycleHooks: callbacks fired by the engine for observability.
*/
package domain
