/*
Package ports defines the driven ports (interfaces) for the lsys engine.

These interfaces decouple the core logic from external implementations, allowing
the interpreter to draw on any surface and drivers to source configuration from
anywhere.

# Key Interfaces

  - Canvas: The drawing surface. It exposes a single operation, drawing a line.
  - ConfigLoader: Responsible for producing a run configuration (e.g., from a file).
*/
package ports
