package domain

import "math"

// Turtle command symbols.
const (
	SymbolForward   = 'F' // Move forward and draw
	SymbolTurnLeft  = '+' // Increase heading by the turn angle
	SymbolTurnRight = '-' // Decrease heading by the turn angle
	SymbolPush      = '[' // Save the current state
	SymbolPop       = ']' // Restore the last saved state
)

// Defaults applied when a configuration omits turtle parameters.
const (
	DefaultStartX     = 100.0
	DefaultStartY     = 200.0
	DefaultHeading    = 0.0
	DefaultTurnAngle  = math.Pi / 6
	DefaultStepLength = 10.0
)
