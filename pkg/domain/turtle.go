package domain

import "math"

// Point is a position on the drawing plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a line drawn by the turtle.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Turtle is the pen state: a position and a heading in radians.
// It is a value type. Every transition returns a new Turtle.
type Turtle struct {
	Position Point   `json:"position"`
	Heading  float64 `json:"heading"`
}

// NewTurtle creates a turtle at (x, y) facing heading.
func NewTurtle(x, y, heading float64) Turtle {
	return Turtle{Position: Point{X: x, Y: y}, Heading: heading}
}

// Forward returns the turtle moved length units along its heading.
func (t Turtle) Forward(length float64) Turtle {
	return Turtle{
		Position: Point{
			X: t.Position.X + length*math.Cos(t.Heading),
			Y: t.Position.Y + length*math.Sin(t.Heading),
		},
		Heading: t.Heading,
	}
}

// Turn returns the turtle rotated by delta radians. Position is unchanged.
func (t Turtle) Turn(delta float64) Turtle {
	return Turtle{Position: t.Position, Heading: t.Heading + delta}
}

// Step applies a single non-stack symbol and returns the resulting turtle.
// When the symbol draws, the segment covered is returned with drew set.
// Stack symbols and unknown symbols leave the turtle unchanged.
func (t Turtle) Step(symbol rune, turnAngle, stepLength float64) (next Turtle, seg Segment, drew bool) {
	switch symbol {
	case SymbolForward:
		next = t.Forward(stepLength)
		return next, Segment{From: t.Position, To: next.Position}, true
	case SymbolTurnLeft:
		return t.Turn(turnAngle), Segment{}, false
	case SymbolTurnRight:
		return t.Turn(-turnAngle), Segment{}, false
	default:
		return t, Segment{}, false
	}
}

// Summary describes the outcome of one interpretation.
type Summary struct {
	// Symbols is the number of symbols consumed.
	Symbols int `json:"symbols"`
	// Segments is the number of draw calls issued to the canvas.
	Segments int `json:"segments"`
	// OpenBranches is the stack depth left when the input ended.
	// A non-zero value is not an error.
	OpenBranches int `json:"open_branches"`
	// Final is the turtle state after the last symbol.
	Final Turtle `json:"final"`
}
