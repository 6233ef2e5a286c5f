package domain

// Config is the configuration surface of one run.
// It is built once and not re-derived.
type Config struct {
	Axiom string `json:"axiom"`
	Rules Rules  `json:"rules"`

	// Depth is the number of expansion passes. Only drivers use it; the core
	// functions take the depth explicitly.
	Depth int `json:"depth"`

	Start      Point   `json:"start"`
	Heading    float64 `json:"heading"`    // radians
	TurnAngle  float64 `json:"turn_angle"` // radians
	StepLength float64 `json:"step_length"`
}

// DefaultConfig returns a configuration with the default turtle parameters
// and an empty grammar.
func DefaultConfig() Config {
	return Config{
		Rules:      Rules{},
		Start:      Point{X: DefaultStartX, Y: DefaultStartY},
		Heading:    DefaultHeading,
		TurnAngle:  DefaultTurnAngle,
		StepLength: DefaultStepLength,
	}
}

// Grammar builds a fresh grammar from the configuration.
func (c Config) Grammar() *Grammar {
	return NewGrammar(c.Axiom, c.Rules)
}

// Turtle returns the initial turtle state.
func (c Config) Turtle() Turtle {
	return NewTurtle(c.Start.X, c.Start.Y, c.Heading)
}
