package file

// Document is the on-disk shape of a run configuration.
// It uses "mapstructure" tags so YAML and JSON sources decode the same way.
type Document struct {
	Axiom string            `json:"axiom" mapstructure:"axiom"`
	Rules map[string]string `json:"rules" mapstructure:"rules"`
	Depth int               `json:"depth" mapstructure:"depth"`

	// Turtle parameters. Nil fields keep their defaults.
	Start      *PointDocument `json:"start" mapstructure:"start"`
	Heading    *float64       `json:"heading" mapstructure:"heading"`
	TurnAngle  *float64       `json:"turn_angle" mapstructure:"turn_angle"`
	StepLength *float64       `json:"step_length" mapstructure:"step_length"`

	// AngleUnit applies to Heading and TurnAngle: "radians" (default) or "degrees".
	AngleUnit string `json:"angle_unit" mapstructure:"angle_unit"`
}

// PointDocument is a position in a Document.
type PointDocument struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

const (
	AngleRadians = "radians"
	AngleDegrees = "degrees"
)
