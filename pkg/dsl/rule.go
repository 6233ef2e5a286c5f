package dsl

// RuleBuilder provides a fluent API for configuring a production rule.
type RuleBuilder struct {
	replacement string
	set         bool
	builder     *Builder
}

// Produces sets the replacement string and returns the parent builder.
// An empty replacement erases the symbol on every pass.
func (r *RuleBuilder) Produces(replacement string) *Builder {
	r.replacement = replacement
	r.set = true
	return r.builder
}
