package runtime

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/lsys/pkg/domain"
)

// Expand rewrites axiom depth times. Each pass replaces every symbol of the
// previous pass's output, left to right, with its rule or with itself.
// Depth 0 returns the axiom unchanged.
//
// Output length can grow exponentially with depth. Bounding it is up to the caller.
func Expand(axiom string, rules domain.Rules, depth int) (string, error) {
	if depth < 0 {
		return "", &domain.InvalidDepthError{Depth: depth}
	}

	current := axiom
	for i := 0; i < depth; i++ {
		current = rewrite(current, rules)
	}
	return current, nil
}

// ExpandGrammar expands g in place, overwriting its axiom with the result.
// On error the grammar is left untouched.
func ExpandGrammar(g *domain.Grammar, depth int) error {
	out, err := Expand(g.Axiom, g.Rules(), depth)
	if err != nil {
		return err
	}
	g.Axiom = out
	return nil
}

// rewrite performs a single pass.
func rewrite(symbols string, rules domain.Rules) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, symbol := range symbols {
		sb.WriteString(rules.Rewrite(symbol))
	}
	return sb.String()
}

// NextLength returns the number of symbols one pass over symbols would produce,
// without building the string.
func NextLength(symbols string, rules domain.Rules) int {
	n := 0
	for _, symbol := range symbols {
		if repl, ok := rules[symbol]; ok {
			n += utf8.RuneCountInString(repl)
			continue
		}
		n++
	}
	return n
}
