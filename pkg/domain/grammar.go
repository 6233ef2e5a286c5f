package domain

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Rules maps a symbol to its replacement string.
// Symbols without a rule rewrite to themselves.
type Rules map[rune]string

// Rewrite returns the replacement for symbol, or the symbol itself.
func (r Rules) Rewrite(symbol rune) string {
	if repl, ok := r[symbol]; ok {
		return repl
	}
	return string(symbol)
}

// Clone returns an independent copy of the rules.
func (r Rules) Clone() Rules {
	out := make(Rules, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Symbols returns the rule keys in ascending order.
func (r Rules) Symbols() []rune {
	keys := make([]rune, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ParseRules converts string-keyed rules (as found in config documents) into Rules.
// Every key must be exactly one symbol.
func ParseRules(raw map[string]string) (Rules, error) {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rules := make(Rules, len(raw))
	var errs []error
	for _, key := range keys {
		repl := raw[key]
		if utf8.RuneCountInString(key) != 1 {
			errs = append(errs, &ConfigError{
				Key:    fmt.Sprintf("rules.%s", key),
				Reason: "rule key must be a single symbol",
				Value:  key,
			})
			continue
		}
		r, _ := utf8.DecodeRuneInString(key)
		rules[r] = repl
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return rules, nil
}

// Grammar is an axiom plus a fixed set of production rules.
// The rules never change after construction. Expansion overwrites Axiom.
type Grammar struct {
	Axiom string
	rules Rules
}

// NewGrammar creates a grammar. The rules are copied.
func NewGrammar(axiom string, rules Rules) *Grammar {
	return &Grammar{Axiom: axiom, rules: rules.Clone()}
}

// Rules returns a copy of the production rules.
func (g *Grammar) Rules() Rules {
	return g.rules.Clone()
}
