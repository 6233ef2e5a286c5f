package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/lsys/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the production rules:
// an edge A --> B means A's replacement contains B, labeled with the count.
// It applies semantic styling:
// - Axiom symbol: ((Circle))
// - Turtle command (F + - [ ]): [[Subroutine]]
// - Other symbols: [Rectangle]
// Symbols without a rule only appear as edge targets or axiom members.
func GenerateMermaid(axiom string, rules domain.Rules) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	inAxiom := make(map[rune]bool)
	for _, s := range axiom {
		inAxiom[s] = true
	}

	// Collect every symbol in a stable order
	seen := make(map[rune]bool)
	var symbols []rune
	add := func(s rune) {
		if !seen[s] {
			seen[s] = true
			symbols = append(symbols, s)
		}
	}
	for _, s := range axiom {
		add(s)
	}
	for _, s := range rules.Symbols() {
		add(s)
		for _, r := range rules[s] {
			add(r)
		}
	}

	for _, s := range symbols {
		opener, closer := "[", "]"
		switch {
		case inAxiom[s]:
			opener, closer = "((", "))"
		case isCommand(s):
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(s), opener, label(s), closer))
	}

	for _, s := range rules.Symbols() {
		counts := make(map[rune]int)
		for _, r := range rules[s] {
			counts[r]++
		}
		targets := make([]rune, 0, len(counts))
		for r := range counts {
			targets = append(targets, r)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

		if len(targets) == 0 {
			// Erasing rule
			sb.WriteString(fmt.Sprintf("    %s -. \"ε\" .-> %s\n", nodeID(s), nodeID(s)))
			continue
		}
		for _, r := range targets {
			arrow := "-->"
			if counts[r] > 1 {
				arrow = fmt.Sprintf("-- \"x%d\" -->", counts[r])
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", nodeID(s), arrow, nodeID(r)))
		}
	}

	return sb.String()
}

func isCommand(s rune) bool {
	switch s {
	case domain.SymbolForward, domain.SymbolTurnLeft, domain.SymbolTurnRight, domain.SymbolPush, domain.SymbolPop:
		return true
	}
	return false
}

// nodeID derives a Mermaid-safe identifier, since symbols like "[" or "-" are syntax.
func nodeID(s rune) string {
	return fmt.Sprintf("s%X", s)
}

func label(s rune) string {
	if s == '"' {
		return "#quot;"
	}
	return string(s)
}
