package tui

import (
	"strings"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/muesli/termenv"
)

// Palette maps symbol classes to colors.
type Palette struct {
	Forward string
	Turn    string
	Branch  string
	Other   string
}

// DefaultPalette colors drawing symbols green, turns yellow and brackets magenta.
var DefaultPalette = Palette{
	Forward: "#22c55e",
	Turn:    "#eab308",
	Branch:  "#d946ef",
	Other:   "#94a3b8",
}

// Colorize styles each run of same-class symbols for the given color profile.
// With termenv.Ascii the input is returned unchanged.
func Colorize(p termenv.Profile, pal Palette, symbols string) string {
	if p == termenv.Ascii {
		return symbols
	}

	var sb strings.Builder
	var run strings.Builder
	current := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(p.String(run.String()).Foreground(p.Color(current)).String())
		run.Reset()
	}

	for _, s := range symbols {
		color := pal.colorFor(s)
		if color != current {
			flush()
			current = color
		}
		run.WriteRune(s)
	}
	flush()
	return sb.String()
}

func (pal Palette) colorFor(s rune) string {
	switch s {
	case domain.SymbolForward:
		return pal.Forward
	case domain.SymbolTurnLeft, domain.SymbolTurnRight:
		return pal.Turn
	case domain.SymbolPush, domain.SymbolPop:
		return pal.Branch
	}
	return pal.Other
}
