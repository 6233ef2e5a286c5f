package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the lsys ASCII art banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Greens, leaf to trunk
	lines := []struct {
		text  string
		color string
	}{
		{" _", "#bbf7d0"},
		{"| |___ _   _ ___", "#86efac"},
		{"| / __| | | / __|", "#4ade80"},
		{"| \\__ \\ |_| \\__ \\", "#22c55e"},
		{"|_|___/\\__, |___/", "#16a34a"},
		{"       |___/", "#a16207"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
