package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorize_Ascii(t *testing.T) {
	assert.Equal(t, "F[+F]X", Colorize(termenv.Ascii, DefaultPalette, "F[+F]X"))
}

func TestColorize_TrueColor(t *testing.T) {
	out := Colorize(termenv.TrueColor, DefaultPalette, "FF+[X")

	assert.Contains(t, out, "\x1b[")
	// Runs of the same class share one escape sequence
	assert.Contains(t, out, "FF")
	plain := stripANSI(out)
	assert.Equal(t, "FF+[X", plain)
}

func TestReport_Markdown(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Axiom = "F"
	cfg.Depth = 2
	cfg.Rules = domain.Rules{'F': "F[+F]F[-F]F"}

	md := Report{
		Config:   cfg,
		Expanded: 61,
		Summary:  domain.Summary{Segments: 25},
		Err:      errors.New("boom"),
		Mermaid:  "graph TD\n",
	}.Markdown()

	assert.Contains(t, md, "**Axiom:** `F`")
	assert.Contains(t, md, "| `F` | `F[+F]F[-F]F` |")
	assert.Contains(t, md, "Turn angle: 0.5236 rad (30°)")
	assert.Contains(t, md, "Segments drawn: 25")
	assert.Contains(t, md, "**Error:** boom")
	assert.Contains(t, md, "```mermaid\ngraph TD\n```")
}

func TestReport_NoRules(t *testing.T) {
	md := Report{Config: domain.DefaultConfig()}.Markdown()
	assert.Contains(t, md, "No rules")
	assert.NotContains(t, md, "Rule graph")
}

func TestRenderers(t *testing.T) {
	out, err := NewPlainRenderer()("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)

	out, err = NewRenderer()("# Title\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Greater(t, strings.Count(buf.String(), "\n"), 5)
}

func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
