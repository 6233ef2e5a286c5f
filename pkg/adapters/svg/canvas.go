// Package svg provides a canvas that renders the turtle's path as an SVG document.
package svg

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/lsys/pkg/adapters/memory"
	"github.com/aretw0/lsys/pkg/domain"
)

// Canvas implements ports.Canvas and accumulates segments until WriteTo is called.
type Canvas struct {
	rec         *memory.Recorder
	stroke      string
	strokeWidth float64
	margin      float64
	background  string
}

type Option func(*Canvas)

// WithStroke sets the line color (any SVG color value).
func WithStroke(color string) Option {
	return func(c *Canvas) {
		c.stroke = color
	}
}

// WithStrokeWidth sets the line width in user units.
func WithStrokeWidth(width float64) Option {
	return func(c *Canvas) {
		c.strokeWidth = width
	}
}

// WithMargin sets the padding around the drawing's bounding box.
func WithMargin(margin float64) Option {
	return func(c *Canvas) {
		c.margin = margin
	}
}

// WithBackground fills the view box with color. Empty means transparent.
func WithBackground(color string) Option {
	return func(c *Canvas) {
		c.background = color
	}
}

// New creates an empty SVG canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		rec:         memory.NewRecorder(),
		stroke:      "black",
		strokeWidth: 1,
		margin:      10,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrawLine records a segment.
func (c *Canvas) DrawLine(from, to domain.Point) {
	c.rec.DrawLine(from, to)
}

// Segments returns the segments drawn so far.
func (c *Canvas) Segments() []domain.Segment {
	return c.rec.Segments()
}

// Bounds returns the bounding box of everything drawn.
// ok is false when nothing was drawn.
func (c *Canvas) Bounds() (lo, hi domain.Point, ok bool) {
	segs := c.rec.Segments()
	if len(segs) == 0 {
		return domain.Point{}, domain.Point{}, false
	}
	lo = domain.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = domain.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range segs {
		for _, p := range []domain.Point{s.From, s.To} {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, true
}

// WriteTo writes the SVG document. Coordinates are emitted as drawn, with the
// y axis pointing down, and the view box is fitted to the drawing.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	lo, hi, _ := c.Bounds()
	x := lo.X - c.margin
	y := lo.Y - c.margin
	width := hi.X - lo.X + 2*c.margin
	height := hi.Y - lo.Y + 2*c.margin

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(x), num(y), num(width), num(height), num(width), num(height))
	if c.background != "" {
		fmt.Fprintf(&sb, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(x), num(y), num(width), num(height), html.EscapeString(c.background))
	}
	fmt.Fprintf(&sb, `  <g stroke="%s" stroke-width="%s" stroke-linecap="round" fill="none">`+"\n",
		html.EscapeString(c.stroke), num(c.strokeWidth))
	for _, s := range c.rec.Segments() {
		fmt.Fprintf(&sb, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(s.From.X), num(s.From.Y), num(s.To.X), num(s.To.Y))
	}
	sb.WriteString("  </g>\n</svg>\n")

	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write svg: %w", err)
	}
	return int64(n), nil
}

// num formats v with at most three decimals.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
