package svg_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/lsys/pkg/adapters/svg"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/aretw0/lsys/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_Contract(t *testing.T) {
	ports.RunCanvasContract(t, func() ports.RecordingCanvas {
		return svg.New()
	})
}

func TestCanvas_WriteTo(t *testing.T) {
	c := svg.New(svg.WithMargin(5), svg.WithStroke("#228b22"), svg.WithStrokeWidth(0.5))
	c.DrawLine(domain.Point{X: 0, Y: 0}, domain.Point{X: 10, Y: 0})
	c.DrawLine(domain.Point{X: 10, Y: 0}, domain.Point{X: 10, Y: -20.12345})

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `viewBox="-5 -25.123 20 30.123"`)
	assert.Contains(t, out, `stroke="#228b22" stroke-width="0.5"`)
	assert.Contains(t, out, `<line x1="0" y1="0" x2="10" y2="0"/>`)
	assert.Contains(t, out, `<line x1="10" y1="0" x2="10" y2="-20.123"/>`)
	assert.Equal(t, 2, strings.Count(out, "<line "))
	assert.NotContains(t, out, "<rect")
}

func TestCanvas_Empty(t *testing.T) {
	c := svg.New(svg.WithBackground("white"))

	_, _, ok := c.Bounds()
	assert.False(t, ok)

	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `viewBox="-10 -10 20 20"`)
	assert.Contains(t, buf.String(), `fill="white"`)
	assert.NotContains(t, buf.String(), "<line ")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCanvas_WriteError(t *testing.T) {
	c := svg.New()
	c.DrawLine(domain.Point{}, domain.Point{X: 1})

	_, err := c.WriteTo(failingWriter{})
	assert.ErrorContains(t, err, "disk full")
}

func TestCanvas_EscapesColorAttributes(t *testing.T) {
	c := svg.New(
		svg.WithStroke(`red"/><script>alert(1)</script><g x="`),
		svg.WithBackground(`white" onload="alert(1)`),
	)
	c.DrawLine(domain.Point{}, domain.Point{X: 1})

	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, `" onload="`)
	assert.Contains(t, out, `stroke="red&#34;/&gt;&lt;script&gt;`)
	assert.Contains(t, out, `fill="white&#34; onload=&#34;alert(1)"`)
}
