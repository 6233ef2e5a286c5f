package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/lsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var plantArgs = []string{"--axiom", "F", "--rule", "F=F[+F]F[-F]F"}

func TestExpandCmd(t *testing.T) {
	out, _, err := run(t, append([]string{"expand", "--depth", "1"}, plantArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "F[+F]F[-F]F\n", out)

	out, _, err = run(t, append([]string{"expand", "--depth", "2", "--count"}, plantArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "61\n", out)
}

func TestExpandCmd_SymbolLimit(t *testing.T) {
	_, _, err := run(t, append([]string{"expand", "--depth", "3", "--max-symbols", "100"}, plantArgs...)...)
	assert.ErrorContains(t, err, "limit 100")
}

func TestRenderCmd_Stdout(t *testing.T) {
	out, _, err := run(t, append([]string{"render", "--depth", "1", "--stroke", "green"}, plantArgs...)...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 5, strings.Count(out, "<line "))
	assert.Contains(t, out, `stroke="green"`)
}

func TestRenderCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.svg")

	_, stderr, err := run(t, append([]string{"render", "--depth", "2", "-o", path}, plantArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote 25 segments")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 25, strings.Count(string(data), "<line "))
}

func TestRenderCmd_Underflow(t *testing.T) {
	_, _, err := run(t, "render", "--axiom", "F]")
	assert.ErrorContains(t, err, "underflow")
}

func TestRenderCmd_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"axiom":"F","depth":1,"rules":{"F":"FF"},"start":{"x":0,"y":0}}`), 0o644))

	out, _, err := run(t, "render", "--config", path, "--margin", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "<line "))
	assert.Contains(t, out, `viewBox="0 0 20 0"`)
}

func TestInspectCmd(t *testing.T) {
	out, _, err := run(t, append([]string{"inspect", "--depth", "2", "--mermaid"}, plantArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Expanded symbols: 61")
	assert.Contains(t, out, "Segments drawn: 25")
	assert.Contains(t, out, "```mermaid")
}

func TestInspectCmd_ReportsUnderflow(t *testing.T) {
	out, _, err := run(t, "inspect", "--axiom", "F]F")
	require.NoError(t, err)
	assert.Contains(t, out, "**Error:**")
	assert.Contains(t, out, "Segments drawn: 1")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lsys version "+lsys.Version+"\n", out)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "expand", "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")
}
