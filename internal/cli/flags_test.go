package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse runs a throwaway command with args and returns it after flag parsing.
func parse(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddConfigFlags(cmd)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := ResolveConfig(parse(t))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestResolveConfig_Flags(t *testing.T) {
	cmd := parse(t,
		"--axiom", "X",
		"--rule", "X=F[+X]F[-X]+X",
		"-r", "F=FF",
		"--depth", "4",
		"--start-x", "0", "--start-y", "-5",
		"--degrees", "--turn", "20", "--heading", "-90",
		"--step", "2.5",
	)

	cfg, err := ResolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "X", cfg.Axiom)
	assert.Equal(t, domain.Rules{'X': "F[+X]F[-X]+X", 'F': "FF"}, cfg.Rules)
	assert.Equal(t, 4, cfg.Depth)
	assert.Equal(t, domain.Point{X: 0, Y: -5}, cfg.Start)
	assert.InDelta(t, math.Pi/9, cfg.TurnAngle, 1e-12)
	assert.InDelta(t, -math.Pi/2, cfg.Heading, 1e-12)
	assert.Equal(t, 2.5, cfg.StepLength)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axiom: F\ndepth: 3\nrules:\n  F: F[+F]F[-F]F\n  G: GG\nstep_length: 7\n"), 0o644))

	cfg, err := ResolveConfig(parse(t, "--config", path, "--depth", "1", "--rule", "G=G"))
	require.NoError(t, err)

	assert.Equal(t, "F", cfg.Axiom)
	assert.Equal(t, 1, cfg.Depth)
	assert.Equal(t, 7.0, cfg.StepLength)
	assert.Equal(t, domain.Rules{'F': "F[+F]F[-F]F", 'G': "G"}, cfg.Rules)
}

func TestResolveConfig_Errors(t *testing.T) {
	_, err := ResolveConfig(parse(t, "--depth", "-2"))
	assert.ErrorIs(t, err, domain.ErrInvalidDepth)

	_, err = ResolveConfig(parse(t, "--rule", "FF"))
	assert.ErrorContains(t, err, "SYMBOL=REPLACEMENT")

	_, err = ResolveConfig(parse(t, "--rule", "AB=C"))
	assert.ErrorContains(t, err, "single symbol")

	_, err = ResolveConfig(parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRuleFlags_EmptyReplacement(t *testing.T) {
	rules, err := ParseRuleFlags([]string{"X=", "+=+"})
	require.NoError(t, err)
	assert.Equal(t, domain.Rules{'X': "", '+': "+"}, rules)
}

func TestNewSystem(t *testing.T) {
	cmd := parse(t, "--axiom", "F", "--rule", "F=FF", "--depth", "3", "--max-symbols", "4", "--log-level", "debug")

	sys, cfg, err := NewSystem(cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Depth)

	_, err = sys.Expand(cmd.Context(), cfg.Depth)
	assert.ErrorIs(t, err, domain.ErrSymbolLimit)

	_, _, err = NewSystem(parse(t, "--log-level", "loud"))
	assert.Error(t, err)
}

func TestColorProfile_NotATerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.Equal(t, termenv.Ascii, ColorProfile(&bytes.Buffer{}))
}
