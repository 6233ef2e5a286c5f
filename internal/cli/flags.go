package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/lsys/pkg/adapters/file"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/aretw0/lsys/pkg/dsl"
	"github.com/spf13/cobra"
)

// Flag names shared by every command.
const (
	FlagConfig     = "config"
	FlagAxiom      = "axiom"
	FlagRule       = "rule"
	FlagDepth      = "depth"
	FlagStartX     = "start-x"
	FlagStartY     = "start-y"
	FlagHeading    = "heading"
	FlagTurn       = "turn"
	FlagStep       = "step"
	FlagDegrees    = "degrees"
	FlagMaxSymbols = "max-symbols"
	FlagLogLevel   = "log-level"
)

// AddConfigFlags registers the configuration flags as persistent flags of cmd.
func AddConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringP(FlagConfig, "c", "", "YAML or JSON configuration file")
	f.StringP(FlagAxiom, "a", "", "Axiom (initial symbols)")
	f.StringArrayP(FlagRule, "r", nil, "Production rule as SYMBOL=REPLACEMENT (repeatable)")
	f.IntP(FlagDepth, "d", 0, "Number of expansion passes")
	f.Float64(FlagStartX, domain.DefaultStartX, "Turtle start X")
	f.Float64(FlagStartY, domain.DefaultStartY, "Turtle start Y")
	f.Float64(FlagHeading, domain.DefaultHeading, "Initial heading (radians, or degrees with --degrees)")
	f.Float64(FlagTurn, domain.DefaultTurnAngle, "Turn angle (radians, or degrees with --degrees)")
	f.Float64(FlagStep, domain.DefaultStepLength, "Step length")
	f.Bool(FlagDegrees, false, "Interpret --heading and --turn as degrees")
	f.Int(FlagMaxSymbols, 0, "Abort expansion past this many symbols (0 = unlimited)")
	f.String(FlagLogLevel, "warn", "Log level (debug, info, warn, error)")
}

// ResolveConfig builds the run configuration: the --config file (or defaults),
// then every flag the user set explicitly on top.
func ResolveConfig(cmd *cobra.Command) (domain.Config, error) {
	flags := cmd.Flags()

	cfg := domain.DefaultConfig()
	if path, _ := flags.GetString(FlagConfig); path != "" {
		loaded, err := file.NewLoader(path).Load()
		if err != nil {
			return domain.Config{}, err
		}
		cfg = loaded
	}

	if flags.Changed(FlagAxiom) {
		cfg.Axiom, _ = flags.GetString(FlagAxiom)
	}
	if flags.Changed(FlagRule) {
		raw, _ := flags.GetStringArray(FlagRule)
		rules, err := ParseRuleFlags(raw)
		if err != nil {
			return domain.Config{}, err
		}
		merged := cfg.Rules.Clone()
		for k, v := range rules {
			merged[k] = v
		}
		cfg.Rules = merged
	}
	if flags.Changed(FlagDepth) {
		cfg.Depth, _ = flags.GetInt(FlagDepth)
	}
	if flags.Changed(FlagStartX) {
		cfg.Start.X, _ = flags.GetFloat64(FlagStartX)
	}
	if flags.Changed(FlagStartY) {
		cfg.Start.Y, _ = flags.GetFloat64(FlagStartY)
	}

	degrees, _ := flags.GetBool(FlagDegrees)
	angle := func(name string) float64 {
		v, _ := flags.GetFloat64(name)
		if degrees {
			return dsl.Radians(v)
		}
		return v
	}
	if flags.Changed(FlagHeading) {
		cfg.Heading = angle(FlagHeading)
	}
	if flags.Changed(FlagTurn) {
		cfg.TurnAngle = angle(FlagTurn)
	}
	if flags.Changed(FlagStep) {
		cfg.StepLength, _ = flags.GetFloat64(FlagStep)
	}

	if cfg.Depth < 0 {
		return domain.Config{}, &domain.InvalidDepthError{Depth: cfg.Depth}
	}
	return cfg, nil
}

// ParseRuleFlags parses SYMBOL=REPLACEMENT pairs. The replacement may be empty.
func ParseRuleFlags(raw []string) (domain.Rules, error) {
	asMap := make(map[string]string, len(raw))
	for _, r := range raw {
		key, value, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("invalid rule %q: expected SYMBOL=REPLACEMENT", r)
		}
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("invalid rule %q: %q is not a single symbol", r, key)
		}
		asMap[key] = value
	}
	return domain.ParseRules(asMap)
}
