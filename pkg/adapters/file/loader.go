// Package file loads run configurations from YAML or JSON files.
package file

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for a single file.
type Loader struct {
	path string
}

// NewLoader creates a loader for path. The file is read on every Load.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and decodes the configuration file.
func (l *Loader) Load() (domain.Config, error) {
	return Load(l.path)
}

// Load reads a configuration file (YAML or JSON, chosen by extension) and
// returns the resulting configuration. Omitted turtle parameters keep their defaults.
func Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Decode(raw)
}

// Decode converts a generic map (as produced by YAML or JSON decoders) into a configuration.
func Decode(raw map[string]any) (domain.Config, error) {
	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return domain.Config{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return doc.Config()
}

// Config validates the document and converts it into a configuration.
func (d Document) Config() (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Axiom = d.Axiom
	cfg.Depth = d.Depth

	var errs []error

	if d.Depth < 0 {
		errs = append(errs, &domain.ConfigError{Key: "depth", Reason: domain.ErrInvalidDepth.Error(), Value: d.Depth})
	}

	rules, err := domain.ParseRules(d.Rules)
	if err != nil {
		errs = append(errs, domain.ConfigErrors(err)...)
	} else {
		cfg.Rules = rules
	}

	toRadians := func(v float64) float64 { return v }
	switch strings.ToLower(d.AngleUnit) {
	case "", AngleRadians:
	case AngleDegrees:
		toRadians = func(v float64) float64 { return v * math.Pi / 180 }
	default:
		errs = append(errs, &domain.ConfigError{
			Key:    "angle_unit",
			Reason: fmt.Sprintf("must be %q or %q", AngleRadians, AngleDegrees),
			Value:  d.AngleUnit,
		})
	}

	if d.Start != nil {
		cfg.Start = domain.Point{X: d.Start.X, Y: d.Start.Y}
	}
	if d.Heading != nil {
		cfg.Heading = toRadians(*d.Heading)
	}
	if d.TurnAngle != nil {
		cfg.TurnAngle = toRadians(*d.TurnAngle)
	}
	if d.StepLength != nil {
		cfg.StepLength = *d.StepLength
	}

	if len(errs) > 0 {
		return domain.Config{}, &domain.AggregateError{Errors: errs}
	}
	return cfg, nil
}
