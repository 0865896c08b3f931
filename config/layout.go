package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/geometry"
	"github.com/mmesiti/hypercubes/internal/presets"
	"github.com/mmesiti/hypercubes/partition"
)

// maxDocumentSize bounds layout files read from disk.
const maxDocumentSize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// Layout is the document form of a builder.Layout.
type Layout struct {
	Geometry []AxisSpec    `yaml:"geometry" validate:"required_without=Standard,omitempty,min=1,dive"`
	Rules    []RuleSpec    `yaml:"rules" validate:"required_without=Standard,omitempty,min=1,dive"`
	Standard *StandardSpec `yaml:"standard" validate:"omitempty"`
}

// AxisSpec is one geometry axis. An empty parity means even.
type AxisSpec struct {
	Size   int    `yaml:"size" validate:"gte=0"`
	Parity string `yaml:"parity" validate:"omitempty,oneof=even odd unknown"`
}

// RuleSpec is one rule of the chain. Parts applies to qper and qopen, Halo to
// hbb, Axes to eo; End ignores everything but its name.
type RuleSpec struct {
	Name  string `yaml:"name" validate:"required"`
	Kind  string `yaml:"kind" validate:"required,oneof=qper qopen hbb eo leaf end"`
	Axis  int    `yaml:"axis" validate:"gte=0"`
	Parts int    `yaml:"parts" validate:"gte=0"`
	Halo  int    `yaml:"halo" validate:"gte=0"`
	Axes  []bool `yaml:"axes"`
}

// StandardSpec selects presets.Standard. Missing ranks or lanes mean one
// part per axis.
type StandardSpec struct {
	Sizes []int `yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	Ranks []int `yaml:"ranks" validate:"omitempty,dive,gt=0"`
	Lanes []int `yaml:"lanes" validate:"omitempty,dive,gt=0"`
	Halo  int   `yaml:"halo" validate:"gte=0"`
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &l, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	if info.Size() > maxDocumentSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInvalidLayout, path, info.Size(), maxDocumentSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Validate checks the struct tags and the cross-field constraints.
func (l *Layout) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if s := l.Standard; s != nil {
		if len(l.Geometry) > 0 || len(l.Rules) > 0 {
			return fmt.Errorf("%w: standard excludes geometry and rules", ErrInvalidLayout)
		}
		for _, f := range []struct {
			name   string
			values []int
		}{{"ranks", s.Ranks}, {"lanes", s.Lanes}} {
			if len(f.values) > 0 && len(f.values) != len(s.Sizes) {
				return fmt.Errorf("%w: %d %s for %d sizes", ErrInvalidLayout, len(f.values), f.name, len(s.Sizes))
			}
		}
	}
	for i, r := range l.Rules {
		if (r.Kind == "qper" || r.Kind == "qopen") && r.Parts == 0 {
			return fmt.Errorf("%w: rule %d (%s): %s needs parts", ErrInvalidLayout, i, r.Name, r.Kind)
		}
		if r.Kind == "hbb" && r.Halo == 0 {
			return fmt.Errorf("%w: rule %d (%s): hbb needs halo", ErrInvalidLayout, i, r.Name)
		}
		if r.Kind == "eo" && !lo.Contains(r.Axes, true) {
			return fmt.Errorf("%w: rule %d (%s): eo needs at least one axis", ErrInvalidLayout, i, r.Name)
		}
	}

	return nil
}

// Resolve converts l into a geometry and rule chain.
func (l *Layout) Resolve() (builder.Layout, error) {
	if s := l.Standard; s != nil {
		ones := lo.Times(len(s.Sizes), func(int) int { return 1 })
		return presets.Standard(s.Sizes, lo.Ternary(len(s.Ranks) > 0, s.Ranks, ones),
			lo.Ternary(len(s.Lanes) > 0, s.Lanes, ones), s.Halo), nil
	}

	geom := lo.Map(l.Geometry, func(a AxisSpec, _ int) geometry.SizeParity {
		return geometry.SizeParity{Size: a.Size, Parity: parseParity(a.Parity)}
	})
	rules := make([]partition.Rule, len(l.Rules))
	for i, r := range l.Rules {
		kind, err := partition.ParseKind(r.Kind)
		if err != nil {
			return builder.Layout{}, fmt.Errorf("%w: rule %d: %v", ErrInvalidLayout, i, err)
		}
		rules[i] = partition.Rule{Name: r.Name, Kind: kind, Axis: r.Axis}
		switch kind {
		case partition.KindQPeriodic, partition.KindQOpen:
			rules[i].Param = r.Parts
		case partition.KindHBB:
			rules[i].Param = r.Halo
		case partition.KindEvenOdd:
			rules[i].Axis = 0
			rules[i].Axes = append([]bool(nil), r.Axes...)
		case partition.KindEnd:
			rules[i].Axis = 0
		}
	}

	return builder.Layout{Geometry: geom, Rules: rules}, nil
}

func parseParity(s string) geometry.Parity {
	switch s {
	case "odd":
		return geometry.Odd
	case "unknown":
		return geometry.Unknown
	default:
		return geometry.Even
	}
}
