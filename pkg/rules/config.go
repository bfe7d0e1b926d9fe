package rules

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/registry"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultRules []byte

// File is the on-disk form of a rule table
type File struct {
	Rules []Spec `toml:"rules" yaml:"rules"`
}

// Spec describes one rule by pattern description and handler name
type Spec struct {
	Name    string     `toml:"name" yaml:"name"`
	Pattern string     `toml:"pattern" yaml:"pattern"`
	Handler string     `toml:"handler" yaml:"handler"`
	Guard   *GuardSpec `toml:"guard,omitempty" yaml:"guard,omitempty"`
}

// GuardSpec names a registered guard kind and its arguments
type GuardSpec struct {
	Kind    string   `toml:"kind" yaml:"kind"`
	Binding string   `toml:"binding" yaml:"binding"`
	Values  []string `toml:"values" yaml:"values"`
}

// GuardFactory builds a guard from its spec
type GuardFactory func(spec GuardSpec) (pattern.Guard, error)

// Flag positions accepted by the "has-flag" guard kind
const (
	FlagsAnywhere = "anywhere"
	FlagsLeading  = "leading"
)

// DefaultSpecs returns the embedded default rule table
func DefaultSpecs() ([]Spec, error) {
	return ParseSpecs(defaultRules, "toml")
}

// DefaultFile returns the embedded default rule table as written
func DefaultFile() []byte {
	return append([]byte(nil), defaultRules...)
}

// ParseSpecs decodes a rule file. format is "toml" or "yaml".
func ParseSpecs(data []byte, format string) ([]Spec, error) {
	var file File
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, errors.ErrRuleFileParse, "failed to parse TOML rule file")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, errors.ErrRuleFileParse, "failed to parse YAML rule file")
		}
	default:
		return nil, errors.Newf(errors.ErrRuleFileFormat, "unsupported rule file format %q", format).
			WithDetail("format", format)
	}
	return file.Rules, nil
}

// LoadSpecs reads a rule file, picking the decoder from its extension
func LoadSpecs(path string) ([]Spec, error) {
	logger := logging.GetLogger("rules.config").With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleFileLoad, "failed to read rule file %s", path).
			WithDetail("path", path)
	}

	specs, err := ParseSpecs(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("rules", len(specs)).Msg("Rule file loaded")
	return specs, nil
}

// Builder resolves rule specs into a Table using named handlers and guard
// kinds
type Builder struct {
	handlers registry.Registry[Handler]
	guards   registry.Registry[GuardFactory]
}

// NewBuilder creates a builder resolving handlers from handlers. The
// standard guard kinds are registered, with "has-flag" looking for flags
// at flagPosition (FlagsAnywhere or FlagsLeading).
func NewBuilder(handlers registry.Registry[Handler], flagPosition string) (*Builder, error) {
	guards := registry.New[GuardFactory]("guard")
	registry.MustRegister(guards, "has-any", func(s GuardSpec) (pattern.Guard, error) {
		return pattern.HasAny(s.Binding, s.Values...), nil
	})
	registry.MustRegister(guards, "has-leading", func(s GuardSpec) (pattern.Guard, error) {
		return pattern.HasLeading(s.Binding, s.Values...), nil
	})
	registry.MustRegister(guards, "one-of", func(s GuardSpec) (pattern.Guard, error) {
		return pattern.OneOf(s.Binding, s.Values...), nil
	})
	registry.MustRegister(guards, "none-of", func(s GuardSpec) (pattern.Guard, error) {
		return pattern.NoneOf(s.Binding, s.Values...), nil
	})

	switch flagPosition {
	case "", FlagsAnywhere:
		registry.MustRegister(guards, "has-flag", func(s GuardSpec) (pattern.Guard, error) {
			return pattern.HasAny(s.Binding, s.Values...), nil
		})
	case FlagsLeading:
		registry.MustRegister(guards, "has-flag", func(s GuardSpec) (pattern.Guard, error) {
			return pattern.HasLeading(s.Binding, s.Values...), nil
		})
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown flag position %q", flagPosition).
			WithDetail("allowed", []string{FlagsAnywhere, FlagsLeading})
	}

	return &Builder{handlers: handlers, guards: guards}, nil
}

// RegisterGuard adds a custom guard kind
func (b *Builder) RegisterGuard(kind string, factory GuardFactory) error {
	return b.guards.Register(kind, factory)
}

// GuardKinds lists the registered guard kinds
func (b *Builder) GuardKinds() []string {
	return b.guards.List()
}

// Build turns specs into a table, in the order given
func (b *Builder) Build(specs []Spec) (*Table, error) {
	logger := logging.GetLogger("rules.builder")

	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		rule, err := b.buildRule(i, spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	table, err := NewTable(rules...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("rules", table.Len()).
		Int("handlers", b.handlers.Count()).
		Int("guard_kinds", b.guards.Count()).
		Msg("Rule table built")
	return table, nil
}

func (b *Builder) buildRule(i int, spec Spec) (Rule, error) {
	name := spec.Name
	if name == "" {
		name = spec.Handler
	}

	p, err := pattern.Parse(spec.Pattern)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %d (%s)", i, name).
			WithDetail("rule", name)
	}

	if spec.Guard != nil {
		factory, err := b.guards.Get(spec.Guard.Kind)
		if err != nil {
			return Rule{}, errors.Wrapf(err, errors.ErrGuardNotFound, "rule %d (%s) uses unknown guard kind %q", i, name, spec.Guard.Kind).
				WithDetail("rule", name).
				WithDetail("known", b.guards.List())
		}
		if !slices.Contains(p.Names(), spec.Guard.Binding) {
			return Rule{}, errors.Newf(errors.ErrRuleInvalid, "rule %d (%s): guard binding %q is not bound by pattern %q",
				i, name, spec.Guard.Binding, spec.Pattern).
				WithDetail("rule", name)
		}
		guard, err := factory(*spec.Guard)
		if err != nil {
			return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %d (%s): invalid guard", i, name).
				WithDetail("rule", name)
		}
		p = p.When(guard)
	}

	handler, err := b.handlers.Get(spec.Handler)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrHandlerNotFound, "rule %d (%s) uses unknown handler %q", i, name, spec.Handler).
			WithDetail("rule", name).
			WithDetail("known", b.handlers.List())
	}

	return Rule{Name: name, Pattern: p, Handler: handler, HandlerName: spec.Handler}, nil
}
