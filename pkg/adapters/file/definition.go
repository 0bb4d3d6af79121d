package file

import (
	"fmt"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/dsl"
)

// Definition is the on-disk description of an automaton.
// Start is required: definitions are always validated, and a start-less
// automaton (which only accepts the empty input) can only be built with dfa.New.
// It uses "mapstructure" tags so generic maps decode with the same keys as YAML and JSON.
type Definition struct {
	Name        string       `yaml:"name" json:"name" mapstructure:"name"`
	Alphabet    []string     `yaml:"alphabet" json:"alphabet" mapstructure:"alphabet"`
	States      []string     `yaml:"states" json:"states" mapstructure:"states"`
	Start       string       `yaml:"start" json:"start" mapstructure:"start"`
	Accept      []string     `yaml:"accept" json:"accept" mapstructure:"accept"`
	Transitions []Transition `yaml:"transitions" json:"transitions" mapstructure:"transitions"`
}

// Transition is one row entry: From --Symbol--> To.
type Transition struct {
	From   string `yaml:"from" json:"from" mapstructure:"from"`
	Symbol string `yaml:"symbol" json:"symbol" mapstructure:"symbol"`
	To     string `yaml:"to" json:"to" mapstructure:"to"`
}

// Build assembles a validated Automaton from the definition.
// The definition name is applied with dfa.WithName unless opts override it.
//
// It returns the dsl.Builder as well so callers can fetch States by label.
func (d *Definition) Build(opts ...dfa.Option) (*dfa.Automaton, *dsl.Builder, error) {
	declared := make(map[string]bool, len(d.States))
	b := dsl.New().Alphabet(d.Alphabet...)
	for _, label := range d.States {
		if declared[label] {
			return nil, nil, fmt.Errorf("state %q declared twice", label)
		}
		declared[label] = true
		b.State(label)
	}

	ref := func(field, label string) error {
		if !declared[label] {
			return fmt.Errorf("%s refers to unknown state %q", field, label)
		}
		return nil
	}

	if d.Start != "" {
		if err := ref("start", d.Start); err != nil {
			return nil, nil, err
		}
		b.State(d.Start).Start()
	}
	for _, label := range d.Accept {
		if err := ref("accept", label); err != nil {
			return nil, nil, err
		}
		b.State(label).Accept()
	}
	for i, t := range d.Transitions {
		field := fmt.Sprintf("transitions[%d]", i)
		if err := ref(field+".from", t.From); err != nil {
			return nil, nil, err
		}
		if err := ref(field+".to", t.To); err != nil {
			return nil, nil, err
		}
		b.State(t.From).On(t.Symbol, t.To)
	}

	if d.Name != "" {
		opts = append([]dfa.Option{dfa.WithName(d.Name)}, opts...)
	}
	a, err := b.Build(opts...)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
