package rules

import (
	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/errors"
)

// Pipeline applies rules in registration order. The first rejection wins.
// The rule list is fixed when the pipeline is built.
type Pipeline struct {
	rules []Rule
}

// NewPipeline creates a pipeline applying rules in the given order.
func NewPipeline(rules ...Rule) *Pipeline {
	p := &Pipeline{rules: make([]Rule, len(rules))}
	copy(p.rules, rules)
	return p
}

// DefaultRules returns the built-in rules in their standard order.
func DefaultRules() []Rule {
	return []Rule{
		TurnOrder{},
		MoveMade{},
		GameEnded{},
		NoMoveAfterCheckmate{},
		NoMoveAfterStalemate{},
		Board{},
	}
}

// DefaultPipeline creates a pipeline of DefaultRules.
func DefaultPipeline() *Pipeline {
	return NewPipeline(DefaultRules()...)
}

// Validate runs every rule against game and move, returning the first
// rejection or nil if all rules accept.
func (p *Pipeline) Validate(game chess.Game, move string) error {
	for _, r := range p.rules {
		if err := r.Validate(game, move); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll runs every rule and collects all rejections, in order.
func (p *Pipeline) ValidateAll(game chess.Game, move string) []error {
	var errs []error
	for _, r := range p.rules {
		if err := r.Validate(game, move); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Rules returns a copy of the pipeline's rules.
func (p *Pipeline) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}

// Names returns the names of the pipeline's rules in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.Name()
	}
	return names
}

// Len returns the number of rules.
func (p *Pipeline) Len() int {
	return len(p.rules)
}

// Lookup returns the built-in rule called name.
func Lookup(name string) (Rule, error) {
	for _, r := range DefaultRules() {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrUnknownRule, "%q", name)
}

// FromNames builds a pipeline from rule names, keeping their order.
// An empty list gives the default pipeline.
func FromNames(names []string) (*Pipeline, error) {
	if len(names) == 0 {
		return DefaultPipeline(), nil
	}
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		r, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return NewPipeline(rules...), nil
}
