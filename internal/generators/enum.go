package generators

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mmrzaf/seeder/internal/domain"
)

var ErrNoChoices = errors.New("enum requires at least one choice")

type EnumOptions struct {
	Nullable `mapstructure:",squash"`
	Choices  []Source  `mapstructure:"-"`
	Weights  []float64 `mapstructure:"weights"`
}

// Enum picks one of its choices per call. A choice backed by a generator is
// only invoked when it is picked.
type Enum struct {
	field
	choices []Source
	// cumulative weights, nil for a uniform pick
	cum   []float64
	total float64
}

func NewEnum(name string, opts EnumOptions) (*Enum, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	if len(opts.Choices) == 0 {
		return nil, ErrNoChoices
	}
	g := &Enum{field: f, choices: append([]Source(nil), opts.Choices...)}
	if opts.Weights == nil {
		return g, nil
	}
	if len(opts.Weights) != len(opts.Choices) {
		return nil, fmt.Errorf("'weights' and 'choices' must have the same length (%d != %d)", len(opts.Weights), len(opts.Choices))
	}
	g.cum = make([]float64, len(opts.Weights))
	for i, w := range opts.Weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight: %v", w)
		}
		g.total += w
		g.cum[i] = g.total
	}
	if g.total == 0 {
		return nil, errors.New("total weight is zero")
	}
	return g, nil
}

func (g *Enum) Generate(rng *rand.Rand) (domain.Field, error) {
	v, err := g.choices[g.pick(rng)].Resolve(rng)
	if err != nil {
		return domain.Field{}, fmt.Errorf("enum '%s': %w", g.name, err)
	}
	return g.emit(rng, v)
}

func (g *Enum) pick(rng *rand.Rand) int {
	if g.cum == nil {
		return rng.Intn(len(g.choices))
	}
	r := rng.Float64() * g.total
	for i, c := range g.cum {
		if r < c {
			return i
		}
	}
	return len(g.cum) - 1
}
