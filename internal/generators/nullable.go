package generators

import (
	"fmt"
	"math/rand"

	"github.com/mmrzaf/seeder/internal/domain"
)

type NullOptions struct {
	Nullable `mapstructure:",squash"`
	// Value is the primary value: a literal (nil when unset) or a nested
	// generator.
	Value Source `mapstructure:"-"`
}

// Null emits its resolved Value, or nil with the configured probability.
// With the zero Probability it always emits Value.
type Null struct {
	field
	value Source
}

func NewNull(name string, opts NullOptions) (*Null, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	return &Null{field: f, value: opts.Value}, nil
}

func (g *Null) Generate(rng *rand.Rand) (domain.Field, error) {
	v, err := g.value.Resolve(rng)
	if err != nil {
		return domain.Field{}, fmt.Errorf("null '%s': %w", g.name, err)
	}
	return g.emit(rng, v)
}

type ConstOptions struct {
	Nullable `mapstructure:",squash"`
	Value    interface{} `mapstructure:"value"`
}

// Const always emits the same literal value.
type Const struct {
	field
	value interface{}
}

func NewConst(name string, opts ConstOptions) (*Const, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	return &Const{field: f, value: opts.Value}, nil
}

func (g *Const) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, g.value)
}
