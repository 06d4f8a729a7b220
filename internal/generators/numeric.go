package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mmrzaf/seeder/internal/domain"
)

const (
	defaultIntMin int64 = 1
	defaultIntMax int64 = 99999999

	defaultCurrencyMin    = 0.0
	defaultCurrencyMax    = 1000.0
	defaultCurrencySymbol = "$"
	maxCurrencyAmount     = 1e15
)

type IntegerOptions struct {
	Nullable `mapstructure:",squash"`
	Min      *int64 `mapstructure:"min"`
	Max      *int64 `mapstructure:"max"`
	Value    *int64 `mapstructure:"value"`
}

// Integer emits Value when set, otherwise a uniform draw from [Min, Max].
type Integer struct {
	field
	min, max int64
	value    *int64
}

func NewInteger(name string, opts IntegerOptions) (*Integer, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	min, max := defaultIntMin, defaultIntMax
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	if max < min {
		return nil, fmt.Errorf("max (%d) must not be less than min (%d)", max, min)
	}
	if uint64(max)-uint64(min) >= math.MaxInt64 {
		return nil, fmt.Errorf("range [%d, %d] is too wide", min, max)
	}
	return &Integer{field: f, min: min, max: max, value: opts.Value}, nil
}

func (g *Integer) Generate(rng *rand.Rand) (domain.Field, error) {
	if g.value != nil {
		return g.emit(rng, *g.value)
	}
	return g.emit(rng, g.min+rng.Int63n(g.max-g.min+1))
}

type NumberOptions struct {
	Nullable  `mapstructure:",squash"`
	Min       *float64 `mapstructure:"min"`
	Max       *float64 `mapstructure:"max"`
	Precision *int     `mapstructure:"precision"`
	Value     *float64 `mapstructure:"value"`
}

// Number emits a float64 from [Min, Max], rounded to Precision decimals when
// Precision is set.
type Number struct {
	field
	min, max  float64
	precision int
	value     *float64
}

func NewNumber(name string, opts NumberOptions) (*Number, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	min, max := float64(defaultIntMin), float64(defaultIntMax)
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	if !finite(min) || !finite(max) {
		return nil, fmt.Errorf("min and max must be finite, got %v and %v", min, max)
	}
	if max < min {
		return nil, fmt.Errorf("max (%v) must not be less than min (%v)", max, min)
	}
	if math.IsInf(max-min, 0) {
		return nil, fmt.Errorf("range [%v, %v] is too wide", min, max)
	}
	precision := -1
	if opts.Precision != nil {
		if *opts.Precision < 0 || *opts.Precision > 15 {
			return nil, fmt.Errorf("precision must be between 0 and 15, got %d", *opts.Precision)
		}
		precision = *opts.Precision
	}
	return &Number{field: f, min: min, max: max, precision: precision, value: opts.Value}, nil
}

func (g *Number) Generate(rng *rand.Rand) (domain.Field, error) {
	if g.value != nil {
		return g.emit(rng, *g.value)
	}
	v := g.min + rng.Float64()*(g.max-g.min)
	if g.precision >= 0 {
		v = clamp(round(v, g.precision), g.min, g.max)
	}
	return g.emit(rng, v)
}

func round(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type CurrencyOptions struct {
	Nullable `mapstructure:",squash"`
	Symbol   *string  `mapstructure:"symbol"`
	Min      *float64 `mapstructure:"min_value"`
	Max      *float64 `mapstructure:"max_value"`
}

// Currency emits symbol + amount with exactly two decimals. The amount is
// drawn in whole cents so it never leaves [Min, Max].
type Currency struct {
	field
	symbol             string
	minCents, maxCents int64
}

func NewCurrency(name string, opts CurrencyOptions) (*Currency, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	symbol := defaultCurrencySymbol
	if opts.Symbol != nil {
		symbol = *opts.Symbol
	}
	min, max := defaultCurrencyMin, defaultCurrencyMax
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	if !finite(min) || !finite(max) || math.Abs(min) > maxCurrencyAmount || math.Abs(max) > maxCurrencyAmount {
		return nil, fmt.Errorf("min_value and max_value must be finite and within ±%v", maxCurrencyAmount)
	}
	if max < min {
		return nil, fmt.Errorf("max_value (%v) must not be less than min_value (%v)", max, min)
	}
	// Bounds like 1.15 are not exact in binary; the tolerance keeps them reachable.
	minCents := int64(math.Ceil(min*100 - 1e-9))
	maxCents := int64(math.Floor(max*100 + 1e-9))
	if maxCents < minCents {
		return nil, fmt.Errorf("no whole cent amount between %v and %v", min, max)
	}
	return &Currency{field: f, symbol: symbol, minCents: minCents, maxCents: maxCents}, nil
}

func (g *Currency) Generate(rng *rand.Rand) (domain.Field, error) {
	cents := g.minCents + rng.Int63n(g.maxCents-g.minCents+1)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return g.emit(rng, fmt.Sprintf("%s%s%d.%02d", sign, g.symbol, cents/100, cents%100))
}

type BoolOptions struct {
	Nullable `mapstructure:",squash"`
	Value    *bool `mapstructure:"value"`
}

type Bool struct {
	field
	value *bool
}

func NewBool(name string, opts BoolOptions) (*Bool, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	return &Bool{field: f, value: opts.Value}, nil
}

func (g *Bool) Generate(rng *rand.Rand) (domain.Field, error) {
	if g.value != nil {
		return g.emit(rng, *g.value)
	}
	return g.emit(rng, rng.Intn(2) == 1)
}

type NormalOptions struct {
	Nullable `mapstructure:",squash"`
	Mean     float64  `mapstructure:"mean"`
	Std      *float64 `mapstructure:"std"`
}

// Normal emits a float64 drawn from N(Mean, Std²). Std defaults to 1.
type Normal struct {
	field
	mean, std float64
}

func NewNormal(name string, opts NormalOptions) (*Normal, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	std := 1.0
	if opts.Std != nil {
		std = *opts.Std
	}
	if std < 0 {
		return nil, fmt.Errorf("std must not be negative, got %v", std)
	}
	return &Normal{field: f, mean: opts.Mean, std: std}, nil
}

func (g *Normal) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, rng.NormFloat64()*g.std+g.mean)
}
