package generators

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mmrzaf/seeder/internal/domain"
)

// Generator produces one named value per call. Configuration is fixed at
// construction; the only per-call input is the random source.
type Generator interface {
	Name() string
	Generate(rng *rand.Rand) (domain.Field, error)
}

var (
	ErrInvalidProbability = errors.New("probability must be between 0 and 100")
	ErrNameRequired       = errors.New("field name is required")
)

// Nullable carries the null policy shared by every variant: Probability is
// the percent chance, in [0,100], that the field is emitted as nil.
type Nullable struct {
	Probability float64 `mapstructure:"probability"`
}

func (n Nullable) validate() error {
	if n.Probability < 0 || n.Probability > 100 {
		return fmt.Errorf("%w, got %v", ErrInvalidProbability, n.Probability)
	}
	return nil
}

// IsNull draws one sample from rng and reports whether a field with the
// given null probability should be emitted as nil.
func IsNull(rng *rand.Rand, probability float64) bool {
	return rng.Float64() < probability/100
}

// field holds what every variant has in common.
type field struct {
	name        string
	probability float64
}

func newField(name string, n Nullable) (field, error) {
	if name == "" {
		return field{}, ErrNameRequired
	}
	if err := n.validate(); err != nil {
		return field{}, err
	}
	return field{name: name, probability: n.Probability}, nil
}

func (f field) Name() string {
	return f.name
}

// emit applies the null policy to an already produced primary value.
func (f field) emit(rng *rand.Rand, value interface{}) (domain.Field, error) {
	if IsNull(rng, f.probability) {
		value = nil
	}
	return domain.Field{Name: f.name, Value: value}, nil
}

// Source is either a literal value or a nested generator whose value is
// produced on every Resolve.
type Source struct {
	literal interface{}
	gen     Generator
}

func Literal(v interface{}) Source {
	return Source{literal: v}
}

func From(g Generator) Source {
	return Source{gen: g}
}

// Resolve returns the literal, or invokes the nested generator and keeps
// only its value.
func (s Source) Resolve(rng *rand.Rand) (interface{}, error) {
	if s.gen == nil {
		return s.literal, nil
	}
	f, err := s.gen.Generate(rng)
	if err != nil {
		return nil, fmt.Errorf("nested generator '%s': %w", s.gen.Name(), err)
	}
	return f.Value, nil
}

const (
	digits       = "0123456789"
	upperAlnum   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	hexDigits    = "0123456789abcdef"
)

func randomString(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func randomDigits(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(10)
	}
	return out
}

func pickString(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}
