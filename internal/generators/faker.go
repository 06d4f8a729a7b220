package generators

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/go-faker/faker/v4"
	"github.com/go-faker/faker/v4/pkg/options"
	"github.com/mmrzaf/seeder/internal/domain"
)

// faker keeps one package-level random source; fakerMu serializes every call
// that points it at a generator's rng.
var fakerMu sync.Mutex

// rngSource hands faker the values of a caller's rng.
type rngSource struct {
	rng *rand.Rand
}

func (s rngSource) Int63() int64 { return s.rng.Int63() }

func (s rngSource) Seed(int64) {}

// fake runs a faker function with rng as its random source, so its output
// follows the rng seed.
func fake(rng *rand.Rand, fn func(...options.OptionFunc) string) string {
	fakerMu.Lock()
	defer fakerMu.Unlock()
	faker.SetRandomSource(rngSource{rng: rng})
	return fn()
}

const (
	NamePartFull  = "full"
	NamePartFirst = "first"
	NamePartLast  = "last"
)

type NameOptions struct {
	Nullable `mapstructure:",squash"`
	Part     string `mapstructure:"part"`
}

type Name struct {
	field
	part string
}

func NewName(name string, opts NameOptions) (*Name, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	part := strings.ToLower(opts.Part)
	switch part {
	case "":
		part = NamePartFull
	case NamePartFull, NamePartFirst, NamePartLast:
	default:
		return nil, fmt.Errorf("unknown name part %q", opts.Part)
	}
	return &Name{field: f, part: part}, nil
}

func (g *Name) Generate(rng *rand.Rand) (domain.Field, error) {
	var v string
	switch g.part {
	case NamePartFirst:
		v = fake(rng, faker.FirstName)
	case NamePartLast:
		v = fake(rng, faker.LastName)
	default:
		v = fake(rng, faker.FirstName) + " " + fake(rng, faker.LastName)
	}
	return g.emit(rng, v)
}

type TextOptions struct {
	Nullable `mapstructure:",squash"`
	Value    *string `mapstructure:"value"`
	Words    int     `mapstructure:"words"`
}

// Text emits Value when set, otherwise a random sentence. With Words > 0 the
// sentence has exactly that many words.
type Text struct {
	field
	value *string
	words int
}

func NewText(name string, opts TextOptions) (*Text, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	if opts.Words < 0 {
		return nil, fmt.Errorf("words must not be negative, got %d", opts.Words)
	}
	return &Text{field: f, value: opts.Value, words: opts.Words}, nil
}

func (g *Text) Generate(rng *rand.Rand) (domain.Field, error) {
	if g.value != nil {
		return g.emit(rng, *g.value)
	}
	if g.words == 0 {
		return g.emit(rng, fake(rng, faker.Sentence))
	}
	words := make([]string, g.words)
	for i := range words {
		words[i] = fake(rng, faker.Word)
	}
	s := strings.Join(words, " ")
	return g.emit(rng, strings.ToUpper(s[:1])+s[1:]+".")
}

type Sentence struct {
	field
}

func NewSentence(name string, opts Nullable) (*Sentence, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Sentence{field: f}, nil
}

func (g *Sentence) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, fake(rng, faker.Sentence))
}

type Paragraph struct {
	field
}

func NewParagraph(name string, opts Nullable) (*Paragraph, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Paragraph{field: f}, nil
}

func (g *Paragraph) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, fake(rng, faker.Paragraph))
}
