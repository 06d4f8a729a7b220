package generators

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mmrzaf/seeder/internal/domain"
)

// uuidLength is the length of the canonical hyphenated UUID form.
const uuidLength = 36

func newUUID4(rng *rand.Rand) (string, error) {
	uuidBytes := make([]byte, 16)
	rng.Read(uuidBytes)
	uuidBytes[6] = (uuidBytes[6] & 0x0f) | 0x40
	uuidBytes[8] = (uuidBytes[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(uuidBytes)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

type UUIDOptions struct {
	Nullable `mapstructure:",squash"`
	Version  int `mapstructure:"version"`
}

type UUID struct {
	field
}

func NewUUID(name string, opts UUIDOptions) (*UUID, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	if opts.Version != 0 && opts.Version != 4 {
		return nil, fmt.Errorf("unsupported uuid version %d, only 4 is supported", opts.Version)
	}
	return &UUID{field: f}, nil
}

func (g *UUID) Generate(rng *rand.Rand) (domain.Field, error) {
	u, err := newUUID4(rng)
	if err != nil {
		return domain.Field{}, err
	}
	return g.emit(rng, u)
}

type IDOptions struct {
	Nullable `mapstructure:",squash"`
	Prefix   string `mapstructure:"prefix"`
}

// ID is a UUID whose leading characters are replaced by a fixed prefix, so
// the value keeps the UUID length.
type ID struct {
	field
	prefix string
}

func NewID(name string, opts IDOptions) (*ID, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	if len(opts.Prefix) > uuidLength {
		return nil, fmt.Errorf("prefix %q cannot be longer than the id (%d characters)", opts.Prefix, uuidLength)
	}
	return &ID{field: f, prefix: opts.Prefix}, nil
}

func (g *ID) Generate(rng *rand.Rand) (domain.Field, error) {
	u, err := newUUID4(rng)
	if err != nil {
		return domain.Field{}, err
	}
	return g.emit(rng, g.prefix+u[len(g.prefix):])
}
