package exec

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/generators"
	"github.com/mmrzaf/seeder/internal/logging"
	"github.com/mmrzaf/seeder/internal/registry"
)

var ErrNegativeCount = errors.New("count must not be negative")

// Executor runs compiled generators into records. It keeps no state between
// calls, so one Executor may serve many callers as long as each passes its
// own rng.
type Executor struct {
	genRegistry *registry.GeneratorRegistry
	logger      *logging.Logger
}

func NewExecutor(genRegistry *registry.GeneratorRegistry, logger *logging.Logger) *Executor {
	if genRegistry == nil {
		genRegistry = registry.DefaultGeneratorRegistry()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Executor{genRegistry: genRegistry, logger: logger.WithComponent("exec")}
}

// Generate produces count records. Each record holds one field per generator,
// in generator order. A name used by more than one generator keeps the value
// of the last one.
func (e *Executor) Generate(gens []generators.Generator, count int, rng *mrand.Rand) (domain.RecordSet, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeCount, count)
	}
	if rng == nil {
		return nil, errors.New("rng is required")
	}
	e.warnDuplicates(gens)

	start := time.Now()
	records := make(domain.RecordSet, 0, count)
	for i := 0; i < count; i++ {
		rec := domain.NewRecord(len(gens))
		for _, g := range gens {
			f, err := g.Generate(rng)
			if err != nil {
				return nil, fmt.Errorf("record %d, field '%s': %w", i, g.Name(), err)
			}
			rec.Set(f.Name, f.Value)
		}
		records = append(records, rec)
	}

	e.logger.Debugw("generation.completed", map[string]any{
		"records":     count,
		"fields":      len(gens),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return records, nil
}

// GenerateSchema compiles specs with the executor's registry and generates
// count records from them.
func (e *Executor) GenerateSchema(specs []domain.FieldSpec, count int, rng *mrand.Rand) (domain.RecordSet, error) {
	gens, err := e.genRegistry.Compile(specs)
	if err != nil {
		return nil, err
	}
	return e.Generate(gens, count, rng)
}

func (e *Executor) warnDuplicates(gens []generators.Generator) {
	seen := make(map[string]bool, len(gens))
	for _, g := range gens {
		if seen[g.Name()] {
			e.logger.Warnw("duplicate field name, last generator wins", map[string]any{"field": g.Name()})
		}
		seen[g.Name()] = true
	}
}

func NewRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// RandomSeed draws a non-negative seed from the operating system.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]) >> 1)
}
