package generators

import (
	"math/rand"

	"github.com/mmrzaf/seeder/internal/domain"
)

type JobTitle struct {
	field
}

func NewJobTitle(name string, opts Nullable) (*JobTitle, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &JobTitle{field: f}, nil
}

func (g *JobTitle) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, pickString(rng, jobLevels)+" "+pickString(rng, jobRoles))
}

type Department struct {
	field
}

func NewDepartment(name string, opts Nullable) (*Department, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Department{field: f}, nil
}

func (g *Department) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, pickString(rng, departments))
}
