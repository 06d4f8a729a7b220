package generators

import (
	"fmt"
	"math/rand"

	"github.com/mmrzaf/seeder/internal/domain"
)

type Address struct {
	field
}

func NewAddress(name string, opts Nullable) (*Address, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Address{field: f}, nil
}

func (g *Address) Generate(rng *rand.Rand) (domain.Field, error) {
	st := usStates[rng.Intn(len(usStates))]
	v := fmt.Sprintf("%d %s %s, %s, %s %s",
		1+rng.Intn(9999),
		pickString(rng, streetNames),
		pickString(rng, streetSuffixes),
		pickString(rng, cities),
		st.abbr,
		zipCode(rng),
	)
	return g.emit(rng, v)
}

type City struct {
	field
}

func NewCity(name string, opts Nullable) (*City, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &City{field: f}, nil
}

func (g *City) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, pickString(rng, cities))
}

type Zip struct {
	field
}

func NewZip(name string, opts Nullable) (*Zip, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Zip{field: f}, nil
}

func (g *Zip) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, zipCode(rng))
}

func zipCode(rng *rand.Rand) string {
	return fmt.Sprintf("%05d", 501+rng.Intn(99950-501))
}

type StateOptions struct {
	Nullable `mapstructure:",squash"`
	Abbr     bool `mapstructure:"state_abbr"`
}

type State struct {
	field
	abbr bool
}

func NewState(name string, opts StateOptions) (*State, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	return &State{field: f, abbr: opts.Abbr}, nil
}

func (g *State) Generate(rng *rand.Rand) (domain.Field, error) {
	st := usStates[rng.Intn(len(usStates))]
	if g.abbr {
		return g.emit(rng, st.abbr)
	}
	return g.emit(rng, st.name)
}

type CountryOptions struct {
	Nullable `mapstructure:",squash"`
	Code     bool `mapstructure:"code"`
}

type Country struct {
	field
	code bool
}

func NewCountry(name string, opts CountryOptions) (*Country, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	return &Country{field: f, code: opts.Code}, nil
}

func (g *Country) Generate(rng *rand.Rand) (domain.Field, error) {
	c := countries[rng.Intn(len(countries))]
	if g.code {
		return g.emit(rng, c.code)
	}
	return g.emit(rng, c.name)
}

type LatLng struct {
	field
}

func NewLatLng(name string, opts Nullable) (*LatLng, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &LatLng{field: f}, nil
}

func (g *LatLng) Generate(rng *rand.Rand) (domain.Field, error) {
	lat := rng.Float64()*180 - 90
	lng := rng.Float64()*360 - 180
	return g.emit(rng, fmt.Sprintf("%.6f,%.6f", lat, lng))
}
