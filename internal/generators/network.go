package generators

import (
	"fmt"
	"math/rand"
	"net/netip"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/seeder/internal/domain"
)

const (
	IPv4 = "ipv4"
	IPv6 = "ipv6"
)

type IPAddressOptions struct {
	Nullable `mapstructure:",squash"`
	Version  string `mapstructure:"version"`
}

type IPAddress struct {
	field
	v6 bool
}

func NewIPAddress(name string, opts IPAddressOptions) (*IPAddress, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(opts.Version) {
	case "", IPv4, "4":
		return &IPAddress{field: f}, nil
	case IPv6, "6":
		return &IPAddress{field: f, v6: true}, nil
	default:
		return nil, fmt.Errorf("unknown ip version %q", opts.Version)
	}
}

func (g *IPAddress) Generate(rng *rand.Rand) (domain.Field, error) {
	if g.v6 {
		var b [16]byte
		rng.Read(b[:])
		return g.emit(rng, netip.AddrFrom16(b).String())
	}
	var b [4]byte
	rng.Read(b[:])
	return g.emit(rng, netip.AddrFrom4(b).String())
}

// MACAddress emits a locally administered unicast address.
type MACAddress struct {
	field
}

func NewMACAddress(name string, opts Nullable) (*MACAddress, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &MACAddress{field: f}, nil
}

func (g *MACAddress) Generate(rng *rand.Rand) (domain.Field, error) {
	b := make([]byte, 6)
	rng.Read(b)
	b[0] = b[0]&0xfe | 0x02
	parts := make([]string, len(b))
	for i, o := range b {
		parts[i] = fmt.Sprintf("%02x", o)
	}
	return g.emit(rng, strings.Join(parts, ":"))
}

type DomainName struct {
	field
}

func NewDomainName(name string, opts Nullable) (*DomainName, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &DomainName{field: f}, nil
}

func (g *DomainName) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, strings.ToLower(fake(rng, faker.DomainName)))
}

// DomainWord emits the first label of a domain name.
type DomainWord struct {
	field
}

func NewDomainWord(name string, opts Nullable) (*DomainWord, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &DomainWord{field: f}, nil
}

func (g *DomainWord) Generate(rng *rand.Rand) (domain.Field, error) {
	word, _, _ := strings.Cut(strings.ToLower(fake(rng, faker.DomainName)), ".")
	return g.emit(rng, word)
}

type TLD struct {
	field
}

func NewTLD(name string, opts Nullable) (*TLD, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &TLD{field: f}, nil
}

func (g *TLD) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, pickString(rng, tlds))
}

type Website struct {
	field
}

func NewWebsite(name string, opts Nullable) (*Website, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Website{field: f}, nil
}

func (g *Website) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, fake(rng, faker.URL))
}

type UserAgent struct {
	field
}

func NewUserAgent(name string, opts Nullable) (*UserAgent, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &UserAgent{field: f}, nil
}

func (g *UserAgent) Generate(rng *rand.Rand) (domain.Field, error) {
	platform := pickString(rng, userAgentPlatforms)
	major := 100 + rng.Intn(30)
	build := 1000 + rng.Intn(5000)
	patch := rng.Intn(200)
	var v string
	switch rng.Intn(len(browserTemplates)) {
	case 0:
		v = fmt.Sprintf(browserTemplates[0], platform, major, build, patch)
	case 1:
		v = fmt.Sprintf(browserTemplates[1], platform, major, major)
	case 2:
		v = fmt.Sprintf(browserTemplates[2], platform, 14+rng.Intn(4), rng.Intn(6))
	default:
		v = fmt.Sprintf(browserTemplates[3], platform, major, build, patch, major, build, patch)
	}
	return g.emit(rng, v)
}
