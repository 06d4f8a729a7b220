package generators

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"math"
	"math/rand"
	"strings"

	"github.com/mmrzaf/seeder/internal/domain"
)

const defaultSKULength = 8

type SKUOptions struct {
	Nullable `mapstructure:",squash"`
	Prefix   string `mapstructure:"prefix"`
	Length   *int   `mapstructure:"length"`
}

type SKU struct {
	field
	prefix string
	length int
}

func NewSKU(name string, opts SKUOptions) (*SKU, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	length := defaultSKULength
	if opts.Length != nil {
		length = *opts.Length
	}
	if length < 1 {
		return nil, fmt.Errorf("sku length must be at least 1, got %d", length)
	}
	return &SKU{field: f, prefix: opts.Prefix, length: length}, nil
}

func (g *SKU) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, g.prefix+randomString(rng, upperAlnum, g.length))
}

var hashFuncs = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

type HashOptions struct {
	Nullable `mapstructure:",squash"`
	Type     string `mapstructure:"hash_type"`
}

// Hash emits the lowercase hex digest of 32 random bytes.
type Hash struct {
	field
	newHash func() hash.Hash
}

func NewHash(name string, opts HashOptions) (*Hash, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	algo := strings.ToLower(opts.Type)
	if algo == "" {
		algo = "sha256"
	}
	fn, ok := hashFuncs[algo]
	if !ok {
		return nil, fmt.Errorf("unknown hash_type %q", opts.Type)
	}
	return &Hash{field: f, newHash: fn}, nil
}

func (g *Hash) Generate(rng *rand.Rand) (domain.Field, error) {
	buf := make([]byte, 32)
	rng.Read(buf)
	h := g.newHash()
	h.Write(buf)
	return g.emit(rng, hex.EncodeToString(h.Sum(nil)))
}

// ISBN10 emits a 10 character ISBN whose last character is the mod 11 check
// digit, X standing for 10.
type ISBN10 struct {
	field
}

func NewISBN10(name string, opts Nullable) (*ISBN10, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &ISBN10{field: f}, nil
}

func (g *ISBN10) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, isbn10(randomDigits(rng, 9)))
}

func isbn10(body []int) string {
	sum := 0
	var b strings.Builder
	for i, d := range body {
		sum += (10 - i) * d
		b.WriteByte(byte('0' + d))
	}
	check := (11 - sum%11) % 11
	if check == 10 {
		b.WriteByte('X')
	} else {
		b.WriteByte(byte('0' + check))
	}
	return b.String()
}

type ISBN13 struct {
	field
}

func NewISBN13(name string, opts Nullable) (*ISBN13, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &ISBN13{field: f}, nil
}

func (g *ISBN13) Generate(rng *rand.Rand) (domain.Field, error) {
	body := []int{9, 7, 8}
	if rng.Intn(2) == 1 {
		body[2] = 9
	}
	return g.emit(rng, gtin(append(body, randomDigits(rng, 9)...)))
}

type EANOptions struct {
	Nullable `mapstructure:",squash"`
	Length   int `mapstructure:"length"`
}

type EAN struct {
	field
	length int
}

func NewEAN(name string, opts EANOptions) (*EAN, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	length := opts.Length
	if length == 0 {
		length = 13
	}
	if length != 8 && length != 13 {
		return nil, fmt.Errorf("ean length must be 8 or 13, got %d", opts.Length)
	}
	return &EAN{field: f, length: length}, nil
}

func (g *EAN) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, gtin(randomDigits(rng, g.length-1)))
}

// gtin appends the GS1 check digit: weights alternate 3 and 1 starting from
// the rightmost body digit.
func gtin(body []int) string {
	sum := 0
	var b strings.Builder
	for i, d := range body {
		if (len(body)-i)%2 == 1 {
			sum += 3 * d
		} else {
			sum += d
		}
		b.WriteByte(byte('0' + d))
	}
	b.WriteByte(byte('0' + (10-sum%10)%10))
	return b.String()
}

type VersionOptions struct {
	Nullable `mapstructure:",squash"`
	MajorMax *int `mapstructure:"major_max"`
	MinorMax *int `mapstructure:"minor_max"`
	PatchMax *int `mapstructure:"patch_max"`
}

// Version emits major.minor.patch with each part in [0, max].
type Version struct {
	field
	major, minor, patch int
}

func NewVersion(name string, opts VersionOptions) (*Version, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	g := &Version{field: f, major: 9, minor: 20, patch: 50}
	for _, p := range []struct {
		label string
		in    *int
		out   *int
	}{
		{"major_max", opts.MajorMax, &g.major},
		{"minor_max", opts.MinorMax, &g.minor},
		{"patch_max", opts.PatchMax, &g.patch},
	} {
		if p.in == nil {
			continue
		}
		if *p.in < 0 || *p.in >= math.MaxInt32 {
			return nil, fmt.Errorf("%s must be between 0 and %d, got %d", p.label, math.MaxInt32-1, *p.in)
		}
		*p.out = *p.in
	}
	return g, nil
}

func (g *Version) Generate(rng *rand.Rand) (domain.Field, error) {
	v := fmt.Sprintf("%d.%d.%d", rng.Intn(g.major+1), rng.Intn(g.minor+1), rng.Intn(g.patch+1))
	return g.emit(rng, v)
}

const (
	ColorName = "name"
	ColorHex  = "hex"
	ColorRGB  = "rgb"
)

type ColorOptions struct {
	Nullable `mapstructure:",squash"`
	Type     string `mapstructure:"color_type"`
}

type Color struct {
	field
	kind string
}

func NewColor(name string, opts ColorOptions) (*Color, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	kind := strings.ToLower(opts.Type)
	switch kind {
	case "":
		kind = ColorName
	case ColorName, ColorHex, ColorRGB:
	default:
		return nil, fmt.Errorf("unknown color_type %q", opts.Type)
	}
	return &Color{field: f, kind: kind}, nil
}

func (g *Color) Generate(rng *rand.Rand) (domain.Field, error) {
	switch g.kind {
	case ColorHex:
		return g.emit(rng, "#"+randomString(rng, hexDigits, 6))
	case ColorRGB:
		return g.emit(rng, fmt.Sprintf("rgb(%d, %d, %d)", rng.Intn(256), rng.Intn(256), rng.Intn(256)))
	default:
		return g.emit(rng, pickString(rng, colorNames))
	}
}

type FileExtensionOptions struct {
	Nullable `mapstructure:",squash"`
	Category string `mapstructure:"category"`
}

// FileExtension emits an extension without the leading dot, from Category
// when set or from any category otherwise.
type FileExtension struct {
	field
	pool []string
}

func NewFileExtension(name string, opts FileExtensionOptions) (*FileExtension, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	if opts.Category != "" {
		pool, ok := fileExtensions[strings.ToLower(opts.Category)]
		if !ok {
			return nil, fmt.Errorf("unknown file extension category %q", opts.Category)
		}
		return &FileExtension{field: f, pool: pool}, nil
	}
	var pool []string
	for _, c := range []string{"audio", "code", "image", "office", "text", "video"} {
		pool = append(pool, fileExtensions[c]...)
	}
	return &FileExtension{field: f, pool: pool}, nil
}

func (g *FileExtension) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, pickString(rng, g.pool))
}
