package generators

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/mmrzaf/seeder/internal/domain"
	"golang.org/x/text/language"
)

var ibanCountries = func() []string {
	out := make([]string, 0, len(ibanFormats))
	for c := range ibanFormats {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}()

type IBANOptions struct {
	Nullable `mapstructure:",squash"`
	Country  string `mapstructure:"country"`
}

// IBAN emits an IBAN with valid mod 97 check digits. Without a country one
// of the supported countries is picked per call.
type IBAN struct {
	field
	country string
}

func NewIBAN(name string, opts IBANOptions) (*IBAN, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	country := strings.ToUpper(opts.Country)
	if country != "" {
		if _, ok := ibanFormats[country]; !ok {
			return nil, fmt.Errorf("unsupported iban country %q", opts.Country)
		}
	}
	return &IBAN{field: f, country: country}, nil
}

func (g *IBAN) Generate(rng *rand.Rand) (domain.Field, error) {
	country := g.country
	if country == "" {
		country = pickString(rng, ibanCountries)
	}
	var bban strings.Builder
	for _, c := range ibanFormats[country] {
		if c == 'a' {
			bban.WriteByte(upperLetters[rng.Intn(len(upperLetters))])
		} else {
			bban.WriteByte(digits[rng.Intn(10)])
		}
	}
	check := 98 - mod97(bban.String()+country+"00")
	return g.emit(rng, fmt.Sprintf("%s%02d%s", country, check, bban.String()))
}

// mod97 computes the ISO 7064 remainder of s with letters expanded to 10..35.
func mod97(s string) int {
	r := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			r = (r*100 + int(c-'A') + 10) % 97
		}
	}
	return r
}

type BICOptions struct {
	Nullable `mapstructure:",squash"`
	Country  string `mapstructure:"country"`
	Branch   bool   `mapstructure:"branch"`
}

// BIC emits an 8 character code, or 11 with a branch suffix.
type BIC struct {
	field
	country string
	branch  bool
}

func NewBIC(name string, opts BICOptions) (*BIC, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	country := strings.ToUpper(opts.Country)
	if country != "" {
		region, err := language.ParseRegion(country)
		if err != nil || !region.IsCountry() || len(country) != 2 {
			return nil, fmt.Errorf("invalid bic country %q", opts.Country)
		}
	}
	return &BIC{field: f, country: country, branch: opts.Branch}, nil
}

func (g *BIC) Generate(rng *rand.Rand) (domain.Field, error) {
	country := g.country
	if country == "" {
		country = countries[rng.Intn(len(countries))].code
	}
	v := randomString(rng, upperLetters, 4) + country + randomString(rng, upperAlnum, 2)
	if g.branch {
		v += randomString(rng, upperAlnum, 3)
	}
	return g.emit(rng, v)
}

type CreditCardOptions struct {
	Nullable  `mapstructure:",squash"`
	Type      string `mapstructure:"card_type"`
	Formatted bool   `mapstructure:"formatted"`
}

// CreditCard emits a Luhn valid number with a brand prefix. Formatted numbers
// are split into the brand's digit groups with spaces.
type CreditCard struct {
	field
	brand     string
	formatted bool
}

func NewCreditCard(name string, opts CreditCardOptions) (*CreditCard, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	brand := strings.ToLower(opts.Type)
	if brand != "" {
		if _, ok := cardBrands[brand]; !ok {
			return nil, fmt.Errorf("unknown card_type %q", opts.Type)
		}
	}
	return &CreditCard{field: f, brand: brand, formatted: opts.Formatted}, nil
}

func (g *CreditCard) Generate(rng *rand.Rand) (domain.Field, error) {
	name := g.brand
	if name == "" {
		name = pickString(rng, cardBrandNames)
	}
	brand := cardBrands[name]
	number := luhn(pickString(rng, brand.prefixes), brand.length, rng)
	if !g.formatted {
		return g.emit(rng, number)
	}
	parts := make([]string, 0, len(brand.groups))
	pos := 0
	for _, n := range brand.groups {
		parts = append(parts, number[pos:pos+n])
		pos += n
	}
	return g.emit(rng, strings.Join(parts, " "))
}

// luhn pads prefix with random digits to length-1 and appends the check digit.
func luhn(prefix string, length int, rng *rand.Rand) string {
	b := []byte(prefix)
	for len(b) < length-1 {
		b = append(b, digits[rng.Intn(10)])
	}
	sum := 0
	for i := len(b) - 1; i >= 0; i-- {
		d := int(b[i] - '0')
		if (len(b)-1-i)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return string(append(b, byte('0'+(10-sum%10)%10)))
}
