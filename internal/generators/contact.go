package generators

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/seeder/internal/domain"
	"golang.org/x/text/language"
)

const (
	EmailRandom   = "random"
	EmailSafe     = "safe"
	EmailFree     = "free"
	EmailCompany  = "company"
	EmailSpecific = "specific"
)

type EmailOptions struct {
	Nullable `mapstructure:",squash"`
	Type     string `mapstructure:"email_type"`
	Domain   string `mapstructure:"domain"`
}

type Email struct {
	field
	mode   string
	domain string
}

func NewEmail(name string, opts EmailOptions) (*Email, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	mode := strings.ToLower(opts.Type)
	switch mode {
	case "":
		mode = EmailRandom
	case EmailRandom, EmailSafe, EmailFree, EmailCompany:
	case EmailSpecific:
		if opts.Domain == "" {
			return nil, fmt.Errorf("email_type %q requires a domain", EmailSpecific)
		}
		if !strings.Contains(opts.Domain, ".") || strings.HasPrefix(opts.Domain, ".") || strings.HasSuffix(opts.Domain, ".") {
			return nil, fmt.Errorf("invalid email domain %q", opts.Domain)
		}
	default:
		return nil, fmt.Errorf("unknown email_type %q", opts.Type)
	}
	return &Email{field: f, mode: mode, domain: strings.ToLower(opts.Domain)}, nil
}

func (g *Email) Generate(rng *rand.Rand) (domain.Field, error) {
	var v string
	switch g.mode {
	case EmailSafe:
		v = localPart(rng) + "@" + pickString(rng, safeEmailDomains)
	case EmailFree:
		v = localPart(rng) + "@" + pickString(rng, freeEmailDomains)
	case EmailCompany:
		v = localPart(rng) + "@" + strings.ToLower(fake(rng, faker.DomainName))
	case EmailSpecific:
		v = localPart(rng) + "@" + g.domain
	default:
		v = fake(rng, faker.Email)
	}
	return g.emit(rng, v)
}

func localPart(rng *rand.Rand) string {
	first := strings.ToLower(fake(rng, faker.FirstName))
	last := strings.ToLower(fake(rng, faker.LastName))
	switch rng.Intn(3) {
	case 0:
		return first + "." + last
	case 1:
		return first[:1] + last
	default:
		return fmt.Sprintf("%s%s%d", first, last[:1], rng.Intn(100))
	}
}

type PhoneOptions struct {
	Nullable `mapstructure:",squash"`
	Locale   string `mapstructure:"locale"`
}

// Phone emits a number in the layout of the locale's region. Without a locale
// it falls back to faker's format.
type Phone struct {
	field
	format string
}

func NewPhone(name string, opts PhoneOptions) (*Phone, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	if opts.Locale == "" {
		return &Phone{field: f}, nil
	}
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid phone locale %q: %w", opts.Locale, err)
	}
	region, conf := tag.Region()
	if conf == language.No {
		return nil, fmt.Errorf("phone locale %q has no region", opts.Locale)
	}
	format, ok := phoneFormats[region.String()]
	if !ok {
		return nil, fmt.Errorf("unsupported phone locale %q", opts.Locale)
	}
	return &Phone{field: f, format: format}, nil
}

func (g *Phone) Generate(rng *rand.Rand) (domain.Field, error) {
	if g.format == "" {
		return g.emit(rng, fake(rng, faker.Phonenumber))
	}
	return g.emit(rng, fillPattern(rng, g.format))
}

// fillPattern replaces '#' with any digit and '%' with a non-zero digit.
func fillPattern(rng *rand.Rand, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, c := range pattern {
		switch c {
		case '#':
			b.WriteByte(byte('0' + rng.Intn(10)))
		case '%':
			b.WriteByte(byte('1' + rng.Intn(9)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

var socialPlatforms = []string{"twitter", "instagram", "facebook", "tiktok", "linkedin"}

type SocialMediaOptions struct {
	Nullable `mapstructure:",squash"`
	Platform string `mapstructure:"platform"`
}

// SocialMedia emits an @handle for handle-based platforms and a profile path
// for facebook and linkedin. Without a platform one is picked per call.
type SocialMedia struct {
	field
	platform string
}

func NewSocialMedia(name string, opts SocialMediaOptions) (*SocialMedia, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	platform := strings.ToLower(opts.Platform)
	if platform != "" && !contains(socialPlatforms, platform) {
		return nil, fmt.Errorf("unknown social media platform %q", opts.Platform)
	}
	return &SocialMedia{field: f, platform: platform}, nil
}

func (g *SocialMedia) Generate(rng *rand.Rand) (domain.Field, error) {
	platform := g.platform
	if platform == "" {
		platform = pickString(rng, socialPlatforms)
	}
	user := strings.ToLower(fake(rng, faker.FirstName)) + fmt.Sprintf("_%d", rng.Intn(10000))
	var v string
	switch platform {
	case "facebook":
		v = "facebook.com/" + user
	case "linkedin":
		v = "linkedin.com/in/" + user
	default:
		v = "@" + user
	}
	return g.emit(rng, v)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
