package generators

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"
)

func generateString(t *testing.T, g Generator) string {
	t.Helper()
	f, err := g.Generate(newRng())
	if err != nil {
		t.Fatalf("%s: %v", g.Name(), err)
	}
	s, ok := f.Value.(string)
	if !ok {
		t.Fatalf("%s: expected string, got %T", g.Name(), f.Value)
	}
	return s
}

func TestID(t *testing.T) {
	g, err := NewID("id", IDOptions{Prefix: "usr_"})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 20; i++ {
		f, _ := g.Generate(rng)
		s := f.Value.(string)
		if len(s) != uuidLength || !strings.HasPrefix(s, "usr_") {
			t.Fatalf("unexpected id %q", s)
		}
	}

	if _, err := NewID("id", IDOptions{Prefix: strings.Repeat("x", 37)}); err == nil {
		t.Fatalf("expected error for prefix longer than the id")
	}
	if _, err := NewID("id", IDOptions{Prefix: strings.Repeat("x", 36)}); err != nil {
		t.Fatalf("prefix of full id length should be accepted: %v", err)
	}
}

func TestUUID(t *testing.T) {
	g, err := NewUUID("id", UUIDOptions{})
	if err != nil {
		t.Fatal(err)
	}
	u, err := uuid.Parse(generateString(t, g))
	if err != nil {
		t.Fatal(err)
	}
	if u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		t.Fatalf("expected RFC4122 v4 uuid, got version %d variant %v", u.Version(), u.Variant())
	}
	if _, err := NewUUID("id", UUIDOptions{Version: 1}); err == nil {
		t.Fatalf("expected error for uuid version 1")
	}
}

func TestEmail(t *testing.T) {
	if _, err := NewEmail("e", EmailOptions{Type: EmailSpecific}); err == nil {
		t.Fatalf("expected error for specific mode without domain")
	}
	if _, err := NewEmail("e", EmailOptions{Type: "corporate"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if _, err := NewEmail("e", EmailOptions{Type: EmailSpecific, Domain: "localhost"}); err == nil {
		t.Fatalf("expected error for domain without a dot")
	}

	g, err := NewEmail("e", EmailOptions{Type: EmailSpecific, Domain: "Acme.io"})
	if err != nil {
		t.Fatal(err)
	}
	if s := generateString(t, g); !strings.HasSuffix(s, "@acme.io") {
		t.Fatalf("unexpected email %q", s)
	}

	for _, mode := range []string{"", EmailRandom, EmailSafe, EmailFree, EmailCompany} {
		g, err := NewEmail("e", EmailOptions{Type: mode})
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		s := generateString(t, g)
		local, dom, ok := strings.Cut(s, "@")
		if !ok || local == "" || !strings.Contains(dom, ".") {
			t.Fatalf("mode %q: malformed email %q", mode, s)
		}
	}
}

func TestPhone(t *testing.T) {
	g, err := NewPhone("p", PhoneOptions{Locale: "en_US"})
	if err != nil {
		t.Fatal(err)
	}
	re := regexp.MustCompile(`^\+1 \([1-9]\d{2}\) [1-9]\d{2}-\d{4}$`)
	if s := generateString(t, g); !re.MatchString(s) {
		t.Fatalf("unexpected US phone %q", s)
	}

	if _, err := NewPhone("p", PhoneOptions{Locale: "de-DE"}); err != nil {
		t.Fatalf("de-DE: %v", err)
	}
	for _, bad := range []string{"not a locale", "en_ZZ", "xx-QQ"} {
		if _, err := NewPhone("p", PhoneOptions{Locale: bad}); err == nil {
			t.Fatalf("expected error for locale %q", bad)
		}
	}
	if _, err := NewPhone("p", PhoneOptions{}); err != nil {
		t.Fatalf("empty locale: %v", err)
	}
}

func TestEnum(t *testing.T) {
	if _, err := NewEnum("e", EnumOptions{}); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
	if _, err := NewEnum("e", EnumOptions{Choices: []Source{Literal(1)}, Weights: []float64{1, 2}}); err == nil {
		t.Fatalf("expected error for weights length mismatch")
	}
	if _, err := NewEnum("e", EnumOptions{Choices: []Source{Literal(1)}, Weights: []float64{-1}}); err == nil {
		t.Fatalf("expected error for negative weight")
	}

	g, err := NewEnum("e", EnumOptions{
		Choices: []Source{Literal("a"), Literal("b")},
		Weights: []float64{0, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 50; i++ {
		f, _ := g.Generate(rng)
		if f.Value != "b" {
			t.Fatalf("zero weight choice was picked: %v", f.Value)
		}
	}

	inner, _ := NewBool("inner", BoolOptions{Value: ptr(true)})
	g, err = NewEnum("e", EnumOptions{Choices: []Source{From(inner)}})
	if err != nil {
		t.Fatal(err)
	}
	f, err := g.Generate(rng)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "e" || f.Value != true {
		t.Fatalf("nested choice not resolved: %#v", f)
	}
}

func TestIntegerInclusiveRange(t *testing.T) {
	if _, err := NewInteger("n", IntegerOptions{Min: ptr(int64(10)), Max: ptr(int64(1))}); err == nil {
		t.Fatalf("expected error for min > max")
	}
	g, err := NewInteger("n", IntegerOptions{Min: ptr(int64(1)), Max: ptr(int64(3))})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[int64]bool{}
	rng := newRng()
	for i := 0; i < 500; i++ {
		f, _ := g.Generate(rng)
		v := f.Value.(int64)
		if v < 1 || v > 3 {
			t.Fatalf("value %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected both bounds to be reachable, saw %v", seen)
	}
}

func TestNumberPrecision(t *testing.T) {
	g, err := NewNumber("x", NumberOptions{Min: ptr(0.0), Max: ptr(1.0), Precision: ptr(2)})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 100; i++ {
		f, _ := g.Generate(rng)
		v := f.Value.(float64)
		if v < 0 || v > 1 {
			t.Fatalf("value %v out of range", v)
		}
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if _, frac, ok := strings.Cut(s, "."); ok && len(frac) > 2 {
			t.Fatalf("value %v has more than 2 decimals", v)
		}
	}
}

func TestCurrency(t *testing.T) {
	if _, err := NewCurrency("c", CurrencyOptions{Min: ptr(20.0), Max: ptr(10.0)}); err == nil {
		t.Fatalf("expected error for min_value > max_value")
	}
	g, err := NewCurrency("c", CurrencyOptions{Symbol: ptr("€"), Min: ptr(10.0), Max: ptr(20.0)})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 200; i++ {
		f, _ := g.Generate(rng)
		s := f.Value.(string)
		if !strings.HasPrefix(s, "€") {
			t.Fatalf("missing symbol in %q", s)
		}
		amount := strings.TrimPrefix(s, "€")
		if _, frac, _ := strings.Cut(amount, "."); len(frac) != 2 {
			t.Fatalf("expected two decimals in %q", s)
		}
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			t.Fatal(err)
		}
		if v < 10 || v > 20 {
			t.Fatalf("amount %v out of range", v)
		}
	}
}

func TestCurrencyReachesInexactBounds(t *testing.T) {
	g, err := NewCurrency("c", CurrencyOptions{Min: ptr(1.1), Max: ptr(1.15)})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	rng := newRng()
	for i := 0; i < 2000; i++ {
		f, _ := g.Generate(rng)
		seen[f.Value.(string)] = true
	}
	for _, want := range []string{"$1.10", "$1.15"} {
		if !seen[want] {
			t.Fatalf("expected %s among %v", want, seen)
		}
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct amounts, got %v", seen)
	}
}

func TestNumericRangeLimits(t *testing.T) {
	inf := math.Inf(1)
	for _, opts := range []NumberOptions{
		{Min: ptr(-math.MaxFloat64), Max: ptr(math.MaxFloat64)},
		{Min: ptr(0.0), Max: ptr(inf)},
		{Min: ptr(math.NaN()), Max: ptr(1.0)},
	} {
		if _, err := NewNumber("x", opts); err == nil {
			t.Fatalf("expected error for min=%v max=%v", *opts.Min, *opts.Max)
		}
	}
	if _, err := NewCurrency("c", CurrencyOptions{Max: ptr(inf)}); err == nil {
		t.Fatalf("expected error for infinite max_value")
	}
	if _, err := NewCurrency("c", CurrencyOptions{Max: ptr(1e300)}); err == nil {
		t.Fatalf("expected error for max_value beyond the cent range")
	}
}

func TestDateBounds(t *testing.T) {
	if _, err := NewDate("d", DateRangeOptions{Start: "2021-01-01", End: "2020-01-01"}); err == nil {
		t.Fatalf("expected error for end before start")
	}
	if _, err := NewDateTime("d", DateRangeOptions{Start: "someday"}); err == nil {
		t.Fatalf("expected error for unparseable start")
	}

	g, err := NewDate("d", DateRangeOptions{Start: "2020-03-01", End: "2020-03-03"})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 50; i++ {
		f, _ := g.Generate(rng)
		d, err := time.Parse("2006-01-02", f.Value.(string))
		if err != nil {
			t.Fatal(err)
		}
		if d.Before(time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)) || d.After(time.Date(2020, 3, 3, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("date %v out of range", d)
		}
	}

	ts, err := NewTimestamp("ts", DateRangeOptions{Start: "2020-01-01", End: "2020-01-02"})
	if err != nil {
		t.Fatal(err)
	}
	f, _ := ts.Generate(rng)
	if v := f.Value.(int64); v < 1577836800 || v > 1577923200 {
		t.Fatalf("timestamp %d out of range", v)
	}

	tm, _ := NewTime("t", Nullable{})
	if s := generateString(t, tm); !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`).MatchString(s) {
		t.Fatalf("unexpected time %q", s)
	}
}

func TestDateWideRangeStaysInBounds(t *testing.T) {
	lo := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	opts := DateRangeOptions{Start: "1700-01-01", End: "2100-01-01"}
	d, err := NewDate("d", opts)
	if err != nil {
		t.Fatal(err)
	}
	dt, err := NewDateTime("dt", opts)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := NewTimestamp("ts", opts)
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 1000; i++ {
		f, _ := d.Generate(rng)
		v, err := time.Parse("2006-01-02", f.Value.(string))
		if err != nil {
			t.Fatal(err)
		}
		if v.Before(lo) || v.After(hi) {
			t.Fatalf("date %v out of range", v)
		}
		f, _ = dt.Generate(rng)
		v, err = time.Parse("2006-01-02 15:04:05", f.Value.(string))
		if err != nil {
			t.Fatal(err)
		}
		if v.Before(lo) || v.After(hi) {
			t.Fatalf("datetime %v out of range", v)
		}
		f, _ = ts.Generate(rng)
		if u := f.Value.(int64); u < lo.Unix() || u > hi.Unix() {
			t.Fatalf("timestamp %d out of range", u)
		}
	}
}

func TestSKU(t *testing.T) {
	if _, err := NewSKU("s", SKUOptions{Length: ptr(0)}); err == nil {
		t.Fatalf("expected error for length 0")
	}
	g, _ := NewSKU("s", SKUOptions{Prefix: "SKU-", Length: ptr(6)})
	if s := generateString(t, g); !regexp.MustCompile(`^SKU-[A-Z0-9]{6}$`).MatchString(s) {
		t.Fatalf("unexpected sku %q", s)
	}
}

func TestHash(t *testing.T) {
	lengths := map[string]int{"md5": 32, "sha1": 40, "sha256": 64, "sha512": 128}
	for algo, n := range lengths {
		g, err := NewHash("h", HashOptions{Type: algo})
		if err != nil {
			t.Fatal(err)
		}
		if s := generateString(t, g); !regexp.MustCompile(`^[0-9a-f]+$`).MatchString(s) || len(s) != n {
			t.Fatalf("%s: unexpected digest %q", algo, s)
		}
	}
	if _, err := NewHash("h", HashOptions{Type: "crc32"}); err == nil {
		t.Fatalf("expected error for unknown hash_type")
	}
}

func TestISBN10Checksum(t *testing.T) {
	g, _ := NewISBN10("isbn", Nullable{})
	rng := newRng()
	for i := 0; i < 100; i++ {
		f, _ := g.Generate(rng)
		s := f.Value.(string)
		if len(s) != 10 {
			t.Fatalf("unexpected isbn10 %q", s)
		}
		sum := 0
		for j, c := range s {
			d := int(c - '0')
			if c == 'X' {
				d = 10
			}
			sum += (10 - j) * d
		}
		if sum%11 != 0 {
			t.Fatalf("invalid isbn10 checksum %q", s)
		}
	}
	if got := isbn10([]int{0, 3, 0, 6, 4, 0, 6, 1, 5}); got != "0306406152" {
		t.Fatalf("isbn10 known value: got %s", got)
	}
}

func validGTIN(s string) bool {
	sum := 0
	for i := range s {
		d := int(s[len(s)-1-i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return sum%10 == 0
}

func TestGTINChecksums(t *testing.T) {
	if got := gtin([]int{9, 7, 8, 0, 3, 0, 6, 4, 0, 6, 1, 5}); got != "9780306406157" {
		t.Fatalf("isbn13 known value: got %s", got)
	}

	isbn, _ := NewISBN13("isbn", Nullable{})
	ean13, _ := NewEAN("ean", EANOptions{})
	ean8, _ := NewEAN("ean", EANOptions{Length: 8})
	rng := newRng()
	for i := 0; i < 100; i++ {
		for _, g := range []Generator{isbn, ean13, ean8} {
			f, _ := g.Generate(rng)
			s := f.Value.(string)
			if !validGTIN(s) {
				t.Fatalf("invalid check digit %q", s)
			}
		}
		f, _ := isbn.Generate(rng)
		if s := f.Value.(string); !strings.HasPrefix(s, "978") && !strings.HasPrefix(s, "979") {
			t.Fatalf("unexpected isbn13 prefix %q", s)
		}
		f, _ = ean8.Generate(rng)
		if len(f.Value.(string)) != 8 {
			t.Fatalf("unexpected ean8 %q", f.Value)
		}
	}
	if _, err := NewEAN("ean", EANOptions{Length: 12}); err == nil {
		t.Fatalf("expected error for ean length 12")
	}
}

func TestIBAN(t *testing.T) {
	if _, err := NewIBAN("iban", IBANOptions{Country: "US"}); err == nil {
		t.Fatalf("expected error for unsupported country")
	}
	g, err := NewIBAN("iban", IBANOptions{Country: "de"})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 50; i++ {
		f, _ := g.Generate(rng)
		s := f.Value.(string)
		if len(s) != 22 || !strings.HasPrefix(s, "DE") {
			t.Fatalf("unexpected german iban %q", s)
		}
		if mod97(s[4:]+s[:4]) != 1 {
			t.Fatalf("iban %q fails mod 97", s)
		}
	}
	if mod97("3214282912345698765432161182") != 1 {
		t.Fatalf("mod97 known value")
	}
}

func TestBIC(t *testing.T) {
	g, err := NewBIC("bic", BICOptions{Country: "FR", Branch: true})
	if err != nil {
		t.Fatal(err)
	}
	if s := generateString(t, g); !regexp.MustCompile(`^[A-Z]{4}FR[A-Z0-9]{5}$`).MatchString(s) {
		t.Fatalf("unexpected bic %q", s)
	}
	g, _ = NewBIC("bic", BICOptions{})
	if s := generateString(t, g); len(s) != 8 {
		t.Fatalf("unexpected bic %q", s)
	}
	if _, err := NewBIC("bic", BICOptions{Country: "France"}); err == nil {
		t.Fatalf("expected error for invalid country")
	}
}

func luhnValid(s string) bool {
	sum := 0
	for i := range s {
		d := int(s[len(s)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

func TestCreditCard(t *testing.T) {
	if _, err := NewCreditCard("cc", CreditCardOptions{Type: "diners"}); err == nil {
		t.Fatalf("expected error for unknown card_type")
	}
	rng := newRng()
	for _, brand := range cardBrandNames {
		g, err := NewCreditCard("cc", CreditCardOptions{Type: brand})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 20; i++ {
			f, _ := g.Generate(rng)
			s := f.Value.(string)
			if len(s) != cardBrands[brand].length || !luhnValid(s) {
				t.Fatalf("%s: invalid number %q", brand, s)
			}
		}
	}

	amex, _ := NewCreditCard("cc", CreditCardOptions{Type: "amex", Formatted: true})
	s := generateString(t, amex)
	parts := strings.Split(s, " ")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 6 || len(parts[2]) != 5 {
		t.Fatalf("unexpected amex grouping %q", s)
	}
	if !luhnValid(strings.ReplaceAll(s, " ", "")) {
		t.Fatalf("formatted amex fails luhn %q", s)
	}
}

func TestNetwork(t *testing.T) {
	v4, _ := NewIPAddress("ip", IPAddressOptions{})
	if s := generateString(t, v4); len(strings.Split(s, ".")) != 4 {
		t.Fatalf("unexpected ipv4 %q", s)
	}
	v6, _ := NewIPAddress("ip", IPAddressOptions{Version: "IPv6"})
	if s := generateString(t, v6); !strings.Contains(s, ":") {
		t.Fatalf("unexpected ipv6 %q", s)
	}
	if _, err := NewIPAddress("ip", IPAddressOptions{Version: "ipv5"}); err == nil {
		t.Fatalf("expected error for unknown ip version")
	}

	mac, _ := NewMACAddress("mac", Nullable{})
	if s := generateString(t, mac); !regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`).MatchString(s) {
		t.Fatalf("unexpected mac %q", s)
	}

	site, _ := NewWebsite("url", Nullable{})
	if s := generateString(t, site); !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		t.Fatalf("unexpected url %q", s)
	}
}

func TestVersionIsSemver(t *testing.T) {
	g, err := NewVersion("v", VersionOptions{MajorMax: ptr(3)})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 50; i++ {
		f, _ := g.Generate(rng)
		s := f.Value.(string)
		if !semver.IsValid("v"+s) || semver.Canonical("v"+s) != "v"+s {
			t.Fatalf("not a canonical semver: %q", s)
		}
		if major, _ := strconv.Atoi(strings.TrimPrefix(semver.Major("v"+s), "v")); major > 3 {
			t.Fatalf("major %d exceeds major_max", major)
		}
	}
	if _, err := NewVersion("v", VersionOptions{PatchMax: ptr(-1)}); err == nil {
		t.Fatalf("expected error for negative patch_max")
	}
	for _, n := range []int{math.MaxInt32, math.MaxInt} {
		if _, err := NewVersion("v", VersionOptions{MajorMax: ptr(n)}); err == nil {
			t.Fatalf("expected error for major_max %d", n)
		}
	}
	g, err = NewVersion("v", VersionOptions{MajorMax: ptr(math.MaxInt32 - 1)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(rng); err != nil {
		t.Fatal(err)
	}
}

func TestKindValidation(t *testing.T) {
	if _, err := NewColor("c", ColorOptions{Type: "cmyk"}); err == nil {
		t.Fatalf("expected error for unknown color_type")
	}
	hex, _ := NewColor("c", ColorOptions{Type: ColorHex})
	if s := generateString(t, hex); !regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString(s) {
		t.Fatalf("unexpected hex color %q", s)
	}
	if _, err := NewSocialMedia("s", SocialMediaOptions{Platform: "myspace"}); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
	li, _ := NewSocialMedia("s", SocialMediaOptions{Platform: "linkedin"})
	if s := generateString(t, li); !strings.HasPrefix(s, "linkedin.com/in/") {
		t.Fatalf("unexpected linkedin profile %q", s)
	}
	if _, err := NewFileExtension("f", FileExtensionOptions{Category: "binary"}); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if _, err := NewName("n", NameOptions{Part: "middle"}); err == nil {
		t.Fatalf("expected error for unknown name part")
	}
	st, _ := NewState("st", StateOptions{Abbr: true})
	if s := generateString(t, st); len(s) != 2 {
		t.Fatalf("unexpected state abbreviation %q", s)
	}
}
