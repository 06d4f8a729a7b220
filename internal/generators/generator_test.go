package generators

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNullableProbabilityBounds(t *testing.T) {
	for _, p := range []float64{-1, 100.5, 1000} {
		_, err := NewInteger("n", IntegerOptions{Nullable: Nullable{Probability: p}})
		if !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("probability %v: expected ErrInvalidProbability, got %v", p, err)
		}
	}
	if _, err := NewInteger("", IntegerOptions{}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestNullPolicyExtremes(t *testing.T) {
	rng := newRng()
	never, err := NewCity("city", Nullable{Probability: 0})
	if err != nil {
		t.Fatal(err)
	}
	always, err := NewCity("city", Nullable{Probability: 100})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		f, err := never.Generate(rng)
		if err != nil {
			t.Fatal(err)
		}
		if f.Value == nil {
			t.Fatalf("probability 0 produced nil at %d", i)
		}
		if f.Name != "city" {
			t.Fatalf("unexpected field name %q", f.Name)
		}
		f, err = always.Generate(rng)
		if err != nil {
			t.Fatal(err)
		}
		if f.Value != nil {
			t.Fatalf("probability 100 produced %v at %d", f.Value, i)
		}
	}
}

func TestNullPolicyRate(t *testing.T) {
	rng := newRng()
	g, err := NewBool("flag", BoolOptions{Nullable: Nullable{Probability: 30}})
	if err != nil {
		t.Fatal(err)
	}
	nulls := 0
	const n = 10000
	for i := 0; i < n; i++ {
		f, err := g.Generate(rng)
		if err != nil {
			t.Fatal(err)
		}
		if f.Value == nil {
			nulls++
		}
	}
	rate := float64(nulls) / n
	if rate < 0.27 || rate > 0.33 {
		t.Fatalf("null rate %.3f too far from 0.30", rate)
	}
}

func TestNullWrapper(t *testing.T) {
	rng := newRng()

	lit, err := NewNull("note", NullOptions{Value: Literal("fixed")})
	if err != nil {
		t.Fatal(err)
	}
	f, err := lit.Generate(rng)
	if err != nil {
		t.Fatal(err)
	}
	if f.Value != "fixed" || f.Name != "note" {
		t.Fatalf("unexpected field %#v", f)
	}

	inner, err := NewInteger("ignored", IntegerOptions{Min: ptr(int64(5)), Max: ptr(int64(5))})
	if err != nil {
		t.Fatal(err)
	}
	nested, err := NewNull("score", NullOptions{Value: From(inner)})
	if err != nil {
		t.Fatal(err)
	}
	f, err = nested.Generate(rng)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "score" || f.Value != int64(5) {
		t.Fatalf("nested value not resolved: %#v", f)
	}

	gone, err := NewNull("score", NullOptions{Nullable: Nullable{Probability: 100}, Value: From(inner)})
	if err != nil {
		t.Fatal(err)
	}
	f, err = gone.Generate(rng)
	if err != nil {
		t.Fatal(err)
	}
	if f.Value != nil {
		t.Fatalf("expected nil, got %v", f.Value)
	}
}

func TestFixedValueStillNullable(t *testing.T) {
	v := "hello"
	g, err := NewText("greeting", TextOptions{Value: &v, Nullable: Nullable{Probability: 100}})
	if err != nil {
		t.Fatal(err)
	}
	f, err := g.Generate(newRng())
	if err != nil {
		t.Fatal(err)
	}
	if f.Value != nil {
		t.Fatalf("expected nil for fixed value at probability 100, got %v", f.Value)
	}

	g, err = NewText("greeting", TextOptions{Value: &v})
	if err != nil {
		t.Fatal(err)
	}
	f, _ = g.Generate(newRng())
	if f.Value != "hello" {
		t.Fatalf("expected fixed value, got %v", f.Value)
	}
}

func TestTextWords(t *testing.T) {
	g, err := NewText("body", TextOptions{Words: 4})
	if err != nil {
		t.Fatal(err)
	}
	f, err := g.Generate(newRng())
	if err != nil {
		t.Fatal(err)
	}
	s := f.Value.(string)
	if n := len(strings.Fields(s)); n != 4 {
		t.Fatalf("expected 4 words, got %d in %q", n, s)
	}
	if !strings.HasSuffix(s, ".") {
		t.Fatalf("expected sentence ending with a period: %q", s)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	build := func() []Generator {
		id, _ := NewID("id", IDOptions{Prefix: "usr"})
		n, _ := NewInteger("n", IntegerOptions{Nullable: Nullable{Probability: 20}})
		c, _ := NewCurrency("price", CurrencyOptions{})
		d, _ := NewDate("d", DateRangeOptions{Start: "2020-01-01", End: "2020-12-31"})
		ip, _ := NewIPAddress("ip", IPAddressOptions{Version: IPv6})
		iban, _ := NewIBAN("iban", IBANOptions{})
		return []Generator{id, n, c, d, ip, iban}
	}
	a, b := build(), build()
	ra, rb := rand.New(rand.NewSource(7)), rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		for j := range a {
			fa, err := a[j].Generate(ra)
			if err != nil {
				t.Fatal(err)
			}
			fb, err := b[j].Generate(rb)
			if err != nil {
				t.Fatal(err)
			}
			if fa != fb {
				t.Fatalf("iteration %d, %s: %v != %v", i, fa.Name, fa.Value, fb.Value)
			}
		}
	}
}

func TestGeneratorDoesNotMutateOptions(t *testing.T) {
	choices := []Source{Literal("a"), Literal("b")}
	weights := []float64{1, 3}
	g, err := NewEnum("e", EnumOptions{Choices: choices, Weights: weights})
	if err != nil {
		t.Fatal(err)
	}
	rng := newRng()
	for i := 0; i < 100; i++ {
		if _, err := g.Generate(rng); err != nil {
			t.Fatal(err)
		}
	}
	if weights[0] != 1 || weights[1] != 3 || len(choices) != 2 {
		t.Fatalf("options mutated: %v %v", choices, weights)
	}
}

func ptr[T any](v T) *T {
	return &v
}
