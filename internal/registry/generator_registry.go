package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/generators"
)

var ErrUnknownType = errors.New("unknown generator type")

// Factory builds a generator from one field spec. The registry is passed in
// so factories can compile nested specs.
type Factory func(c *GeneratorRegistry, spec domain.FieldSpec) (generators.Generator, error)

type GeneratorRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
	}
}

func (r *GeneratorRegistry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(name)] = f
}

// RegisterAlias makes alias resolve to the factory registered under target.
func (r *GeneratorRegistry) RegisterAlias(alias, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = strings.ToLower(target)
}

func (r *GeneratorRegistry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := strings.ToLower(name)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	f, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownType, name)
	}
	return f, nil
}

// List returns every registered type name and alias, sorted.
func (r *GeneratorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories)+len(r.aliases))
	for name := range r.factories {
		names = append(names, name)
	}
	for alias := range r.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// AliasOf returns the type an alias resolves to.
func (r *GeneratorRegistry) AliasOf(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	target, ok := r.aliases[strings.ToLower(name)]
	return target, ok
}

// Compile turns field specs into generators, in order. Field names must be
// unique within one call.
func (r *GeneratorRegistry) Compile(specs []domain.FieldSpec) ([]generators.Generator, error) {
	gens := make([]generators.Generator, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for i, spec := range specs {
		name := spec.Name()
		if name == "" {
			return nil, fmt.Errorf("field #%d: name is required", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("field '%s': duplicate field name", name)
		}
		seen[name] = struct{}{}

		g, err := r.CompileField(spec)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return gens, nil
}

// CompileField builds the generator for a single spec.
func (r *GeneratorRegistry) CompileField(spec domain.FieldSpec) (generators.Generator, error) {
	name := spec.Name()
	typ := spec.Type()
	if typ == "" {
		return nil, fmt.Errorf("field '%s': type is required", name)
	}
	f, err := r.Get(typ)
	if err != nil {
		return nil, fmt.Errorf("field '%s': %w", name, err)
	}
	g, err := f(r, spec)
	if err != nil {
		return nil, fmt.Errorf("field '%s' (type '%s'): %w", name, typ, err)
	}
	return g, nil
}

// source turns a parameter value into a generators.Source: maps carrying a
// "type" key are compiled as nested fields named after parent, anything else
// is a literal.
func (r *GeneratorRegistry) source(parent string, v interface{}) (generators.Source, error) {
	spec, ok := nestedSpec(v)
	if !ok {
		return generators.Literal(v), nil
	}
	if spec.Name() == "" {
		spec["name"] = parent
	}
	g, err := r.CompileField(spec)
	if err != nil {
		return generators.Source{}, err
	}
	return generators.From(g), nil
}

func nestedSpec(v interface{}) (domain.FieldSpec, bool) {
	var m map[string]interface{}
	switch val := v.(type) {
	case domain.FieldSpec:
		m = val
	case map[string]interface{}:
		m = val
	case map[interface{}]interface{}:
		m = make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = v
		}
	default:
		return nil, false
	}
	if _, ok := m["type"]; !ok {
		return nil, false
	}
	spec := make(domain.FieldSpec, len(m))
	for k, v := range m {
		spec[k] = v
	}
	return spec, true
}

func decodeParams(params map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

// typed adapts a generator constructor taking an options struct into a Factory.
func typed[O any, G generators.Generator](build func(string, O) (G, error)) Factory {
	return func(_ *GeneratorRegistry, spec domain.FieldSpec) (generators.Generator, error) {
		var opts O
		if err := decodeParams(spec.Params(), &opts); err != nil {
			return nil, err
		}
		g, err := build(spec.Name(), opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// withDefaults fills params missing from the spec before calling next.
func withDefaults(defaults map[string]interface{}, next Factory) Factory {
	return func(r *GeneratorRegistry, spec domain.FieldSpec) (generators.Generator, error) {
		merged := make(domain.FieldSpec, len(spec)+len(defaults))
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range spec {
			merged[k] = v
		}
		return next(r, merged)
	}
}

func nullFactory(r *GeneratorRegistry, spec domain.FieldSpec) (generators.Generator, error) {
	params := spec.Params()
	raw := params["value"]
	delete(params, "value")

	var opts generators.NullOptions
	if err := decodeParams(params, &opts); err != nil {
		return nil, err
	}
	src, err := r.source(spec.Name(), raw)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	opts.Value = src
	g, err := generators.NewNull(spec.Name(), opts)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func enumFactory(r *GeneratorRegistry, spec domain.FieldSpec) (generators.Generator, error) {
	params := spec.Params()
	raw, ok := params["choices"]
	if !ok {
		return nil, errors.New("'choices' is required")
	}
	delete(params, "choices")

	var opts generators.EnumOptions
	if err := decodeParams(params, &opts); err != nil {
		return nil, err
	}

	list := reflect.ValueOf(raw)
	if raw == nil || (list.Kind() != reflect.Slice && list.Kind() != reflect.Array) {
		return nil, errors.New("'choices' must be a list")
	}
	opts.Choices = make([]generators.Source, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		src, err := r.source(spec.Name(), list.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("choice #%d: %w", i+1, err)
		}
		opts.Choices = append(opts.Choices, src)
	}
	g, err := generators.NewEnum(spec.Name(), opts)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r := NewGeneratorRegistry()

	r.Register("id", typed(generators.NewID))
	r.Register("uuid", typed(generators.NewUUID))
	r.Register("name", typed(generators.NewName))
	r.Register("first_name", withDefaults(map[string]interface{}{"part": generators.NamePartFirst}, typed(generators.NewName)))
	r.Register("last_name", withDefaults(map[string]interface{}{"part": generators.NamePartLast}, typed(generators.NewName)))
	r.Register("email", typed(generators.NewEmail))
	r.Register("phone", typed(generators.NewPhone))
	r.Register("socialmedia", typed(generators.NewSocialMedia))

	r.Register("address", typed(generators.NewAddress))
	r.Register("city", typed(generators.NewCity))
	r.Register("zip", typed(generators.NewZip))
	r.RegisterAlias("postcode", "zip")
	r.Register("state", typed(generators.NewState))
	r.Register("country", typed(generators.NewCountry))
	r.Register("latlng", typed(generators.NewLatLng))

	r.Register("website", typed(generators.NewWebsite))
	r.RegisterAlias("url", "website")
	r.Register("domainname", typed(generators.NewDomainName))
	r.RegisterAlias("domain", "domainname")
	r.Register("domainword", typed(generators.NewDomainWord))
	r.Register("tld", typed(generators.NewTLD))
	r.Register("ipaddress", typed(generators.NewIPAddress))
	r.Register("macaddress", typed(generators.NewMACAddress))
	r.Register("useragent", typed(generators.NewUserAgent))

	r.Register("text", typed(generators.NewText))
	r.Register("sentence", typed(generators.NewSentence))
	r.Register("paragraph", typed(generators.NewParagraph))

	r.Register("date", typed(generators.NewDate))
	r.Register("datetime", typed(generators.NewDateTime))
	r.Register("timestamp", typed(generators.NewTimestamp))
	r.Register("time", typed(generators.NewTime))
	r.Register("timezone", typed(generators.NewTimeZone))
	r.Register("dayofweek", typed(generators.NewDayOfWeek))

	r.Register("currency", typed(generators.NewCurrency))
	r.Register("boolean", typed(generators.NewBool))
	r.RegisterAlias("bool", "boolean")
	r.Register("integer", typed(generators.NewInteger))
	r.RegisterAlias("int", "integer")
	r.Register("number", typed(generators.NewNumber))
	r.RegisterAlias("float", "number")
	r.Register("normal", typed(generators.NewNormal))

	r.Register("enum", enumFactory)
	r.RegisterAlias("choice", "enum")
	r.Register("null", nullFactory)
	r.Register("const", typed(generators.NewConst))

	r.Register("sku", typed(generators.NewSKU))
	r.Register("hash", typed(generators.NewHash))
	r.Register("isbn", typed(generators.NewISBN10))
	r.RegisterAlias("isbn10", "isbn")
	r.Register("isbn13", typed(generators.NewISBN13))
	r.Register("ean", typed(generators.NewEAN))
	r.Register("version", typed(generators.NewVersion))
	r.Register("color", typed(generators.NewColor))
	r.Register("fileextension", typed(generators.NewFileExtension))

	r.Register("iban", typed(generators.NewIBAN))
	r.Register("bic", typed(generators.NewBIC))
	r.Register("creditcard", typed(generators.NewCreditCard))

	r.Register("jobtitle", typed(generators.NewJobTitle))
	r.Register("department", typed(generators.NewDepartment))
	return r
}
