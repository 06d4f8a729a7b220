package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/registry"
)

type Validator struct {
	genRegistry *registry.GeneratorRegistry
	structs     *validator.Validate
}

func NewValidator(genRegistry *registry.GeneratorRegistry) *Validator {
	structs := validator.New(validator.WithRequiredStructEnabled())
	// sqlident is a fixed, valid tag; registration cannot fail.
	_ = structs.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return IsValidIdentifier(fl.Field().String())
	})
	return &Validator{genRegistry: genRegistry, structs: structs}
}

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

func IsValidFormat(format string) bool {
	switch format {
	case domain.FormatJSON, domain.FormatCSV, domain.FormatSQL, domain.FormatSQLite:
		return true
	}
	return false
}

func IsValidDialect(dialect string) bool {
	return dialect == "" || dialect == domain.DialectNaive || dialect == domain.DialectPostgres
}

// ValidateSchema checks a schema document: required attributes, a valid
// table identifier, and fields that compile. When the schema names a table,
// every field name must also be usable as a column.
func (v *Validator) ValidateSchema(schema *domain.Schema) error {
	if schema == nil {
		return errors.New("schema is required")
	}
	if err := v.structs.Struct(schema); err != nil {
		return describe("schema", err)
	}
	if _, err := v.genRegistry.Compile(schema.Fields); err != nil {
		return err
	}
	if schema.Table != "" {
		for _, f := range schema.Fields {
			if !IsValidIdentifier(f.Name()) {
				return fmt.Errorf("field '%s': invalid column identifier", f.Name())
			}
		}
	}
	return nil
}

// ValidateGenerateRequest checks an API request before any generation work.
// maxCount <= 0 disables the count limit.
func (v *Validator) ValidateGenerateRequest(req *domain.GenerateRequest, maxCount int) error {
	if req == nil {
		return errors.New("request is required")
	}
	if len(req.Fields) == 0 {
		return errors.New("fields must not be empty")
	}
	if req.Count != nil {
		if *req.Count < 0 {
			return fmt.Errorf("count must be >= 0, got %d", *req.Count)
		}
		if maxCount > 0 && *req.Count > maxCount {
			return fmt.Errorf("count %d exceeds the limit of %d", *req.Count, maxCount)
		}
	}
	if req.Format != "" && (!IsValidFormat(req.Format) || req.Format == domain.FormatSQLite) {
		return fmt.Errorf("unsupported format: %s", req.Format)
	}
	if !IsValidDialect(req.Dialect) {
		return fmt.Errorf("unsupported dialect: %s", req.Dialect)
	}
	if req.Format == domain.FormatSQL {
		if req.Table == "" {
			return errors.New("table is required for sql output")
		}
		if !IsValidIdentifier(req.Table) {
			return fmt.Errorf("invalid table identifier: %s", req.Table)
		}
	}
	if _, err := v.genRegistry.Compile(req.Fields); err != nil {
		return err
	}
	return nil
}

func describe(subject string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", subject, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%s: %s", subject, strings.Join(msgs, "; "))
}
