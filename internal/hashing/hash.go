package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/mmrzaf/seeder/internal/domain"
)

// HashFields fingerprints a field list. Type names are lowercased so that
// lookups which ignore case hash alike; encoding/json sorts map keys, which
// makes parameter order irrelevant.
func HashFields(fields []domain.FieldSpec) (string, error) {
	data, err := json.Marshal(canonicalizeFields(fields))
	if err != nil {
		return "", err
	}
	return sum(data), nil
}

// HashSchema fingerprints the parts of a schema that affect generated data.
// ID and description are left out.
func HashSchema(schema *domain.Schema) (string, error) {
	canonical := map[string]interface{}{
		"name":   schema.Name,
		"fields": canonicalizeFields(schema.Fields),
	}
	if schema.Table != "" {
		canonical["table"] = schema.Table
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}
	return sum(data), nil
}

type runHashPayload struct {
	FieldsHash string `json:"fields_hash"`
	Count      int    `json:"count"`
	Seed       int64  `json:"seed"`
}

// HashRun identifies one generation: the same fields, count and seed produce
// the same records for every rng-driven field.
func HashRun(fieldsHash string, count int, seed int64) (string, error) {
	b, err := json.Marshal(runHashPayload{FieldsHash: fieldsHash, Count: count, Seed: seed})
	if err != nil {
		return "", err
	}
	return sum(b), nil
}

func canonicalizeFields(fields []domain.FieldSpec) []map[string]interface{} {
	out := make([]map[string]interface{}, len(fields))
	for i, f := range fields {
		out[i] = canonicalizeSpec(f)
	}
	return out
}

func canonicalizeSpec(spec map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(spec))
	for k, v := range spec {
		if k == "type" {
			if s, ok := v.(string); ok {
				v = strings.ToLower(s)
			}
		}
		result[k] = canonicalizeValue(v)
	}
	return result
}

func canonicalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case domain.FieldSpec:
		return canonicalizeSpec(val)
	case map[string]interface{}:
		return canonicalizeSpec(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = canonicalizeValue(item)
		}
		return out
	default:
		return val
	}
}

func sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
