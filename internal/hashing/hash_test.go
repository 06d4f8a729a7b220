package hashing

import (
	"testing"

	"github.com/mmrzaf/seeder/internal/domain"
)

func TestHashSchema_StableAndSensitive(t *testing.T) {
	base := &domain.Schema{
		ID:   "a",
		Name: "users",
		Fields: []domain.FieldSpec{
			{"name": "id", "type": "integer", "min": 1, "max": 10},
			{"name": "tier", "type": "enum", "choices": []interface{}{"a", map[string]interface{}{"type": "text"}}},
		},
	}
	same := &domain.Schema{
		ID:          "b",
		Name:        "users",
		Description: "ignored",
		Fields: []domain.FieldSpec{
			{"max": 10, "min": 1, "type": "INTEGER", "name": "id"},
			{"type": "enum", "name": "tier", "choices": []interface{}{"a", map[string]interface{}{"type": "Text"}}},
		},
	}
	h1, err := HashSchema(base)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashSchema(same)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Fatal("expected id, description, key order and type case not to affect hash")
	}

	changed := &domain.Schema{Name: "users", Fields: []domain.FieldSpec{{"name": "id", "type": "integer", "min": 1, "max": 11}}}
	h3, err := HashSchema(changed)
	if err != nil {
		t.Fatal(err)
	}
	if h3 == h1 {
		t.Fatal("expected params to affect hash")
	}
	withTable := &domain.Schema{Name: "users", Table: "users", Fields: base.Fields}
	h4, _ := HashSchema(withTable)
	if h4 == h1 {
		t.Fatal("expected table to affect hash")
	}
}

func TestHashRun_IncludesCountAndSeed(t *testing.T) {
	fh, err := HashFields([]domain.FieldSpec{{"name": "id", "type": "uuid"}})
	if err != nil {
		t.Fatal(err)
	}
	h1, _ := HashRun(fh, 10, 1)
	h2, _ := HashRun(fh, 11, 1)
	h3, _ := HashRun(fh, 10, 2)
	h4, _ := HashRun(fh, 10, 1)
	if h1 == h2 {
		t.Fatal("expected count to affect hash")
	}
	if h1 == h3 {
		t.Fatal("expected seed to affect hash")
	}
	if h1 != h4 {
		t.Fatal("expected identical input to hash identically")
	}
}
