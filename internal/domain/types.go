package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FieldSpec is the declarative description of one field: a mapping with at
// least "name" and "type" keys. Every other key is a generator parameter.
type FieldSpec map[string]interface{}

func (s FieldSpec) Name() string {
	name, _ := s["name"].(string)
	return name
}

func (s FieldSpec) Type() string {
	typ, _ := s["type"].(string)
	return typ
}

// Params returns a copy of the spec without the name and type keys.
func (s FieldSpec) Params() map[string]interface{} {
	params := make(map[string]interface{}, len(s))
	for k, v := range s {
		if k == "name" || k == "type" {
			continue
		}
		params[k] = v
	}
	return params
}

// Schema is a schema document as stored on disk.
type Schema struct {
	ID          string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string      `json:"name" yaml:"name" validate:"required"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Table       string      `json:"table,omitempty" yaml:"table,omitempty" validate:"omitempty,sqlident"`
	Count       int         `json:"count,omitempty" yaml:"count,omitempty" validate:"gte=0"`
	Seed        *int64      `json:"seed,omitempty" yaml:"seed,omitempty"`
	Fields      []FieldSpec `json:"fields" yaml:"fields" validate:"min=1"`
}

// Field is the (value, field name) pair a generator produces.
type Field struct {
	Name  string
	Value interface{}
}

// Record is one generated row. Keys keep the order in which they were first
// set; setting an existing key replaces its value in place.
type Record struct {
	keys   []string
	values map[string]interface{}
}

func NewRecord(capacity int) Record {
	return Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]interface{}, capacity),
	}
}

// Set stores value under key. It reports whether key was already present.
func (r *Record) Set(key string, value interface{}) bool {
	if r.values == nil {
		r.values = make(map[string]interface{})
	}
	_, exists := r.values[key]
	if !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return exists
}

func (r Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the values in key order.
func (r Record) Values() []interface{} {
	out := make([]interface{}, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.values[k]
	}
	return out
}

func (r Record) Len() int {
	return len(r.keys)
}

// MarshalJSON writes the record as an object with keys in record order.
// Values that encoding/json cannot represent are written as their string form.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.values[k])
		if err != nil {
			val, err = json.Marshal(fmt.Sprint(r.values[k]))
			if err != nil {
				return nil, err
			}
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecordSet is the ordered output of one generation call.
type RecordSet []Record

// Columns returns the keys of the first record, which define column order
// for tabular exports.
func (rs RecordSet) Columns() []string {
	if len(rs) == 0 {
		return nil
	}
	return rs[0].Keys()
}

// GenerateRequest is the body of an HTTP generation request.
type GenerateRequest struct {
	Fields  []FieldSpec `json:"fields"`
	Count   *int        `json:"count,omitempty"`
	Seed    *int64      `json:"seed,omitempty"`
	Format  string      `json:"format,omitempty"`
	Table   string      `json:"table,omitempty"`
	Dialect string      `json:"dialect,omitempty"`
}

const (
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatSQL    = "sql"
	FormatSQLite = "sqlite"
)

// SQL dialects for statement export.
const (
	DialectNaive    = "naive"
	DialectPostgres = "postgres"
)

// Run is the history entry of one generation.
type Run struct {
	ID          string     `json:"id"`
	SchemaID    string     `json:"schema_id,omitempty"`
	SchemaName  string     `json:"schema_name,omitempty"`
	Origin      string     `json:"origin"`
	Seed        int64      `json:"seed"`
	Count       int        `json:"count"`
	FieldsHash  string     `json:"fields_hash,omitempty"`
	RunHash     string     `json:"run_hash,omitempty"`
	Status      RunStatus  `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// Run origins.
const (
	OriginCLI = "cli"
	OriginAPI = "api"
)
