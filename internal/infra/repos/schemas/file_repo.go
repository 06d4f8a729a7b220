package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmrzaf/seeder/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("schema not found")

type Repository interface {
	List() ([]*domain.Schema, error)
	Get(id string) (*domain.Schema, error)
	GetByPath(path string) (*domain.Schema, error)
}

// FileRepository reads schema documents from a directory. A document is
// either a mapping with a "fields" list or a bare list of field specs.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) BaseDir() string {
	return r.baseDir
}

// List loads every schema file in the base directory, sorted by ID. Files
// that fail to parse are skipped.
func (r *FileRepository) List() ([]*domain.Schema, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.Schema{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}

	schemas := make([]*domain.Schema, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isSchemaFile(entry.Name()) {
			continue
		}

		path := filepath.Join(r.baseDir, entry.Name())
		schema, err := r.loadSchema(path)
		if err != nil {
			continue
		}
		schemas = append(schemas, schema)
	}

	sort.Slice(schemas, func(i, j int) bool { return schemas[i].ID < schemas[j].ID })
	return schemas, nil
}

func (r *FileRepository) Get(id string) (*domain.Schema, error) {
	schemas, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, s := range schemas {
		if s.ID == id || s.Name == id {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// GetByPath loads one file. Relative paths resolve against the base
// directory; the result must stay inside it.
func (r *FileRepository) GetByPath(path string) (*domain.Schema, error) {
	resolved, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return r.loadSchema(resolved)
}

func (r *FileRepository) resolve(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("schema path %s is outside %s", path, r.baseDir)
	}
	return target, nil
}

func (r *FileRepository) loadSchema(path string) (*domain.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schema, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	if schema.ID == "" {
		schema.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if schema.Name == "" {
		schema.Name = schema.ID
	}

	return schema, nil
}

// Parse decodes a schema document; ext selects JSON (".json") or YAML.
func Parse(data []byte, ext string) (*domain.Schema, error) {
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(ext, ".json") {
		unmarshal = json.Unmarshal
	}

	var raw interface{}
	if err := unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var schema domain.Schema
	switch raw.(type) {
	case []interface{}:
		if err := unmarshal(data, &schema.Fields); err != nil {
			return nil, err
		}
	case map[string]interface{}:
		if err := unmarshal(data, &schema); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("schema must be a mapping or a list of fields")
	}
	return &schema, nil
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
