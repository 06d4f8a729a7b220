package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/exec"
	"github.com/mmrzaf/seeder/internal/export"
	"github.com/mmrzaf/seeder/internal/generators"
	"github.com/mmrzaf/seeder/internal/hashing"
	"github.com/mmrzaf/seeder/internal/infra/repos/runs"
	"github.com/mmrzaf/seeder/internal/infra/repos/schemas"
	"github.com/mmrzaf/seeder/internal/logging"
	"github.com/mmrzaf/seeder/internal/registry"
	"github.com/mmrzaf/seeder/internal/validation"
)

// ErrInvalidRequest wraps request validation failures.
var ErrInvalidRequest = errors.New("invalid request")

var ErrHistoryDisabled = errors.New("run history is not enabled")

// Result is the outcome of one generation.
type Result struct {
	Records    domain.RecordSet
	Seed       int64
	FieldsHash string
	RunHash    string
	Duration   time.Duration
}

// Seeder ties generation to exports. The Generate* methods are stateless;
// the Seed* methods also keep the result as the data the Export* methods
// write.
type Seeder struct {
	genRegistry  *registry.GeneratorRegistry
	executor     *exec.Executor
	validator    *validation.Validator
	schemaRepo   *schemas.FileRepository
	files        *export.Files
	logger       *logging.Logger
	defaultCount int
	history      runs.Repository

	mu   sync.Mutex
	data domain.RecordSet
}

func NewSeeder(
	genRegistry *registry.GeneratorRegistry,
	schemaRepo *schemas.FileRepository,
	files *export.Files,
	logger *logging.Logger,
	defaultCount int,
) *Seeder {
	if genRegistry == nil {
		genRegistry = registry.DefaultGeneratorRegistry()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Seeder{
		genRegistry:  genRegistry,
		executor:     exec.NewExecutor(genRegistry, logger),
		validator:    validation.NewValidator(genRegistry),
		schemaRepo:   schemaRepo,
		files:        files,
		logger:       logger.WithComponent("seeder"),
		defaultCount: defaultCount,
	}
}

func (s *Seeder) Registry() *registry.GeneratorRegistry {
	return s.genRegistry
}

func (s *Seeder) Validator() *validation.Validator {
	return s.validator
}

// SetHistory enables run history. Passing nil disables it.
func (s *Seeder) SetHistory(repo runs.Repository) {
	s.history = repo
}

func (s *Seeder) Runs(limit int, status string) ([]*domain.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(limit, status)
}

// Generate runs already built generators. A nil seed draws a random one.
func (s *Seeder) Generate(gens []generators.Generator, count int, seed *int64) (*Result, error) {
	resolved := resolveSeed(seed, nil)
	start := time.Now()
	rs, err := s.executor.Generate(gens, count, exec.NewRand(resolved))
	if err != nil {
		return nil, err
	}
	return &Result{Records: rs, Seed: resolved, Duration: time.Since(start)}, nil
}

// GenerateFields compiles specs and generates count records.
func (s *Seeder) GenerateFields(specs []domain.FieldSpec, count int, seed *int64) (*Result, error) {
	gens, err := s.genRegistry.Compile(specs)
	if err != nil {
		return nil, err
	}
	res, err := s.Generate(gens, count, seed)
	if err != nil {
		return nil, err
	}
	if err := s.fingerprint(res, specs, count); err != nil {
		return nil, err
	}
	s.logger.Infow("generate.completed", map[string]any{
		"records":     len(res.Records),
		"seed":        res.Seed,
		"run_hash":    res.RunHash,
		"duration_ms": res.Duration.Milliseconds(),
	})
	return res, nil
}

// GenerateRequest serves an API request: the count defaults to the
// configured default and the request is validated against maxCount.
func (s *Seeder) GenerateRequest(req *domain.GenerateRequest, maxCount int) (*Result, error) {
	if err := s.validator.ValidateGenerateRequest(req, maxCount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	count := s.defaultCount
	if req.Count != nil {
		count = *req.Count
	}
	seed := resolveSeed(req.Seed, nil)
	run := &domain.Run{Origin: domain.OriginAPI, Seed: seed, Count: count}
	res, err := s.GenerateFields(req.Fields, count, &seed)
	s.track(run, res, err)
	return res, err
}

// GenerateSchema generates from a schema document. Count and seed overrides
// win over the document's own values; a zero document count falls back to
// the default count.
func (s *Seeder) GenerateSchema(schema *domain.Schema, count *int, seed *int64) (*Result, error) {
	if err := s.validator.ValidateSchema(schema); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	n := s.defaultCount
	if schema.Count > 0 {
		n = schema.Count
	}
	if count != nil {
		n = *count
	}
	resolved := resolveSeed(seed, schema.Seed)
	run := &domain.Run{
		SchemaID:   schema.ID,
		SchemaName: schema.Name,
		Origin:     domain.OriginCLI,
		Seed:       resolved,
		Count:      n,
	}
	res, err := s.GenerateFields(schema.Fields, n, &resolved)
	s.track(run, res, err)
	return res, err
}

// track writes a history entry. History failures are logged, never returned.
func (s *Seeder) track(run *domain.Run, res *Result, genErr error) {
	if s.history == nil {
		return
	}
	run.StartedAt = time.Now().UTC()
	if res != nil {
		run.StartedAt = run.StartedAt.Add(-res.Duration)
		run.FieldsHash = res.FieldsHash
		run.RunHash = res.RunHash
	}
	runs.Finish(run, genErr)
	if err := s.history.Create(run); err != nil {
		s.logger.Warnw("history.write_failed", map[string]any{"error": err})
	}
}

// Seed is Generate plus keeping the records for export.
func (s *Seeder) Seed(gens []generators.Generator, count int, seed *int64) (domain.RecordSet, error) {
	res, err := s.Generate(gens, count, seed)
	if err != nil {
		return nil, err
	}
	s.setData(res.Records)
	return res.Records, nil
}

// SeedSchema is GenerateSchema plus keeping the records for export.
func (s *Seeder) SeedSchema(schema *domain.Schema, count *int, seed *int64) (*Result, error) {
	res, err := s.GenerateSchema(schema, count, seed)
	if err != nil {
		return nil, err
	}
	s.setData(res.Records)
	return res, nil
}

// LoadSchema finds a schema by ID or name, falling back to a path relative
// to the schemas directory.
func (s *Seeder) LoadSchema(ref string) (*domain.Schema, error) {
	if s.schemaRepo == nil {
		return nil, errors.New("no schema repository configured")
	}
	schema, err := s.schemaRepo.Get(ref)
	if err == nil {
		return schema, nil
	}
	if !errors.Is(err, schemas.ErrNotFound) {
		return nil, err
	}
	schema, perr := s.schemaRepo.GetByPath(ref)
	if perr != nil {
		return nil, fmt.Errorf("%w (%v)", err, perr)
	}
	return schema, nil
}

func (s *Seeder) ListSchemas() ([]*domain.Schema, error) {
	if s.schemaRepo == nil {
		return nil, errors.New("no schema repository configured")
	}
	return s.schemaRepo.List()
}

func (s *Seeder) Data() domain.RecordSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *Seeder) setData(rs domain.RecordSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = rs
}

func (s *Seeder) ExportJSON(filename string) (string, error) {
	return s.export(filename, func(f *export.Files, rs domain.RecordSet) (string, error) {
		return f.JSON(filename, rs)
	})
}

func (s *Seeder) ExportCSV(filename string) (string, error) {
	return s.export(filename, func(f *export.Files, rs domain.RecordSet) (string, error) {
		return f.CSV(filename, rs)
	})
}

func (s *Seeder) ExportSQL(filename, table, dialect string) (string, error) {
	return s.export(filename, func(f *export.Files, rs domain.RecordSet) (string, error) {
		return f.SQL(filename, rs, table, dialect)
	})
}

func (s *Seeder) ExportSQLite(filename, table string) (string, error) {
	return s.export(filename, func(f *export.Files, rs domain.RecordSet) (string, error) {
		return f.SQLite(filename, rs, table)
	})
}

// Export writes the kept data in one of the domain formats.
func (s *Seeder) Export(format, filename, table, dialect string) (string, error) {
	switch format {
	case domain.FormatJSON:
		return s.ExportJSON(filename)
	case domain.FormatCSV:
		return s.ExportCSV(filename)
	case domain.FormatSQL:
		return s.ExportSQL(filename, table, dialect)
	case domain.FormatSQLite:
		return s.ExportSQLite(filename, table)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *Seeder) export(filename string, write func(*export.Files, domain.RecordSet) (string, error)) (string, error) {
	rs := s.Data()
	if len(rs) == 0 {
		return "", export.ErrNoData
	}
	if s.files == nil {
		return "", errors.New("no export directory configured")
	}
	path, err := write(s.files, rs)
	if err != nil {
		return "", err
	}
	s.logger.Infow("export.written", map[string]any{"path": path, "records": len(rs)})
	return path, nil
}

func (s *Seeder) fingerprint(res *Result, specs []domain.FieldSpec, count int) error {
	fh, err := hashing.HashFields(specs)
	if err != nil {
		return fmt.Errorf("failed to hash fields: %w", err)
	}
	rh, err := hashing.HashRun(fh, count, res.Seed)
	if err != nil {
		return fmt.Errorf("failed to hash run: %w", err)
	}
	res.FieldsHash = fh
	res.RunHash = rh
	return nil
}

func resolveSeed(override, fallback *int64) int64 {
	if override != nil {
		return *override
	}
	if fallback != nil {
		return *fallback
	}
	return exec.RandomSeed()
}
