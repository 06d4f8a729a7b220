package runs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/seeder/internal/domain"
)

var ErrNotFound = errors.New("run not found")

// Repository stores the generation history.
type Repository interface {
	Create(run *domain.Run) error
	Get(id string) (*domain.Run, error)
	List(limit int, status string) ([]*domain.Run, error)
	Close() error
}

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "postgres"
)

var createTable = map[string]string{
	driverSQLite: `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		schema_id TEXT,
		schema_name TEXT,
		origin TEXT NOT NULL,
		seed INTEGER NOT NULL,
		count INTEGER NOT NULL,
		fields_hash TEXT,
		run_hash TEXT,
		status TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP,
		error TEXT
	)`,
	driverPostgres: `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		schema_id TEXT,
		schema_name TEXT,
		origin TEXT NOT NULL,
		seed BIGINT NOT NULL,
		count INTEGER NOT NULL,
		fields_hash TEXT,
		run_hash TEXT,
		status TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		error TEXT
	)`,
}

var columns = []string{
	"id", "schema_id", "schema_name", "origin", "seed", "count",
	"fields_hash", "run_hash", "status", "started_at", "completed_at", "error",
}

// SQLRepository keeps runs in SQLite or PostgreSQL.
type SQLRepository struct {
	driver string
	dsn    string
	db     *sql.DB
	sb     squirrel.StatementBuilderType
}

// Open picks the driver from dsn: postgres:// and postgresql:// URLs go to
// PostgreSQL, anything else is a SQLite file path.
func Open(dsn string) (*SQLRepository, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("history db is required")
	}
	var repo *SQLRepository
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		repo = NewPostgresRepository(dsn)
	} else {
		repo = NewSQLiteRepository(dsn)
	}
	if err := repo.Init(); err != nil {
		return nil, err
	}
	return repo, nil
}

func NewSQLiteRepository(path string) *SQLRepository {
	return &SQLRepository{
		driver: driverSQLite,
		dsn:    path,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func NewPostgresRepository(dsn string) *SQLRepository {
	return &SQLRepository{
		driver: driverPostgres,
		dsn:    dsn,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *SQLRepository) Init() error {
	if r.driver == driverSQLite && r.dsn != ":memory:" {
		if dir := filepath.Dir(r.dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create history directory: %w", err)
			}
		}
	}
	db, err := sql.Open(r.driver, r.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	if _, err := db.Exec(createTable[r.driver]); err != nil {
		_ = db.Close()
		return err
	}
	r.db = db
	return nil
}

func (r *SQLRepository) DB() *sql.DB { return r.db }

func (r *SQLRepository) Create(run *domain.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	var completedAt interface{}
	if run.CompletedAt != nil {
		completedAt = run.CompletedAt.UTC()
	}
	query, args, err := r.sb.Insert("runs").Columns(columns...).Values(
		run.ID, run.SchemaID, run.SchemaName, run.Origin, run.Seed, run.Count,
		run.FieldsHash, run.RunHash, string(run.Status), run.StartedAt.UTC(), completedAt, run.Error,
	).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(query, args...)
	return err
}

func (r *SQLRepository) Get(id string) (*domain.Run, error) {
	query, args, err := r.sb.Select(columns...).From("runs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	run, err := scanRun(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, err
}

// List returns the newest runs first. A zero limit lists everything and an
// empty status matches every status.
func (r *SQLRepository) List(limit int, status string) ([]*domain.Run, error) {
	q := r.sb.Select(columns...).From("runs").OrderBy("started_at DESC")
	if status != "" {
		q = q.Where(squirrel.Eq{"status": status})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*domain.Run, error) {
	var (
		run         domain.Run
		schemaID    sql.NullString
		schemaName  sql.NullString
		fieldsHash  sql.NullString
		runHash     sql.NullString
		status      string
		completedAt sql.NullTime
		errMsg      sql.NullString
	)
	err := s.Scan(
		&run.ID, &schemaID, &schemaName, &run.Origin, &run.Seed, &run.Count,
		&fieldsHash, &runHash, &status, &run.StartedAt, &completedAt, &errMsg,
	)
	if err != nil {
		return nil, err
	}
	run.SchemaID = schemaID.String
	run.SchemaName = schemaName.String
	run.FieldsHash = fieldsHash.String
	run.RunHash = runHash.String
	run.Status = domain.RunStatus(status)
	run.Error = errMsg.String
	if completedAt.Valid {
		t := completedAt.Time
		run.CompletedAt = &t
	}
	return &run, nil
}

var _ Repository = (*SQLRepository)(nil)

// Finish stamps a run with its outcome.
func Finish(run *domain.Run, err error) {
	now := time.Now().UTC()
	run.CompletedAt = &now
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Error = err.Error()
		return
	}
	run.Status = domain.RunStatusSuccess
}
