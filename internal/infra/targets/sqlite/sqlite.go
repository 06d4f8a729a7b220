package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/seeder/internal/domain"
)

// Target writes record sets into a SQLite database file.
type Target struct {
	path string
	db   *sql.DB
}

func NewTarget(path string) *Target {
	return &Target{path: path}
}

func (t *Target) Connect() error {
	db, err := sql.Open("sqlite3", t.path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	t.db = db
	return nil
}

func (t *Target) Close() error {
	if t.db != nil {
		err := t.db.Close()
		t.db = nil
		return err
	}
	return nil
}

func (t *Target) DB() *sql.DB {
	return t.db
}

// CreateTable creates table with one column per key of the first record.
// Column types come from the first non-nil value seen for each column.
func (t *Target) CreateTable(table string, rs domain.RecordSet) error {
	if t.db == nil {
		return errors.New("sqlite target is not connected")
	}
	columns := rs.Columns()
	if len(columns) == 0 {
		return errors.New("cannot create a table without columns")
	}

	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		columnDefs[i] = fmt.Sprintf("%s %s", pq.QuoteIdentifier(col), columnType(rs, col))
	}

	createSQL := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		pq.QuoteIdentifier(table), strings.Join(columnDefs, ", "))

	_, err := t.db.Exec(createSQL)
	return err
}

func columnType(rs domain.RecordSet, col string) string {
	for _, rec := range rs {
		v, _ := rec.Get(col)
		switch v.(type) {
		case nil:
			continue
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
			return "INTEGER"
		case float32, float64:
			return "REAL"
		default:
			return "TEXT"
		}
	}
	return "TEXT"
}

// InsertRecords inserts every record in one transaction through a single
// prepared statement.
func (t *Target) InsertRecords(table string, rs domain.RecordSet) error {
	if t.db == nil {
		return errors.New("sqlite target is not connected")
	}
	if len(rs) == 0 {
		return nil
	}

	columns := rs.Columns()
	quoted := make([]string, len(columns))
	placeholders := make([]interface{}, len(columns))
	for i, col := range columns {
		quoted[i] = pq.QuoteIdentifier(col)
	}

	insertSQL, _, err := squirrel.Insert(pq.QuoteIdentifier(table)).
		Columns(quoted...).
		Values(placeholders...).
		ToSql()
	if err != nil {
		return err
	}

	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range rs {
		args := make([]interface{}, len(columns))
		for j, col := range columns {
			val, _ := rec.Get(col)
			args[j] = toSQLiteValue(val)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func toSQLiteValue(val interface{}) interface{} {
	switch v := val.(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return val
	}
}

// WriteRecordSet creates table if needed and inserts rs, opening and
// closing the database around the work.
func (t *Target) WriteRecordSet(table string, rs domain.RecordSet) (err error) {
	if err := t.Connect(); err != nil {
		return fmt.Errorf("failed to open %s: %w", t.path, err)
	}
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()

	if err := t.CreateTable(table, rs); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	if err := t.InsertRecords(table, rs); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}
