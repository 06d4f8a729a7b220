package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/infra/targets/sqlite"
)

// Files writes exports as <dir>/<filename>.<ext>.
type Files struct {
	dir string
}

// NewFiles returns a Files rooted at dir, creating the directory.
func NewFiles(dir string) (*Files, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir %s: %w", abs, err)
	}
	return &Files{dir: abs}, nil
}

func (f *Files) Dir() string {
	return f.dir
}

func (f *Files) JSON(filename string, rs domain.RecordSet) (string, error) {
	return f.write(filename, "json", rs, func(w io.Writer) error {
		return WriteJSON(w, rs)
	})
}

func (f *Files) CSV(filename string, rs domain.RecordSet) (string, error) {
	return f.write(filename, "csv", rs, func(w io.Writer) error {
		return WriteCSV(w, rs)
	})
}

func (f *Files) SQL(filename string, rs domain.RecordSet, table, dialect string) (string, error) {
	return f.write(filename, "sql", rs, func(w io.Writer) error {
		return WriteSQL(w, rs, table, dialect)
	})
}

// SQLite writes rs into table of a fresh database file, replacing any file
// already at the path.
func (f *Files) SQLite(filename string, rs domain.RecordSet, table string) (string, error) {
	if len(rs) == 0 {
		return "", ErrNoData
	}
	path, err := f.path(filename, "db")
	if err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", err
	}
	if err := sqlite.NewTarget(path).WriteRecordSet(table, rs); err != nil {
		return "", err
	}
	return path, nil
}

func (f *Files) path(filename, ext string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid export filename %q", filename)
	}
	return filepath.Join(f.dir, filename+"."+ext), nil
}

// write checks rs before creating the file so an empty export leaves no
// file behind.
func (f *Files) write(filename, ext string, rs domain.RecordSet, render func(io.Writer) error) (path string, err error) {
	if len(rs) == 0 {
		return "", ErrNoData
	}
	path, err = f.path(filename, ext)
	if err != nil {
		return "", err
	}
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(file)
	if err := render(bw); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return path, nil
}
