package export

import (
	"encoding/csv"
	"io"

	"github.com/mmrzaf/seeder/internal/domain"
)

// WriteCSV writes a header row with the first record's keys and one row per
// record.
func WriteCSV(w io.Writer, rs domain.RecordSet) error {
	if len(rs) == 0 {
		return ErrNoData
	}
	columns := rs.Columns()

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, rec := range rs {
		for i, col := range columns {
			v, _ := rec.Get(col)
			row[i] = stringValue(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
