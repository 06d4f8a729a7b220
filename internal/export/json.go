package export

import (
	"encoding/json"
	"io"

	"github.com/mmrzaf/seeder/internal/domain"
)

// WriteJSON writes rs as an indented array of objects with keys in record
// order.
func WriteJSON(w io.Writer, rs domain.RecordSet) error {
	if len(rs) == 0 {
		return ErrNoData
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rs)
}
