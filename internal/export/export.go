// Package export renders record sets as JSON, CSV and SQL, and writes them
// into an export directory.
package export

import (
	"errors"
	"fmt"
)

var ErrNoData = errors.New("no data to export")

// stringValue is the default string form used by CSV cells and naive SQL
// literals. nil renders as the empty string.
func stringValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
