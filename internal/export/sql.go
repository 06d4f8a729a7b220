package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/validation"
)

// WriteSQL writes a single multi-row INSERT statement for rs.
//
// DialectNaive (the default) wraps every value in single quotes as '%v'
// without escaping, so values containing a quote yield invalid SQL; nil is
// written as NULL. DialectPostgres quotes identifiers and string literals and
// leaves numbers and booleans bare.
func WriteSQL(w io.Writer, rs domain.RecordSet, table, dialect string) error {
	if len(rs) == 0 {
		return ErrNoData
	}
	if !validation.IsValidIdentifier(table) {
		return fmt.Errorf("invalid table identifier: %q", table)
	}

	var render func(interface{}) squirrel.Sqlizer
	columns := rs.Columns()
	switch dialect {
	case "", domain.DialectNaive:
		render = naiveValue
	case domain.DialectPostgres:
		render = postgresValue
		table = pq.QuoteIdentifier(table)
		quoted := make([]string, len(columns))
		for i, col := range columns {
			quoted[i] = pq.QuoteIdentifier(col)
		}
		columns = quoted
	default:
		return fmt.Errorf("unsupported dialect: %s", dialect)
	}

	q := squirrel.Insert(table).Columns(columns...)
	keys := rs.Columns()
	for _, rec := range rs {
		row := make([]interface{}, len(keys))
		for i, k := range keys {
			v, _ := rec.Get(k)
			row[i] = render(v)
		}
		q = q.Values(row...)
	}

	stmt, args, err := q.ToSql()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected bound arguments in export statement: %d", len(args))
	}
	_, err = io.WriteString(w, stmt+";\n")
	return err
}

func naiveValue(v interface{}) squirrel.Sqlizer {
	if v == nil {
		return squirrel.Expr("NULL")
	}
	return squirrel.Expr(fmt.Sprintf("'%v'", v))
}

func postgresValue(v interface{}) squirrel.Sqlizer {
	switch val := v.(type) {
	case nil:
		return squirrel.Expr("NULL")
	case bool:
		if val {
			return squirrel.Expr("TRUE")
		}
		return squirrel.Expr("FALSE")
	case int:
		return squirrel.Expr(strconv.Itoa(val))
	case int64:
		return squirrel.Expr(strconv.FormatInt(val, 10))
	case float64:
		return squirrel.Expr(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return squirrel.Expr(pq.QuoteLiteral(stringValue(v)))
	}
}
