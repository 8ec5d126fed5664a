package translator

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Row is one result row addressed by column name. Lookups ignore case since
// unquoted identifiers come back folded by most databases.
type Row map[string]sql.NullString

// ErrMissingColumn is wrapped when the configured statement does not select a
// column the mapping needs.
var ErrMissingColumn = errors.New("column not found in result")

// NewRow builds a Row from parallel column and value slices.
func NewRow(columns []string, values []sql.NullString) Row {
	r := make(Row, len(columns))
	for i, col := range columns {
		r[strings.ToLower(col)] = values[i]
	}
	return r
}

// Value returns the column value; absent means SQL NULL.
func (r Row) Value(column string) (sql.NullString, error) {
	v, ok := r[strings.ToLower(column)]
	if !ok {
		return sql.NullString{}, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	return v, nil
}

// String returns the column value, with NULL as the empty string.
func (r Row) String(column string) (string, error) {
	v, err := r.Value(column)
	return v.String, err
}

// Optional returns the column value, with NULL as nil.
func (r Row) Optional(column string) (*string, error) {
	v, err := r.Value(column)
	if err != nil || !v.Valid {
		return nil, err
	}
	s := v.String
	return &s, nil
}

// datePatterns are the input patterns of the date columns the mapper
// normalizes. A typed date in one of these columns is rendered in its pattern.
var datePatterns = map[string]string{
	strings.ToLower(ColCreatiedatum):     CreatiedatumPattern,
	strings.ToLower(ColRegistratiedatum): RegistratiedatumPattern,
}

// TimestampLayout renders typed dates in columns that are passed through.
const TimestampLayout = "2006-01-02 15:04:05"

func scanRow(rows *sql.Rows, columns []string) (Row, error) {
	raw := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	values := make([]sql.NullString, len(columns))
	for i, v := range raw {
		values[i] = columnText(columns[i], v)
	}
	return NewRow(columns, values), nil
}

// columnText renders a scanned value as text. Drivers return time.Time for
// timestamp and date columns; those are formatted in the pattern the column is
// normalized from, so they read the same as text columns do.
func columnText(column string, v any) sql.NullString {
	switch v := v.(type) {
	case nil:
		return sql.NullString{}
	case string:
		return sql.NullString{String: v, Valid: true}
	case []byte:
		return sql.NullString{String: string(v), Valid: true}
	case time.Time:
		layout := TimestampLayout
		if pattern, ok := datePatterns[strings.ToLower(column)]; ok {
			if l, err := layoutFor(pattern); err == nil {
				layout = l
			}
		}
		return sql.NullString{String: v.Format(layout), Valid: true}
	default:
		return sql.NullString{String: fmt.Sprint(v), Valid: true}
	}
}
