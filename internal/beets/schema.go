package beets

import (
	"database/sql"
	"fmt"
	"strings"
)

// field is one declared column of a schema: its name and how to decode it
// into the entity. Each field occupies exactly one position in the
// generated query, in declaration order.
type field[E any] struct {
	name   string
	decode func(r localRow, idx int, e *E) error
}

// col builds a field from a column name, a decoder for the column's
// semantic type, and a setter storing the decoded value on the entity.
func col[E, T any](name string, dec func(localRow, int) (T, error), set func(*E, T)) field[E] {
	return field[E]{
		name: name,
		decode: func(r localRow, idx int, e *E) error {
			v, err := dec(r, idx)
			if err != nil {
				return err
			}
			set(e, v)
			return nil
		},
	}
}

// Schema describes how one entity kind maps onto its table: the table name,
// the ordered field list, and the SELECT text derived from them. Schemas
// are built once at package init and never change.
type Schema[E any] struct {
	table   string
	fields  []field[E]
	columns []string
	query   string
}

func newSchema[E any](table string, fields []field[E]) *Schema[E] {
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.name
	}
	// The primary key is re-selected as a trailing column even though id is
	// already among the declared fields. Kept as-is: dropping it would
	// shift positional binding.
	query := "SELECT " + strings.Join(columns, ", ") + ", id FROM " + table

	return &Schema[E]{
		table:   table,
		fields:  fields,
		columns: columns,
		query:   query,
	}
}

// Table returns the table name the schema reads from.
func (s *Schema[E]) Table() string {
	return s.table
}

// Columns returns the declared column names in query order, excluding the
// trailing repeated id column.
func (s *Schema[E]) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Query returns the generated column-selection SQL.
func (s *Schema[E]) Query() string {
	return s.query
}

// bind decodes one raw row into an entity. The first field failure aborts
// the row.
func (s *Schema[E]) bind(raw rawRow) (E, error) {
	var e E
	for i, f := range s.fields {
		r := localRow{row: raw, tc: TableColumn{Table: s.table, Column: f.name}}
		if err := f.decode(r, i, &e); err != nil {
			return e, err
		}
	}
	return e, nil
}

// Read executes the schema's query against db and binds every row, in
// result order. The first failure aborts the read; rows already bound are
// discarded.
func Read[E any](db *sql.DB, s *Schema[E]) ([]E, error) {
	rows, err := db.Query(s.query)
	if err != nil {
		return nil, queryError(s.table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, queryError(s.table, err)
	}
	// Declared fields plus the trailing id. A mismatch is a schema
	// declaration bug, not a data error.
	if len(names) != len(s.fields)+1 {
		panic(fmt.Sprintf("beets: schema %q declares %d fields but query returns %d columns",
			s.table, len(s.fields), len(names)))
	}

	var out []E
	raw := make(rawRow, len(names))
	ptrs := make([]any, len(names))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &Error{Kind: KindUnknown, Err: err}
		}
		e, err := s.bind(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	// Iteration failures are driver errors this layer cannot classify;
	// they pass through with their own text.
	if err := rows.Err(); err != nil {
		return nil, &Error{Kind: KindUnknown, Err: err}
	}
	return out, nil
}
