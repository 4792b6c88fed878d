package beets

import "fmt"

// Kind classifies where a read failed.
type Kind int

const (
	// KindUnknown wraps any other driver error transparently: the error
	// text is the wrapped error's own.
	KindUnknown Kind = iota
	// KindOpen means opening the database connection failed.
	KindOpen
	// KindQuery means preparing or executing a table's query failed.
	KindQuery
	// KindRow means decoding a specific column of a row failed.
	KindRow
)

// TableColumn identifies the table and column a row error belongs to.
// It is diagnostic context only and is never persisted.
type TableColumn struct {
	Table  string
	Column string
}

// Error is the single error type returned by every fallible operation in
// this package. It carries the underlying driver error and a Kind saying
// which phase failed.
type Error struct {
	Kind Kind
	Ctx  TableColumn // Table set for KindQuery, Table+Column for KindRow
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRow:
		return fmt.Sprintf("failed to get column %q in table %q", e.Ctx.Column, e.Ctx.Table)
	case KindOpen:
		return "failed to open database"
	case KindQuery:
		if e.Ctx.Table != "" {
			return fmt.Sprintf("failed to query table %q", e.Ctx.Table)
		}
		return "failed to query database"
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func rowError(tc TableColumn, err error) *Error {
	return &Error{Kind: KindRow, Ctx: tc, Err: err}
}

func queryError(table string, err error) *Error {
	return &Error{Kind: KindQuery, Ctx: TableColumn{Table: table}, Err: err}
}
