// Package query builds parameterized SQL CRUD statements from table
// names, ordered column/value maps, and composable condition trees.
//
// Every value site (VALUES, SET, and WHERE) is emitted as a positional
// `?` placeholder; the values travel in a single argument list in
// left-to-right statement order. Statement text never contains caller
// data.
package query

import "errors"

// Build errors. These are structural and detected before any statement
// reaches storage.
var (
	ErrMissingTableName   = errors.New("query: no table name provided")
	ErrMissingWhereClause = errors.New("query: delete requires a where clause")
)

// Query is a built statement with its bind arguments.
type Query struct {
	Statement string
	Args      []any
}

// Builder renders a statement. Build either returns a complete Query or
// an error, never both.
type Builder interface {
	Build() (Query, error)
}
