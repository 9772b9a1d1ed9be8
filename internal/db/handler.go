// Package db owns the SQLite connection and executes built queries.
//
// The handler follows a log-and-swallow policy: build and storage
// errors are logged and collapsed into a false/nil result, so callers
// check the returned value instead of handling errors. All errors are
// terminal for that single operation; there are no retries.
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/smrtypntz/squeeb/internal/query"
)

// Handler owns one database connection for its lifetime. It is not
// safe for concurrent use from multiple goroutines without external
// locking.
type Handler struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the SQLite database at path. The
// caller owns the handler and must Close it.
func Open(path string, logger zerolog.Logger) (*Handler, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	return &Handler{db: sqlDB, log: logger}, nil
}

// OpenMemory opens an in-memory database. Used by tests.
func OpenMemory(logger zerolog.Logger) (*Handler, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	return &Handler{db: sqlDB, log: logger}, nil
}

// Close releases the connection. The handler is unusable afterwards.
func (h *Handler) Close() error {
	return h.db.Close()
}

// DB exposes the underlying connection for schema DDL and tests.
func (h *Handler) DB() *sql.DB {
	return h.db
}

// Exec builds and executes a statement that returns no rows.
func (h *Handler) Exec(b query.Builder) bool {
	q, ok := h.build(b)
	if !ok {
		return false
	}
	return h.ExecRaw(q.Statement, q.Args...)
}

// QueryOne builds and executes a statement, returning the first result
// row or nil.
func (h *Handler) QueryOne(b query.Builder) *Row {
	rows := h.QueryAll(b)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// QueryAll builds and executes a statement, returning all result rows
// or nil.
func (h *Handler) QueryAll(b query.Builder) []*Row {
	q, ok := h.build(b)
	if !ok {
		return nil
	}
	return h.QueryRaw(q.Statement, q.Args...)
}

// ExecRaw executes a raw statement. Used for schema DDL.
func (h *Handler) ExecRaw(stmt string, args ...any) bool {
	if _, err := h.db.Exec(stmt, args...); err != nil {
		h.log.Error().Err(err).Str("statement", stmt).Msg("exec failed")
		return false
	}
	return true
}

// QueryRaw executes a raw query and snapshots every result row.
func (h *Handler) QueryRaw(stmt string, args ...any) []*Row {
	rows, err := h.db.Query(stmt, args...)
	if err != nil {
		h.log.Error().Err(err).Str("statement", stmt).Msg("query failed")
		return nil
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		h.log.Error().Err(err).Str("statement", stmt).Msg("query failed")
		return nil
	}

	var result []*Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			h.log.Error().Err(err).Str("statement", stmt).Msg("scan failed")
			return nil
		}
		result = append(result, &Row{columns: columns, values: values})
	}
	if err := rows.Err(); err != nil {
		h.log.Error().Err(err).Str("statement", stmt).Msg("query failed")
		return nil
	}
	return result
}

func (h *Handler) build(b query.Builder) (query.Query, bool) {
	q, err := b.Build()
	if err != nil {
		h.log.Error().Err(err).Msg("query build failed")
		return query.Query{}, false
	}
	return q, true
}
