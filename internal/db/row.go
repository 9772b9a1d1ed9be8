package db

// Row is an ordered snapshot of one result row. Column order is the
// statement's column order, so hydrating a model from a Row preserves
// field ordering.
type Row struct {
	columns []string
	values  []any
}

// Columns returns the column names in statement order.
func (r *Row) Columns() []string {
	return r.columns
}

// Values returns the values in column order.
func (r *Row) Values() []any {
	return r.values
}

// Get returns the value for the named column.
func (r *Row) Get(name string) (any, bool) {
	for i, col := range r.columns {
		if col == name {
			return r.values[i], true
		}
	}
	return nil, false
}

// Int64 returns the named column as an int64, or 0 when absent, NULL,
// or not numeric.
func (r *Row) Int64(name string) int64 {
	v, ok := r.Get(name)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// String returns the named column as a string, or "" when absent or
// NULL.
func (r *Row) String(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}
