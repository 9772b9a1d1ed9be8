// Package model provides the row representation shared by every table:
// an insertion-ordered field→value container that can be hydrated from
// a persisted row or from raw audio-file tags.
package model

import (
	"github.com/smrtypntz/squeeb/internal/db"
	"github.com/smrtypntz/squeeb/internal/query"
)

// IDField is the conventional primary-key field name.
const IDField = "id"

// Model is one logical row. It is created empty, populated either from
// tags or from a persisted row, and discarded after use. There is no
// caching and no identity beyond the id field once persisted.
type Model struct {
	fields []string
	values map[string]any
}

// New returns an empty model.
func New() *Model {
	return &Model{values: make(map[string]any)}
}

// Set stores a field value. New fields append to the field order;
// existing fields keep their position.
func (m *Model) Set(field string, value any) {
	if _, ok := m.values[field]; !ok {
		m.fields = append(m.fields, field)
	}
	m.values[field] = value
}

// Get returns the value for field.
func (m *Model) Get(field string) (any, bool) {
	v, ok := m.values[field]
	return v, ok
}

// GetString returns field as a string, or "" when absent or not text.
func (m *Model) GetString(field string) string {
	switch v := m.values[field].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// GetInt64 returns field as an int64, or 0 when absent or not numeric.
func (m *Model) GetInt64(field string) int64 {
	switch v := m.values[field].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Has reports whether field is set.
func (m *Model) Has(field string) bool {
	_, ok := m.values[field]
	return ok
}

// Delete removes field.
func (m *Model) Delete(field string) {
	if _, ok := m.values[field]; !ok {
		return
	}
	delete(m.values, field)
	for i, f := range m.fields {
		if f == field {
			m.fields = append(m.fields[:i], m.fields[i+1:]...)
			break
		}
	}
}

// Fields returns the field names in insertion order.
func (m *Model) Fields() []string {
	fields := make([]string, len(m.fields))
	copy(fields, m.fields)
	return fields
}

// Len returns the number of fields.
func (m *Model) Len() int {
	return len(m.fields)
}

// ID returns the id field value once the model has been persisted.
func (m *Model) ID() (int64, bool) {
	if !m.Has(IDField) {
		return 0, false
	}
	return m.GetInt64(IDField), true
}

// FromRow hydrates the model from a persisted row. Fields present in
// mapping are renamed; everything else keeps the column name. Values
// are stored unchanged.
func (m *Model) FromRow(row *db.Row, mapping map[string]string) {
	cols := row.Columns()
	vals := row.Values()
	for i, col := range cols {
		field := col
		if renamed, ok := mapping[col]; ok {
			field = renamed
		}
		m.Set(field, vals[i])
	}
}

// SetIfPresent copies a tag value into field, but only when the source
// has a non-empty value for sourceField. Multi-valued tags collapse to
// their first element. An empty sourceField means field itself.
func (m *Model) SetIfPresent(field string, source map[string][]string, sourceField string) {
	if sourceField == "" {
		sourceField = field
	}
	values, ok := source[sourceField]
	if !ok || len(values) == 0 || values[0] == "" {
		return
	}
	m.Set(field, values[0])
}

// Values returns the model's fields as an ordered value map for the
// query builders.
func (m *Model) Values() *query.Values {
	v := query.NewValues()
	for _, field := range m.fields {
		v.Set(field, m.values[field])
	}
	return v
}
