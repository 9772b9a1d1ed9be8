package query

// Values is an ordered column→value map. Columns keep insertion order
// so placeholders and bind arguments always line up.
type Values struct {
	columns []string
	values  map[string]any
}

// NewValues returns an empty Values.
func NewValues() *Values {
	return &Values{values: make(map[string]any)}
}

// Set adds or replaces a column value. A replaced column keeps its
// original position.
func (v *Values) Set(column string, value any) *Values {
	if _, ok := v.values[column]; !ok {
		v.columns = append(v.columns, column)
	}
	v.values[column] = value
	return v
}

// Get returns the value for column.
func (v *Values) Get(column string) (any, bool) {
	value, ok := v.values[column]
	return value, ok
}

// Columns returns the column names in insertion order.
func (v *Values) Columns() []string {
	cols := make([]string, len(v.columns))
	copy(cols, v.columns)
	return cols
}

// Args returns the values in column order.
func (v *Values) Args() []any {
	args := make([]any, 0, len(v.columns))
	for _, col := range v.columns {
		args = append(args, v.values[col])
	}
	return args
}

// Len returns the number of columns.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.columns)
}
