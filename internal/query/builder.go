package query

import "strings"

// renderWhere renders a condition tree for a WHERE clause. A nil tree,
// or one that renders empty (all members filtered out), counts as
// absent. Bare conditions are parenthesized so WHERE clauses read the
// same whether the tree is a single predicate or a group.
func renderWhere(where Node) (string, []any) {
	if where == nil {
		return "", nil
	}
	r := where.Render()
	if r == "" || r == "()" {
		return "", nil
	}
	if _, ok := where.(*Condition); ok {
		r = "(" + r + ")"
	}
	return r, where.Args()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// InsertBuilder builds `INSERT INTO t (cols) VALUES (placeholders)`.
type InsertBuilder struct {
	table  string
	values *Values
}

// Insert starts an insert into table.
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Values sets the columns and values to insert.
func (b *InsertBuilder) Values(v *Values) *InsertBuilder {
	b.values = v
	return b
}

func (b *InsertBuilder) Build() (Query, error) {
	if b.table == "" {
		return Query{}, ErrMissingTableName
	}
	var cols []string
	var args []any
	if b.values != nil {
		cols = b.values.Columns()
		args = b.values.Args()
	}
	stmt := "INSERT INTO " + b.table +
		" (" + strings.Join(cols, ", ") + ")" +
		" VALUES (" + placeholders(len(cols)) + ")"
	return Query{Statement: stmt, Args: args}, nil
}

// SelectBuilder builds `SELECT cols FROM t [WHERE ...]`.
type SelectBuilder struct {
	table   string
	columns []string
	where   Node
}

// Select starts a select from table. With no explicit columns it
// selects `*`.
func Select(table string) *SelectBuilder {
	return &SelectBuilder{table: table}
}

// Columns sets the columns to select.
func (b *SelectBuilder) Columns(columns ...string) *SelectBuilder {
	b.columns = append(b.columns, columns...)
	return b
}

// Where sets the condition tree.
func (b *SelectBuilder) Where(where Node) *SelectBuilder {
	b.where = where
	return b
}

func (b *SelectBuilder) Build() (Query, error) {
	if b.table == "" {
		return Query{}, ErrMissingTableName
	}
	cols := "*"
	if len(b.columns) > 0 {
		cols = strings.Join(b.columns, ", ")
	}
	stmt := "SELECT " + cols + " FROM " + b.table
	whereStr, whereArgs := renderWhere(b.where)
	if whereStr != "" {
		stmt += " WHERE " + whereStr
	}
	return Query{Statement: stmt, Args: whereArgs}, nil
}

// UpdateBuilder builds `UPDATE t SET col = ?, ... [WHERE ...]`.
type UpdateBuilder struct {
	table  string
	values *Values
	where  Node
}

// Update starts an update of table.
func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set sets the columns and values to update.
func (b *UpdateBuilder) Set(v *Values) *UpdateBuilder {
	b.values = v
	return b
}

// Where sets the condition tree. An update without one touches every
// row; callers almost always want one.
func (b *UpdateBuilder) Where(where Node) *UpdateBuilder {
	b.where = where
	return b
}

func (b *UpdateBuilder) Build() (Query, error) {
	if b.table == "" {
		return Query{}, ErrMissingTableName
	}
	var sets []string
	var args []any
	if b.values != nil {
		for _, col := range b.values.Columns() {
			sets = append(sets, col+" = ?")
		}
		args = b.values.Args()
	}
	stmt := "UPDATE " + b.table + " SET " + strings.Join(sets, ", ")
	whereStr, whereArgs := renderWhere(b.where)
	if whereStr != "" {
		stmt += " WHERE " + whereStr
		args = append(args, whereArgs...)
	}
	return Query{Statement: stmt, Args: args}, nil
}

// DeleteBuilder builds `DELETE FROM t WHERE ...`. The where clause is
// mandatory: a delete without one would drop the whole table.
type DeleteBuilder struct {
	table string
	where Node
}

// Delete starts a delete from table.
func Delete(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

// Where sets the condition tree.
func (b *DeleteBuilder) Where(where Node) *DeleteBuilder {
	b.where = where
	return b
}

func (b *DeleteBuilder) Build() (Query, error) {
	if b.table == "" {
		return Query{}, ErrMissingTableName
	}
	whereStr, whereArgs := renderWhere(b.where)
	if whereStr == "" {
		return Query{}, ErrMissingWhereClause
	}
	stmt := "DELETE FROM " + b.table + " WHERE " + whereStr
	return Query{Statement: stmt, Args: whereArgs}, nil
}
