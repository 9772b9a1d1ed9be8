package query

import "strings"

// Node is one element of a condition tree: a single Condition or a
// Group of them. Only types in this package implement it.
type Node interface {
	// Render returns the SQL fragment with `?` placeholders, or the
	// empty string when the node is incomplete.
	Render() string
	// Args returns the bind values for the rendered placeholders.
	Args() []any

	node()
}

// Condition is a single `column <op> value` predicate. The zero
// operator is equality. A Condition with an unset column or value
// renders empty and contributes no bind arguments, so incomplete
// conditions disappear from the tree instead of producing malformed
// SQL.
type Condition struct {
	column string
	op     Operator
	value  any
}

// Cond returns an equality condition on column.
func Cond(column string, value any) *Condition {
	return &Condition{column: column, op: OpEq, value: value}
}

// Where starts a condition on column with no value bound yet. Bind one
// with an operator method or SetValue.
func Where(column string) *Condition {
	return &Condition{column: column, op: OpEq}
}

func (c *Condition) set(op Operator, value any) *Condition {
	c.op = op
	c.value = value
	return c
}

func (c *Condition) Eq(value any) *Condition    { return c.set(OpEq, value) }
func (c *Condition) NotEq(value any) *Condition { return c.set(OpNotEq, value) }
func (c *Condition) Gt(value any) *Condition    { return c.set(OpGt, value) }
func (c *Condition) Gte(value any) *Condition   { return c.set(OpGte, value) }
func (c *Condition) Lt(value any) *Condition    { return c.set(OpLt, value) }
func (c *Condition) Lte(value any) *Condition   { return c.set(OpLte, value) }

// SetValue rebinds the value, keeping column and operator. Useful when
// the same condition is executed repeatedly with different bindings.
func (c *Condition) SetValue(value any) *Condition {
	c.value = value
	return c
}

func (c *Condition) Render() string {
	if c.column == "" || c.value == nil {
		return ""
	}
	return c.column + " " + c.op.Symbol() + " ?"
}

func (c *Condition) Args() []any {
	if c.column == "" || c.value == nil {
		return nil
	}
	return []any{c.value}
}

func (c *Condition) node() {}

// Group combines conditions or nested groups with a single junction,
// rendered parenthesized. Members whose rendering is empty are filtered
// out before joining.
type Group struct {
	junction junction
	members  []Node
}

// And returns a group joining members with AND.
func And(members ...Node) *Group {
	return &Group{junction: junctionAnd, members: members}
}

// Or returns a group joining members with OR.
func Or(members ...Node) *Group {
	return &Group{junction: junctionOr, members: members}
}

// Add appends members to the group.
func (g *Group) Add(members ...Node) *Group {
	g.members = append(g.members, members...)
	return g
}

func (g *Group) Render() string {
	parts := make([]string, 0, len(g.members))
	for _, m := range g.members {
		if r := m.Render(); r != "" {
			parts = append(parts, r)
		}
	}
	return "(" + strings.Join(parts, string(g.junction)) + ")"
}

func (g *Group) Args() []any {
	var args []any
	for _, m := range g.members {
		if m.Render() == "" {
			continue
		}
		args = append(args, m.Args()...)
	}
	return args
}

func (g *Group) node() {}
