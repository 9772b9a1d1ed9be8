package query

// Operator is a comparison operator in a condition.
type Operator int

const (
	OpEq Operator = iota
	OpNotEq
	OpGt
	OpGte
	OpLt
	OpLte
)

// Symbol returns the SQL symbol for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpEq:
		return "="
	case OpNotEq:
		return "!="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	}
	return "="
}

// junction joins group members.
type junction string

const (
	junctionAnd junction = " AND "
	junctionOr  junction = " OR "
)
