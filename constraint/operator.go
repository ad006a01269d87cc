package constraint

// Operator enumerates the comparison kinds a [Constraint] can carry. The
// textual form of an operator is the token a query language would use for
// it; providers may print it for debugging but must translate the structured
// tree for execution.
type Operator uint8

// Comparison kinds, one per constraint variant.
const (
	OpEqual Operator = iota
	OpNotEqual
	OpGreaterThan
	OpGreaterThanEqual
	OpLessThan
	OpLessThanEqual
	OpLike
	OpNotLike
	OpIn
	OpNotIn
	OpNull
	OpNotNull
	OpBetween
	OpNotBetween
)

// Negate returns the operator that accepts exactly the values this operator
// rejects. Negation is a total involution: for every operator,
// op.Negate().Negate() == op.
func (o Operator) Negate() Operator {
	switch o {
	case OpEqual:
		return OpNotEqual
	case OpNotEqual:
		return OpEqual
	case OpGreaterThan:
		return OpLessThanEqual
	case OpGreaterThanEqual:
		return OpLessThan
	case OpLessThan:
		return OpGreaterThanEqual
	case OpLessThanEqual:
		return OpGreaterThan
	case OpLike:
		return OpNotLike
	case OpNotLike:
		return OpLike
	case OpIn:
		return OpNotIn
	case OpNotIn:
		return OpIn
	case OpNull:
		return OpNotNull
	case OpNotNull:
		return OpNull
	case OpBetween:
		return OpNotBetween
	case OpNotBetween:
		return OpBetween
	}
	return o
}

// String returns the query-language token for the operator.
func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "<>"
	case OpGreaterThan:
		return ">"
	case OpGreaterThanEqual:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessThanEqual:
		return "<="
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpIn:
		return "IN"
	case OpNotIn:
		return "NOT IN"
	case OpNull:
		return "IS NULL"
	case OpNotNull:
		return "IS NOT NULL"
	case OpBetween:
		return "BETWEEN"
	case OpNotBetween:
		return "NOT BETWEEN"
	}
	return "UNKNOWN"
}
