package printer

import "github.com/vivian-lang/vivian/internal/bound"

// atomPrecedence is the sentinel precedence given to expressions that
// never need wrapping parentheses on their own account (literals,
// variables, calls, conversions) — no real operator ever binds tighter.
const atomPrecedence = 1 << 30

// precedence returns expr's operator precedence for spec.md §4.5's rule:
// parentheses are emitted around a child only if the parent's precedence
// is >= the child's.
func precedence(expr bound.Expression) int {
	switch e := expr.(type) {
	case *bound.UnaryExpression:
		return 6
	case *bound.BinaryExpression:
		return binaryPrecedence(e.Op.Kind)
	default:
		return atomPrecedence
	}
}

func binaryPrecedence(kind bound.OperatorKind) int {
	switch kind {
	case bound.OpMultiply, bound.OpDivide, bound.OpModulo:
		return 5
	case bound.OpAdd, bound.OpSubtract:
		return 4
	case bound.OpLess, bound.OpLessOrEquals, bound.OpGreater, bound.OpGreaterOrEquals:
		return 3
	case bound.OpEquals, bound.OpNotEquals:
		return 2
	case bound.OpLogicalAnd:
		return 1
	case bound.OpLogicalOr:
		return 0
	default:
		return 0
	}
}

func unaryToken(kind bound.OperatorKind) string {
	switch kind {
	case bound.OpIdentity:
		return "+"
	case bound.OpNegation:
		return "-"
	case bound.OpLogicalNegation:
		return "!"
	default:
		return "?"
	}
}

func binaryToken(kind bound.OperatorKind) string {
	switch kind {
	case bound.OpAdd:
		return "+"
	case bound.OpSubtract:
		return "-"
	case bound.OpMultiply:
		return "*"
	case bound.OpDivide:
		return "/"
	case bound.OpModulo:
		return "%"
	case bound.OpEquals:
		return "=="
	case bound.OpNotEquals:
		return "!="
	case bound.OpLess:
		return "<"
	case bound.OpLessOrEquals:
		return "<="
	case bound.OpGreater:
		return ">"
	case bound.OpGreaterOrEquals:
		return ">="
	case bound.OpLogicalAnd:
		return "&&"
	case bound.OpLogicalOr:
		return "||"
	default:
		return "?"
	}
}
