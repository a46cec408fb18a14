// Package bound defines the lowered, type-checked intermediate
// representation ("bound tree") that an external binder is assumed to
// hand the evaluator and pretty-printer. Every node is immutable once
// constructed and tagged by a Kind() value from a closed enumeration —
// that tag is the only switch key either consumer needs.
package bound

import "github.com/vivian-lang/vivian/internal/symbols"

// NodeKind is the closed set of bound-tree node tags.
type NodeKind uint8

const (
	KindLiteralExpression NodeKind = iota
	KindVariableExpression
	KindAssignmentExpression
	KindUnaryExpression
	KindBinaryExpression
	KindCallExpression
	KindConversionExpression
	KindErrorExpression

	KindBlockStatement
	KindExpressionStatement
	KindVariableDeclaration
	KindIfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindLabelStatement
	KindGotoStatement
	KindConditionalGotoStatement
	KindReturnStatement
)

func (k NodeKind) String() string {
	switch k {
	case KindLiteralExpression:
		return "LiteralExpression"
	case KindVariableExpression:
		return "VariableExpression"
	case KindAssignmentExpression:
		return "AssignmentExpression"
	case KindUnaryExpression:
		return "UnaryExpression"
	case KindBinaryExpression:
		return "BinaryExpression"
	case KindCallExpression:
		return "CallExpression"
	case KindConversionExpression:
		return "ConversionExpression"
	case KindErrorExpression:
		return "ErrorExpression"
	case KindBlockStatement:
		return "BlockStatement"
	case KindExpressionStatement:
		return "ExpressionStatement"
	case KindVariableDeclaration:
		return "VariableDeclaration"
	case KindIfStatement:
		return "IfStatement"
	case KindWhileStatement:
		return "WhileStatement"
	case KindDoWhileStatement:
		return "DoWhileStatement"
	case KindForStatement:
		return "ForStatement"
	case KindLabelStatement:
		return "LabelStatement"
	case KindGotoStatement:
		return "GotoStatement"
	case KindConditionalGotoStatement:
		return "ConditionalGotoStatement"
	case KindReturnStatement:
		return "ReturnStatement"
	default:
		return "Unknown"
	}
}

// Node is the root interface every bound-tree node implements.
type Node interface {
	Kind() NodeKind
}

// Expression is any node that produces a value; every variant carries a
// resolved Type.
type Expression interface {
	Node
	ExprType() symbols.Type
}

// Statement is any node that performs an action.
type Statement interface {
	Node
}
