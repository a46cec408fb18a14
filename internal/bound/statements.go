package bound

import "github.com/vivian-lang/vivian/internal/symbols"

// BlockStatement groups a sequence of statements. Every statement given
// to the Evaluator lives inside exactly one BlockStatement (the function
// body) — this is the only Statement the evaluator's dispatcher drives
// directly.
type BlockStatement struct {
	Statements []Statement
}

func (s *BlockStatement) Kind() NodeKind { return KindBlockStatement }

// NewBlock constructs a BlockStatement.
func NewBlock(statements ...Statement) *BlockStatement {
	return &BlockStatement{Statements: statements}
}

// ExpressionStatement evaluates Expression for its side effect (and, as
// the block's last statement, its value — script-mode semantics).
type ExpressionStatement struct {
	Expression Expression
}

func (s *ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }

// NewExpressionStatement constructs an ExpressionStatement.
func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr}
}

// VariableDeclaration introduces Symbol, bound to Initializer's value.
type VariableDeclaration struct {
	Symbol      *symbols.VariableSymbol
	Initializer Expression
}

func (s *VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }

// NewVariableDeclaration constructs a VariableDeclaration.
func NewVariableDeclaration(sym *symbols.VariableSymbol, init Expression) *VariableDeclaration {
	return &VariableDeclaration{Symbol: sym, Initializer: init}
}

// IfStatement is present only for pretty-printing; the evaluator only
// ever sees the lowered conditional-goto form produced from it.
type IfStatement struct {
	Condition Expression
	Then      Statement
	Else      Statement // nil if absent
}

func (s *IfStatement) Kind() NodeKind { return KindIfStatement }

// NewIf constructs an IfStatement.
func NewIf(cond Expression, then, els Statement) *IfStatement {
	return &IfStatement{Condition: cond, Then: then, Else: els}
}

// WhileStatement is present only for pretty-printing.
type WhileStatement struct {
	Condition Expression
	Body      Statement
}

func (s *WhileStatement) Kind() NodeKind { return KindWhileStatement }

// NewWhile constructs a WhileStatement.
func NewWhile(cond Expression, body Statement) *WhileStatement {
	return &WhileStatement{Condition: cond, Body: body}
}

// DoWhileStatement is present only for pretty-printing.
type DoWhileStatement struct {
	Body      Statement
	Condition Expression
}

func (s *DoWhileStatement) Kind() NodeKind { return KindDoWhileStatement }

// NewDoWhile constructs a DoWhileStatement.
func NewDoWhile(body Statement, cond Expression) *DoWhileStatement {
	return &DoWhileStatement{Body: body, Condition: cond}
}

// ForStatement is present only for pretty-printing.
type ForStatement struct {
	Symbol     *symbols.VariableSymbol
	LowerBound Expression
	UpperBound Expression
	Body       Statement
}

func (s *ForStatement) Kind() NodeKind { return KindForStatement }

// NewFor constructs a ForStatement.
func NewFor(sym *symbols.VariableSymbol, lower, upper Expression, body Statement) *ForStatement {
	return &ForStatement{Symbol: sym, LowerBound: lower, UpperBound: upper, Body: body}
}

// LabelStatement marks a jump target. A BoundLabel referenced by any
// goto in the enclosing block appears as exactly one LabelStatement.
type LabelStatement struct {
	Label *symbols.BoundLabel
}

func (s *LabelStatement) Kind() NodeKind { return KindLabelStatement }

// NewLabel constructs a LabelStatement.
func NewLabel(label *symbols.BoundLabel) *LabelStatement {
	return &LabelStatement{Label: label}
}

// GotoStatement transfers control unconditionally to Label.
type GotoStatement struct {
	Label *symbols.BoundLabel
}

func (s *GotoStatement) Kind() NodeKind { return KindGotoStatement }

// NewGoto constructs a GotoStatement.
func NewGoto(label *symbols.BoundLabel) *GotoStatement {
	return &GotoStatement{Label: label}
}

// ConditionalGotoStatement jumps to Label iff (Condition != 0) ==
// JumpIfTrue. This is how the binder lowers && / || / if / while / for —
// the evaluator never short-circuits at this layer.
type ConditionalGotoStatement struct {
	Label      *symbols.BoundLabel
	Condition  Expression
	JumpIfTrue bool
}

func (s *ConditionalGotoStatement) Kind() NodeKind { return KindConditionalGotoStatement }

// NewConditionalGoto constructs a ConditionalGotoStatement.
func NewConditionalGoto(label *symbols.BoundLabel, cond Expression, jumpIfTrue bool) *ConditionalGotoStatement {
	return &ConditionalGotoStatement{Label: label, Condition: cond, JumpIfTrue: jumpIfTrue}
}

// ReturnStatement ends the current function call, optionally with a
// value. Expression is nil for a bare return.
type ReturnStatement struct {
	Expression Expression // nil if absent
}

func (s *ReturnStatement) Kind() NodeKind { return KindReturnStatement }

// NewReturn constructs a ReturnStatement.
func NewReturn(expr Expression) *ReturnStatement {
	return &ReturnStatement{Expression: expr}
}
