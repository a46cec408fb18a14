// Package demo hand-builds BoundProgram fixtures for the cmd/vivian CLI
// and for the evaluator's end-to-end tests, standing in for the parser
// and binder this repository does not implement (spec.md §1's Non-goals
// — parsing and binding are external collaborators).
package demo

import (
	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/eval"
	"github.com/vivian-lang/vivian/internal/symbols"
)

// printBuiltin is the print() sentinel every fixture's print calls point
// at (spec.md §6 — builtins are resolved by symbol identity, not name).
var printBuiltin = eval.BuiltinPrint

// Names is the ordered list of fixtures the CLI accepts.
var Names = []string{"s1", "s2", "s3", "s4", "s5-string-true", "s5-int-false", "s5-int-maybe"}

// Build returns the BoundProgram and the globals map to evaluate it
// against for the named fixture, or false if name is unknown.
func Build(name string) (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	switch name {
	case "s1":
		return s1()
	case "s2":
		return s2()
	case "s3":
		return s3()
	case "s4":
		return s4()
	case "s5-string-true":
		return s5StringTrue()
	case "s5-int-false":
		return s5IntFalse()
	case "s5-int-maybe":
		return s5IntMaybe()
	default:
		return nil, nil, false
	}
}

func fixedBinary(kind bound.OperatorKind, t symbols.Type) bound.BinaryOperator {
	typ := t
	return bound.BinaryOperator{Kind: kind, LeftOperandType: t, RightOperandType: t, Type: &typ}
}

func intLit(v int64) *bound.LiteralExpression  { return bound.NewLiteral(v, symbols.TypeInt) }
func strLit(v string) *bound.LiteralExpression { return bound.NewLiteral(v, symbols.TypeString) }
func boolLit(v bool) *bound.LiteralExpression  { return bound.NewLiteral(v, symbols.TypeBool) }

// s1 builds `let x = 2 + 3 * 4; print(x)` — expects x == 14, output "14\n".
func s1() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	x := symbols.NewVariableSymbol("x", symbols.TypeInt, true, symbols.GlobalVariable)

	mul := bound.NewBinary(intLit(3), fixedBinary(bound.OpMultiply, symbols.TypeInt), intLit(4), symbols.TypeInt)
	add := bound.NewBinary(intLit(2), fixedBinary(bound.OpAdd, symbols.TypeInt), mul, symbols.TypeInt)

	decl := bound.NewVariableDeclaration(x, add)
	printX := bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{bound.NewVariable(x)}))

	return program(bound.NewBlock(decl, printX)), map[*symbols.VariableSymbol]any{}, true
}

// s2 builds `imply i = 0; while i < 3 { print(i); i = i + 1 }`, lowered to
// labels/gotos — expects output "0\n1\n2\n".
func s2() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	i := symbols.NewVariableSymbol("i", symbols.TypeInt, false, symbols.GlobalVariable)
	loopStart := symbols.NewBoundLabel("loopStart")
	loopEnd := symbols.NewBoundLabel("loopEnd")

	cond := bound.NewBinary(bound.NewVariable(i), fixedBinary(bound.OpLess, symbols.TypeInt), intLit(3), symbols.TypeBool)
	incr := bound.NewBinary(bound.NewVariable(i), fixedBinary(bound.OpAdd, symbols.TypeInt), intLit(1), symbols.TypeInt)

	body := bound.NewBlock(
		bound.NewVariableDeclaration(i, intLit(0)),
		bound.NewLabel(loopStart),
		bound.NewConditionalGoto(loopEnd, cond, false),
		bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{bound.NewVariable(i)})),
		bound.NewExpressionStatement(bound.NewAssignment(i, incr)),
		bound.NewGoto(loopStart),
		bound.NewLabel(loopEnd),
	)

	return program(body), map[*symbols.VariableSymbol]any{}, true
}

// s3 builds `if 1 < 2 { print("a") } else { print("b") }`, lowered to a
// conditional goto over an else branch — expects output "a\n".
func s3() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	elseLabel := symbols.NewBoundLabel("else")
	endLabel := symbols.NewBoundLabel("end")

	cond := bound.NewBinary(intLit(1), fixedBinary(bound.OpLess, symbols.TypeInt), intLit(2), symbols.TypeBool)

	body := bound.NewBlock(
		bound.NewConditionalGoto(elseLabel, cond, false),
		bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{strLit("a")})),
		bound.NewGoto(endLabel),
		bound.NewLabel(elseLabel),
		bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{strLit("b")})),
		bound.NewLabel(endLabel),
	)

	return program(body), map[*symbols.VariableSymbol]any{}, true
}

// s4 builds `function add(a: Int, b: Int): Int { return a + b }` called as
// `print(add(40, 2))` — expects output "42\n".
func s4() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	a := symbols.NewVariableSymbol("a", symbols.TypeInt, true, symbols.Parameter)
	b := symbols.NewVariableSymbol("b", symbols.TypeInt, true, symbols.Parameter)
	addFn := symbols.NewFunctionSymbol("add", []*symbols.VariableSymbol{a, b}, symbols.TypeInt)

	addBody := bound.NewBlock(
		bound.NewReturn(bound.NewBinary(bound.NewVariable(a), fixedBinary(bound.OpAdd, symbols.TypeInt), bound.NewVariable(b), symbols.TypeInt)),
	)

	scriptFn := symbols.NewFunctionSymbol("$script", nil, symbols.TypeObject)
	call := bound.NewCall(addFn, []bound.Expression{intLit(40), intLit(2)})
	scriptBody := bound.NewBlock(
		bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{call})),
	)

	prog := bound.NewProgram(nil, scriptFn, map[*symbols.FunctionSymbol]*bound.BlockStatement{
		scriptFn: scriptBody,
		addFn:    addBody,
	}, nil)
	return prog, map[*symbols.VariableSymbol]any{}, true
}

// s5StringTrue builds `print(string(true))` — expects output "true\n".
func s5StringTrue() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	conv := bound.NewConversion(symbols.TypeString, boolLit(true))
	body := bound.NewBlock(bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{conv})))
	return program(body), map[*symbols.VariableSymbol]any{}, true
}

// s5IntFalse builds `print(int("false"))` — expects output "0\n".
func s5IntFalse() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	conv := bound.NewConversion(symbols.TypeInt, strLit("false"))
	body := bound.NewBlock(bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{conv})))
	return program(body), map[*symbols.VariableSymbol]any{}, true
}

// s5IntMaybe builds `print(int("maybe"))` — expects a ConversionError.
func s5IntMaybe() (*bound.BoundProgram, map[*symbols.VariableSymbol]any, bool) {
	conv := bound.NewConversion(symbols.TypeInt, strLit("maybe"))
	body := bound.NewBlock(bound.NewExpressionStatement(bound.NewCall(printBuiltin, []bound.Expression{conv})))
	return program(body), map[*symbols.VariableSymbol]any{}, true
}

func program(body *bound.BlockStatement) *bound.BoundProgram {
	scriptFn := symbols.NewFunctionSymbol("$script", nil, symbols.TypeObject)
	return bound.NewProgram(nil, scriptFn, map[*symbols.FunctionSymbol]*bound.BlockStatement{
		scriptFn: body,
	}, nil)
}
