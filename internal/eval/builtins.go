package eval

import "github.com/vivian-lang/vivian/internal/symbols"

// Built-in functions are resolved by *symbols.FunctionSymbol identity,
// never by name (spec.md §6) — these three package-level sentinels are
// the only values CallExpression.Function can point to for a built-in
// call; a binder wiring up calls against these exact pointers is what
// makes a CallExpression "a call to input/print/rnd".
var (
	BuiltinInput = symbols.NewFunctionSymbol("input", nil, symbols.TypeString)

	BuiltinPrint = symbols.NewFunctionSymbol("print", []*symbols.VariableSymbol{
		symbols.NewVariableSymbol("value", symbols.TypeObject, true, symbols.Parameter),
	}, symbols.TypeObject)

	BuiltinRnd = symbols.NewFunctionSymbol("rnd", []*symbols.VariableSymbol{
		symbols.NewVariableSymbol("max", symbols.TypeInt, true, symbols.Parameter),
	}, symbols.TypeInt)
)

// isBuiltin reports whether fn is one of the three builtin sentinels.
func isBuiltin(fn *symbols.FunctionSymbol) bool {
	return fn == BuiltinInput || fn == BuiltinPrint || fn == BuiltinRnd
}
