package eval

import (
	"io"

	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/convert"
	"github.com/vivian-lang/vivian/internal/symbols"
	"github.com/vivian-lang/vivian/internal/verrors"
)

// evalExpr is the pure function over current scopes that spec.md §4.4
// describes: given a bound.Expression it returns a runtime value (one of
// bool, int64, string, or nil for "no value").
func (r *run) evalExpr(expr bound.Expression) (any, error) {
	switch e := expr.(type) {
	case *bound.LiteralExpression:
		return e.Value, nil

	case *bound.VariableExpression:
		return r.lookup(e.Symbol)

	case *bound.AssignmentExpression:
		v, err := r.evalExpr(e.Expression)
		if err != nil {
			return nil, err
		}
		if err := r.assign(e.Symbol, v); err != nil {
			return nil, err
		}
		return v, nil

	case *bound.UnaryExpression:
		return r.evalUnary(e)

	case *bound.BinaryExpression:
		return r.evalBinary(e)

	case *bound.CallExpression:
		return r.evalCall(e)

	case *bound.ConversionExpression:
		v, err := r.evalExpr(e.Expression)
		if err != nil {
			return nil, err
		}
		// convert.Convert already implements every special rule spec.md
		// §4.4 spells out for Conversion nodes (identity to Object,
		// String<->Arithmetic's "true"/"false" rule, Bool->String) — see
		// internal/convert.
		out, err := convert.Convert(e.Expression.ExprType(), e.TargetType, v)
		if err != nil {
			return nil, err
		}
		return out, nil

	case *bound.ErrorExpression:
		return nil, verrors.NewStructuralError("ErrorExpression reached the evaluator; the binder should have filtered it out")

	default:
		return nil, verrors.NewStructuralError("unexpected expression kind %s in evaluator", expr.Kind())
	}
}

// lookup implements spec.md §4.4's Variable(sym) rule.
func (r *run) lookup(sym *symbols.VariableSymbol) (any, error) {
	if sym.Kind == symbols.GlobalVariable {
		v, ok := r.globals[sym]
		if !ok {
			return nil, verrors.NewStructuralError("global variable %q has no binding", sym.Name)
		}
		return v, nil
	}
	v, ok := r.scopes.top()[sym]
	if !ok {
		return nil, verrors.NewStructuralError("local variable %q has no binding", sym.Name)
	}
	return v, nil
}

// evalUnary implements spec.md §4.4's Unary rule, including its
// intentional double conversion (operand into the operator's Type, apply
// Operate, narrow the result back into Type).
func (r *run) evalUnary(e *bound.UnaryExpression) (any, error) {
	x, err := r.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	operandType := e.Operand.ExprType()
	class := convert.Classify(operandType, e.Op.Type)
	if !class.IsImplicit && !class.IsIdentity {
		return nil, verrors.NewStructuralError("unary operand type %s is not implicitly convertible to %s", operandType, e.Op.Type)
	}
	y, err := convert.Convert(operandType, e.Op.Type, x)
	if err != nil {
		return nil, err
	}
	result, err := bound.UnaryOperate(e.Op.Kind, y)
	if err != nil {
		return nil, verrors.NewStructuralError("%s", err.Error())
	}
	// Go's BinaryOperate/UnaryOperate already return a value of exactly
	// e.Op.Type, so this narrowing conversion is a no-op here; it is
	// kept (rather than returning result directly) because it is the
	// spec-mandated step, and a host arithmetic type wider than the
	// declared result type is exactly what it exists to narrow.
	return convert.Convert(e.Op.Type, e.Op.Type, result)
}

// evalBinary implements spec.md §4.4's Binary rule: a polymorphic
// operator (Op.Type == nil) converts both operands into the expression's
// own resolved Type first; a fixed-type operator operates on the
// evaluated operands directly. Short-circuiting is never applied here —
// the binder lowers &&/|| into conditional gotos (spec.md §4.4).
func (r *run) evalBinary(e *bound.BinaryExpression) (any, error) {
	l, err := r.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	rv, err := r.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == nil {
		leftType, rightType := e.Left.ExprType(), e.Right.ExprType()
		if cl := convert.Classify(leftType, e.Type); !cl.IsImplicit && !cl.IsIdentity {
			return nil, verrors.NewStructuralError("left operand type %s is not implicitly convertible to %s", leftType, e.Type)
		}
		if cr := convert.Classify(rightType, e.Type); !cr.IsImplicit && !cr.IsIdentity {
			return nil, verrors.NewStructuralError("right operand type %s is not implicitly convertible to %s", rightType, e.Type)
		}
		l, err = convert.Convert(leftType, e.Type, l)
		if err != nil {
			return nil, err
		}
		rv, err = convert.Convert(rightType, e.Type, rv)
		if err != nil {
			return nil, err
		}
	}

	result, err := bound.BinaryOperate(e.Op.Kind, l, rv)
	if err != nil {
		return nil, verrors.NewStructuralError("%s", err.Error())
	}
	fromType := e.Type
	if e.Op.Type != nil {
		fromType = *e.Op.Type
	}
	return convert.Convert(fromType, e.Type, result)
}

// evalCall implements spec.md §4.4's Call rule: built-ins execute their
// host contract (spec.md §6); user functions push one fresh local scope
// keyed by parameter symbols, recurse into the body, and pop on return.
func (r *run) evalCall(e *bound.CallExpression) (any, error) {
	args := make([]any, len(e.Arguments))
	for i, arg := range e.Arguments {
		v, err := r.evalExpr(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if isBuiltin(e.Function) {
		return r.callBuiltin(e.Function, args)
	}

	body, ok := r.functions[e.Function]
	if !ok {
		return nil, verrors.NewStructuralError("function %q has no body in the function table", e.Function.Name)
	}

	r.scopes.push()
	for i, param := range e.Function.Parameters {
		r.scopes.top()[param] = args[i]
	}
	value, err := r.executeBlock(body)
	r.scopes.pop()
	return value, err
}

func (r *run) callBuiltin(fn *symbols.FunctionSymbol, args []any) (any, error) {
	switch fn {
	case BuiltinPrint:
		if r.eval.writer == nil {
			return nil, nil
		}
		if _, err := io.WriteString(r.eval.writer, convert.ToDisplayString(args[0])); err != nil {
			return nil, verrors.NewHostIOError("print", err)
		}
		if _, err := io.WriteString(r.eval.writer, "\n"); err != nil {
			return nil, verrors.NewHostIOError("print", err)
		}
		return nil, nil

	case BuiltinInput:
		if r.eval.reader == nil {
			return "", nil
		}
		line, err := r.eval.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, verrors.NewHostIOError("input", err)
		}
		return trimNewline(line), nil

	case BuiltinRnd:
		max, ok := args[0].(int64)
		if !ok || max <= 0 {
			return nil, verrors.NewStructuralError("rnd(max) requires max > 0, got %v", args[0])
		}
		return int64(r.eval.lazyRNG().Int63n(max)), nil

	default:
		return nil, verrors.NewStructuralError("unknown builtin function %q", fn.Name)
	}
}

func trimNewline(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
		if n > 0 && s[n-1] == '\r' {
			n--
		}
	}
	return s[:n]
}
