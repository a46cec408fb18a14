// Package printer renders a bound tree back to Vivian source text
// (spec.md §4.5). It is pretty-print-only: it accepts the surface
// control-flow nodes (If/While/DoWhile/For) that the evaluator never
// sees, alongside the lowered Label/Goto/ConditionalGoto forms that
// replace them once bound.
package printer

import (
	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/verrors"
)

// WriteTo renders node to w. Blocks are only ever written via
// writeStatement/writeBlock; callers at the top level pass a
// *bound.BlockStatement for a function body.
func WriteTo(w *Writer, node bound.Node) error {
	switch n := node.(type) {
	case bound.Expression:
		return writeExpr(w, n, -1)
	case bound.Statement:
		return writeStatement(w, n)
	default:
		return verrors.NewStructuralError("unknown node kind %s in printer", node.Kind())
	}
}

// writeExpr renders expr, wrapping it in parentheses when parentPrec is
// >= expr's own precedence (spec.md §8 S6: a child only ever needs
// parens when it binds no tighter than its parent).
func writeExpr(w *Writer, expr bound.Expression, parentPrec int) error {
	prec := precedence(expr)
	needsParens := parentPrec >= prec && prec != atomPrecedence

	if needsParens {
		w.WriteString("(")
	}
	if err := writeExprInner(w, expr, prec); err != nil {
		return err
	}
	if needsParens {
		w.WriteString(")")
	}
	return nil
}

func writeExprInner(w *Writer, expr bound.Expression, prec int) error {
	switch e := expr.(type) {
	case *bound.LiteralExpression:
		return writeLiteral(w, e)

	case *bound.VariableExpression:
		w.WriteString(e.Symbol.Name)
		return nil

	case *bound.AssignmentExpression:
		w.WriteString(e.Symbol.Name)
		w.WriteString(" = ")
		return writeExpr(w, e.Expression, -1)

	case *bound.UnaryExpression:
		w.WriteString(unaryToken(e.Op.Kind))
		return writeExpr(w, e.Operand, prec)

	case *bound.BinaryExpression:
		// The left operand only needs parens when it binds strictly
		// looser than this operator, never when it ties — left-associative
		// evaluation already reflects equal precedence correctly.
		if err := writeExpr(w, e.Left, prec-1); err != nil {
			return err
		}
		w.WriteString(" ")
		w.WriteString(binaryToken(e.Op.Kind))
		w.WriteString(" ")
		// The right operand needs parens even at a tie: for non-associative
		// operators (-, /, %) a right child at equal precedence changes
		// grouping, so a tie must still parenthesize.
		return writeExpr(w, e.Right, prec)

	case *bound.CallExpression:
		w.WriteString(e.Function.Name)
		w.WriteString("(")
		for i, arg := range e.Arguments {
			if i > 0 {
				w.WriteString(", ")
			}
			if err := writeExpr(w, arg, -1); err != nil {
				return err
			}
		}
		w.WriteString(")")
		return nil

	case *bound.ConversionExpression:
		// Rendered as a call-form conversion, the way an explicit cast
		// reads in Vivian source (SPEC_FULL.md §3's supplemented form).
		w.WriteString(e.TargetType.String())
		w.WriteString("(")
		if err := writeExpr(w, e.Expression, -1); err != nil {
			return err
		}
		w.WriteString(")")
		return nil

	case *bound.ErrorExpression:
		w.WriteString("<error>")
		return nil

	default:
		return verrors.NewStructuralError("unknown expression kind %s in printer", expr.Kind())
	}
}

func writeLiteral(w *Writer, e *bound.LiteralExpression) error {
	switch v := e.Value.(type) {
	case nil:
		w.WriteString("nil")
		return nil
	case bool:
		if v {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
		return nil
	case int64:
		w.WriteString(formatInt(v))
		return nil
	case string:
		w.WriteString(quoteString(v))
		return nil
	default:
		return verrors.NewStructuralError("unknown literal value type %T in printer", e.Value)
	}
}

func formatInt(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// quoteString doubles embedded quotes, the way the rest of this corpus's
// Pascal-flavored string literals escape (spec.md §4.5).
func quoteString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			out = append(out, '"', '"')
		} else {
			out = append(out, s[i])
		}
	}
	out = append(out, '"')
	return string(out)
}

// writeStatement renders stmt at the writer's current indent level.
func writeStatement(w *Writer, stmt bound.Statement) error {
	switch s := stmt.(type) {
	case *bound.BlockStatement:
		return writeBlock(w, s)

	case *bound.ExpressionStatement:
		w.WriteIndent()
		if err := writeExpr(w, s.Expression, -1); err != nil {
			return err
		}
		w.Newline()
		return nil

	case *bound.VariableDeclaration:
		w.WriteIndent()
		if s.Symbol.IsReadOnly {
			w.WriteString("let ")
		} else {
			w.WriteString("imply ")
		}
		w.WriteString(s.Symbol.Name)
		w.WriteString(" = ")
		if err := writeExpr(w, s.Initializer, -1); err != nil {
			return err
		}
		w.Newline()
		return nil

	case *bound.IfStatement:
		return writeIf(w, s)

	case *bound.WhileStatement:
		w.WriteIndent()
		w.WriteString("while ")
		if err := writeExpr(w, s.Condition, -1); err != nil {
			return err
		}
		w.Newline()
		return writeBodyIndented(w, s.Body)

	case *bound.DoWhileStatement:
		w.WriteIndent()
		w.WriteString("do")
		w.Newline()
		if err := writeBodyIndented(w, s.Body); err != nil {
			return err
		}
		w.WriteIndent()
		w.WriteString("while ")
		if err := writeExpr(w, s.Condition, -1); err != nil {
			return err
		}
		w.Newline()
		return nil

	case *bound.ForStatement:
		w.WriteIndent()
		w.WriteString("for ")
		w.WriteString(s.Symbol.Name)
		w.WriteString(" = ")
		if err := writeExpr(w, s.LowerBound, -1); err != nil {
			return err
		}
		w.WriteString(" to ")
		if err := writeExpr(w, s.UpperBound, -1); err != nil {
			return err
		}
		w.Newline()
		return writeBodyIndented(w, s.Body)

	case *bound.LabelStatement:
		// Label lines un-indent by one, capped at zero (spec.md §9) — the
		// label reads as a jump target sitting outside its block's body.
		w.Dedent()
		w.WriteIndent()
		w.WriteString(s.Label.Name)
		w.WriteString(":")
		w.Newline()
		w.Indent()
		return nil

	case *bound.GotoStatement:
		w.WriteIndent()
		w.WriteString("goto ")
		w.WriteString(s.Label.Name)
		w.Newline()
		return nil

	case *bound.ConditionalGotoStatement:
		w.WriteIndent()
		if s.JumpIfTrue {
			w.WriteString("if ")
		} else {
			w.WriteString("unless ")
		}
		if err := writeExpr(w, s.Condition, -1); err != nil {
			return err
		}
		w.WriteString(" goto ")
		w.WriteString(s.Label.Name)
		w.Newline()
		return nil

	case *bound.ReturnStatement:
		w.WriteIndent()
		w.WriteString("return")
		if s.Expression != nil {
			w.WriteString(" ")
			if err := writeExpr(w, s.Expression, -1); err != nil {
				return err
			}
		}
		w.Newline()
		return nil

	default:
		return verrors.NewStructuralError("unknown statement kind %s in printer", stmt.Kind())
	}
}

func writeBlock(w *Writer, block *bound.BlockStatement) error {
	w.WriteLine("{")
	w.Indent()
	for _, stmt := range block.Statements {
		if err := writeStatement(w, stmt); err != nil {
			return err
		}
	}
	w.Dedent()
	w.WriteLine("}")
	return nil
}

// writeBodyIndented renders a single-statement body. A block body prints
// its own braces at the current indent; any other statement prints one
// level deeper, matching the brace-free single-statement form.
func writeBodyIndented(w *Writer, body bound.Statement) error {
	if block, ok := body.(*bound.BlockStatement); ok {
		return writeBlock(w, block)
	}
	w.Indent()
	err := writeStatement(w, body)
	w.Dedent()
	return err
}

func writeIf(w *Writer, s *bound.IfStatement) error {
	w.WriteIndent()
	w.WriteString("if ")
	if err := writeExpr(w, s.Condition, -1); err != nil {
		return err
	}
	w.Newline()
	if err := writeBodyIndented(w, s.Then); err != nil {
		return err
	}
	if s.Else == nil {
		return nil
	}
	w.WriteLine("else")
	return writeBodyIndented(w, s.Else)
}
