package eval

import (
	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/symbols"
	"github.com/vivian-lang/vivian/internal/verrors"
)

// getLabelIndex returns block's label->position map, building and
// caching it on first use. For every LabelStatement l at position i, the
// map records l -> i+1 (the instruction immediately after the label).
func (r *run) getLabelIndex(block *bound.BlockStatement) (map[*symbols.BoundLabel]int, error) {
	if idx, ok := r.eval.labelIndex[block]; ok {
		return idx, nil
	}
	idx := make(map[*symbols.BoundLabel]int)
	for i, stmt := range block.Statements {
		if label, ok := stmt.(*bound.LabelStatement); ok {
			if _, dup := idx[label.Label]; dup {
				return nil, verrors.NewStructuralError("label %q defined more than once in block", label.Label.Name)
			}
			idx[label.Label] = i + 1
		}
	}
	r.eval.labelIndex[block] = idx
	return idx, nil
}

// executeBlock runs block's statements with a label-indexed instruction
// pointer (spec.md §4.4's statement dispatcher), returning the block's
// final value whether control fell off the end or hit a return.
func (r *run) executeBlock(block *bound.BlockStatement) (any, error) {
	labelIdx, err := r.getLabelIndex(block)
	if err != nil {
		return nil, err
	}

	stmts := block.Statements
	var lastValue any
	pc := 0
	for pc < len(stmts) {
		switch stmt := stmts[pc].(type) {
		case *bound.VariableDeclaration:
			v, err := r.evalExpr(stmt.Initializer)
			if err != nil {
				return nil, err
			}
			lastValue = v
			if err := r.assign(stmt.Symbol, v); err != nil {
				return nil, err
			}
			pc++

		case *bound.ExpressionStatement:
			v, err := r.evalExpr(stmt.Expression)
			if err != nil {
				return nil, err
			}
			lastValue = v
			pc++

		case *bound.LabelStatement:
			pc++

		case *bound.GotoStatement:
			target, ok := labelIdx[stmt.Label]
			if !ok {
				return nil, verrors.NewStructuralError("goto target %q not defined in this block", stmt.Label.Name)
			}
			pc = target

		case *bound.ConditionalGotoStatement:
			cond, err := r.evalExpr(stmt.Condition)
			if err != nil {
				return nil, err
			}
			truthy, err := truthiness(cond)
			if err != nil {
				return nil, err
			}
			if truthy == stmt.JumpIfTrue {
				target, ok := labelIdx[stmt.Label]
				if !ok {
					return nil, verrors.NewStructuralError("conditional goto target %q not defined in this block", stmt.Label.Name)
				}
				pc = target
			} else {
				pc++
			}

		case *bound.ReturnStatement:
			if stmt.Expression == nil {
				return nil, nil
			}
			return r.evalExpr(stmt.Expression)

		default:
			return nil, verrors.NewStructuralError("unexpected statement kind %s in evaluator", stmts[pc].Kind())
		}
	}
	return lastValue, nil
}

// truthiness implements the "evaluate(cond) != 0" test spec.md §4.4
// describes for ConditionalGotoStatement, over this implementation's two
// runtime encodings of the 0/nonzero domain: a native bool or an Int.
func truthiness(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int64:
		return val != 0, nil
	default:
		return false, verrors.NewStructuralError("condition produced a non-Bool, non-Int value (%T)", v)
	}
}

// assign implements spec.md §4.4's assign(sym, v): globals route to the
// caller-owned map, everything else to the top of the local scope stack.
// Read-only enforcement is the binder's job; the evaluator trusts it.
func (r *run) assign(sym *symbols.VariableSymbol, v any) error {
	if sym.Kind == symbols.GlobalVariable {
		r.globals[sym] = v
		return nil
	}
	r.scopes.top()[sym] = v
	return nil
}
