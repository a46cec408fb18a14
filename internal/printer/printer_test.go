package printer_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/demo"
	"github.com/vivian-lang/vivian/internal/printer"
	"github.com/vivian-lang/vivian/internal/symbols"
)

func render(t *testing.T, node bound.Node) string {
	t.Helper()
	var buf bytes.Buffer
	w := printer.NewWriter(&buf)
	if err := printer.WriteTo(w, node); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	return buf.String()
}

// TestPrintDemoFixtures snapshots the pretty-printed form of every
// internal/demo fixture body, the way fixture_test.go snapshots
// DWScript's fixture scripts.
func TestPrintDemoFixtures(t *testing.T) {
	for _, name := range demo.Names {
		name := name
		t.Run(name, func(t *testing.T) {
			program, _, ok := demo.Build(name)
			if !ok {
				t.Fatalf("unknown fixture %q", name)
			}
			body := program.FunctionTable()[program.Entry()]
			snaps.MatchSnapshot(t, name+"_printed", render(t, body))
		})
	}
}

// TestBinaryPrecedenceParenthesization reproduces spec.md §8 S6: a left
// child at equal precedence never gets redundant parens, but a looser
// child does, regardless of which side it sits on.
func TestBinaryPrecedenceParenthesization(t *testing.T) {
	a := bound.NewVariable(symbols.NewVariableSymbol("a", symbols.TypeInt, true, symbols.LocalVariable))
	b := bound.NewVariable(symbols.NewVariableSymbol("b", symbols.TypeInt, true, symbols.LocalVariable))
	c := bound.NewVariable(symbols.NewVariableSymbol("c", symbols.TypeInt, true, symbols.LocalVariable))

	addOp := bound.BinaryOperator{Kind: bound.OpAdd, LeftOperandType: symbols.TypeInt, RightOperandType: symbols.TypeInt, Type: typePtr(symbols.TypeInt)}
	mulOp := bound.BinaryOperator{Kind: bound.OpMultiply, LeftOperandType: symbols.TypeInt, RightOperandType: symbols.TypeInt, Type: typePtr(symbols.TypeInt)}

	// (a + b) * c — left child binds looser than its parent, needs parens.
	leftHeavy := bound.NewBinary(bound.NewBinary(a, addOp, b, symbols.TypeInt), mulOp, c, symbols.TypeInt)
	if got, want := render(t, leftHeavy), "(a + b) * c"; got != want {
		t.Fatalf("render(leftHeavy) = %q, want %q", got, want)
	}

	// a + b * c — right child binds tighter than its parent, no parens.
	rightHeavy := bound.NewBinary(a, addOp, bound.NewBinary(b, mulOp, c, symbols.TypeInt), symbols.TypeInt)
	if got, want := render(t, rightHeavy), "a + b * c"; got != want {
		t.Fatalf("render(rightHeavy) = %q, want %q", got, want)
	}

	// a - (b - c) — right child at equal precedence still needs parens,
	// since subtraction is not associative.
	subOp := bound.BinaryOperator{Kind: bound.OpSubtract, LeftOperandType: symbols.TypeInt, RightOperandType: symbols.TypeInt, Type: typePtr(symbols.TypeInt)}
	rightAssoc := bound.NewBinary(a, subOp, bound.NewBinary(b, subOp, c, symbols.TypeInt), symbols.TypeInt)
	if got, want := render(t, rightAssoc), "a - (b - c)"; got != want {
		t.Fatalf("render(rightAssoc) = %q, want %q", got, want)
	}

	// a - b - c — left-associative chain, no parens needed at all.
	leftAssoc := bound.NewBinary(bound.NewBinary(a, subOp, b, symbols.TypeInt), subOp, c, symbols.TypeInt)
	if got, want := render(t, leftAssoc), "a - b - c"; got != want {
		t.Fatalf("render(leftAssoc) = %q, want %q", got, want)
	}
}

func typePtr(t symbols.Type) *symbols.Type { return &t }
