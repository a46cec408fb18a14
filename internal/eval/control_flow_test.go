package eval_test

import (
	"bytes"
	"testing"

	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/eval"
	"github.com/vivian-lang/vivian/internal/symbols"
	"github.com/vivian-lang/vivian/internal/verrors"
)

func runProgram(t *testing.T, program *bound.BoundProgram) (string, error) {
	t.Helper()
	var out bytes.Buffer
	e := eval.New(&out, nil)
	_, err := e.Evaluate(program, map[*symbols.VariableSymbol]any{})
	return out.String(), err
}

func scriptProgram(body *bound.BlockStatement) *bound.BoundProgram {
	scriptFn := symbols.NewFunctionSymbol("$script", nil, symbols.TypeObject)
	return bound.NewProgram(nil, scriptFn, map[*symbols.FunctionSymbol]*bound.BlockStatement{
		scriptFn: body,
	}, nil)
}

// TestDuplicateLabelIsStructuralError checks property 2 (label
// uniqueness): a block defining the same label twice must fail with a
// StructuralError rather than silently picking one definition.
func TestDuplicateLabelIsStructuralError(t *testing.T) {
	dup := symbols.NewBoundLabel("again")
	body := bound.NewBlock(
		bound.NewLabel(dup),
		bound.NewExpressionStatement(bound.NewCall(eval.BuiltinPrint, []bound.Expression{bound.NewLiteral(int64(1), symbols.TypeInt)})),
		bound.NewLabel(dup),
	)

	_, err := runProgram(t, scriptProgram(body))
	if err == nil {
		t.Fatal("expected a StructuralError for a block with a duplicate label")
	}
	if _, ok := err.(*verrors.StructuralError); !ok {
		t.Fatalf("expected *verrors.StructuralError, got %T: %v", err, err)
	}
}

// TestConditionalGotoTruthTable checks property 4: a ConditionalGoto
// jumps iff the condition's truthiness equals JumpIfTrue, covering all
// four combinations plus the Int-encoded truthiness path.
func TestConditionalGotoTruthTable(t *testing.T) {
	cases := []struct {
		name       string
		cond       bound.Expression
		jumpIfTrue bool
		wantJumped bool
	}{
		{"true cond, jump-if-true fires", bound.NewLiteral(true, symbols.TypeBool), true, true},
		{"false cond, jump-if-true does not fire", bound.NewLiteral(false, symbols.TypeBool), true, false},
		{"true cond, jump-unless does not fire", bound.NewLiteral(true, symbols.TypeBool), false, false},
		{"false cond, jump-unless fires", bound.NewLiteral(false, symbols.TypeBool), false, true},
		{"nonzero int cond, jump-if-true fires", bound.NewLiteral(int64(7), symbols.TypeInt), true, true},
		{"zero int cond, jump-if-true does not fire", bound.NewLiteral(int64(0), symbols.TypeInt), true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target := symbols.NewBoundLabel("target")
			body := bound.NewBlock(
				bound.NewConditionalGoto(target, c.cond, c.jumpIfTrue),
				bound.NewExpressionStatement(bound.NewCall(eval.BuiltinPrint, []bound.Expression{bound.NewLiteral("fallthrough", symbols.TypeString)})),
				bound.NewLabel(target),
				bound.NewExpressionStatement(bound.NewCall(eval.BuiltinPrint, []bound.Expression{bound.NewLiteral("landed", symbols.TypeString)})),
			)

			out, err := runProgram(t, scriptProgram(body))
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			want := "fallthrough\nlanded\n"
			if c.wantJumped {
				want = "landed\n"
			}
			if out != want {
				t.Fatalf("output = %q, want %q", out, want)
			}
		})
	}
}
