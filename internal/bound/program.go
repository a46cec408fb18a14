package bound

import "github.com/vivian-lang/vivian/internal/symbols"

// BoundProgram is the top-level unit the evaluator and pretty-printer
// consume. Previous optionally links to an earlier program whose
// function definitions remain in scope (incremental REPL compilation);
// for any given FunctionSymbol, at most one body is reachable along the
// Previous chain.
type BoundProgram struct {
	MainFunction   *symbols.FunctionSymbol // entry when running as a compiled unit
	ScriptFunction *symbols.FunctionSymbol // entry in script/REPL mode
	Functions      map[*symbols.FunctionSymbol]*BlockStatement
	Previous       *BoundProgram
}

// NewProgram constructs a BoundProgram.
func NewProgram(main, script *symbols.FunctionSymbol, functions map[*symbols.FunctionSymbol]*BlockStatement, previous *BoundProgram) *BoundProgram {
	if functions == nil {
		functions = map[*symbols.FunctionSymbol]*BlockStatement{}
	}
	return &BoundProgram{MainFunction: main, ScriptFunction: script, Functions: functions, Previous: previous}
}

// Entry picks program's evaluation entry point: MainFunction if set,
// otherwise ScriptFunction. Returns nil if neither is present.
func (p *BoundProgram) Entry() *symbols.FunctionSymbol {
	if p.MainFunction != nil {
		return p.MainFunction
	}
	return p.ScriptFunction
}

// FunctionTable walks p.Previous* and merges every (function, body) pair
// encountered into a single immutable table. Earlier programs' function
// definitions are shadowed by later ones at binder level, so a function
// already present from a later (closer) program is never overwritten by
// an earlier one — the walk proceeds from p outward and skips a symbol
// it has already recorded (see DESIGN.md "Program-chain shadowing policy").
func (p *BoundProgram) FunctionTable() map[*symbols.FunctionSymbol]*BlockStatement {
	table := make(map[*symbols.FunctionSymbol]*BlockStatement)
	for program := p; program != nil; program = program.Previous {
		for fn, body := range program.Functions {
			if _, exists := table[fn]; exists {
				continue
			}
			table[fn] = body
		}
	}
	return table
}
