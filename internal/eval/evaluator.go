// Package eval implements the tree-walking evaluator: it interprets a
// bound.BoundProgram, resolving the entry function, walking statements
// with a label-indexed instruction pointer, and dispatching calls to
// user-defined functions and the three built-ins (spec.md §4.4).
package eval

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/vivian-lang/vivian/internal/bound"
	"github.com/vivian-lang/vivian/internal/symbols"
	"github.com/vivian-lang/vivian/internal/verrors"
)

// Evaluator holds the state that outlives a single Evaluate call: the I/O
// streams built-ins read/write, the rnd builtin's lazily-seeded PRNG, and
// the per-block label-index cache. The merged function table and the
// local scope stack belong to the per-call run struct.
// Re-entrancy of a single instance is not supported (spec.md §5) — build
// one Evaluator per concurrent evaluation.
type Evaluator struct {
	writer io.Writer
	reader *bufio.Reader

	rng     *rand.Rand
	seed    int64
	seedSet bool

	// labelIndex caches each block's label->position map, keyed by block
	// pointer identity, so a recursive function re-entering its own body
	// does not rescan every call (see SPEC_FULL.md §3).
	labelIndex map[*bound.BlockStatement]map[*symbols.BoundLabel]int
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithSeed fixes the rnd builtin's PRNG seed, making it (and therefore
// the whole evaluation) deterministic across runs.
func WithSeed(seed int64) Option {
	return func(e *Evaluator) {
		e.seed = seed
		e.seedSet = true
	}
}

// New constructs an Evaluator. w is where print writes; r is where input
// reads (a nil r makes input always report end-of-stream).
func New(w io.Writer, r io.Reader, opts ...Option) *Evaluator {
	e := &Evaluator{
		writer:     w,
		labelIndex: make(map[*bound.BlockStatement]map[*symbols.BoundLabel]int),
	}
	if r != nil {
		e.reader = bufio.NewReader(r)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) lazyRNG() *rand.Rand {
	if e.rng == nil {
		seed := e.seed
		if !e.seedSet {
			seed = 1
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	return e.rng
}

// Evaluate interprets program against the caller-owned globals map,
// mutating it in place, and returns the program's final value (or nil if
// none). This is spec.md §4.4's `evaluate(program, globals) -> value?`.
func (e *Evaluator) Evaluate(program *bound.BoundProgram, globals map[*symbols.VariableSymbol]any) (any, error) {
	table := program.FunctionTable()

	entry := program.Entry()
	if entry == nil {
		return nil, nil
	}
	body, ok := table[entry]
	if !ok {
		return nil, verrors.NewStructuralError("entry function %q has no body in the function table", entry.Name)
	}

	run := &run{eval: e, globals: globals, functions: table}
	run.scopes.push()
	defer run.scopes.pop()
	return run.executeBlock(body)
}

// run is one in-flight evaluation: the Evaluator plus the globals map and
// function table for this call to Evaluate. Splitting this out of
// Evaluator keeps the PRNG/IO/label-cache state (which legitimately
// outlives a single Evaluate call when an Evaluator is reused) separate
// from per-call state.
type run struct {
	eval      *Evaluator
	globals   map[*symbols.VariableSymbol]any
	functions map[*symbols.FunctionSymbol]*bound.BlockStatement
	scopes    scopeStack
}
