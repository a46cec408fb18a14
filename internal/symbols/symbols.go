package symbols

// Kind discriminates the five named-entity shapes the bound tree can
// refer to. Every symbol carries exactly one.
type Kind uint8

const (
	GlobalVariable Kind = iota
	LocalVariable
	Parameter
	Function
	Label
)

func (k Kind) String() string {
	switch k {
	case GlobalVariable:
		return "GlobalVariable"
	case LocalVariable:
		return "LocalVariable"
	case Parameter:
		return "Parameter"
	case Function:
		return "Function"
	case Label:
		return "Label"
	default:
		return "Unknown"
	}
}

// VariableSymbol names a global variable, local variable, or parameter.
// Symbols compare by pointer identity, never by Name — two distinct
// *VariableSymbol values with the same Name are different variables.
type VariableSymbol struct {
	Name       string
	Type       Type
	IsReadOnly bool
	Kind       Kind // GlobalVariable, LocalVariable, or Parameter
}

// NewVariableSymbol constructs a VariableSymbol. Kind must be one of
// GlobalVariable, LocalVariable, or Parameter.
func NewVariableSymbol(name string, typ Type, readOnly bool, kind Kind) *VariableSymbol {
	return &VariableSymbol{Name: name, Type: typ, IsReadOnly: readOnly, Kind: kind}
}

// FunctionSymbol names a function: its ordered parameters and return
// type. Built-ins (input/print/rnd) are FunctionSymbol values too, held
// as package-level sentinels in internal/eval and matched by identity.
type FunctionSymbol struct {
	Name       string
	Parameters []*VariableSymbol
	ReturnType Type
}

// NewFunctionSymbol constructs a FunctionSymbol.
func NewFunctionSymbol(name string, params []*VariableSymbol, returnType Type) *FunctionSymbol {
	return &FunctionSymbol{Name: name, Parameters: params, ReturnType: returnType}
}

// BoundLabel names a jump target within a single function body. Labels
// compare by identity; the Name exists only for pretty-printing.
type BoundLabel struct {
	Name string
}

// NewBoundLabel constructs a BoundLabel.
func NewBoundLabel(name string) *BoundLabel {
	return &BoundLabel{Name: name}
}
