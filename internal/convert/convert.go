// Package convert classifies and performs the conversions between
// Vivian's primitive types that the binder is assumed to have already
// sanctioned for any Conversion node it produced (spec.md §4.3).
package convert

import (
	"fmt"

	"github.com/vivian-lang/vivian/internal/symbols"
	"github.com/vivian-lang/vivian/internal/verrors"
)

// Classification is the result of Classify: which conversion category
// (if any) applies between two types.
type Classification struct {
	IsIdentity bool
	IsImplicit bool
	IsExplicit bool
	Exists     bool
}

// Classify reports how a value of type from would convert to type to.
// Identity when from == to; implicit for widening numeric (Bool->Int
// under the integer encoding) and any-to-Object; explicit for narrowing
// and any-to-String/String-to-numeric; nonexistent between incompatible
// primitives.
func Classify(from, to symbols.Type) Classification {
	if from == to {
		return Classification{IsIdentity: true, Exists: true}
	}
	if to == symbols.TypeObject {
		return Classification{IsImplicit: true, Exists: true}
	}
	fromArith := from.Capabilities().Has(symbols.CapArithmetic)
	toArith := to.Capabilities().Has(symbols.CapArithmetic)

	switch {
	case fromArith && toArith:
		// Bool -> Int widens implicitly; Int -> Bool narrows explicitly.
		if from == symbols.TypeBool && to == symbols.TypeInt {
			return Classification{IsImplicit: true, Exists: true}
		}
		if from == symbols.TypeInt && to == symbols.TypeBool {
			return Classification{IsExplicit: true, Exists: true}
		}
	case fromArith && to == symbols.TypeString:
		return Classification{IsExplicit: true, Exists: true}
	case from == symbols.TypeString && toArith:
		return Classification{IsExplicit: true, Exists: true}
	case from == symbols.TypeObject && to != symbols.TypeObject:
		return Classification{IsExplicit: true, Exists: true}
	}
	return Classification{}
}

// Convert performs the conversion to type to on a runtime value that
// already has Vivian-dynamic-type from. It must be total whenever
// Classify(from, to).Exists is true.
func Convert(from, to symbols.Type, v any) (any, error) {
	if from == to {
		return v, nil
	}
	if to == symbols.TypeObject {
		return v, nil // boxes if necessary; Go's `any` already boxes.
	}

	switch to {
	case symbols.TypeInt:
		switch val := v.(type) {
		case bool:
			if val {
				return int64(1), nil
			}
			return int64(0), nil
		case string:
			return stringToArithmetic(val)
		case int64:
			return val, nil
		}
	case symbols.TypeBool:
		switch val := v.(type) {
		case int64:
			return val != 0, nil
		case string:
			n, err := stringToArithmetic(val)
			if err != nil {
				return nil, err
			}
			return n.(int64) != 0, nil
		case bool:
			return val, nil
		}
	case symbols.TypeString:
		switch val := v.(type) {
		case bool:
			if val {
				return "true", nil
			}
			return "false", nil
		case int64:
			return fmt.Sprintf("%d", val), nil
		case string:
			return val, nil
		}
	}

	return nil, verrors.NewConversionError(typeName(v), to.String(), "no conversion exists")
}

// stringToArithmetic implements the binder's narrow String->Arithmetic
// rule: only the literal strings "true"/"false" convert (spec.md §4.3 and
// §9's design note — numeric-looking strings are deliberately rejected).
func stringToArithmetic(s string) (any, error) {
	switch s {
	case "true":
		return int64(1), nil
	case "false":
		return int64(0), nil
	default:
		return nil, verrors.NewConversionError("String", "Arithmetic", fmt.Sprintf("%q is neither \"true\" nor \"false\"", s))
	}
}

// ToDisplayString renders a runtime value the way the print builtin
// writes it: unquoted, bool as "true"/"false", int64 in decimal.
func ToDisplayString(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int64:
		return fmt.Sprintf("%d", val)
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case bool:
		return "Bool"
	case int64:
		return "Int"
	case string:
		return "String"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}
