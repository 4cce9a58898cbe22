package ir

import (
	"fmt"

	"ziria-lang/interp-go/pkg/value"
)

// ErrSymbolicArrayLength is returned when a LetRef with no initializer names
// an array type of symbolic (non-literal) length.
type ErrSymbolicArrayLength struct {
	Sym string
}

func (e *ErrSymbolicArrayLength) Error() string {
	return fmt.Sprintf("Cannot construct initial value for array of symbolic length %q", e.Sym)
}

// InitialValue constructs the type-driven default value for a LetRef with
// no initializer: scalars use false/0/""/unit, arrays of literal length
// recurse element-wise, and records recurse field-wise.
func InitialValue(ty value.Type) (Expr, error) {
	switch ty.Kind {
	case value.TUnit:
		return Val{Ty: ty, V: value.VUnit()}, nil
	case value.TBit:
		return Val{Ty: ty, V: value.VBit(false)}, nil
	case value.TBool:
		return Val{Ty: ty, V: value.VBool(false)}, nil
	case value.TInt:
		return Val{Ty: ty, V: value.VIntN(0, ty.IntWidth)}, nil
	case value.TDouble:
		return Val{Ty: ty, V: value.VDouble(0)}, nil
	case value.TString:
		return Val{Ty: ty, V: value.VString("")}, nil
	case value.TArray:
		if !ty.ArrayLenVal.Literal {
			return nil, &ErrSymbolicArrayLength{Sym: ty.ArrayLenVal.Sym}
		}
		elems := make([]Expr, ty.ArrayLenVal.N)
		for i := range elems {
			e, err := InitialValue(*ty.ArrayElem)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return ValArr{Elems: elems}, nil
	case value.TStruct:
		fields := make([]StructField, len(ty.StructFields))
		for i, ft := range ty.StructFields {
			e, err := InitialValue(ft.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = StructField{Name: ft.Name, Val: e}
		}
		return Struct{Ty: ty, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("Cannot construct initial value for type %s", ty)
	}
}
