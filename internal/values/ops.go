package values

import "fmt"

// Numeric is implemented by the value kinds that participate in
// arithmetic: INTEGER and REAL. AsFloat widens an INTEGER to REAL.
type Numeric interface {
	Value
	AsFloat() float64
}

func (v Integer) AsFloat() float64 { return float64(v.Value) }
func (v Real) AsFloat() float64    { return v.Value }

// IsNumeric reports whether v is INTEGER or REAL.
func IsNumeric(v Value) bool {
	_, ok := v.(Numeric)
	return ok
}

// Equals implements `=`/`<>`: INTEGER and REAL widen against each other;
// every other kind requires an exact kind match.
func Equals(a, b Value) (bool, error) {
	if an, aok := a.(Numeric); aok {
		if bn, bok := b.(Numeric); bok {
			return an.AsFloat() == bn.AsFloat(), nil
		}
		return false, fmt.Errorf("cannot compare %q with %q", a.TypeName(), b.TypeName())
	}

	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)
		if !ok {
			return false, fmt.Errorf("cannot compare %q with %q", a.TypeName(), b.TypeName())
		}
		return av.Value == bv.Value, nil
	case Bool:
		bv, ok := b.(Bool)
		if !ok {
			return false, fmt.Errorf("cannot compare %q with %q", a.TypeName(), b.TypeName())
		}
		return av.Value == bv.Value, nil
	case Char:
		bv, ok := b.(Char)
		if !ok {
			return false, fmt.Errorf("cannot compare %q with %q", a.TypeName(), b.TypeName())
		}
		return av.Value == bv.Value, nil
	default:
		return false, fmt.Errorf("cannot compare %q with %q", a.TypeName(), b.TypeName())
	}
}

// Less implements `<` for ordering comparisons; only INTEGER and REAL
// support ordering. STRING/CHAR/BOOLEAN support =/<> only.
func Less(a, b Value) (bool, error) {
	an, aok := a.(Numeric)
	bn, bok := b.(Numeric)
	if !aok || !bok {
		return false, fmt.Errorf("cannot order %q with %q", a.TypeName(), b.TypeName())
	}
	return an.AsFloat() < bn.AsFloat(), nil
}
