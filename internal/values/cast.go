package values

import (
	"fmt"
	"strconv"
)

// Cast implements the builtin `T(x)` conversion. Allowed conversions:
// INTEGER<->REAL, INTEGER/REAL->STRING, STRING->INTEGER/REAL (parsed,
// fails otherwise), CHAR->STRING, and STRING of length 1->CHAR. Casting a
// value to its own type is always allowed and is the identity, which is
// what makes T(T(x)) = T(x) hold.
func Cast(targetType string, v Value) (Value, error) {
	if v.TypeName() == targetType {
		return v, nil
	}

	switch targetType {
	case "INTEGER":
		switch src := v.(type) {
		case Real:
			return Integer{int64(src.Value)}, nil
		case Str:
			n, err := strconv.ParseInt(src.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot cast %q to INTEGER: %q is not a valid integer", v.TypeName(), src.Value)
			}
			return Integer{n}, nil
		}
	case "REAL":
		switch src := v.(type) {
		case Integer:
			return Real{float64(src.Value)}, nil
		case Str:
			f, err := strconv.ParseFloat(src.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot cast %q to REAL: %q is not a valid real", v.TypeName(), src.Value)
			}
			return Real{f}, nil
		}
	case "STRING":
		switch src := v.(type) {
		case Integer, Real, Char:
			return Str{src.String()}, nil
		}
	case "CHAR":
		if src, ok := v.(Str); ok {
			if len([]rune(src.Value)) != 1 {
				return nil, fmt.Errorf("cannot cast STRING of length %d to CHAR", len([]rune(src.Value)))
			}
			return Char{[]rune(src.Value)[0]}, nil
		}
	}

	return nil, fmt.Errorf("cannot cast %q to %q", v.TypeName(), targetType)
}
