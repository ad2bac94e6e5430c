package value

import (
	"github.com/lazyconf/lazyconf-go/internal/errors"
)

// Equal reports whether two values are structurally equal.
//
// Array elements are forced as needed and evaluation failures are
// returned. Arrays sharing the same storage compare equal without being
// evaluated.
func Equal(a, b Value) (bool, error) {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull(), nil
	}

	if b1, ok := a.AsBool(); ok {
		b2, ok := b.AsBool()
		return ok && b1 == b2, nil
	}

	if a.IsActualInt() && b.IsActualInt() {
		i1, _ := a.AsInt()
		i2, _ := b.AsInt()
		return i1 == i2, nil
	}
	if f1, ok := a.AsFloat(); ok {
		f2, ok := b.AsFloat()
		return ok && f1 == f2, nil
	}

	if s1, ok := a.AsString(); ok {
		s2, ok := b.AsString()
		return ok && s1 == s2, nil
	}

	if arr1, ok := a.AsArray(); ok {
		arr2, ok := b.AsArray()
		if !ok {
			return false, nil
		}
		return EqualArrays(arr1, arr2)
	}

	if m1, ok := a.AsMap(); ok {
		m2, ok := b.AsMap()
		if !ok || len(m1) != len(m2) {
			return false, nil
		}
		for k, v1 := range m1 {
			v2, exists := m2[k]
			if !exists {
				return false, nil
			}
			eq, err := Equal(v1, v2)
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	}

	if _, ok := a.AsCallable(); ok {
		if _, ok := b.AsCallable(); ok {
			return false, errors.NewError(errors.ErrInvalidOperation,
				"cannot test equality of functions")
		}
	}
	return false, nil
}

// EqualArrays compares two arrays element by element.
func EqualArrays(a, b Array) (bool, error) {
	if SameIdentity(a, b) {
		return true, nil
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	for i := 0; i < a.Len(); i++ {
		v1, _, err := a.Get(i)
		if err != nil {
			return false, err
		}
		v2, _, err := b.Get(i)
		if err != nil {
			return false, err
		}
		eq, err := Equal(v1, v2)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

// Add implements the binary + operator.
//
// Arrays are concatenated with ExtendedWithThreshold, strings are joined,
// objects are merged with fields of b winning, and numbers are added.
// Integers stay integers.
func Add(a, b Value, threshold int) (Value, error) {
	if arr1, ok := a.AsArray(); ok {
		if arr2, ok := b.AsArray(); ok {
			return FromArray(ExtendedWithThreshold(arr1, arr2, threshold)), nil
		}
	}

	if s1, ok := a.AsString(); ok {
		if s2, ok := b.AsString(); ok {
			return FromString(s1 + s2), nil
		}
	}

	if a.Kind() == KindObject && b.Kind() == KindObject {
		return MergeMaps(a, b), nil
	}

	if a.IsActualInt() && b.IsActualInt() {
		i1, _ := a.AsInt()
		i2, _ := b.AsInt()
		return FromInt(i1 + i2), nil
	}
	if f1, ok := a.AsFloat(); ok {
		if f2, ok := b.AsFloat(); ok {
			return FromFloat(f1 + f2), nil
		}
	}

	return Null(), errors.Errorf(errors.ErrTypeMismatch,
		"cannot add %s and %s", a.TypeName(), b.TypeName())
}
