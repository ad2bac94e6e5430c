package lazyconf

import (
	"math"

	"github.com/lazyconf/lazyconf-go/internal/errors"
	"github.com/lazyconf/lazyconf-go/value"
)

// ToNative forces v completely and converts it into plain Go data: nil,
// bool, int64, float64, string, []any and map[string]any. Functions cannot
// be converted. The first evaluation failure is returned.
func ToNative(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case value.KindNumber:
		if i, ok := v.AsInt(); ok && v.IsActualInt() {
			return i, nil
		}
		f, _ := v.AsFloat()
		return f, nil
	case value.KindString:
		s, _ := v.AsString()
		return s, nil
	case value.KindArray:
		arr, _ := v.AsArray()
		result := make([]any, 0, arr.Len())
		for _, r := range arr.Iter().All() {
			if r.Err != nil {
				return nil, r.Err
			}
			item, err := ToNative(r.Value)
			if err != nil {
				return nil, err
			}
			result = append(result, item)
		}
		return result, nil
	case value.KindObject:
		m, _ := v.AsMap()
		result := make(map[string]any, len(m))
		for k, field := range m {
			item, err := ToNative(field)
			if err != nil {
				return nil, err
			}
			result[k] = item
		}
		return result, nil
	default:
		return nil, errors.Errorf(errors.ErrTypeMismatch, "cannot manifest %s", v.TypeName())
	}
}

// FromNative converts plain Go data into a value. Slices become eager
// arrays. Unsupported types yield ErrTypeMismatch.
func FromNative(v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case value.Value:
		return x, nil
	case bool:
		return value.FromBool(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case int64:
		return value.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return value.FromFloat(float64(x)), nil
		}
		return value.FromInt(int64(x)), nil
	case float64:
		return value.FromFloat(x), nil
	case string:
		return value.FromString(x), nil
	case []byte:
		return value.FromArray(value.FromBytes(x)), nil
	case []any:
		items := make([]value.Value, len(x))
		for i, item := range x {
			converted, err := FromNative(item)
			if err != nil {
				return value.Null(), err
			}
			items[i] = converted
		}
		return value.FromSlice(items), nil
	case map[string]any:
		fields := make(map[string]value.Value, len(x))
		for k, item := range x {
			converted, err := FromNative(item)
			if err != nil {
				return value.Null(), err
			}
			fields[k] = converted
		}
		return value.FromMap(fields), nil
	default:
		return value.Null(), errors.Errorf(errors.ErrTypeMismatch, "unsupported native type %T", v)
	}
}

func argArray(name string, v value.Value) (value.Array, error) {
	arr, ok := v.AsArray()
	if !ok {
		return value.Array{}, errors.Errorf(errors.ErrTypeMismatch,
			"%s: expected array, got %s", name, v.TypeName())
	}
	return arr, nil
}

func argInt(name string, v value.Value) (int64, error) {
	n, ok := v.AsInt()
	if !ok {
		return 0, errors.Errorf(errors.ErrTypeMismatch,
			"%s: expected integer, got %s", name, v.TypeName())
	}
	return n, nil
}

func argString(name string, v value.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", errors.Errorf(errors.ErrTypeMismatch,
			"%s: expected string, got %s", name, v.TypeName())
	}
	return s, nil
}

func argBool(name string, v value.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, errors.Errorf(errors.ErrTypeMismatch,
			"%s: expected boolean, got %s", name, v.TypeName())
	}
	return b, nil
}

// argInt32 accepts integers that fit a range bound.
func argInt32(name string, v value.Value) (int32, error) {
	n, err := argInt(name, v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.Errorf(errors.ErrInvalidOperation,
			"%s: %d is out of range", name, n)
	}
	return int32(n), nil
}
