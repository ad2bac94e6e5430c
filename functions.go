package lazyconf

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lazyconf/lazyconf-go/internal/errors"
	"github.com/lazyconf/lazyconf-go/value"
)

// Built-in function implementations. Arguments arrive bound: one value
// per declared parameter, null for omitted optional ones.

// fnLength implements `length`: elements of an array, characters of a
// string or fields of an object.
func fnLength(_ *State, args []value.Value) (value.Value, error) {
	x := args[0]
	switch x.Kind() {
	case value.KindArray:
		arr, _ := x.AsArray()
		return value.FromInt(int64(arr.Len())), nil
	case value.KindString:
		s, _ := x.AsString()
		return value.FromInt(int64(utf8.RuneCountInString(s))), nil
	case value.KindObject:
		m, _ := x.AsMap()
		return value.FromInt(int64(len(m))), nil
	default:
		return value.Null(), errors.Errorf(errors.ErrTypeMismatch,
			"length operates on arrays, strings and objects, got %s", x.TypeName())
	}
}

// fnRange implements `range`: the integers from..to, both included.
func fnRange(_ *State, args []value.Value) (value.Value, error) {
	from, err := argInt32("from", args[0])
	if err != nil {
		return value.Null(), err
	}
	to, err := argInt32("to", args[1])
	if err != nil {
		return value.Null(), err
	}
	return value.FromArray(value.RangeInclusive(from, to)), nil
}

// fnMakeArray implements `makeArray`: element i is func(i), computed when
// first read.
func fnMakeArray(s *State, args []value.Value) (value.Value, error) {
	sz, err := argInt("sz", args[0])
	if err != nil {
		return value.Null(), err
	}
	if sz < 0 || sz > maxArraySize {
		return value.Null(), errors.Errorf(errors.ErrInvalidOperation,
			"makeArray: size must be between 0 and %d, got %d", maxArraySize, sz)
	}
	fn, err := s.Callable(args[1])
	if err != nil {
		return value.Null(), err
	}
	thunks := make([]*value.Thunk, sz)
	for i := range thunks {
		thunks[i] = value.NewThunk(func() (value.Value, error) {
			return fn.Call([]value.Value{value.FromInt(int64(i))})
		})
	}
	return value.FromArray(value.FromLazy(thunks)), nil
}

func fnReverse(_ *State, args []value.Value) (value.Value, error) {
	arr, err := argArray("arr", args[0])
	if err != nil {
		return value.Null(), err
	}
	return value.FromArray(arr.Reversed()), nil
}

func sliceBound(name string, v value.Value) (value.Bound, error) {
	if v.IsNull() {
		return value.Default, nil
	}
	n, err := argInt(name, v)
	if err != nil {
		return value.Default, err
	}
	if n < 0 {
		return value.Default, errors.Errorf(errors.ErrInvalidOperation,
			"slice: %s must not be negative, got %d", name, n)
	}
	return value.At(int(n)), nil
}

// fnSlice implements `slice` for arrays and strings. Bounds may be null.
// An empty selection yields an empty result; a zero step is an error.
func fnSlice(_ *State, args []value.Value) (value.Value, error) {
	from, err := sliceBound("index", args[1])
	if err != nil {
		return value.Null(), err
	}
	to, err := sliceBound("end", args[2])
	if err != nil {
		return value.Null(), err
	}
	step, err := sliceBound("step", args[3])
	if err != nil {
		return value.Null(), err
	}
	if step == value.At(0) {
		return value.Null(), errors.NewError(errors.ErrInvalidOperation, "slice: step must not be zero")
	}

	switch x := args[0]; x.Kind() {
	case value.KindArray:
		arr, _ := x.AsArray()
		sliced, ok := arr.Slice(from, to, step)
		if !ok {
			return value.FromArray(value.Empty()), nil
		}
		return value.FromArray(sliced), nil
	case value.KindString:
		str, _ := x.AsString()
		runes := []rune(str)
		chars := make([]value.Value, len(runes))
		for i, r := range runes {
			chars[i] = value.FromString(string(r))
		}
		sliced, ok := value.FromEager(chars).Slice(from, to, step)
		if !ok {
			return value.FromString(""), nil
		}
		var b strings.Builder
		for _, r := range sliced.Iter().All() {
			b.WriteString(r.Value.String())
		}
		return value.FromString(b.String()), nil
	default:
		return value.Null(), errors.Errorf(errors.ErrTypeMismatch,
			"slice operates on arrays and strings, got %s", x.TypeName())
	}
}

// fnRepeat implements `repeat` for arrays and strings.
func fnRepeat(_ *State, args []value.Value) (value.Value, error) {
	count, err := argInt("count", args[1])
	if err != nil {
		return value.Null(), err
	}
	if count < 0 {
		return value.Null(), errors.Errorf(errors.ErrInvalidOperation,
			"repeat: count must not be negative, got %d", count)
	}

	switch what := args[0]; what.Kind() {
	case value.KindArray:
		arr, _ := what.AsArray()
		rep, ok := value.Repeated(arr, int(count))
		if !ok {
			return value.Null(), errors.NewError(errors.ErrInvalidOperation,
				"repeat: result is too large")
		}
		return value.FromArray(rep), nil
	case value.KindString:
		str, _ := what.AsString()
		if len(str) > 0 && count > int64(maxStringRepeat/len(str)) {
			return value.Null(), errors.NewError(errors.ErrInvalidOperation,
				"repeat: result is too large")
		}
		return value.FromString(strings.Repeat(str, int(count))), nil
	default:
		return value.Null(), errors.Errorf(errors.ErrTypeMismatch,
			"repeat operates on arrays and strings, got %s", what.TypeName())
	}
}

const (
	maxStringRepeat = 1 << 30
	maxArraySize    = 1 << 28
)

// fnConcat implements `concat`, the + operator.
func fnConcat(s *State, args []value.Value) (value.Value, error) {
	return value.Add(args[0], args[1], s.ExtendThreshold())
}

// fnFlattenArrays concatenates an array of arrays. Null elements are
// skipped.
func fnFlattenArrays(s *State, args []value.Value) (value.Value, error) {
	arrs, err := argArray("arrs", args[0])
	if err != nil {
		return value.Null(), err
	}
	out := value.Empty()
	for i, r := range arrs.Iter().All() {
		if r.Err != nil {
			return value.Null(), r.Err
		}
		if r.Value.IsNull() {
			continue
		}
		arr, err := argArray("arrs["+strconv.Itoa(i)+"]", r.Value)
		if err != nil {
			return value.Null(), err
		}
		out = value.ExtendedWithThreshold(out, arr, s.ExtendThreshold())
	}
	return value.FromArray(out), nil
}

// fnMember reports whether arr contains x. For strings it tests for a
// substring.
func fnMember(_ *State, args []value.Value) (value.Value, error) {
	if str, ok := args[0].AsString(); ok {
		sub, err := argString("x", args[1])
		if err != nil {
			return value.Null(), err
		}
		return value.FromBool(strings.Contains(str, sub)), nil
	}
	arr, err := argArray("arr", args[0])
	if err != nil {
		return value.Null(), err
	}
	for _, r := range arr.Iter().All() {
		if r.Err != nil {
			return value.Null(), r.Err
		}
		eq, err := value.Equal(r.Value, args[1])
		if err != nil {
			return value.Null(), err
		}
		if eq {
			return value.True(), nil
		}
	}
	return value.False(), nil
}

func fnCount(_ *State, args []value.Value) (value.Value, error) {
	arr, err := argArray("arr", args[0])
	if err != nil {
		return value.Null(), err
	}
	n := 0
	for _, r := range arr.Iter().All() {
		if r.Err != nil {
			return value.Null(), r.Err
		}
		eq, err := value.Equal(r.Value, args[1])
		if err != nil {
			return value.Null(), err
		}
		if eq {
			n++
		}
	}
	return value.FromInt(int64(n)), nil
}

// fnMap implements `map`. Nothing is evaluated until an element is read,
// and every read calls func again.
func fnMap(s *State, args []value.Value) (value.Value, error) {
	fn, err := s.Callable(args[0])
	if err != nil {
		return value.Null(), err
	}
	arr, err := argArray("arr", args[1])
	if err != nil {
		return value.Null(), err
	}
	return value.FromArray(arr.Map(fn)), nil
}

// fnMapWithIndex implements `mapWithIndex`. Unlike map, each element is
// computed at most once.
func fnMapWithIndex(s *State, args []value.Value) (value.Value, error) {
	fn, err := s.Callable(args[0])
	if err != nil {
		return value.Null(), err
	}
	arr, err := argArray("arr", args[1])
	if err != nil {
		return value.Null(), err
	}
	thunks := make([]*value.Thunk, 0, arr.Len())
	for i, th := range arr.IterLazy().All() {
		thunks = append(thunks, value.NewThunk(func() (value.Value, error) {
			v, err := th.Force()
			if err != nil {
				return value.Null(), err
			}
			return fn.Call([]value.Value{value.FromInt(int64(i)), v})
		}))
	}
	return value.FromArray(value.FromLazy(thunks)), nil
}

// fnFilter implements `filter`. func must return a boolean.
func fnFilter(s *State, args []value.Value) (value.Value, error) {
	arr, err := argArray("arr", args[1])
	if err != nil {
		return value.Null(), err
	}
	fn, err := s.Callable(args[0])
	if err != nil {
		return value.Null(), err
	}
	filtered, err := arr.Filter(func(v value.Value) (bool, error) {
		rv, err := fn.Call([]value.Value{v})
		if err != nil {
			return false, err
		}
		return argBool("filter result", rv)
	})
	if err != nil {
		return value.Null(), err
	}
	return value.FromArray(filtered), nil
}

// fnFoldl implements `foldl`: func(func(func(init, a[0]), a[1]), ...).
func fnFoldl(s *State, args []value.Value) (value.Value, error) {
	arr, err := argArray("arr", args[1])
	if err != nil {
		return value.Null(), err
	}
	acc := args[2]
	for _, r := range arr.Iter().All() {
		if r.Err != nil {
			return value.Null(), r.Err
		}
		acc, err = s.Invoke(args[0], acc, r.Value)
		if err != nil {
			return value.Null(), err
		}
	}
	return acc, nil
}

// fnFoldr implements `foldr`: func(a[0], func(a[1], ... func(a[n-1], init))).
func fnFoldr(s *State, args []value.Value) (value.Value, error) {
	arr, err := argArray("arr", args[1])
	if err != nil {
		return value.Null(), err
	}
	acc := args[2]
	for _, r := range arr.Iter().Backward() {
		if r.Err != nil {
			return value.Null(), r.Err
		}
		acc, err = s.Invoke(args[0], r.Value, acc)
		if err != nil {
			return value.Null(), err
		}
	}
	return acc, nil
}

func fnManifestYamlDoc(_ *State, args []value.Value) (value.Value, error) {
	out, err := ManifestYAML(args[0])
	if err != nil {
		return value.Null(), err
	}
	return value.FromString(out), nil
}

// fnFqname builds a stable, prefixed base-36 name for a backend instance.
func fnFqname(_ *State, args []value.Value) (value.Value, error) {
	var parts [4]string
	for i, name := range []string{"prefix", "app", "appSrv", "beName"} {
		str, err := argString(name, args[i])
		if err != nil {
			return value.Null(), err
		}
		parts[i] = str
	}
	nb, err := argInt("nbInstance", args[4])
	if err != nil {
		return value.Null(), err
	}
	if nb < 0 {
		return value.Null(), errors.Errorf(errors.ErrInvalidOperation,
			"fqname: nbInstance must not be negative, got %d", nb)
	}
	return value.FromString(Fqname(parts[0], parts[1], parts[2], parts[3], uint64(nb))), nil
}

// Fqname returns prefix followed by a base-36 hash of the other fields.
//
// The hash is a polynomial string hash over the low byte of every
// character, taken modulo 2^64 after each field.
func Fqname(prefix, app, appSrv, beName string, nbInstance uint64) string {
	h := nameHash(1)
	h.update(app)
	h.update(appSrv)
	h.update(beName)
	h += nameHash(nbInstance)
	h.update("salt")
	return prefix + h.String()
}

type nameHash uint64

func (h *nameHash) update(s string) {
	for _, r := range s {
		*h = nameHash(byte(r)) + *h<<6 + *h<<16 - *h
	}
}

func (h nameHash) String() string {
	if h == 0 {
		return ""
	}
	return strings.ToUpper(strconv.FormatUint(uint64(h), 36))
}
