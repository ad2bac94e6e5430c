// Package value provides the dynamic value type of the lazy evaluator.
//
// The value package implements the runtime value system of a lazily
// evaluated, purely functional configuration language. Every value the
// evaluator handles is a Value; arrays are represented by Array, which can
// be backed by one of several storage strategies (see array.go) so that
// concatenation, slicing, mapping and friends never force work that the
// program does not ask for.
//
// # Core Concepts
//
// Value is a two-word struct wrapping the concrete Go representation. It is
// cheap to copy and is passed by value everywhere. Values are created with
// constructor functions:
//
//	n := value.FromInt(42)
//	s := value.FromString("hello")
//	arr := value.FromArray(value.RangeInclusive(1, 3))
//
// Array elements are held in Thunks: memoizing cells that evaluate at most
// once. Reading an element with Array.Get forces it, Array.GetLazy hands out
// the thunk without evaluating it.
//
// # Kinds
//
// The following value kinds exist:
//   - Null: the null literal
//   - Bool: true or false
//   - Number: int64 or float64
//   - String: UTF-8 text
//   - Array: a lazily evaluated sequence
//   - Object: string keyed fields (fully evaluated)
//   - Func: a Callable
package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ValueKind describes the type of a Value.
type ValueKind int

const (
	// KindNull represents the null value.
	KindNull ValueKind = iota

	// KindBool represents a boolean value (true or false).
	KindBool

	// KindNumber represents a numeric value.
	//
	// Numbers are stored either as int64 or float64. Ranges and byte
	// arrays produce integers, arithmetic on floats produces floats.
	KindNumber

	// KindString represents a text string.
	KindString

	// KindArray represents an array value.
	//
	// Arrays are lazily evaluated; see Array.
	KindArray

	// KindObject represents a map of fields.
	KindObject

	// KindFunc represents a callable function value.
	KindFunc
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunc:
		return "function"
	default:
		return "unknown"
	}
}

// Value represents a dynamically typed value.
//
// The zero Value is null.
type Value struct {
	data any
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// True returns the boolean true value.
func True() Value {
	return Value{data: true}
}

// False returns the boolean false value.
func False() Value {
	return Value{data: false}
}

// FromBool creates a Value from a boolean.
func FromBool(v bool) Value {
	return Value{data: v}
}

// FromInt creates a Value from an int64.
func FromInt(v int64) Value {
	return Value{data: v}
}

// FromFloat creates a Value from a float64.
func FromFloat(v float64) Value {
	return Value{data: v}
}

// FromString creates a Value from a string.
func FromString(v string) Value {
	return Value{data: v}
}

// FromArray creates a Value from an Array.
//
// Example usage:
//
//	nums := value.FromArray(value.RangeExclusive(0, 10))
//	evens, _ := nums.Filter(isEven)
func FromArray(a Array) Value {
	return Value{data: a}
}

// FromSlice creates an array Value from already evaluated values.
//
// The slice must not be modified afterwards.
func FromSlice(v []Value) Value {
	return FromArray(FromEager(v))
}

// FromMap creates an object Value from a map of fields.
func FromMap(v map[string]Value) Value {
	return Value{data: v}
}

// FromCallable creates a function Value from a Callable.
func FromCallable(c Callable) Value {
	return Value{data: c}
}

// Kind returns the kind of value.
func (v Value) Kind() ValueKind {
	switch v.data.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int64, float64:
		return KindNumber
	case string:
		return KindString
	case Array:
		return KindArray
	case map[string]Value:
		return KindObject
	case Callable:
		return KindFunc
	default:
		return KindNull
	}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.data == nil
}

// IsActualInt returns true if the value is stored as an integer (not a float).
func (v Value) IsActualInt() bool {
	_, ok := v.data.(int64)
	return ok
}

// AsBool returns the boolean value if it is one.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

// AsInt returns the integer value if it is one. Floats without a
// fractional part are accepted.
func (v Value) AsInt() (int64, bool) {
	switch d := v.data.(type) {
	case int64:
		return d, true
	case float64:
		// float64(MaxInt64) rounds up to 2^63, which does not fit.
		if d == math.Trunc(d) && d >= math.MinInt64 && d < math.MaxInt64 {
			return int64(d), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsFloat returns the float value if it is numeric.
func (v Value) AsFloat() (float64, bool) {
	switch d := v.data.(type) {
	case int64:
		return float64(d), true
	case float64:
		return d, true
	default:
		return 0, false
	}
}

// AsString returns the string value if it is one.
func (v Value) AsString() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// AsArray returns the array if the value is one.
func (v Value) AsArray() (Array, bool) {
	a, ok := v.data.(Array)
	return a, ok
}

// AsMap returns the fields if the value is an object.
func (v Value) AsMap() (map[string]Value, bool) {
	m, ok := v.data.(map[string]Value)
	return m, ok
}

// AsCallable returns the Callable if this value is a function.
func (v Value) AsCallable() (Callable, bool) {
	c, ok := v.data.(Callable)
	return c, ok
}

// String returns a string representation of the value.
//
// Array elements are shown through their Repr without being evaluated:
// elements that were never forced render as "<lazy>".
func (v Value) String() string {
	if s, ok := v.data.(string); ok {
		return s
	}
	return v.Repr()
}

// Repr returns a debug representation of the value.
func (v Value) Repr() string {
	switch d := v.data.(type) {
	case nil:
		return "null"
	case bool:
		if d {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(d, 10)
	case float64:
		if math.IsInf(d, 0) || math.IsNaN(d) {
			return fmt.Sprintf("%g", d)
		}
		if d == math.Trunc(d) && math.Abs(d) < 1e15 {
			return strconv.FormatFloat(d, 'f', -1, 64)
		}
		return strconv.FormatFloat(d, 'g', -1, 64)
	case string:
		return strconv.Quote(d)
	case Array:
		return reprArray(d)
	case map[string]Value:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%q: %s", k, d[k].Repr()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Callable:
		return "<function>"
	default:
		return fmt.Sprintf("%v", d)
	}
}

func reprArray(a Array) string {
	parts := make([]string, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		if v, status := a.GetCheap(i); status == CheapOK {
			parts = append(parts, v.Repr())
			continue
		}
		th, _ := a.GetLazy(i)
		if v, ok := th.Peek(); ok {
			parts = append(parts, v.Repr())
		} else {
			parts = append(parts, "<lazy>")
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TypeName returns the language-level name of the value's type, used in
// error messages.
func (v Value) TypeName() string {
	return v.Kind().String()
}
