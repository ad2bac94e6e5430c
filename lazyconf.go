// Package lazyconf provides the runtime of a lazy, purely functional
// configuration language.
//
// The heart of the runtime is the value package: dynamically typed values
// and lazily evaluated arrays whose composition operators (concatenation,
// slicing, reversing, mapping, repetition) never evaluate an element that
// is not read. This package adds the pieces around it: an Environment of
// builtin functions, per-evaluation State with a call budget, YAML
// configuration and YAML output.
//
// # Quick Start
//
//	env := lazyconf.NewEnvironment()
//	squares, _ := env.Call("makeArray", []value.Value{
//	    value.FromInt(5),
//	    value.FromCallable(value.CallableFunc(func(args []value.Value) (value.Value, error) {
//	        n, _ := args[0].AsInt()
//	        return value.FromInt(n * n), nil
//	    })),
//	}, nil)
//	out, _ := lazyconf.ManifestYAML(squares)
//	fmt.Print(out)
//
// # Builtins
//
// Builtins are host functions with named parameters. Arguments can be
// passed positionally or by name:
//
//	env.Call("slice", []value.Value{arr}, map[string]value.Value{
//	    "index": value.FromInt(1),
//	    "step":  value.FromInt(2),
//	})
//
// Custom builtins are registered with AddFunction or AddBuiltin:
//
//	env.AddFunction("double", []lazyconf.BuiltinParam{{Name: "x"}},
//	    func(_ *lazyconf.State, args []value.Value) (value.Value, error) {
//	        n, _ := args[0].AsInt()
//	        return value.FromInt(n * 2), nil
//	    })
//
// The standard builtins are length, range, makeArray, reverse, slice,
// repeat, concat, flattenArrays, member, count, map, mapWithIndex,
// filter, foldl, foldr, manifestYamlDoc and fqname.
//
// # Configuration
//
// Settings are held in a Config and can be loaded from YAML:
//
//	cfg, err := lazyconf.LoadConfig("lazyconf.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := env.SetConfig(cfg); err != nil {
//	    return err
//	}
//
// # Fuel
//
// An evaluation can be limited to a number of calls. Every builtin call
// and every call of a function value made by a builtin consumes one unit:
//
//	fuel := uint64(1000)
//	env.SetFuel(&fuel)
//
// When the budget is exhausted the call fails with ErrOutOfFuel.
//
// # Errors
//
// All failures are *Error values with an ErrorKind. With debug enabled,
// formatting an error with %+v shows the builtins it passed through.
package lazyconf
