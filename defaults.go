package lazyconf

func registerDefaultBuiltins(env *Environment) {
	// Arrays
	env.AddFunction("length", required("x"), fnLength)
	env.AddFunction("range", required("from", "to"), fnRange)
	env.AddFunction("makeArray", required("sz", "func"), fnMakeArray)
	env.AddFunction("reverse", required("arr"), fnReverse)
	env.AddFunction("slice", []BuiltinParam{
		{Name: "indexable"},
		{Name: "index", HasDefault: true},
		{Name: "end", HasDefault: true},
		{Name: "step", HasDefault: true},
	}, fnSlice)
	env.AddFunction("repeat", required("what", "count"), fnRepeat)
	env.AddFunction("concat", required("a", "b"), fnConcat)
	env.AddFunction("flattenArrays", required("arrs"), fnFlattenArrays)
	env.AddFunction("member", required("arr", "x"), fnMember)
	env.AddFunction("count", required("arr", "x"), fnCount)

	// Higher order
	env.AddFunction("map", required("func", "arr"), fnMap)
	env.AddFunction("mapWithIndex", required("func", "arr"), fnMapWithIndex)
	env.AddFunction("filter", required("func", "arr"), fnFilter)
	env.AddFunction("foldl", required("func", "arr", "init"), fnFoldl)
	env.AddFunction("foldr", required("func", "arr", "init"), fnFoldr)

	// Output
	env.AddFunction("manifestYamlDoc", required("value"), fnManifestYamlDoc)

	// Naming
	env.AddFunction("fqname", required("prefix", "app", "appSrv", "beName", "nbInstance"), fnFqname)
}
