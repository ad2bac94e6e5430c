package value

// MergeMaps merges object values into a single object.
//
// Later values override earlier ones when keys overlap. Values that are
// not objects are ignored. Field values are shared, not copied, and
// nothing is evaluated. A single source is returned unchanged.
func MergeMaps(sources ...Value) Value {
	if len(sources) == 1 {
		return sources[0]
	}
	size := 0
	for _, src := range sources {
		if m, ok := src.AsMap(); ok {
			size += len(m)
		}
	}
	result := make(map[string]Value, size)
	for _, src := range sources {
		m, ok := src.AsMap()
		if !ok {
			continue
		}
		for key, field := range m {
			result[key] = field
		}
	}
	return FromMap(result)
}
