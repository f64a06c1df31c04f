// Package obj provides object helpers for dynamic values: shallow merging,
// own-property tests and dot-notation lookup.
//
// # Extend
//
// [Extend] is a shallow, right-biased merge. Every enumerable own property
// of each source is copied onto the destination, later sources winning:
//
//	obj.Extend(map[string]any{"x": "x"},
//	    map[string]any{"a": "a", "x": 2},
//	    map[string]any{"a": "b"})
//	// → map[string]any{"x": 2, "a": "b"}
//
// Properties holding nil or value.Null are copied too, so the result owns
// those keys. Nil and value.Null sources are skipped without error.
//
// [ExtendMap] is the typed counterpart for maps of a single type.
//
// # Own properties
//
// [Has] tests for an own property, never an inherited one:
//
//	proto := value.NewObject(nil).Set("inherited", true)
//	obj.Has(value.NewObject(proto), "inherited")  // → false
//	obj.Has(map[string]any{"p": false}, "p")      // → true
//
// # Dot notation
//
// [Get] walks nested objects, maps, structs and slices:
//
//	obj.Get(m, "user.address.city")
package obj
