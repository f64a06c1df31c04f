// Package value defines the dynamic value model shared by the helper
// packages of this module.
//
// Plain Go values are used wherever possible. The model only adds the few
// concepts Go has no direct equivalent for:
//
//   - [Undefined]: the absent value, represented by the nil interface.
//   - [Null]: an explicit "no object" value, distinct from [Undefined].
//   - [Arguments]: the parameter list of a call, array-like but not an array.
//   - [Object]: a dynamic object with ordered own properties, a per-property
//     enumerable flag and a prototype link.
//
// # Collections
//
// [Iterate] and [Len] understand slices, arrays, [Arguments], and any type
// implementing [ArrayLike] or [Iterator]:
//
//	value.Iterate(value.Args(1, 2, 3), func(v any) bool {
//	    fmt.Println(v)
//	    return true
//	})
//
// # Own properties
//
// [EachOwn] and [Own] expose the own properties of objects, string-keyed
// maps, structs and sequences:
//
//	proto := value.NewObject(nil).Set("inherited", true)
//	o := value.NewObject(proto).Set("own", false)
//	_, ok := value.Own(o, "own")       // → true
//	_, ok = value.Own(o, "inherited")  // → false
package value
