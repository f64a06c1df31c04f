// Package kind classifies arbitrary Go values into the canonical kinds of a
// dynamic value: undefined, null, boolean, number, string, array, arguments,
// function, date, regexp, element and object.
//
// # Classification
//
// [Of] returns the single [Kind] of a value. It inspects the dynamic type of
// the value (its reflect.Kind, plus a few exact types such as time.Time and
// regexp.Regexp) and never its method set, so look-alikes are rejected:
//
//	kind.IsArray([]int{1, 2, 3})                // → true
//	kind.IsArray(value.Args(1, 2, 3))           // → false (arguments)
//	kind.IsDate(time.Now())                     // → true
//	kind.IsDate(time.Now().UnixMilli())         // → false (number)
//
// Because the check is by type discriminant rather than type identity,
// named types from any package classify like their underlying kind.
//
// # Boxed primitives
//
// A non-nil pointer to a bool, number or string is a boxed primitive. Boxed
// values satisfy the same predicate as the primitive and are also objects:
//
//	s := "text"
//	kind.IsString(&s)   // → true
//	kind.IsObject(&s)   // → true
//	kind.IsObject(s)    // → false
//
// # Undefined and null
//
// The nil interface is undefined. [value.Null], nil pointers, nil funcs and
// nil channels are null. Nil slices and maps remain arrays and objects, as
// Go treats them as empty collections.
//
// # Totality
//
// Every function in this package is total: it returns false (or a Kind) for
// any input and never panics.
package kind
