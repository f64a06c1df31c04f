// Package arr converts dynamic values into slices.
//
// [ToArray] turns arguments lists, array-likes such as DOM node lists, and
// single values into a []any, returning values that already are a []any
// untouched:
//
//	arr.ToArray(value.Args(1, 2, 3))  // → []any{1, 2, 3}
//	arr.ToArray(2)                    // → []any{2}
//	arr.ToArray(nil)                  // → []any{nil}
//
//	a := []any{1, 2, 3}
//	arr.ToArray(a)                    // → a itself, not a copy
//
// [Each] iterates any value through the same conversion.
package arr
