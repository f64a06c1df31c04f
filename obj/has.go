package obj

import "github.com/hasbyte1/go-blocks-utils/value"

// Has reports whether key is an own property of object. It never walks a
// prototype chain or looks at fields promoted from embedded structs, and it
// reports true for own properties holding false, Null or Undefined.
//
//	Has(map[string]any{"property": false}, "property")   // → true
//	Has(value.NewObject(proto), "inherited")             // → false
func Has(object any, key string) bool {
	_, ok := value.Own(object, key)
	return ok
}

// Keys returns the enumerable own property names of v, in the order
// [Extend] copies them.
func Keys(v any) []string {
	var keys []string
	value.EachOwn(v, func(k string, _ any) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
