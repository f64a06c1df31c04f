package obj

import (
	"strings"

	"github.com/hasbyte1/go-blocks-utils/value"
)

// Get retrieves the value at a dot-notation path, such as
// "user.address.city" or "items.0.name".
//
// Each segment is looked up as an own property (see [value.Own]), except on
// a *value.Object, where inherited properties are found through the
// prototype chain. An empty path returns v itself.
//
//	Get(m, "user.address.city")  // → "London", true
//	Get(m, "user.missing")       // → nil, false
func Get(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for _, seg := range strings.Split(path, ".") {
		var ok bool
		if o, isObj := cur.(*value.Object); isObj {
			cur, ok = o.Get(seg)
		} else {
			cur, ok = value.Own(cur, seg)
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
