package arr

import (
	"reflect"

	"github.com/hasbyte1/go-blocks-utils/kind"
	"github.com/hasbyte1/go-blocks-utils/value"
)

var anySliceType = reflect.TypeOf([]any(nil))

// maxPrealloc caps the capacity reserved from an array-like's reported length.
const maxPrealloc = 1024

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray converts v into a []any.
//
//   - A []any (or a named type whose underlying type is []any) is returned
//     as is, sharing its backing array.
//   - Any other slice or array is widened element by element into a new
//     []any.
//   - Arguments, array-likes (such as dom.NodeList) and iterators are copied
//     into a new []any.
//   - Undefined becomes []any{nil}; every other value, strings included,
//     becomes a one-element slice holding it.
//
// If an array-like panics while it is being read, ToArray falls back to
// []any{v} rather than propagating the panic.
func ToArray(v any) []any {
	switch a := v.(type) {
	case nil:
		return []any{nil}
	case []any:
		return a
	case value.Arguments:
		return a.Slice()
	}

	if kind.IsArray(v) {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice && rv.Type().ConvertibleTo(anySliceType) {
			return rv.Convert(anySliceType).Interface().([]any)
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}

	// Len is only a hint; an array-like may report more than it holds.
	n := min(max(value.Len(v), 0), maxPrealloc)
	items := make([]any, 0, n)
	if value.Iterate(v, func(e any) bool {
		items = append(items, e)
		return true
	}) {
		return items
	}
	return []any{v}
}

// Each calls fn with every element of v, as converted by [ToArray], and its
// index. Iteration stops when fn returns false.
func Each(v any, fn func(item any, index int) bool) {
	for i, item := range ToArray(v) {
		if !fn(item, i) {
			return
		}
	}
}

// Wrap wraps value in a one-element slice.
func Wrap[T any](value T) []T {
	return []T{value}
}
