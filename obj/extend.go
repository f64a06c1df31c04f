package obj

import (
	"maps"
	"reflect"

	"github.com/hasbyte1/go-blocks-utils/internal/fields"
	"github.com/hasbyte1/go-blocks-utils/value"
)

// Extend copies the enumerable own properties of each source onto dst and
// returns dst.
//
// Sources are applied left to right, so later sources overwrite earlier ones
// and any value already in dst. Properties holding Undefined or Null are
// copied like any other value; Undefined and Null sources are skipped.
// See [value.EachOwn] for what counts as an own property of a source.
//
// dst is mutated in place and returned. It may be a *value.Object, a map
// with string keys, or a pointer to a struct. When dst is Undefined, Null,
// a nil *value.Object or a nil map, a new empty value of the same shape
// (map[string]any for Undefined and Null) is allocated, filled and returned
// instead. Any other dst is returned unchanged.
//
// A property whose value cannot be stored in dst (because the map element
// or struct field has an incompatible type, or because dst has no such
// field) is skipped.
func Extend(dst any, srcs ...any) any {
	set, out := setter(dst)
	if set == nil {
		return out
	}
	for _, src := range srcs {
		value.EachOwn(src, func(key string, val any) bool {
			set(key, val)
			return true
		})
	}
	return out
}

// ExtendMap copies every entry of each source map onto dst, left to right,
// and returns dst. A nil dst is replaced by a new map.
func ExtendMap[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		maps.Copy(dst, src)
	}
	return dst
}

// setter returns a function that stores a property on dst, together with
// the value Extend returns. A nil setter means dst cannot hold properties.
func setter(dst any) (func(string, any), any) {
	if dst == nil || dst == value.Null {
		dst = map[string]any{}
	}
	switch d := dst.(type) {
	case *value.Object:
		if d == nil {
			d = value.NewObject(nil)
		}
		return func(k string, v any) { d.Set(k, v) }, d
	case map[string]any:
		if d == nil {
			d = map[string]any{}
		}
		return func(k string, v any) { d[k] = v }, d
	}

	rv := reflect.ValueOf(dst)
	switch rv.Kind() {
	case reflect.Map:
		kt, et := rv.Type().Key(), rv.Type().Elem()
		if kt.Kind() != reflect.String {
			return nil, dst
		}
		if rv.IsNil() {
			rv = reflect.MakeMap(rv.Type())
		}
		return func(k string, v any) {
			if ev, ok := assignable(v, et); ok {
				rv.SetMapIndex(reflect.ValueOf(k).Convert(kt), ev)
			}
		}, rv.Interface()
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, dst
		}
		sv := rv.Elem()
		return func(k string, v any) {
			f, ok := fields.Lookup(sv.Type(), k)
			if !ok {
				return
			}
			fv := sv.Field(f.Index)
			if ev, ok := assignable(v, fv.Type()); ok && fv.CanSet() {
				fv.Set(ev)
			}
		}, dst
	}
	return nil, dst
}

// assignable converts v into a value storable in a slot of type t.
// Undefined and Null become the zero value of nilable types; Null is stored
// as itself in interface slots.
func assignable(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil || (v == value.Null && t.Kind() != reflect.Interface) {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}
