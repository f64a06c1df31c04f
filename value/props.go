package value

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/hasbyte1/go-blocks-utils/internal/fields"
)

// EachOwn calls fn with every enumerable own property of v until fn returns
// false. Properties are visited in a stable order:
//
//   - *Object: definition order
//   - maps with string keys: sorted key order
//   - structs and pointers to structs: field declaration order
//   - slices, arrays and Arguments: ascending index, keyed "0", "1", ...
//
// Other values, including Undefined, Null and primitives, have no
// enumerable own properties.
func EachOwn(v any, fn func(key string, val any) bool) {
	switch o := v.(type) {
	case nil:
		return
	case *Object:
		for _, k := range o.Keys() {
			v, _ := o.Own(k)
			if !fn(k, v) {
				return
			}
		}
		return
	case map[string]any:
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !fn(k, o[k]) {
				return
			}
		}
		return
	case *Arguments:
		if o != nil {
			EachOwn(*o, fn)
		}
		return
	case Arguments:
		for i, e := range o.values {
			if !fn(strconv.Itoa(i), e) {
				return
			}
		}
		return
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			if !fn(k.String(), rv.MapIndex(k).Interface()) {
				return
			}
		}
	case reflect.Struct:
		for _, f := range fields.Own(rv.Type()) {
			if !fn(f.Name, rv.Field(f.Index).Interface()) {
				return
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !fn(strconv.Itoa(i), rv.Index(i).Interface()) {
				return
			}
		}
	}
}

// Own returns the own property key of v. Unlike EachOwn it also finds
// non-enumerable properties of an *Object. It never consults a prototype
// chain or the fields promoted from embedded structs.
func Own(v any, key string) (any, bool) {
	switch o := v.(type) {
	case nil:
		return nil, false
	case *Object:
		return o.Own(key)
	case map[string]any:
		val, ok := o[key]
		return val, ok
	case *Arguments:
		if o == nil {
			return nil, false
		}
		return Own(*o, key)
	case Arguments:
		if i, ok := index(key, len(o.values)); ok {
			return o.values[i], true
		}
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		if f, ok := fields.Lookup(rv.Type(), key); ok {
			return rv.Field(f.Index).Interface(), true
		}
	case reflect.Slice, reflect.Array:
		if i, ok := index(key, rv.Len()); ok {
			return rv.Index(i).Interface(), true
		}
	}
	return nil, false
}

// index parses key as a canonical decimal index below n.
func index(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}
