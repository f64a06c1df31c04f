package value

import (
	"bytes"
	"encoding/json"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type property struct {
	value      any
	enumerable bool
}

// Object is a dynamic object: an ordered set of own properties plus an
// optional prototype that lookups fall back to.
//
// The zero value is an empty object without a prototype. All methods are
// safe to call on a nil *Object, which behaves as an empty, read-only object.
type Object struct {
	props *orderedmap.OrderedMap[string, property]
	proto *Object
}

// NewObject returns an empty object whose prototype is proto (which may be nil).
func NewObject(proto *Object) *Object {
	return &Object{props: orderedmap.New[string, property](), proto: proto}
}

// ObjectOf returns a new object holding the entries of m as enumerable own
// properties, in sorted key order.
func ObjectOf(m map[string]any) *Object {
	o := NewObject(nil)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// Set defines or overwrites the enumerable own property key and returns o.
// A new key is appended to the property order; an existing key keeps its
// position.
func (o *Object) Set(key string, v any) *Object {
	return o.Define(key, v, true)
}

// Define defines or overwrites the own property key with the given
// enumerability and returns o.
func (o *Object) Define(key string, v any, enumerable bool) *Object {
	if o == nil {
		return nil
	}
	if o.props == nil {
		o.props = orderedmap.New[string, property]()
	}
	o.props.Set(key, property{value: v, enumerable: enumerable})
	return o
}

// Own returns the own property key, ignoring the prototype.
func (o *Object) Own(key string) (any, bool) {
	if o == nil || o.props == nil {
		return nil, false
	}
	p, ok := o.props.Get(key)
	return p.value, ok
}

// Get returns the property key, looking through the prototype chain when o
// does not own it.
func (o *Object) Get(key string) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.Own(key); ok {
			return v, true
		}
	}
	return nil, false
}

// HasOwn reports whether key is an own property of o, enumerable or not.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.Own(key)
	return ok
}

// Delete removes the own property key and reports whether it existed.
func (o *Object) Delete(key string) bool {
	if !o.HasOwn(key) {
		return false
	}
	o.props.Delete(key)
	return true
}

// Keys returns the enumerable own property names in definition order.
func (o *Object) Keys() []string {
	var out []string
	o.each(func(k string, p property) {
		if p.enumerable {
			out = append(out, k)
		}
	})
	return out
}

// OwnKeys returns every own property name, enumerable or not, in definition
// order.
func (o *Object) OwnKeys() []string {
	var out []string
	o.each(func(k string, _ property) {
		out = append(out, k)
	})
	return out
}

// each calls fn with every own property in definition order.
func (o *Object) each(fn func(key string, p property)) {
	if o == nil || o.props == nil {
		return
	}
	for pair := o.props.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Len returns the number of enumerable own properties.
func (o *Object) Len() int {
	return len(o.Keys())
}

// Proto returns the prototype of o.
func (o *Object) Proto() *Object {
	if o == nil {
		return nil
	}
	return o.proto
}

// SetProto replaces the prototype of o. It refuses, returning false, when
// the change would make the prototype chain cyclic.
func (o *Object) SetProto(proto *Object) bool {
	if o == nil {
		return false
	}
	for cur := proto; cur != nil; cur = cur.proto {
		if cur == o {
			return false
		}
	}
	o.proto = proto
	return true
}

// MarshalJSON encodes the enumerable own properties of o as a JSON object,
// in definition order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		v, _ := o.Own(k)
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
