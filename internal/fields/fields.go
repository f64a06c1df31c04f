// Package fields enumerates the own properties of Go struct types.
//
// A struct's own properties are its exported fields declared directly on the
// struct. Fields promoted from embedded structs are inherited and are not
// listed; the embedded field itself is own and appears under its own name.
package fields

import (
	"reflect"
	"strings"
)

// Field is a single own property of a struct type.
type Field struct {
	// Name is the property name: the json tag name when present, otherwise
	// the Go field name.
	Name string
	// Index is the position of the field in the struct.
	Index int
}

// Own returns the own properties of struct type t in declaration order.
// It returns nil when t is not a struct type.
func Own(t reflect.Type) []Field {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	out := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := nameOf(t.Field(i)); ok {
			out = append(out, Field{Name: name, Index: i})
		}
	}
	return out
}

// Lookup returns the own property of t called name.
func Lookup(t reflect.Type, name string) (Field, bool) {
	for _, f := range Own(t) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func nameOf(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch tag {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return tag, true
}
