package kind

import (
	"math"
	"math/big"
	"math/cmplx"
	"reflect"

	"github.com/hasbyte1/go-blocks-utils/dom"
)

// ─────────────────────────────────────────────────────────────────────────────
// Kind predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsArray reports whether v is a slice or an array. Array-like values
// (Arguments, node lists, types with Len/Index or Splice methods) are not
// arrays.
func IsArray(v any) bool { return Of(v) == Array }

// IsArguments reports whether v is a value.Arguments parameter list.
func IsArguments(v any) bool { return Of(v) == Arguments }

// IsString reports whether v is a string or a boxed (*string-like) string.
func IsString(v any) bool { return Of(v) == String }

// IsNumber reports whether v is a number or a boxed number. NaN and the
// infinities are numbers, and so are json.Number and math/big values.
func IsNumber(v any) bool { return Of(v) == Number }

// IsBoolean reports whether v is a bool or a boxed bool.
func IsBoolean(v any) bool { return Of(v) == Boolean }

// IsFunction reports whether v is a non-nil func. Values that merely have
// Call or Apply methods are not functions.
func IsFunction(v any) bool { return Of(v) == Function }

// IsDate reports whether v is a time.Time. Timestamps and durations are
// numbers, not dates.
func IsDate(v any) bool { return Of(v) == Date }

// IsRegExp reports whether v is a regexp.Regexp. Values that merely have
// Match or Test methods are not regexps.
func IsRegExp(v any) bool { return Of(v) == RegExp }

// IsNull reports whether v is value.Null or a nil pointer, func or channel.
// Undefined is not null.
func IsNull(v any) bool { return Of(v) == Null }

// IsUndefined reports whether v is the absent value (a nil interface).
func IsUndefined(v any) bool { return v == nil }

// IsElement reports whether v is a single DOM element node.
func IsElement(v any) bool { return dom.IsElement(v) }

// IsElements reports whether v is a non-empty collection of DOM element nodes.
func IsElements(v any) bool { return dom.IsElements(v) }

// IsObject reports whether v is a non-null reference value: arrays, maps,
// structs, functions, Arguments, objects, DOM nodes and boxed primitives.
// Undefined, null and primitives are not objects.
func IsObject(v any) bool { return classify(v).ref }

// IsPrimitive reports whether v is an unboxed boolean, number or string.
func IsPrimitive(v any) bool {
	c := classify(v)
	if c.ref {
		return false
	}
	switch c.kind {
	case Boolean, Number, String:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsNaN reports whether v is the not-a-number value, boxed or not. Strings,
// including "NaN", and every non-number are false.
func IsNaN(v any) bool {
	rv, ok := numeric(v)
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.IsNaN(rv.Complex())
	}
	return false
}

// IsFinite reports whether v is finite after numeric coercion. Numbers are
// finite unless NaN or infinite. Strings are finite when their trimmed text
// is a complete finite numeric literal: "0" and " 1.5e3 " are finite, "",
// "1a" and "Infinity" are not. Every other value, including null, undefined
// and booleans, is not finite.
func IsFinite(v any) bool {
	switch n := v.(type) {
	case *big.Float:
		return n != nil && !n.IsInf()
	case big.Float:
		return !n.IsInf()
	}
	if rv, ok := numeric(v); ok {
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		case reflect.Complex64, reflect.Complex128:
			c := rv.Complex()
			return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
		case reflect.String:
			_, ok := parseFinite(rv.String())
			return ok
		}
		return true
	}
	if rv, ok := unbox(v); ok && Of(v) == String {
		_, ok := parseFinite(rv.String())
		return ok
	}
	return false
}

// numeric returns the unboxed value of v when v is a number.
func numeric(v any) (reflect.Value, bool) {
	if Of(v) != Number {
		return reflect.Value{}, false
	}
	return unbox(v)
}

// unbox returns the value behind v, following one level of pointer.
func unbox(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv, false
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}
