package kind

import (
	"encoding/json"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"time"

	"github.com/hasbyte1/go-blocks-utils/dom"
	"github.com/hasbyte1/go-blocks-utils/value"
)

// Kind is the class of a dynamic value. Every value has exactly one Kind.
type Kind uint8

const (
	Undefined Kind = iota
	Null
	Boolean
	Number
	String
	Array
	Arguments
	Function
	Date
	RegExp
	Element
	Object
)

var kindNames = [...]string{
	Undefined: "undefined",
	Null:      "null",
	Boolean:   "boolean",
	Number:    "number",
	String:    "string",
	Array:     "array",
	Arguments: "arguments",
	Function:  "function",
	Date:      "date",
	RegExp:    "regexp",
	Element:   "element",
	Object:    "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Types recognised by identity rather than by their reflect.Kind.
var (
	timeType       = reflect.TypeOf(time.Time{})
	regexpType     = reflect.TypeOf(regexp.Regexp{})
	argumentsType  = reflect.TypeOf(value.Arguments{})
	jsonNumberType = reflect.TypeOf(json.Number(""))
	bigIntType     = reflect.TypeOf(big.Int{})
	bigFloatType   = reflect.TypeOf(big.Float{})
	bigRatType     = reflect.TypeOf(big.Rat{})
)

// class is the result of classifying a value: its kind, and whether the
// value is a reference (an object) rather than a primitive.
type class struct {
	kind Kind
	ref  bool
}

// Of returns the Kind of v.
//
// Classification looks only at the dynamic type of v, never at its method
// set: a struct with Len and Splice methods is an Object, not an Array. Named
// types classify like their underlying kind, so a type declared in another
// package as `type Label string` is a String.
func Of(v any) Kind {
	return classify(v).kind
}

func classify(v any) class {
	if v == nil {
		return class{kind: Undefined}
	}
	if v == value.Null {
		return class{kind: Null}
	}
	if dom.IsElement(v) {
		return class{Element, true}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return class{kind: Null}
		}
		// A pointer to a primitive is a boxed primitive; pointers to the
		// intrinsic object types keep their kind.
		switch c := classifyValue(rv.Elem()); c.kind {
		case Boolean, Number, String, Date, RegExp, Arguments:
			return class{c.kind, true}
		}
		return class{Object, true}
	}
	return classifyValue(rv)
}

func classifyValue(rv reflect.Value) class {
	switch rv.Type() {
	case timeType:
		return class{Date, true}
	case regexpType:
		return class{RegExp, true}
	case argumentsType:
		return class{Arguments, true}
	case jsonNumberType:
		return class{kind: Number}
	case bigIntType, bigFloatType, bigRatType:
		return class{Number, true}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return class{kind: Boolean}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return class{kind: Number}
	case reflect.String:
		return class{kind: String}
	case reflect.Slice, reflect.Array:
		return class{Array, true}
	case reflect.Func:
		if rv.IsNil() {
			return class{kind: Null}
		}
		return class{Function, true}
	case reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return class{kind: Null}
		}
	}
	return class{Object, true}
}
