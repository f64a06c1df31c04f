package value

import "reflect"

// ArrayLike is implemented by collections that expose a length and indexed
// access without being slices.
type ArrayLike interface {
	Len() int
	Index(i int) any
}

// Iterator wraps the Iterate method.
type Iterator interface {
	// Iterate calls the passed function with each value within the receiver.
	// The iteration is aborted if the function returns false.
	Iterate(func(v any) bool)
}

// Iterate calls fn with each element of v until fn returns false. It is
// implemented for slices, arrays, Arguments, and types satisfying ArrayLike
// or Iterator. Strings and maps are not collections.
//
// It returns false when v is not a collection, or when reading v panicked;
// in the latter case fn may already have seen some elements. Panics raised
// by fn itself are not recovered.
func Iterate(v any, fn func(any) bool) bool {
	switch v := v.(type) {
	case nil:
		return false
	case []any:
		for _, e := range v {
			if !fn(e) {
				break
			}
		}
		return true
	case *Arguments:
		if v == nil {
			return false
		}
		return Iterate(*v, fn)
	case ArrayLike:
		n, ok := lenOf(v)
		if !ok {
			return false
		}
		for i := 0; i < n; i++ {
			e, ok := indexOf(v, i)
			if !ok {
				return false
			}
			if !fn(e) {
				break
			}
		}
		return true
	case Iterator:
		return iterateForeign(v, fn)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !fn(rv.Index(i).Interface()) {
				break
			}
		}
		return true
	}
	return false
}

func lenOf(l ArrayLike) (n int, ok bool) {
	defer func() {
		if recover() != nil {
			n, ok = 0, false
		}
	}()
	return l.Len(), true
}

func indexOf(l ArrayLike, i int) (e any, ok bool) {
	defer func() {
		if recover() != nil {
			e, ok = nil, false
		}
	}()
	return l.Index(i), true
}

// callbackPanic carries a panic raised by the caller's function through a
// foreign Iterate method.
type callbackPanic struct {
	value any
}

// iterateForeign runs it.Iterate, recovering panics raised by it while
// re-raising those raised by fn.
func iterateForeign(it Iterator, fn func(any) bool) (ok bool) {
	var cb *callbackPanic
	defer func() {
		if r := recover(); r != nil {
			if cb != nil {
				panic(cb.value)
			}
			ok = false
		}
	}()
	it.Iterate(func(e any) bool {
		defer func() {
			if r := recover(); r != nil {
				cb = &callbackPanic{value: r}
				panic(r)
			}
		}()
		return fn(e)
	})
	return true
}

// Len returns the number of elements of the collection v, or -1 when v is
// not a collection or its length is not known up front.
func Len(v any) (n int) {
	defer func() {
		if recover() != nil {
			n = -1
		}
	}()
	switch v := v.(type) {
	case nil:
		return -1
	case []any:
		return len(v)
	case *Arguments:
		if v == nil {
			return -1
		}
		return v.Len()
	case ArrayLike:
		return v.Len()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return -1
}
