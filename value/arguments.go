package value

// Arguments holds the parameter list of a call. It is array-like, but it is
// its own kind of value and never classifies as an array.
type Arguments struct {
	values []any
}

// Args captures values as an Arguments list. The list keeps its own copy of
// values.
func Args(values ...any) Arguments {
	if len(values) == 0 {
		return Arguments{}
	}
	return Arguments{values: append([]any(nil), values...)}
}

// Len returns the number of arguments.
func (a Arguments) Len() int { return len(a.values) }

// Index returns the i-th argument, or Undefined when i is out of range.
func (a Arguments) Index(i int) any {
	if i < 0 || i >= len(a.values) {
		return Undefined
	}
	return a.values[i]
}

// Slice returns the arguments as a fresh slice.
func (a Arguments) Slice() []any {
	return append(make([]any, 0, len(a.values)), a.values...)
}
