package value

// Undefined is the absent value. Any nil interface is undefined, so a
// missing map entry or an unset any field reads as Undefined.
var Undefined any

// Null is the explicit "no object" value.
var Null = null{}

type null struct{}

func (null) String() string { return "null" }

// MarshalJSON encodes Null as the JSON null literal.
func (null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalYAML encodes Null as the YAML null scalar.
func (null) MarshalYAML() (any, error) { return nil, nil }

// Noop accepts any arguments and does nothing.
func Noop(...any) {}
