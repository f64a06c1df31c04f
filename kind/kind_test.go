package kind_test

import (
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/hasbyte1/go-blocks-utils/arr"
	"github.com/hasbyte1/go-blocks-utils/dom"
	"github.com/hasbyte1/go-blocks-utils/kind"
	"github.com/hasbyte1/go-blocks-utils/value"
)

func ptr[T any](v T) *T { return &v }

type Label string

type Celsius float64

type Flag bool

// lookalikes expose the shape of an intrinsic kind without being one.
type spliceable struct{ Length int }

func (spliceable) Splice(int, int) {}

type charAtter struct{ Length int }

func (charAtter) CharAt(int) string { return "" }

type callable struct{}

func (callable) Call(...any) any  { return nil }
func (callable) Apply(...any) any { return nil }

type matcher struct{}

func (matcher) Test(string) bool  { return false }
func (matcher) Match(string) bool { return false }

type argsLike struct {
	Length int
	Callee func()
}

// ─── Of ───────────────────────────────────────────────────────────────────────

func TestOf(t *testing.T) {
	var nilMap map[string]int
	var nilSlice []int
	ch := make(chan int)

	tests := []struct {
		name string
		in   any
		want kind.Kind
	}{
		{"undefined", nil, kind.Undefined},
		{"null", value.Null, kind.Null},
		{"nil_pointer", (*int)(nil), kind.Null},
		{"nil_func", (func())(nil), kind.Null},
		{"nil_chan", (chan int)(nil), kind.Null},
		{"bool", true, kind.Boolean},
		{"named_bool", Flag(false), kind.Boolean},
		{"int", 1, kind.Number},
		{"uint8", uint8(1), kind.Number},
		{"float32", float32(1.5), kind.Number},
		{"complex", complex(1, 2), kind.Number},
		{"named_float", Celsius(21.5), kind.Number},
		{"json_number", json.Number("12"), kind.Number},
		{"big_int", big.NewInt(5), kind.Number},
		{"big_rat", big.NewRat(1, 3), kind.Number},
		{"duration", time.Second, kind.Number},
		{"string", "s", kind.String},
		{"named_string", Label("s"), kind.String},
		{"boxed_string", ptr("s"), kind.String},
		{"boxed_number", ptr(3), kind.Number},
		{"boxed_bool", ptr(true), kind.Boolean},
		{"slice", []int{1}, kind.Array},
		{"nil_slice", nilSlice, kind.Array},
		{"array", [2]int{}, kind.Array},
		{"bytes", []byte("x"), kind.Array},
		{"arguments", value.Args(1, 2), kind.Arguments},
		{"arguments_pointer", ptr(value.Args()), kind.Arguments},
		{"func", func() {}, kind.Function},
		{"library_func", kind.Of, kind.Function},
		{"date", time.Now(), kind.Date},
		{"date_pointer", ptr(time.Now()), kind.Date},
		{"regexp", regexp.MustCompile("x"), kind.RegExp},
		{"element", dom.CreateElement("div"), kind.Element},
		{"text_node", &html.Node{Type: html.TextNode}, kind.Object},
		{"map", map[string]any{}, kind.Object},
		{"nil_map", nilMap, kind.Object},
		{"struct", struct{}{}, kind.Object},
		{"object", value.NewObject(nil), kind.Object},
		{"node_list", dom.ChildNodes(nil), kind.Object},
		{"chan", ch, kind.Object},
		{"unsafe_pointer", unsafe.Pointer(&ch), kind.Object},
		{"pointer_to_slice", &nilSlice, kind.Object},
		{"pointer_to_pointer", ptr(ptr(1)), kind.Object},
		{"spliceable", spliceable{Length: 2}, kind.Object},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kind.Of(tt.in))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "undefined", kind.Undefined.String())
	assert.Equal(t, "arguments", kind.Arguments.String())
	assert.Equal(t, "object", kind.Object.String())
	assert.Equal(t, "Kind(200)", kind.Kind(200).String())
}

// ─── IsArray / IsArguments ────────────────────────────────────────────────────

func TestIsArray(t *testing.T) {
	args := value.Args(1, 2, 3)

	assert.True(t, kind.IsArray([]int{1, 2, 3}))
	assert.True(t, kind.IsArray(make([]any, 3)))
	assert.False(t, kind.IsArray(nil))
	assert.False(t, kind.IsArray(value.Null))
	assert.False(t, kind.IsArray(args), "arguments is not an array")
	assert.False(t, kind.IsArray(spliceable{Length: 2}), "length and splice do not make an array")
	assert.True(t, kind.IsArray(arr.ToArray(args)))
}

func TestIsArguments(t *testing.T) {
	args := value.Args(1, 2, 3)

	assert.False(t, kind.IsArguments("string"))
	assert.False(t, kind.IsArguments(kind.IsArguments))
	assert.True(t, kind.IsArguments(args))
	assert.False(t, kind.IsArguments(arr.ToArray(args)))
	assert.False(t, kind.IsArguments([]int{1, 2, 3}))
	assert.False(t, kind.IsArguments(argsLike{Length: 1, Callee: func() {}}))
}

// ─── IsString / IsNumber / IsBoolean ──────────────────────────────────────────

func TestIsString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"string", "string", true},
		{"boxed", ptr("string"), true},
		{"named", Label("x"), true},
		{"numeric_string", "3", true},
		{"element", dom.CreateElement("body"), false},
		{"string_lookalike", charAtter{Length: 3}, false},
		{"null", value.Null, false},
		{"undefined", nil, false},
		{"array", []int{1, 2, 3}, false},
		{"bytes", []byte("abc"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kind.IsString(tt.in))
		})
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"zero", 0, true},
		{"boxed", ptr(0), true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
		{"neg_inf", math.Inf(-1), true},
		{"named", Celsius(1), true},
		{"string_number", "3", false},
		{"undefined", nil, false},
		{"null", value.Null, false},
		{"nil_pointer", (*int)(nil), false},
		{"host_object", &html.Node{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kind.IsNumber(tt.in))
		})
	}
}

func TestIsBoolean(t *testing.T) {
	assert.True(t, kind.IsBoolean(true))
	assert.True(t, kind.IsBoolean(false))
	assert.True(t, kind.IsBoolean(ptr(false)))
	assert.True(t, kind.IsBoolean(Flag(true)))
	assert.False(t, kind.IsBoolean(nil))
	assert.False(t, kind.IsBoolean(value.Null))
	assert.False(t, kind.IsBoolean(math.NaN()))
	assert.False(t, kind.IsBoolean("true"))
	assert.False(t, kind.IsBoolean(&html.Node{}))
}

func TestBoxedPrimitivesAgree(t *testing.T) {
	prims := []any{"", "text", 0, -1, 3.5, math.NaN(), math.Inf(1), true, false, uint16(9), Label("l")}
	boxed := []any{ptr(""), ptr("text"), ptr(0), ptr(-1), ptr(3.5), ptr(math.NaN()), ptr(math.Inf(1)), ptr(true), ptr(false), ptr(uint16(9)), ptr(Label("l"))}

	for i := range prims {
		p, b := prims[i], boxed[i]
		assert.Equal(t, kind.IsString(p), kind.IsString(b), "IsString(%v)", p)
		assert.Equal(t, kind.IsNumber(p), kind.IsNumber(b), "IsNumber(%v)", p)
		assert.Equal(t, kind.IsBoolean(p), kind.IsBoolean(b), "IsBoolean(%v)", p)
		assert.Equal(t, kind.IsNaN(p), kind.IsNaN(b), "IsNaN(%v)", p)
		assert.Equal(t, kind.IsFinite(p), kind.IsFinite(b), "IsFinite(%v)", p)
		assert.True(t, kind.IsObject(b))
		assert.False(t, kind.IsObject(p))
		assert.True(t, kind.IsPrimitive(p))
		assert.False(t, kind.IsPrimitive(b))
	}
}

// ─── IsFunction / IsDate / IsRegExp ───────────────────────────────────────────

func TestIsFunction(t *testing.T) {
	assert.True(t, kind.IsFunction(func() {}))
	assert.True(t, kind.IsFunction(kind.IsFunction))
	assert.True(t, kind.IsFunction(value.Noop))
	assert.False(t, kind.IsFunction(nil))
	assert.False(t, kind.IsFunction(value.Null))
	assert.False(t, kind.IsFunction((func())(nil)))
	assert.False(t, kind.IsFunction(callable{}))
	assert.False(t, kind.IsFunction([]any{}))
	assert.False(t, kind.IsFunction(&html.Node{}))
}

func TestIsDate(t *testing.T) {
	assert.True(t, kind.IsDate(time.Now()))
	assert.False(t, kind.IsDate(time.Now().UnixMilli()))
	assert.False(t, kind.IsDate(map[string]any{}))
	assert.False(t, kind.IsDate(nil))
	assert.False(t, kind.IsDate(value.Null))
	assert.False(t, kind.IsDate(13))
	assert.False(t, kind.IsDate((*time.Time)(nil)))
}

func TestIsRegExp(t *testing.T) {
	assert.True(t, kind.IsRegExp(regexp.MustCompile("regexp")))
	assert.True(t, kind.IsRegExp(*regexp.MustCompile("asd")))
	assert.False(t, kind.IsRegExp(value.Noop))
	assert.False(t, kind.IsRegExp(matcher{}))
	assert.False(t, kind.IsRegExp("regexp"))
	assert.False(t, kind.IsRegExp(nil))
	assert.False(t, kind.IsRegExp(value.Null))
}

// ─── IsFinite / IsNaN ─────────────────────────────────────────────────────────

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"zero", 0, true},
		{"boxed", ptr(1.0), true},
		{"numeric_string", "0", true},
		{"padded_string", "  -1.5e3\n", true},
		{"nbsp_and_bom_padding", "\u00a07\ufeff", true},
		{"line_separator_padding", "\u20287\u2029", true},
		{"nel_padding", "\u00857", false},
		{"fraction_only", ".5", true},
		{"trailing_dot", "5.", true},
		{"hex_string", "0x1F", true},
		{"binary_string", "0b101", true},
		{"underflow_string", "1e-400", true},
		{"boxed_string", ptr("42"), true},
		{"json_number", json.Number("7"), true},
		{"big_int", big.NewInt(1), true},
		{"non_numeric_string", "1a", false},
		{"empty_string", "", false},
		{"blank_string", "   ", false},
		{"infinity_string", "Infinity", false},
		{"overflow_string", "1e400", false},
		{"signed_hex", "-0x1F", false},
		{"hex_with_inner_sign", "0x-1F", false},
		{"separator", "1_000", false},
		{"lone_dot", ".", false},
		{"inf", math.Inf(1), false},
		{"neg_inf", math.Inf(-1), false},
		{"nan", math.NaN(), false},
		{"complex_inf", complex(math.Inf(1), 0), false},
		{"big_float_inf", new(big.Float).SetInf(false), false},
		{"undefined", nil, false},
		{"null", value.Null, false},
		{"bool", true, false},
		{"slice", []int{5}, false},
		{"date", time.Now(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kind.IsFinite(tt.in))
		})
	}
}

func TestIsNaN(t *testing.T) {
	assert.True(t, kind.IsNaN(math.NaN()))
	assert.True(t, kind.IsNaN(ptr(math.NaN())))
	assert.True(t, kind.IsNaN(float32(math.NaN())))
	assert.True(t, kind.IsNaN(complex(math.NaN(), 0)))
	assert.False(t, kind.IsNaN(0))
	assert.False(t, kind.IsNaN("NaN"))
	assert.False(t, kind.IsNaN(json.Number("NaN")))
	assert.False(t, kind.IsNaN(map[string]any{}))
	assert.False(t, kind.IsNaN(nil))
	assert.False(t, kind.IsNaN(value.Null))
	assert.False(t, kind.IsNaN(&html.Node{}))
}

// ─── IsNull / IsUndefined ─────────────────────────────────────────────────────

func TestIsNull(t *testing.T) {
	assert.True(t, kind.IsNull(value.Null))
	assert.True(t, kind.IsNull((*int)(nil)))
	assert.False(t, kind.IsNull(nil))
	assert.False(t, kind.IsNull(value.Undefined))
	assert.False(t, kind.IsNull(map[string]any{}))
	assert.False(t, kind.IsNull(kind.IsNull))
	assert.False(t, kind.IsNull(&html.Node{}))
}

func TestIsUndefined(t *testing.T) {
	var absent any

	assert.True(t, kind.IsUndefined(nil))
	assert.True(t, kind.IsUndefined(absent))
	assert.True(t, kind.IsUndefined(value.Undefined))
	assert.True(t, kind.IsUndefined(value.Args().Index(0)), "a missing argument is undefined")
	assert.False(t, kind.IsUndefined(value.Null))
	assert.False(t, kind.IsUndefined(0))
	assert.False(t, kind.IsUndefined(map[string]any{}))
	assert.False(t, kind.IsUndefined(math.NaN()))
	assert.False(t, kind.IsUndefined((*int)(nil)))
	assert.False(t, kind.IsUndefined(&html.Node{}))
}

// ─── IsObject ─────────────────────────────────────────────────────────────────

func TestIsObject(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"arguments", value.Args(1, 2, 3), true},
		{"array", []int{1, 2, 3}, true},
		{"element", dom.CreateElement("div"), true},
		{"function", func() {}, true},
		{"boxed_string", ptr("string"), true},
		{"boxed_number", ptr(123), true},
		{"boxed_bool", ptr(false), true},
		{"map", map[string]any{}, true},
		{"object", value.NewObject(nil), true},
		{"date", time.Now(), true},
		{"null", value.Null, false},
		{"nil_pointer", (*int)(nil), false},
		{"undefined", nil, false},
		{"string", "string", false},
		{"number", 123, false},
		{"bool", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kind.IsObject(tt.in))
		})
	}
}

// ─── IsElement / IsElements ───────────────────────────────────────────────────

func TestIsElement(t *testing.T) {
	assert.False(t, kind.IsElement("div"))
	assert.True(t, kind.IsElement(dom.CreateElement("div")))
}

func TestIsElements(t *testing.T) {
	assert.False(t, kind.IsElements(nil))
	assert.False(t, kind.IsElements(value.Null))
	assert.True(t, kind.IsElements([]*html.Node{dom.CreateElement("a"), dom.CreateElement("b")}))
}

// ─── Exclusivity ──────────────────────────────────────────────────────────────

func TestNoValueIsBothArrayAndArguments(t *testing.T) {
	vals := []any{value.Args(), value.Args(1), []any{}, arr.ToArray(value.Args(1)), ptr(value.Args(2))}
	for _, v := range vals {
		assert.False(t, kind.IsArray(v) && kind.IsArguments(v), "%#v", v)
	}
}
