package value

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kterrors "github.com/arr-ai/kindtree/errors"
)

type tokens []string

func (t *tokens) Next() (string, bool) {
	if len(*t) == 0 {
		return "", false
	}
	tok := (*t)[0]
	*t = (*t)[1:]
	return tok, true
}

func TestKindIndices(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, int(IntKind))
	assert.Equal(t, 1, int(FloatKind))
	assert.Equal(t, 2, int(TextKind))
	assert.Equal(t, 3, int(EmptyKind))
	assert.Equal(t, 3, NumKinds)
	assert.Equal(t, []Kind{IntKind, FloatKind, TextKind, EmptyKind}, Kinds())

	assert.True(t, EmptyKind.Valid())
	assert.False(t, Kind(-1).Valid())
	assert.False(t, Kind(4).Valid())
	assert.Equal(t, "kind(4)", Kind(4).String())
}

func TestKindByName(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string
		kind Kind
	}{
		{"int", IntKind},
		{"Int", IntKind},
		{" INTEGER ", IntKind},
		{"float", FloatKind},
		{"double", FloatKind},
		{"text", TextKind},
		{"String", TextKind},
		{"empty", EmptyKind},
		{"none", EmptyKind},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			k, ok := KindByName(test.name)
			require.True(t, ok)
			assert.Equal(t, test.kind, k)
		})
	}

	_, ok := KindByName("complex")
	assert.False(t, ok)
}

func TestRenderAndPack(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		value    Value
		rendered string
		packed   string
		hasToken bool
	}{
		{Int(5), "5", "5", true},
		{Int(-42), "-42", "-42", true},
		{Float(3.5), "3.5", "3.5", true},
		{Float(0.1), "0.1", "0.1", true},
		{Float(1e21), "1e+21", "1e+21", true},
		{Text("hello"), `"hello"`, "hello", true},
		{Empty{}, "<->", "", false},
		{nil, "<->", "", false},
	} {
		test := test
		t.Run(test.rendered, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.rendered, Render(test.value))
			tok, ok := Pack(test.value)
			assert.Equal(t, test.hasToken, ok)
			assert.Equal(t, test.packed, tok)
			if test.value != nil {
				assert.Equal(t, test.rendered, test.value.String())
			}
		})
	}
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		kind     Kind
		input    tokens
		expected Value
		rest     int
	}{
		{IntKind, tokens{"5", "2"}, Int(5), 1},
		{IntKind, tokens{"-7"}, Int(-7), 0},
		{FloatKind, tokens{"3.5", "0"}, Float(3.5), 1},
		{FloatKind, tokens{"2"}, Float(2), 0},
		{TextKind, tokens{"hello", "0"}, Text("hello"), 1},
		{TextKind, tokens{"12"}, Text("12"), 0},
		{EmptyKind, tokens{"0"}, Empty{}, 1},
		{EmptyKind, tokens{}, Empty{}, 0},
	} {
		test := test
		t.Run(test.kind.String()+"/"+test.expected.String(), func(t *testing.T) {
			t.Parallel()
			v, err := Unpack(test.kind, &test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, v)
			assert.Len(t, test.input, test.rest)
		})
	}
}

func TestUnpackFailures(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		kind  Kind
		input tokens
		token string
		msg   string
	}{
		{IntKind, tokens{}, "", "missing int value"},
		{IntKind, tokens{"3.5"}, "3.5", `can't read int value from "3.5": invalid syntax`},
		{IntKind, tokens{"99999999999999999999"}, "99999999999999999999", `can't read int value from "99999999999999999999": value out of range`},
		{FloatKind, tokens{"abc"}, "abc", `can't read float value from "abc": invalid syntax`},
		{FloatKind, tokens{}, "", "missing float value"},
		{TextKind, tokens{}, "", "missing text value"},
	} {
		test := test
		t.Run(test.msg, func(t *testing.T) {
			t.Parallel()
			v, err := Unpack(test.kind, &test.input)
			assert.Nil(t, v)
			var ue *UnpackError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, test.kind, ue.Kind)
			assert.Equal(t, test.token, ue.Token)
			assert.EqualError(t, err, test.msg)
		})
	}
}

func TestUnpackMissingIsErrMissingToken(t *testing.T) {
	t.Parallel()

	_, err := Unpack(IntKind, &tokens{})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestUnpackInvalidKindPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, kterrors.Inconceivable, func() {
		_, _ = Unpack(Kind(4), &tokens{"1"})
	})
}

func TestFloatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{0, -0.5, 1.0 / 3, math.Pi, 1e-300, math.MaxFloat64, math.Inf(1)} {
		f := f
		t.Run(strconv.FormatFloat(f, 'g', -1, 64), func(t *testing.T) {
			t.Parallel()
			tok, ok := Pack(Float(f))
			require.True(t, ok)
			v, err := Unpack(FloatKind, &tokens{tok})
			require.NoError(t, err)
			assert.Equal(t, Float(f), v)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Float(1)))
	assert.False(t, Equal(Text("1"), Int(1)))
	assert.True(t, Equal(nil, Empty{}))
	assert.Equal(t, EmptyKind, KindOf(nil))
}

func TestTextPackable(t *testing.T) {
	t.Parallel()

	assert.True(t, Text("hello").Packable())
	assert.False(t, Text("").Packable())
	assert.False(t, Text("hello world").Packable())
	assert.False(t, Text("tab\there").Packable())
}
