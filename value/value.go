package value

import (
	"fmt"
	"strings"
)

// Value is the payload of a tree node. Exactly one variant is active: Empty,
// Int, Float or Text. The set is closed; no other package can add variants.
type Value interface {
	fmt.Stringer
	Kind() Kind
	isValue()
}

func (Empty) isValue() {}
func (Int) isValue()   {}
func (Float) isValue() {}
func (Text) isValue()  {}

// Empty is the absence of a value.
type Empty struct{}

type Int int64

type Float float64

// Text is a string value. Text travels through the serialized grammar as a
// single whitespace-delimited token, so only Packable texts round-trip.
type Text string

func (Empty) Kind() Kind { return EmptyKind }
func (Int) Kind() Kind   { return IntKind }
func (Float) Kind() Kind { return FloatKind }
func (Text) Kind() Kind  { return TextKind }

func (v Empty) String() string { return Render(v) }
func (v Int) String() string   { return Render(v) }
func (v Float) String() string { return Render(v) }
func (v Text) String() string  { return Render(v) }

// Packable reports whether t survives a pack/unpack round trip, i.e. it is a
// single non-empty token.
func (t Text) Packable() bool {
	return t != "" && !strings.ContainsAny(string(t), Whitespace)
}

// Whitespace lists the bytes that separate tokens in the serialized grammar.
const Whitespace = " \t\n\v\f\r"

// Of returns v itself, or Empty if v is nil.
func Of(v Value) Value {
	if v == nil {
		return Empty{}
	}
	return v
}

// KindOf returns the kind of v, treating nil as Empty.
func KindOf(v Value) Kind {
	return Of(v).Kind()
}

// Equal reports whether a and b hold the same kind and payload. A nil Value
// equals Empty.
func Equal(a, b Value) bool {
	return Of(a) == Of(b)
}
