package value

import (
	"errors"
	"fmt"
	"strconv"

	kterrors "github.com/arr-ai/kindtree/errors"
)

// EmptyMarker is how an Empty value renders.
const EmptyMarker = "<->"

// ErrMissingToken is reported when the token source runs dry.
var ErrMissingToken = errors.New("missing token")

// TokenSource yields whitespace-delimited tokens. Next returns false once the
// source is exhausted.
type TokenSource interface {
	Next() (string, bool)
}

// UnpackError describes a token that could not be read as a value of Kind.
type UnpackError struct {
	Kind  Kind
	Token string
	Err   error
}

func (e *UnpackError) Error() string {
	if errors.Is(e.Err, ErrMissingToken) {
		return fmt.Sprintf("missing %s value", e.Kind)
	}
	return fmt.Sprintf("can't read %s value from %q: %v", e.Kind, e.Token, e.Err)
}

func (e *UnpackError) Unwrap() error { return e.Err }

type kindInfo struct {
	name    string
	aliases []string
	render  func(Value) string
	pack    func(Value) (string, bool)
	unpack  func(TokenSource) (Value, error)
}

//nolint:gochecknoglobals
var registry = [...]kindInfo{
	IntKind: {
		name:    "int",
		aliases: []string{"integer"},
		render:  formatInt,
		pack:    packed(formatInt),
		unpack:  unpackInt,
	},
	FloatKind: {
		name:    "float",
		aliases: []string{"double", "real"},
		render:  formatFloat,
		pack:    packed(formatFloat),
		unpack:  unpackFloat,
	},
	TextKind: {
		name:    "text",
		aliases: []string{"string"},
		render:  func(v Value) string { return `"` + string(v.(Text)) + `"` },
		pack:    packed(func(v Value) string { return string(v.(Text)) }),
		unpack:  unpackText,
	},
	EmptyKind: {
		name:    "empty",
		aliases: []string{"none"},
		render:  func(Value) string { return EmptyMarker },
		pack:    func(Value) (string, bool) { return "", false },
		unpack:  func(TokenSource) (Value, error) { return Empty{}, nil },
	},
}

// Render returns the human-readable form of v.
func Render(v Value) string {
	v = Of(v)
	return registry[v.Kind()].render(v)
}

// Pack returns the serialized token for v. The second result is false for
// kinds that pack to no token at all.
func Pack(v Value) (string, bool) {
	v = Of(v)
	return registry[v.Kind()].pack(v)
}

// Unpack consumes the tokens holding a value of kind k from src. k must be
// valid; callers are expected to have checked it.
func Unpack(k Kind, src TokenSource) (Value, error) {
	if !k.Valid() {
		panic(kterrors.Inconceivable)
	}
	return registry[k].unpack(src)
}

func packed(format func(Value) string) func(Value) (string, bool) {
	return func(v Value) (string, bool) {
		return format(v), true
	}
}

func formatInt(v Value) string {
	return strconv.FormatInt(int64(v.(Int)), 10)
}

// Floats use the shortest form that parses back to the same float64.
func formatFloat(v Value) string {
	return strconv.FormatFloat(float64(v.(Float)), 'g', -1, 64)
}

func unpackInt(src TokenSource) (Value, error) {
	tok, ok := src.Next()
	if !ok {
		return nil, &UnpackError{Kind: IntKind, Err: ErrMissingToken}
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, &UnpackError{Kind: IntKind, Token: tok, Err: numError(err)}
	}
	return Int(i), nil
}

func unpackFloat(src TokenSource) (Value, error) {
	tok, ok := src.Next()
	if !ok {
		return nil, &UnpackError{Kind: FloatKind, Err: ErrMissingToken}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, &UnpackError{Kind: FloatKind, Token: tok, Err: numError(err)}
	}
	return Float(f), nil
}

func unpackText(src TokenSource) (Value, error) {
	tok, ok := src.Next()
	if !ok {
		return nil, &UnpackError{Kind: TextKind, Err: ErrMissingToken}
	}
	return Text(tok), nil
}

// numError strips the function and input echo from strconv errors; the
// caller already reports the token.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
