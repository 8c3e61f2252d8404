package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arr-ai/kindtree/parse"
)

// ErrorKind classifies a Load failure.
type ErrorKind int

const (
	// StreamError means the input could not be read at all.
	StreamError ErrorKind = iota
	// CountError means a child count was missing, non-numeric or negative.
	CountError
	// KindIndexError means a kind index was missing, non-numeric, negative
	// or outside the registered range.
	KindIndexError
	// ValueError means a value's tokens could not be read as its kind.
	ValueError
)

// Sentinels for errors.Is. A *LoadError matches the sentinel of its Kind.
var (
	ErrStream    = errors.New("input stream not ready")
	ErrCount     = errors.New("malformed child count")
	ErrKindIndex = errors.New("malformed kind index")
	ErrValue     = errors.New("malformed value")
)

var errNegative = errors.New("negative")

func (k ErrorKind) sentinel() error {
	switch k {
	case StreamError:
		return ErrStream
	case CountError:
		return ErrCount
	case KindIndexError:
		return ErrKindIndex
	default:
		return ErrValue
	}
}

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

// LoadError reports why a Load failed and where.
type LoadError struct {
	Kind      ErrorKind
	Token     string
	Filename  string
	Line, Col int // 1-indexed; zero when no input was read
	Err       error
}

func newLoadError(kind ErrorKind, toks *parse.Tokens, token string, err error) *LoadError {
	line, col := toks.Position()
	return &LoadError{
		Kind:     kind,
		Token:    token,
		Filename: toks.Filename(),
		Line:     line,
		Col:      col,
		Err:      err,
	}
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	if e.Filename != "" {
		sb.WriteString(e.Filename + ":")
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%d:%d: ", e.Line, e.Col)
	}
	sb.WriteString(e.Kind.String())
	if e.Token != "" {
		fmt.Fprintf(&sb, " %q", e.Token)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
