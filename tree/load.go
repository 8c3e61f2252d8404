package tree

import (
	"errors"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/kindtree/parse"
	"github.com/arr-ai/kindtree/value"
)

var errNilReader = errors.New("nil reader")

// Load replaces the tree with one read from r. On any error the tree is left
// exactly as it was. Besides being returned, the error is logged as a
// diagnostic; the return value is what callers should act on.
//
// Tokens after the last node are ignored.
func (t *Tree) Load(r io.Reader) error {
	if r == nil {
		return t.fail(&LoadError{Kind: StreamError, Err: errNilReader})
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return t.fail(&LoadError{Kind: StreamError, Err: err})
	}
	var filename string
	if f, ok := r.(interface{ Name() string }); ok {
		filename = f.Name()
	}

	root, n, err := load(parse.NewTokens(parse.NewScannerWithFilename(string(buf), filename)))
	if err != nil {
		return t.fail(err.(*LoadError))
	}
	t.root = root
	t.logger().WithFields(logrus.Fields{
		"file":  filename,
		"nodes": n,
	}).Trace("tree loaded")
	return nil
}

func (t *Tree) fail(err *LoadError) error {
	fields := logrus.Fields{}
	if err.Filename != "" {
		fields["file"] = err.Filename
	}
	if err.Line > 0 {
		fields["line"] = err.Line
		fields["col"] = err.Col
	}
	if err.Token != "" {
		fields["token"] = err.Token
	}
	t.logger().WithFields(fields).Error(err.Error())
	return err
}

// pending is a parent still waiting for some of its children. Counting
// them in one entry behaves exactly like pushing one slot per child, since a
// parent's slots always sit together on top of the stack.
type pending struct {
	parent    *Node
	remaining int
}

// load reads the root record, then repeatedly takes the parent on top of the
// stack, reads its next child and pushes that child if it expects children of
// its own. The stack top is therefore always the deepest unfinished node,
// which yields preorder.
func load(toks *parse.Tokens) (*Node, int, error) {
	root := &Node{}
	if err := root.parseFrom(toks); err != nil {
		return nil, 0, err
	}
	count, err := parseCount(toks)
	if err != nil {
		return nil, 0, err
	}

	nodes := 1
	var stack []pending
	if count > 0 {
		stack = append(stack, pending{root, count})
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		parent := top.parent
		if top.remaining--; top.remaining == 0 {
			stack = stack[:len(stack)-1]
		}

		child := &Node{}
		if err := child.parseFrom(toks); err != nil {
			return nil, 0, err
		}
		parent.appendChild(child)
		nodes++

		count, err := parseCount(toks)
		if err != nil {
			return nil, 0, err
		}
		if count > 0 {
			stack = append(stack, pending{child, count})
		}
	}
	return root, nodes, nil
}

func parseCount(toks *parse.Tokens) (int, error) {
	tok, ok := toks.Next()
	if !ok {
		return 0, newLoadError(CountError, toks, "", value.ErrMissingToken)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, newLoadError(CountError, toks, tok, err.(*strconv.NumError).Err)
	}
	if n < 0 {
		return 0, newLoadError(CountError, toks, tok, errNegative)
	}
	return n, nil
}
