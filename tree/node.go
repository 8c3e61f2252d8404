package tree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arr-ai/kindtree/parse"
	"github.com/arr-ai/kindtree/value"
)

// Node holds an optional value and an ordered list of children it owns
// exclusively. The zero Node is an empty leaf.
type Node struct {
	value    value.Value
	children []*Node
}

func NewNode(v value.Value) *Node {
	return &Node{value: v}
}

func (n *Node) HasValue() bool {
	return n.Kind() != value.EmptyKind
}

// Kind is the registry index of the node's value, value.EmptyKind if unset.
func (n *Node) Kind() value.Kind {
	return value.KindOf(n.value)
}

// Value never returns nil; an unset value is value.Empty{}.
func (n *Node) Value() value.Value {
	return value.Of(n.value)
}

// ValueAs returns the node's value as a T. ok is false if the node holds a
// different kind.
func ValueAs[T value.Value](n *Node) (v T, ok bool) {
	v, ok = n.Value().(T)
	return
}

// MustValueAs is ValueAs for callers that have already checked the kind.
func MustValueAs[T value.Value](n *Node) T {
	v, ok := ValueAs[T](n)
	if !ok {
		panic(fmt.Errorf("node holds %s, not %T", n.Kind(), v))
	}
	return v
}

func (n *Node) SetValue(v value.Value) {
	n.value = value.Of(v)
}

func (n *Node) ClearValue() {
	n.value = value.Empty{}
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Child(i int) *Node {
	return n.children[i]
}

func (n *Node) Len() int {
	return len(n.children)
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// AddChild appends a copy of child and its subtree, returning the copy now
// owned by n. Since the copy is fresh, a node can never end up with two
// parents or become its own ancestor.
func (n *Node) AddChild(child *Node) *Node {
	return n.appendChild(child.Clone())
}

// NewChild appends a new leaf holding v and returns it.
func (n *Node) NewChild(v value.Value) *Node {
	return n.appendChild(NewNode(v))
}

func (n *Node) appendChild(child *Node) *Node {
	n.children = append(n.children, child)
	return child
}

// RemoveChild removes the first child that is Equal to child, which compares
// values only: a child with a completely different subtree still matches.
// Reports whether anything was removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c.Equal(child) {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return true
		}
	}
	return false
}

func (n *Node) ClearAllChildren() {
	n.children = nil
}

// Equal compares the values of n and other. Children are not compared.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return value.Equal(n.value, other.value)
}

// Clone returns a deep copy of n. Cloning a nil Node yields an empty one.
func (n *Node) Clone() *Node {
	if n == nil {
		return &Node{}
	}
	type pair struct{ src, dst *Node }

	root := &Node{value: n.value}
	stack := []pair{{n, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.children) == 0 {
			continue
		}
		p.dst.children = make([]*Node, len(p.src.children))
		for i, c := range p.src.children {
			p.dst.children[i] = &Node{value: c.value}
			stack = append(stack, pair{c, p.dst.children[i]})
		}
	}
	return root
}

// String renders the node's own value.
func (n *Node) String() string {
	return value.Render(n.value)
}

// RenderTo writes the human-readable form of the node's own value.
func (n *Node) RenderTo(w io.Writer) (int, error) {
	return io.WriteString(w, value.Render(n.value))
}

// PackTo writes the serialized token of the node's own value, which is
// nothing at all for an empty node.
func (n *Node) PackTo(w io.Writer) (int, error) {
	if tok, ok := value.Pack(n.value); ok {
		return io.WriteString(w, tok)
	}
	return 0, nil
}

// parseFrom reads a kind index followed by that kind's value tokens. n is only
// modified once the whole value has been read.
func (n *Node) parseFrom(toks *parse.Tokens) error {
	tok, ok := toks.Next()
	if !ok {
		return newLoadError(KindIndexError, toks, "", value.ErrMissingToken)
	}
	i, err := strconv.Atoi(tok)
	switch {
	case err != nil:
		return newLoadError(KindIndexError, toks, tok, err.(*strconv.NumError).Err)
	case i < 0:
		return newLoadError(KindIndexError, toks, tok, errNegative)
	case i > int(value.EmptyKind):
		return newLoadError(KindIndexError, toks, tok,
			fmt.Errorf("should be in [0, %d]", value.EmptyKind))
	}

	v, err := value.Unpack(value.Kind(i), toks)
	if err != nil {
		ue := err.(*value.UnpackError)
		return newLoadError(ValueError, toks, ue.Token, ue)
	}
	n.value = v
	return nil
}
