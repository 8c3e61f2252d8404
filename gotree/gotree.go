// Package gotree create and print tree.
package gotree

import (
	"io"
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type (
	tree struct {
		text  string
		items []Tree
	}

	// Tree is tree interface
	Tree interface {
		Add(text string) Tree
		AddTree(tree Tree)
		Items() []Tree
		Text() string
		Print() string
	}

	printer struct {
		guide func(string) string
	}

	// Printer is printer interface
	Printer interface {
		Print(Tree) string
		Fprint(io.Writer, Tree) error
	}
)

//New returns a new GoTree.Tree
func New(text string) Tree {
	return &tree{text: text}
}

//Add adds a node to the tree
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

//AddTree adds a tree as an item
func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

//Text returns the node's value
func (t *tree) Text() string {
	return t.text
}

//Items returns all items in the tree
func (t *tree) Items() []Tree {
	return t.items
}

//Print returns an visual representation of the tree
func (t *tree) Print() string {
	return NewPrinter(nil).Print(t)
}

// NewPrinter returns a Printer. guide, if not nil, decorates the connector
// and indentation glyphs of every line (e.g. to colour them).
func NewPrinter(guide func(string) string) Printer {
	if guide == nil {
		guide = func(s string) string { return s }
	}
	return &printer{guide: guide}
}

//Print prints a tree to a string
func (p *printer) Print(t Tree) string {
	var sb strings.Builder
	_ = p.Fprint(&sb, t)
	return sb.String()
}

type frame struct {
	tree   Tree
	prefix string
	last   bool
}

// Fprint writes the tree to w, one line per item. The root is drawn as the
// last item of an otherwise empty level. Items are walked with an explicit
// stack so deep trees do not grow the call stack.
func (p *printer) Fprint(w io.Writer, t Tree) error {
	var sb strings.Builder
	stack := []frame{{tree: t, last: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.printText(&sb, f.tree.Text(), f.prefix, f.last)

		items := f.tree.Items()
		prefix := f.prefix + continueItem
		if f.last {
			prefix = f.prefix + emptySpace
		}
		for i := len(items) - 1; i >= 0; i-- {
			stack = append(stack, frame{tree: items[i], prefix: prefix, last: i == len(items)-1})
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (p *printer) printText(sb *strings.Builder, text, prefix string, last bool) {
	indicator := middleItem
	if last {
		indicator = lastItem
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if last {
				indicator = emptySpace
			} else {
				indicator = continueItem
			}
		}
		sb.WriteString(p.guide(prefix + indicator))
		sb.WriteString(line)
		sb.WriteString(newLine)
	}
}
