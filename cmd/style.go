package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arr-ai/kindtree/tree"
	"github.com/arr-ai/kindtree/value"
)

func useColor(f *os.File) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// diagramStyle colours the diagram when f is a terminal.
func diagramStyle(f *os.File) tree.Decorator {
	if !useColor(f) {
		return tree.Decorator{}
	}
	return colorStyle()
}

func colorStyle() tree.Decorator {
	guide := colorer(color.FgHiBlack)
	kinds := map[value.Kind]func(a ...interface{}) string{
		value.IntKind:   colorer(color.FgYellow),
		value.FloatKind: colorer(color.FgMagenta),
		value.TextKind:  colorer(color.FgGreen),
		value.EmptyKind: colorer(color.Faint),
	}
	return tree.Decorator{
		Guide: func(s string) string { return guide(s) },
		Value: func(k value.Kind, s string) string { return kinds[k](s) },
	}
}

func colorer(attr color.Attribute) func(a ...interface{}) string {
	c := color.New(attr)
	c.EnableColor()
	return c.SprintFunc()
}
