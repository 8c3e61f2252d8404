package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli"

	"github.com/arr-ai/kindtree/tree"
)

var verifyCommand = cli.Command{
	Name:    "verify",
	Aliases: []string{"check"},
	Usage:   "Check that a tree file is already in canonical dump form",
	Action: func(c *cli.Context) error {
		return verifyFile(inFile, os.Stdout)
	},
	Flags: []cli.Flag{inputFlag},
}

// verifyFile loads input and compares its tokens, one per line, with those of
// the tree's dump. Any difference (non-canonical numbers, trailing tokens) is
// shown as a line diff. The dump must also load back to an equal tree.
func verifyFile(input string, w io.Writer) error {
	if err := checkInput(input); err != nil {
		return err
	}
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	t, err := loadFile(input)
	if err != nil {
		return err
	}

	dump := t.DumpString()
	reloaded := &tree.Tree{}
	if err := reloaded.LoadString(dump); err != nil {
		return fmt.Errorf("%s: dump does not load back: %w", input, err)
	}
	if !reloaded.Equal(t) {
		return fmt.Errorf("%s: dump loads back as a different tree", input)
	}

	have, want := tokenLines(string(src)), tokenLines(dump)
	if have == want {
		_, err := fmt.Fprintf(w, "%s: ok (%d nodes)\n", input, t.Size())
		return err
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	if _, err := fmt.Fprint(w, dmp.DiffPrettyText(diffs)); err != nil {
		return err
	}
	return fmt.Errorf("%s: not in canonical form", input)
}

func tokenLines(s string) string {
	return strings.Join(strings.Fields(s), "\n") + "\n"
}
