package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/kindtree/value"
)

var kindsCommand = cli.Command{
	Name:      "kinds",
	Aliases:   []string{"k"},
	Usage:     "List the value kinds a node can hold and their serialized index",
	ArgsUsage: "[name...]",
	Action: func(c *cli.Context) error {
		return listKinds(os.Stdout, c.Args())
	},
}

func listKinds(w io.Writer, names []string) error {
	kinds := value.Kinds()
	if len(names) > 0 {
		kinds = kinds[:0]
		for _, name := range names {
			k, ok := value.KindByName(name)
			if !ok {
				return fmt.Errorf("unknown kind %q", name)
			}
			kinds = append(kinds, k)
		}
	}
	for _, k := range kinds {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", k, k); err != nil {
			return err
		}
	}
	return nil
}
