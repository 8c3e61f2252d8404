package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/kindtree/tree"
)

var inFile string
var outFile string
var noColor bool

var inputFlag = cli.StringFlag{
	Name:        "input, i",
	Usage:       "path to input file with tree",
	TakesFile:   true,
	Destination: &inFile,
}

var convertFlags = []cli.Flag{
	inputFlag,
	cli.StringFlag{
		Name:        "output, o",
		Usage:       "path to output file to serialize tree",
		TakesFile:   true,
		Destination: &outFile,
	},
	cli.BoolFlag{
		Name:        "no-color",
		Usage:       "never colour the diagram written to stdout",
		Destination: &noColor,
	},
}

var convertCommand = cli.Command{
	Name:    "convert",
	Aliases: []string{"c"},
	Usage:   "Load a tree, then write its dump and diagram to a file and its diagram to stdout",
	Action:  convert,
	Flags:   convertFlags,
}

func convert(c *cli.Context) error {
	return convertFile(inFile, outFile, os.Stdout, diagramStyle(os.Stdout))
}

// convertFile loads input and writes the dump followed by the diagram to
// output, and the diagram alone to stdout. output is only touched once the
// tree has loaded.
func convertFile(input, output string, stdout io.Writer, style tree.Decorator) (err error) {
	if err := checkInput(input); err != nil {
		return err
	}
	if err := checkOutput(output); err != nil {
		return err
	}

	t, err := loadFile(input)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err := t.Dump(out); err != nil {
		return err
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return err
	}
	if err := t.Print(out); err != nil {
		return err
	}
	return t.PrintDecorated(stdout, style)
}

func checkInput(path string) error {
	if path == "" {
		return fmt.Errorf("missing --input")
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("no such file %q", path)
	}
	return nil
}

func checkOutput(path string) error {
	if path == "" {
		return fmt.Errorf("missing --output")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("no such file %q", path)
	}
	return nil
}

func loadFile(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t tree.Tree
	if err := t.Load(f); err != nil {
		return nil, err
	}
	return &t, nil
}
