package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/kindtree/tree"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

var verboseMode bool

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "kindtree"
	app.Usage = "load, dump and draw trees of int, float and text values"
	app.Version = info.Version

	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	}, convertFlags...)
	app.Before = func(*cli.Context) error {
		if verboseMode {
			logrus.SetLevel(logrus.TraceLevel)
		}
		return nil
	}
	app.Action = convert

	app.Commands = []cli.Command{convertCommand, kindsCommand, verifyCommand}

	os.Exit(exitCode(logrus.StandardLogger(), app.Run(os.Args)))
}

// exitCode maps the result of a run to a process exit code. Load failures
// were already logged by the tree that hit them.
func exitCode(logger logrus.FieldLogger, err error) int {
	if err == nil {
		return 0
	}
	var le *tree.LoadError
	if !errors.As(err, &le) {
		logger.Error(err)
	}
	return 1
}
