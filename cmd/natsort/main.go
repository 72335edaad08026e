// SPDX-License-Identifier: MIT

// Command natsort orders PDK file lists so that drive-strength variants follow their base cell
// in numeric order.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/natsort"
	"gitlab.com/fisherprime/natsort/manifest"
)

// CLI defines the command-line interface for natsort.
type CLI struct {
	Debug    bool `help:"Enable debug logging."`
	FoldCase bool `name:"fold-case" help:"Compare letters case-insensitively."`
	Unique   bool `help:"Drop repeated entries, keeping the first."`
	Check    bool `help:"Report manifests that are out of order instead of rewriting them."`
	Stdout   bool `help:"Write sorted manifests to stdout instead of overwriting them."`
	Workers  int  `default:"4" help:"Manifests processed concurrently."`

	Paths []string `arg:"" optional:"" type:"existingfile" help:"Manifests to sort; stdin is sorted to stdout when omitted."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// run executes the command, returning the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("natsort"),
		kong.Description("Sort newline-delimited file lists in natural order."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if _, err = parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	if exitCode >= 0 {
		// --help.
		return exitCode
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if cli.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err = cli.execute(ctx, logger, stdin, stdout); err != nil {
		logger.Error(err)
		return 1
	}

	return 0
}

func (c *CLI) execute(ctx context.Context, logger *logrus.Logger, stdin io.Reader, stdout io.Writer) (err error) {
	s, err := manifest.New(
		manifest.WithLogger(logger),
		manifest.WithDebug(c.Debug),
		manifest.WithUnique(c.Unique),
		manifest.WithWorkers(c.Workers),
		manifest.WithSortOptions(natsort.WithFoldCase(c.FoldCase)),
	)
	if err != nil {
		return
	}

	switch {
	case len(c.Paths) < 1 && c.Check:
		return s.CheckStream(stdin)
	case len(c.Paths) < 1:
		return s.SortStream(stdin, stdout)
	case c.Check:
		return s.CheckFiles(ctx, c.Paths...)
	case c.Stdout:
		return c.printFiles(s, stdout)
	default:
		return s.SortFiles(ctx, c.Paths...)
	}
}

// printFiles writes each sorted manifest to stdout in argument order.
func (c *CLI) printFiles(s *manifest.Sorter, stdout io.Writer) (err error) {
	for _, path := range c.Paths {
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return
		}

		err = s.SortStream(f, stdout)
		if cErr := f.Close(); err == nil {
			err = cErr
		}
		if err != nil {
			return fmt.Errorf("(%s) %w", path, err)
		}
	}

	return
}
