// Command srap-manpage writes srap(1) in roff format, to stdout or to the
// file named by its only argument.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/srap/internal/cli"
	"github.com/arthur-debert/srap/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	var out io.Writer = os.Stdout
	if len(argv) > 0 {
		f, err := os.Create(argv[0])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	header := &doc.GenManHeader{
		Title:   "SRAP",
		Section: "1",
		Source:  fmt.Sprintf("srap %s (%s, built %s)", version.Version, version.Commit, version.Date),
		Manual:  "User Commands",
	}

	return doc.GenMan(cli.NewRootCmd(), header, out)
}
