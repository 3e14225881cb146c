// Command tmplc is a demo CLI over the tmplc parser: parse a template
// file and print its node tree and diagnostics.
package main

import (
	"os"

	"github.com/weftui/tmplc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
