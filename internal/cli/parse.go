package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftui/tmplc"
	"github.com/weftui/tmplc/ast"
	"github.com/weftui/tmplc/preset/html"
)

type parseFlags struct {
	dump bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a template file (or stdin) and print its node tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dump, "dump", true, "print the parsed node tree")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := newLogger()

	var content []byte
	var err error
	if len(args) == 1 {
		content, err = os.ReadFile(args[0])
	} else {
		content, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var diagCount int
	opts := html.Options()
	opts.OnError = func(d *tmplc.Diagnostic) {
		diagCount++
		logger.Warn(d.ContextualMessage(string(content)))
	}

	root := tmplc.Parse(string(content), opts)

	if flags.dump {
		printTree(cmd.OutOrStdout(), root.Children, 0)
	}
	logger.Info("parse complete", "diagnostics", diagCount)

	return nil
}

func printTree(w io.Writer, nodes []ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch node := n.(type) {
		case *ast.Element:
			fmt.Fprintf(w, "%s<%s>\n", indent, node.Tag)
			printTree(w, node.Children, depth+1)
		case *ast.Text:
			if !node.IsEmpty {
				fmt.Fprintf(w, "%s#text %q\n", indent, node.Content)
			}
		case *ast.Comment:
			fmt.Fprintf(w, "%s#comment %q\n", indent, node.Content)
		case *ast.Interpolation:
			fmt.Fprintf(w, "%s{{ %s }}\n", indent, node.Content.Content)
		}
	}
}
