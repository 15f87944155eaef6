package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsillman2000/jsque/internal/ast"
	"github.com/dsillman2000/jsque/internal/codec"
	"github.com/dsillman2000/jsque/internal/format"
	"github.com/dsillman2000/jsque/internal/parser"
)

func newFormatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format <record-or-query>",
		Short: "Render a query or interchange record as canonical syntax",
		Long: `Render a query or interchange record as canonical jsque syntax.

The argument is a query string when it starts with '@', otherwise an
interchange record document; '-' reads the record from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := resolveTerm(cmd, args[0])
			if err != nil {
				return err
			}
			rendered, err := format.Format(term)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

// resolveTerm turns the format argument into a term: a leading '@' marks a
// query string, anything else is an interchange record.
func resolveTerm(cmd *cobra.Command, arg string) (ast.Term, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "@") {
		return parser.Parse(arg)
	}

	data := []byte(arg)
	if arg == "-" {
		var err error
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
	}

	tree, err := codec.DecodeTree(data)
	if err != nil {
		return nil, err
	}
	return ast.FromTree(tree)
}
