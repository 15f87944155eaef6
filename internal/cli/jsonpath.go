package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsillman2000/jsque/internal/format"
	"github.com/dsillman2000/jsque/internal/parser"
)

func newJSONPathCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "jsonpath <query>",
		Short: "Render a query as its RFC 9535 JSONPath equivalent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			expr, err := format.JSONPath(term)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), expr)
			return err
		},
	}
}
