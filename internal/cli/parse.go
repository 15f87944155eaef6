package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dsillman2000/jsque/internal/ast"
	"github.com/dsillman2000/jsque/internal/parser"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <query>",
		Short: "Parse a query into its interchange record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())

			started := time.Now()
			term, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debug().
				Str("query", args[0]).
				Dur("elapsed", time.Since(started)).
				Msg("parsed query")

			payload, err := opts.encode(ast.ToTree(term))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
}
