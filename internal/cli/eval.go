package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsillman2000/jsque/internal/codec"
	"github.com/dsillman2000/jsque/internal/parser"
	"github.com/dsillman2000/jsque/internal/pipeline"
)

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <query> [file]",
		Short: "Evaluate a query against a YAML or JSON document",
		Long: `Evaluate a query against a YAML or JSON document.

The subject document is read from file, or from stdin when file is '-' or
omitted. Lookups that find nothing print null.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())

			term, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			compiled, err := pipeline.Compile(term)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("pipeline", compiled.String()).
				Int("steps", len(compiled)).
				Msg("compiled query")

			subject, err := readSubject(cmd, args)
			if err != nil {
				return err
			}

			started := time.Now()
			result, err := compiled.Eval(subject)
			if err != nil {
				return err
			}
			logger.Debug().
				Dur("elapsed", time.Since(started)).
				Msg("evaluated query")

			payload, err := opts.encode(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
}

func readSubject(cmd *cobra.Command, args []string) (any, error) {
	if len(args) < 2 || args[1] == "-" {
		return codec.DecodeSubject(cmd.InOrStdin())
	}

	f, err := os.Open(args[1])
	if err != nil {
		return nil, fmt.Errorf("open subject: %w", err)
	}
	defer f.Close()
	return codec.DecodeSubject(f)
}
