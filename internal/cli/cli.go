// Package cli wires the jsque command tree. All document and record I/O
// happens here; the engine packages stay pure.
package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dsillman2000/jsque/internal/codec"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// options carries the persistent flags shared by the subcommands.
type options struct {
	output  string
	verbose bool
}

// logger builds the diagnostic logger. Silent unless --verbose is set.
func (o *options) logger(w io.Writer) zerolog.Logger {
	level := zerolog.Disabled
	if o.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// encode renders v in the encoding selected by --output, terminated by a
// newline.
func (o *options) encode(v any) ([]byte, error) {
	var payload []byte
	var err error
	switch o.output {
	case outputYAML:
		payload, err = codec.EncodeYAML(v)
	case outputJSON:
		payload, err = codec.EncodeJSON(v)
	default:
		return nil, fmt.Errorf("unknown output encoding %q: use %q or %q", o.output, outputYAML, outputJSON)
	}
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		payload = append(payload, '\n')
	}
	return payload, nil
}

// NewRootCommand builds the jsque command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "jsque",
		Short:        "Query YAML and JSON documents with jsque expressions",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputYAML, `output encoding: "yaml" or "json"`)
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "debug diagnostics on stderr")

	cmd.AddCommand(
		newParseCommand(opts),
		newFormatCommand(opts),
		newEvalCommand(opts),
		newJSONPathCommand(opts),
	)
	return cmd
}
