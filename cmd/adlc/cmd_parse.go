package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/diagreport"
	"github.com/adl-lang/adl/internal/format"
	"github.com/adl-lang/adl/internal/parser"
	"github.com/adl-lang/adl/internal/source"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a schema file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return errors.Wrap(err, "read file")
			}

			result := parser.Parse(filename, string(data))

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(includePositions)
			case "text":
				encoder = format.NewTextEncoder(includePositions)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(os.Stdout, result.Script); err != nil {
				return errors.Wrap(err, "encode")
			}
			fmt.Println()

			if len(result.Diagnostics) > 0 {
				file := source.NewFile(filename, string(data))
				styles := diagreport.NewStyles(diagreport.IsColorEnabled("auto", os.Stderr))
				fmt.Fprint(os.Stderr, styles.FormatAll(result.Diagnostics, file, true))
			}

			for _, d := range result.Diagnostics {
				if d.Severity == diagnostics.SeverityError {
					return errors.Errorf("%s has syntax errors", filename)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include source positions in the output")

	return cmd
}
