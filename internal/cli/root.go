// Package cli implements the mergeset command line tool. Each subcommand
// applies one set operation to files of line-delimited values and writes
// the result to stdout, one value per line. The input files carry the same
// contract as the library: sorted ascending, no duplicates. Pass --check
// to have that verified instead of assumed.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davidvella/mergeset"
)

// RootOptions holds the global flags shared by all subcommands.
type RootOptions struct {
	Numeric bool // compare values as integers instead of strings
	Check   bool // validate the sorted-deduplicated contract on every input
	Verbose bool
}

// NewRootCommand creates the root command for the mergeset CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mergeset",
		Short: "Set operations over sorted, deduplicated files",
		Long: `mergeset computes union, intersection, difference and symmetric
difference over files of line-delimited values. Every input file must be
sorted in ascending order with no duplicate lines; the result is written to
stdout in the same form.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.Numeric, "numeric", false, "compare values as integers instead of strings")
	cmd.PersistentFlags().BoolVar(&opts.Check, "check", false, "validate that every input is sorted and deduplicated")

	for _, op := range []mergeset.Op{
		mergeset.OpUnion,
		mergeset.OpIntersection,
		mergeset.OpDifference,
		mergeset.OpSymmetricDifference,
	} {
		cmd.AddCommand(newOpCommand(opts, op))
	}

	return cmd
}
