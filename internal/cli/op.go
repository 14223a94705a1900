package cli

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davidvella/mergeset"
	"github.com/davidvella/mergeset/set"
)

var shortDescriptions = map[mergeset.Op]string{
	mergeset.OpUnion:               "Values present in at least one input",
	mergeset.OpIntersection:        "Values present in every input",
	mergeset.OpDifference:          "Values of the first input present in no other",
	mergeset.OpSymmetricDifference: "Values present in an odd number of inputs",
}

// newOpCommand creates the subcommand for one set operation.
func newOpCommand(rootOpts *RootOptions, op mergeset.Op) *cobra.Command {
	return &cobra.Command{
		Use:          op.String() + " <file>...",
		Short:        shortDescriptions[op],
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Numeric {
				return combine(rootOpts, op, args, cmd.OutOrStdout(), parseInt, formatInt, cmp.Compare[int64])
			}
			return combine(rootOpts, op, args, cmd.OutOrStdout(), parseString, formatString, cmp.Compare[string])
		},
	}
}

// combine loads one operand per file, applies the operation and writes the
// result one value per line.
func combine[E any](
	opts *RootOptions,
	op mergeset.Op,
	paths []string,
	out io.Writer,
	parse func(string) (E, error),
	format func(E) string,
	compare func(E, E) int,
) error {
	operands := make([]set.Set[E], 0, len(paths))
	for _, path := range paths {
		elems, err := readValues(path, parse)
		if err != nil {
			return err
		}
		var s set.Set[E]
		if opts.Check {
			s, err = set.New(elems, compare)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		} else {
			s = set.NewUnchecked(elems)
		}
		logrus.WithFields(logrus.Fields{
			"file":     path,
			"elements": s.Len(),
		}).Debug("operand loaded")
		operands = append(operands, s)
	}

	res, err := mergeset.Apply(op, compare, operands)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"operation": op.String(),
		"elements":  res.Len(),
	}).Debug("result computed")

	w := bufio.NewWriter(out)
	for e := range res.All() {
		if _, err := fmt.Fprintln(w, format(e)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// readValues reads one value per line, skipping blank lines.
func readValues[E any](path string, parse func(string) (E, error)) ([]E, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var elems []E
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		elems = append(elems, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return elems, nil
}

func parseString(s string) (string, error) { return s, nil }

func formatString(s string) string { return s }

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return v, nil
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
