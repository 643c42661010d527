// Command strfmtctl renders a "{}" format template against a list of
// typed arguments given on the command line, for manual poking at the
// engine without writing Go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tinywasm/strfmt"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "strfmtctl <template> [args...]",
		Short: "Render a {} format template against typed arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each bound argument's parsed value")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	tpl := args[0]
	values := make([]any, 0, len(args)-1)
	for _, raw := range args[1:] {
		v := parseTypedArg(raw)
		log.WithField("value", v).Debug("bound argument")
		values = append(values, v)
	}

	out, err := strfmt.Format(tpl, values...)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// parseTypedArg reads a "kind:value" pair (i/u/f/b prefix for
// int64/uint64/float64/bool) so the CLI can exercise more than
// strfmt's string kind; anything without a recognized prefix, or whose
// value fails to parse, is passed through as a plain string.
func parseTypedArg(raw string) any {
	typ, rest, ok := strings.Cut(raw, ":")
	if !ok {
		return raw
	}
	switch typ {
	case "i":
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil {
			return n
		}
	case "u":
		if n, err := strconv.ParseUint(rest, 10, 64); err == nil {
			return n
		}
	case "f":
		if n, err := strconv.ParseFloat(rest, 64); err == nil {
			return n
		}
	case "b":
		if n, err := strconv.ParseBool(rest); err == nil {
			return n
		}
	}
	return raw
}
