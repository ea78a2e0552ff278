package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/periodic-api/internal/periodic"
)

var showExample = `# show carbon with the unabridged weight interval
%[1]s show C

# show hydrogen's abridged weight to three decimals
%[1]s show H --mode=abridged --precision=3
`

// ShowOpts prints one element and its isotopes.
type ShowOpts struct {
	Element   periodic.Element
	Mode      periodic.Mode
	Precision int

	Out io.Writer
}

// NewCmdShow builds the show subcommand.
func NewCmdShow(parent string, out io.Writer) *cobra.Command {
	flags := &catalogFlags{}

	cmd := &cobra.Command{
		Use:     "show SYMBOL",
		Short:   "Show an element and its isotopes",
		Example: fmt.Sprintf(showExample, parent),
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := flags.validatePrecision(); err != nil {
				return err
			}
			mode, err := flags.mode()
			if err != nil {
				return err
			}
			e, err := periodic.ParseElement(args[0])
			if err != nil {
				return err
			}

			opts := &ShowOpts{Element: e, Mode: mode, Precision: flags.Precision, Out: out}
			return opts.Run()
		},
	}
	flags.addFlags(cmd)
	return cmd
}

// Run writes the element report.
func (o *ShowOpts) Run() error {
	e := o.Element
	weight := "n/a"
	if w, ok := e.StandardAtomicWeight(o.Mode); ok {
		weight = w.Text(o.Precision)
	}

	fmt.Fprintf(o.Out, "%s (%s)\n", e.Name(), e.Symbol())
	fmt.Fprintf(o.Out, "  atomic number:  %d\n", e.Number())
	fmt.Fprintf(o.Out, "  group:          %d\n", e.Group())
	fmt.Fprintf(o.Out, "  period:         %d\n", e.Period())
	fmt.Fprintf(o.Out, "  valency:        %s\n", formatValency(e.Valency()))
	fmt.Fprintf(o.Out, "  atomic weight:  %s (%s)\n", weight, o.Mode)

	isotopes := e.Isotopes()
	if len(isotopes) == 0 {
		return nil
	}
	fmt.Fprintln(o.Out, "  isotopes:")
	for _, iso := range isotopes {
		abundance := ""
		if c, ok := iso.IsotopicComposition(); ok {
			abundance = "  abundance " + c.Text(o.Precision)
		}
		fmt.Fprintf(o.Out, "    %-7s mass %s%s\n", iso, iso.RelativeAtomicMass().Text(o.Precision), abundance)
	}
	return nil
}

func formatValency(v []int) string {
	if len(v) == 0 {
		return "-"
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
