package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phrazzld/periodic-api/internal/periodic"
)

// ListOpts prints a one-line summary of every element.
type ListOpts struct {
	Mode      periodic.Mode
	Precision int

	Out io.Writer
}

// NewCmdList builds the list subcommand.
func NewCmdList(parent string, out io.Writer) *cobra.Command {
	flags := &catalogFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List every element with its standard atomic weight",
		Example: fmt.Sprintf("%s list --mode=abridged", parent),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := flags.validatePrecision(); err != nil {
				return err
			}
			mode, err := flags.mode()
			if err != nil {
				return err
			}
			opts := &ListOpts{Mode: mode, Precision: flags.Precision, Out: out}
			return opts.Run()
		},
	}
	flags.addFlags(cmd)
	return cmd
}

// Run writes the element table.
func (o *ListOpts) Run() error {
	w := tabwriter.NewWriter(o.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Z\tSYMBOL\tNAME\tGROUP\tPERIOD\tWEIGHT")
	for _, e := range periodic.Elements() {
		weight := "-"
		if q, ok := e.StandardAtomicWeight(o.Mode); ok {
			weight = q.Text(o.Precision)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n", e.Number(), e.Symbol(), e.Name(), e.Group(), e.Period(), weight)
	}
	return w.Flush()
}
