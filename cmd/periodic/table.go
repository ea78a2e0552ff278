package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/periodic-api/internal/periodic"
)

// NewCmdTable builds the table subcommand.
func NewCmdTable(parent string, out io.Writer) *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:     "table",
		Short:   "Print the periodic table grid",
		Example: fmt.Sprintf("%s table --layout=left-step", parent),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			var l periodic.Layout
			switch layout {
			case "standard":
				l = periodic.StandardTable()
			case "left-step":
				l = periodic.LeftStepTable()
			default:
				return fmt.Errorf("--layout must be standard or left-step, got %q", layout)
			}
			return writeLayout(out, l)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "standard", "grid layout: standard or left-step")
	return cmd
}

func writeLayout(out io.Writer, l periodic.Layout) error {
	for _, row := range l {
		var b strings.Builder
		for _, e := range row {
			sym := ""
			if e.Valid() {
				sym = e.Symbol()
			}
			fmt.Fprintf(&b, "%-3s", sym)
		}
		if _, err := fmt.Fprintln(out, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
