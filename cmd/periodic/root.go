package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phrazzld/periodic-api/internal/periodic"
)

// catalogFlags are the presentation flags shared by the subcommands.
type catalogFlags struct {
	Mode      string
	Precision int
}

func (f *catalogFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Mode, "mode", periodic.Unabridged.String(), "standard atomic weight table: abridged or unabridged")
	cmd.Flags().IntVar(&f.Precision, "precision", -1, "decimal places in formatted quantities; -1 prints the shortest exact form")
}

func (f *catalogFlags) mode() (periodic.Mode, error) {
	return periodic.ParseMode(f.Mode)
}

func (f *catalogFlags) validatePrecision() error {
	if f.Precision < -1 || f.Precision > 17 {
		return fmt.Errorf("--precision must be between -1 and 17, got %d", f.Precision)
	}
	return nil
}

// NewCmdPeriodic builds the root command.
func NewCmdPeriodic(name string, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         "Inspect elements, isotopes and their measured quantities",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.AddCommand(NewCmdShow(name, out))
	cmd.AddCommand(NewCmdList(name, out))
	cmd.AddCommand(NewCmdExport(name, out))
	cmd.AddCommand(NewCmdTable(name, out))
	return cmd
}
