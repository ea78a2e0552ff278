package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
	"github.com/phrazzld/periodic-api/internal/periodic"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// exportedIsotope is the serialized form of an isotope.
type exportedIsotope struct {
	MassNumber          int                 `json:"mass_number" yaml:"mass_number"`
	RelativeAtomicMass  uncertain.Quantity  `json:"relative_atomic_mass" yaml:"relative_atomic_mass"`
	IsotopicComposition *uncertain.Quantity `json:"isotopic_composition,omitempty" yaml:"isotopic_composition,omitempty"`
}

// exportedElement is the serialized form of an element.
type exportedElement struct {
	Number               int                 `json:"number" yaml:"number"`
	Symbol               string              `json:"symbol" yaml:"symbol"`
	Name                 string              `json:"name" yaml:"name"`
	Group                int                 `json:"group" yaml:"group"`
	Period               int                 `json:"period" yaml:"period"`
	Valency              []int               `json:"valency" yaml:"valency,flow"`
	StandardAtomicWeight *uncertain.Quantity `json:"standard_atomic_weight,omitempty" yaml:"standard_atomic_weight,omitempty"`
	Isotopes             []exportedIsotope   `json:"isotopes,omitempty" yaml:"isotopes,omitempty"`
}

// ExportOpts serializes the catalog.
type ExportOpts struct {
	Mode    periodic.Mode
	Format  string
	Symbols []string

	Out io.Writer
}

// NewCmdExport builds the export subcommand.
func NewCmdExport(parent string, out io.Writer) *cobra.Command {
	var (
		mode   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export [SYMBOL...]",
		Short: "Export elements and isotopes as JSON or YAML",
		Long: "Export elements and isotopes as JSON or YAML. Every quantity is written in its " +
			"tagged form, {\"Interval\": [start, end]} or {\"Uncertain\": {\"value\", \"uncertainty\"}}.",
		Example: fmt.Sprintf("%[1]s export --format=yaml Fe Cu", parent),
		RunE: func(c *cobra.Command, args []string) error {
			m, err := periodic.ParseMode(mode)
			if err != nil {
				return err
			}
			opts := &ExportOpts{Mode: m, Format: format, Symbols: args, Out: out}
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Run()
		},
	}
	cmd.Flags().StringVar(&mode, "mode", periodic.Unabridged.String(), "standard atomic weight table: abridged or unabridged")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")
	return cmd
}

// Validate checks the output format.
func (o *ExportOpts) Validate() error {
	switch o.Format {
	case formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("--format must be %q or %q, got %q", formatJSON, formatYAML, o.Format)
	}
}

// Run writes the selected elements, or all of them when none are named.
func (o *ExportOpts) Run() error {
	elements := periodic.Elements()
	if len(o.Symbols) > 0 {
		elements = elements[:0]
		for _, s := range o.Symbols {
			e, err := periodic.ParseElement(s)
			if err != nil {
				return err
			}
			elements = append(elements, e)
		}
	}

	docs := make([]exportedElement, 0, len(elements))
	for _, e := range elements {
		docs = append(docs, exportElement(e, o.Mode))
	}

	switch o.Format {
	case formatYAML:
		enc := yaml.NewEncoder(o.Out)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(o.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func exportElement(e periodic.Element, mode periodic.Mode) exportedElement {
	doc := exportedElement{
		Number:  e.Number(),
		Symbol:  e.Symbol(),
		Name:    e.Name(),
		Group:   e.Group(),
		Period:  e.Period(),
		Valency: e.Valency(),
	}
	if w, ok := e.StandardAtomicWeight(mode); ok {
		doc.StandardAtomicWeight = &w
	}
	for _, iso := range e.Isotopes() {
		ei := exportedIsotope{
			MassNumber:         iso.MassNumber(),
			RelativeAtomicMass: iso.RelativeAtomicMass(),
		}
		if c, ok := iso.IsotopicComposition(); ok {
			ei.IsotopicComposition = &c
		}
		doc.Isotopes = append(doc.Isotopes, ei)
	}
	return doc
}
