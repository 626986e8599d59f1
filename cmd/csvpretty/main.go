// Command csvpretty pretty-prints a CSV file through the tabula layout
// engine. Input comes from a file argument or stdin; the first record is
// treated as the header row.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mayfield/tabula"
)

// choiceValue is a pflag.Value restricted to a fixed set of strings.
type choiceValue struct {
	value   string
	choices []string
}

func (c *choiceValue) String() string { return c.value }
func (c *choiceValue) Type() string   { return "string" }

func (c *choiceValue) Set(s string) error {
	for _, choice := range c.choices {
		if s == choice {
			c.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(c.choices, ", "))
}

var _ pflag.Value = (*choiceValue)(nil)

func main() {
	registry := tabula.DefaultRegistry()
	format := &choiceValue{choices: registry.Names()}
	align := &choiceValue{choices: []string{"left", "center", "right"}}
	overflow := &choiceValue{choices: []string{"clip", "wrap", "preformatted"}}
	var (
		tableWidth    int
		columnPadding int
		columns       []int
		noHeader      bool
		noFooter      bool
	)

	root := &cobra.Command{
		Use:   "csvpretty [file]",
		Short: "Pretty print a CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := io.Reader(cmd.InOrStdin())
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				input = f
			}
			opts := []tabula.Option{
				tabula.WithRegistry(registry),
			}
			if format.value != "" {
				opts = append(opts, tabula.WithFormat(format.value))
			}
			if tableWidth > 0 {
				opts = append(opts, tabula.WithWidth(tableWidth))
			}
			if cmd.Flags().Changed("column-padding") {
				opts = append(opts, tabula.WithPadding(columnPadding, columnPadding))
			}
			if align.value != "" {
				a, err := tabula.ParseAlignment(align.value)
				if err != nil {
					return err
				}
				opts = append(opts, tabula.WithAlignment(a))
			}
			if overflow.value != "" {
				o, err := tabula.ParseOverflow(overflow.value)
				if err != nil {
					return err
				}
				opts = append(opts, tabula.WithOverflow(o))
			}
			if len(columns) > 0 {
				opts = append(opts, tabula.WithColumnMask(columns...))
			}
			if noHeader {
				opts = append(opts, tabula.WithHideHeader())
			}
			if noFooter {
				opts = append(opts, tabula.WithHideFooter())
			}

			r := csv.NewReader(input)
			r.FieldsPerRecord = -1
			var t *tabula.Table
			for {
				record, err := r.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				if t == nil {
					// First record is the header row.
					t = tabula.New(cmd.OutOrStdout(),
						append(opts, tabula.WithHeaders(record...))...)
					continue
				}
				if err := t.WriteRow(record); err != nil {
					return err
				}
			}
			if t == nil {
				return nil
			}
			return t.Close()
		},
	}

	flags := root.Flags()
	flags.Var(format, "format",
		fmt.Sprintf("Output format (%s)", strings.Join(registry.Names(), ", ")))
	flags.IntVar(&tableWidth, "table-width", 0,
		"Table width in columns (0 detects the terminal)")
	flags.IntVar(&columnPadding, "column-padding", tabula.DefaultPadding,
		"Whitespace padding on each side of a column")
	flags.Var(align, "column-align", "Column justification (left, center, right)")
	flags.Var(overflow, "overflow", "Overflow behavior (clip, wrap, preformatted)")
	flags.IntSliceVar(&columns, "columns", nil, "Only show specific 1-based columns")
	flags.BoolVar(&noHeader, "no-header", false, "Hide the table header")
	flags.BoolVar(&noFooter, "no-footer", false, "Hide table footers")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
