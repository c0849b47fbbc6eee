package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wrapquote/adapters/xlsx"
	"wrapquote/core/reference"
	"wrapquote/core/ui"
	"wrapquote/internal/errors"
	"wrapquote/internal/logging"
)

func newTablesCmd(root *rootOptions) *cobra.Command {
	var (
		sheet    string
		xlsxPath string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the reference tables",
		Long: `Print base area or labor hours for every vehicle and wrap type,
followed by the per-wrap-type floors.

Examples:
  wrapquote tables
  wrapquote tables --sheet hours
  wrapquote tables --xlsx rates.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := reference.Default()

			if xlsxPath != "" {
				data, err := xlsx.GenerateRateSheet(table)
				if err != nil {
					return errors.Internal("failed to build rate sheet", err)
				}
				if err := os.WriteFile(xlsxPath, data, 0644); err != nil {
					return errors.Wrap(errors.TypeInput, "failed to write "+xlsxPath, err)
				}
				logging.Info("rate sheet written", zap.String("path", xlsxPath), zap.Int("bytes", len(data)))
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", xlsxPath)
				return nil
			}

			var lookup func(reference.VehicleCategory, reference.WrapType) (decimal.Decimal, error)
			title := ""
			switch sheet {
			case "area":
				lookup, title = table.BaseArea, "Base area (sqft)"
			case "hours":
				lookup, title = table.BaseHours, "Base labor hours"
			default:
				return errors.InvalidCategory("sheet", sheet)
			}

			out := ui.NewWriter(cmd.OutOrStdout(), noColor || root.cfg.Output.NoColor)
			if err := printMatrix(out, table, title, lookup); err != nil {
				return err
			}
			out.Println("")
			printFloors(out, table)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "area", "matrix to print (area, hours)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an Excel rate sheet to this path instead")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func printMatrix(out *ui.Writer, table *reference.Table, title string, lookup func(reference.VehicleCategory, reference.WrapType) (decimal.Decimal, error)) error {
	out.Header(title)

	wraps := reference.WrapTypes()
	headers := []string{"Vehicle"}
	for _, w := range wraps {
		headers = append(headers, string(w))
	}
	t := out.NewTable(headers...)

	for _, v := range table.Vehicles() {
		cells := []string{string(v)}
		for _, w := range wraps {
			d, err := lookup(v, w)
			if err != nil {
				return err
			}
			cells = append(cells, d.String())
		}
		t.AddRow(cells...)
	}
	t.Render()
	return nil
}

func printFloors(out *ui.Writer, table *reference.Table) {
	out.SubHeader("Floors")
	t := out.NewTable("Wrap Type", "Min LF", "Min Hours")
	for _, w := range reference.WrapTypes() {
		t.AddRow(string(w), table.MinLinearFeet(w).String(), table.MinLaborHours(w).String())
	}
	t.Render()
}

func newBrandsCmd(root *rootOptions) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List vinyl brand cost hints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ui.NewWriter(cmd.OutOrStdout(), noColor || root.cfg.Output.NoColor)

			out.Header("Color change vinyl")
			vinyl := out.NewTable("Brand", "$/LF")
			for _, b := range reference.VinylBrands() {
				cost, err := reference.VinylCost(b)
				if err != nil {
					return err
				}
				vinyl.AddRow(string(b), "$"+cost.StringFixed(2))
			}
			vinyl.Render()

			out.Println("")
			out.Header("Print vinyl and laminate")
			printTable := out.NewTable("Brand", "Print $/sqft", "Laminate $/sqft")
			for _, b := range reference.PrintBrands() {
				pl, err := reference.PrintLaminateCost(b)
				if err != nil {
					return err
				}
				printTable.AddRow(string(b), "$"+pl.Print.StringFixed(2), "$"+pl.Lam.StringFixed(2))
			}
			printTable.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
