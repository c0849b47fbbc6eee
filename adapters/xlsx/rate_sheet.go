// Package xlsx exports the reference tables as an Excel rate sheet.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"wrapquote/core/reference"
)

// Sheet names, in workbook order
const (
	SheetArea       = "Area"
	SheetHours      = "Labor Hours"
	SheetFloors     = "Floors"
	SheetComplexity = "Complexity"
	SheetBrands     = "Brands"
)

type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	labelStyle  int
}

// GenerateRateSheet builds a workbook from t and returns the file contents.
// A nil table means the built-in one.
func GenerateRateSheet(t *reference.Table) ([]byte, error) {
	if t == nil {
		t = reference.Default()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetArea); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{SheetHours, SheetFloors, SheetComplexity, SheetBrands} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w := &sheetWriter{f: f}
	if err := w.styles(); err != nil {
		return nil, err
	}

	if err := w.matrix(SheetArea, t, t.BaseArea); err != nil {
		return nil, err
	}
	if err := w.matrix(SheetHours, t, t.BaseHours); err != nil {
		return nil, err
	}
	if err := w.floors(t); err != nil {
		return nil, err
	}
	if err := w.complexity(); err != nil {
		return nil, err
	}
	if err := w.brands(); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *sheetWriter) styles() error {
	var err error

	// Column header: bold, white on charcoal, centered.
	w.headerStyle, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	// Row label: bold with borders.
	w.labelStyle, err = w.f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create label style: %w", err)
	}
	return nil
}

// header writes the first row of sheet and sizes its columns
func (w *sheetWriter) header(sheet string, widths []float64, titles ...string) error {
	for i, title := range titles {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := widths[len(widths)-1]
		if i < len(widths) {
			width = widths[i]
		}
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(titles), 1)
	if err := w.f.SetCellStyle(sheet, "A1", last, w.headerStyle); err != nil {
		return err
	}
	return w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// row writes a label in column A followed by values from column B
func (w *sheetWriter) row(sheet string, r int, label string, values ...any) error {
	cell, _ := excelize.CoordinatesToCellName(1, r)
	if err := w.f.SetCellValue(sheet, cell, label); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheet, cell, cell, w.labelStyle); err != nil {
		return err
	}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+2, r)
		if d, ok := v.(decimal.Decimal); ok {
			v = d.InexactFloat64()
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) matrix(sheet string, t *reference.Table, lookup func(reference.VehicleCategory, reference.WrapType) (decimal.Decimal, error)) error {
	wraps := reference.WrapTypes()
	titles := []string{"Vehicle"}
	for _, wt := range wraps {
		titles = append(titles, string(wt))
	}
	if err := w.header(sheet, []float64{20, 16}, titles...); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}

	for i, v := range t.Vehicles() {
		values := make([]any, 0, len(wraps))
		for _, wt := range wraps {
			d, err := lookup(v, wt)
			if err != nil {
				return err
			}
			values = append(values, d)
		}
		if err := w.row(sheet, i+2, string(v), values...); err != nil {
			return fmt.Errorf("%s row %s: %w", sheet, v, err)
		}
	}
	return nil
}

func (w *sheetWriter) floors(t *reference.Table) error {
	if err := w.header(SheetFloors, []float64{20, 14}, "Wrap Type", "Min LF", "Min Hours"); err != nil {
		return fmt.Errorf("floors header: %w", err)
	}
	for i, wt := range reference.WrapTypes() {
		if err := w.row(SheetFloors, i+2, string(wt), t.MinLinearFeet(wt), t.MinLaborHours(wt)); err != nil {
			return fmt.Errorf("floors row %s: %w", wt, err)
		}
	}
	return nil
}

func (w *sheetWriter) complexity() error {
	if err := w.header(SheetComplexity, []float64{20, 14}, "Factor", "Waste", "Hours"); err != nil {
		return fmt.Errorf("complexity header: %w", err)
	}
	for i, factor := range reference.ComplexityFactors() {
		d := reference.DeltaFor(factor)
		if err := w.row(SheetComplexity, i+2, string(factor), d.Waste, d.Hours); err != nil {
			return fmt.Errorf("complexity row %s: %w", factor, err)
		}
	}
	return nil
}

func (w *sheetWriter) brands() error {
	if err := w.header(SheetBrands, []float64{28, 14}, "Brand", "Kind", "Vinyl $/LF", "Print $/sqft", "Laminate $/sqft"); err != nil {
		return fmt.Errorf("brands header: %w", err)
	}

	r := 2
	for _, b := range reference.VinylBrands() {
		if b == reference.BrandOther {
			continue
		}
		cost, err := reference.VinylCost(b)
		if err != nil {
			return err
		}
		if err := w.row(SheetBrands, r, string(b), "vinyl", cost, "", ""); err != nil {
			return fmt.Errorf("brands row %s: %w", b, err)
		}
		r++
	}
	for _, b := range reference.PrintBrands() {
		if b == reference.BrandOther {
			continue
		}
		pl, err := reference.PrintLaminateCost(b)
		if err != nil {
			return err
		}
		if err := w.row(SheetBrands, r, string(b), "print", "", pl.Print, pl.Lam); err != nil {
			return fmt.Errorf("brands row %s: %w", b, err)
		}
		r++
	}
	return nil
}

// thinBorders returns thin borders on all four sides
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
