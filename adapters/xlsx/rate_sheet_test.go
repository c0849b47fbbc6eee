package xlsx

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"wrapquote/core/reference"
)

func openSheet(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	if len(data) == 0 {
		t.Fatal("GenerateRateSheet() returned empty bytes")
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s, %s): %v", sheet, ref, err)
	}
	return v
}

func TestGenerateRateSheet_Sheets(t *testing.T) {
	data, err := GenerateRateSheet(nil)
	if err != nil {
		t.Fatalf("GenerateRateSheet() error = %v", err)
	}
	f := openSheet(t, data)

	want := []string{SheetArea, SheetHours, SheetFloors, SheetComplexity, SheetBrands}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateRateSheet_Values(t *testing.T) {
	data, err := GenerateRateSheet(reference.Default())
	if err != nil {
		t.Fatalf("GenerateRateSheet() error = %v", err)
	}
	f := openSheet(t, data)

	tests := []struct {
		sheet string
		ref   string
		want  string
	}{
		{SheetArea, "A1", "Vehicle"},
		{SheetArea, "B1", "full_wrap"},
		{SheetArea, "A2", "compact_sedan"},
		{SheetArea, "B3", "200"},
		{SheetHours, "B3", "16"},
		{SheetHours, "C3", "8"},
		{SheetFloors, "A2", "full_wrap"},
		{SheetFloors, "B2", "50"},
		{SheetFloors, "C2", "12"},
		{SheetComplexity, "A4", "rivets"},
		{SheetComplexity, "B4", "0.05"},
		{SheetComplexity, "C4", "2"},
		{SheetBrands, "A2", "3M_1080"},
		{SheetBrands, "C2", "8.5"},
	}
	for _, tt := range tests {
		if got := cell(t, f, tt.sheet, tt.ref); got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.ref, got, tt.want)
		}
	}

	rows, err := f.GetRows(SheetArea)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+len(reference.VehicleCategories()) {
		t.Errorf("area sheet has %d rows", len(rows))
	}

	brandRows, err := f.GetRows(SheetBrands)
	if err != nil {
		t.Fatal(err)
	}
	// header + every brand except the two "Other" entries
	want := 1 + len(reference.VinylBrands()) + len(reference.PrintBrands()) - 2
	if len(brandRows) != want {
		t.Errorf("brands sheet has %d rows, want %d", len(brandRows), want)
	}
}
