package reference

import (
	"github.com/shopspring/decimal"

	"wrapquote/internal/errors"
)

// VinylBrand is a solid color-change vinyl line
type VinylBrand string

// PrintBrand is a printable vinyl with its matching laminate
type PrintBrand string

// BrandOther is valid for both brand kinds and carries zero cost hints.
const BrandOther = "Other"

// Approximate market cost per linear foot. Callers may override.
var vinylCostPerLF = []struct {
	brand VinylBrand
	cost  string
}{
	{"3M_1080", "8.50"},
	{"3M_2080", "12.00"},
	{"Avery_Dennison_SC900", "7.50"},
	{"Avery_Dennison_SC950", "10.50"},
	{"Oracal_970RA", "6.50"},
	{"Oracal_751", "5.50"},
	{"Vvivid", "9.00"},
	{"Arlon_SLX", "11.00"},
	{"Hexis", "13.00"},
	{BrandOther, "0"},
}

// PrintLamCost is the per-square-foot cost of a print vinyl and its laminate
type PrintLamCost struct {
	Print decimal.Decimal `json:"print_cost_per_sqft"`
	Lam   decimal.Decimal `json:"lam_cost_per_sqft"`
}

var printLamCost = []struct {
	brand      PrintBrand
	print, lam string
}{
	{"3M_IJ180", "4.50", "1.75"},
	{"3M_IJ680", "3.25", "1.50"},
	{"Avery_Dennison_DOL", "4.00", "1.60"},
	{"Avery_Dennison_MPI_1005", "3.00", "1.40"},
	{"Oracal_3651", "3.75", "1.65"},
	{"Oracal_3751", "2.75", "1.35"},
	{"Arlon_DJL", "4.25", "1.70"},
	{"Avery_Dennison_EZ", "2.50", "1.25"},
	{BrandOther, "0", "0"},
}

// VinylBrands returns the known vinyl brands in display order
func VinylBrands() []VinylBrand {
	out := make([]VinylBrand, 0, len(vinylCostPerLF))
	for _, b := range vinylCostPerLF {
		out = append(out, b.brand)
	}
	return out
}

// PrintBrands returns the known print brands in display order
func PrintBrands() []PrintBrand {
	out := make([]PrintBrand, 0, len(printLamCost))
	for _, b := range printLamCost {
		out = append(out, b.brand)
	}
	return out
}

// VinylCost returns the cost hint per linear foot for b
func VinylCost(b VinylBrand) (decimal.Decimal, error) {
	for _, v := range vinylCostPerLF {
		if v.brand == b {
			return decimal.RequireFromString(v.cost), nil
		}
	}
	return decimal.Zero, errors.InvalidCategory("vinyl brand", string(b))
}

// PrintLaminateCost returns the print and laminate cost hints for b
func PrintLaminateCost(b PrintBrand) (PrintLamCost, error) {
	for _, p := range printLamCost {
		if p.brand == b {
			return PrintLamCost{
				Print: decimal.RequireFromString(p.print),
				Lam:   decimal.RequireFromString(p.lam),
			}, nil
		}
	}
	return PrintLamCost{}, errors.InvalidCategory("print brand", string(b))
}
