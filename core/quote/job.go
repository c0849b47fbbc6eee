// Package quote runs the material, labor and pricing stages for one job
// and collects the results, warnings and explanations into a Quote.
package quote

import (
	"github.com/shopspring/decimal"

	"wrapquote/core/explanation"
	"wrapquote/core/pricing"
	"wrapquote/core/reference"
)

// Job is one complete calculator configuration
type Job struct {
	Name string `json:"name,omitempty"`

	Vehicle  reference.VehicleCategory `json:"vehicle"`
	Wrap     reference.WrapType        `json:"wrap_type"`
	Scope    pricing.JobScope          `json:"scope"`
	Category pricing.MaterialCategory  `json:"category"`

	RollWidth reference.RollWidth `json:"roll_width"`

	// WastePercent is a fraction (0.15 = 15%)
	WastePercent decimal.Decimal      `json:"waste_percent"`
	Complexity   reference.Complexity `json:"complexity"`
	ExcludeRoof  bool                 `json:"exclude_roof"`
	ManualHours  *decimal.Decimal     `json:"manual_hours,omitempty"`

	VinylBrand reference.VinylBrand `json:"vinyl_brand,omitempty"`
	PrintBrand reference.PrintBrand `json:"print_brand,omitempty"`

	// Unset unit costs fall back to the brand's cost hint
	VinylCostPerLinearFoot *decimal.Decimal `json:"vinyl_cost_per_lf,omitempty"`
	PrintCostPerArea       *decimal.Decimal `json:"print_cost_per_sqft,omitempty"`
	LamCostPerArea         *decimal.Decimal `json:"lam_cost_per_sqft,omitempty"`

	LaborRate decimal.Decimal `json:"labor_rate"`
	DesignFee decimal.Decimal `json:"design_fee"`
	Overhead  decimal.Decimal `json:"overhead"`

	Mode pricing.Mode `json:"mode"`

	// Percent is a fraction (0.40 = 40%)
	Percent decimal.Decimal `json:"percent"`

	// DepositPercent is a whole percent (30 = 30%)
	DepositPercent decimal.Decimal `json:"deposit_percent"`
}

// DefaultJob returns the configuration a new quote starts from
func DefaultJob() Job {
	vinylCost := decimal.NewFromInt(10)
	return Job{
		Vehicle:                reference.MidsizeSedan,
		Wrap:                   reference.FullWrap,
		Scope:                  pricing.PrintAndInstall,
		Category:               pricing.CommercialPrint,
		RollWidth:              reference.RollWidth54,
		WastePercent:           decimal.RequireFromString("0.15"),
		VinylBrand:             "3M_1080",
		PrintBrand:             "3M_IJ180",
		VinylCostPerLinearFoot: &vinylCost,
		LaborRate:              decimal.NewFromInt(75),
		DesignFee:              decimal.NewFromInt(400),
		Overhead:               decimal.NewFromInt(50),
		Mode:                   pricing.ModeMargin,
		Percent:                decimal.RequireFromString("0.40"),
		DepositPercent:         decimal.NewFromInt(30),
	}
}

// Validate checks every enumerated field and brand name.
// Numbers are never rejected.
func (j *Job) Validate() error {
	if _, err := reference.ParseVehicleCategory(string(j.Vehicle)); err != nil {
		return err
	}
	if _, err := reference.ParseWrapType(string(j.Wrap)); err != nil {
		return err
	}
	if _, err := reference.ParseRollWidth(int(j.RollWidth)); err != nil {
		return err
	}
	if _, err := pricing.ParseJobScope(string(j.Scope)); err != nil {
		return err
	}
	if _, err := pricing.ParseMaterialCategory(string(j.Category)); err != nil {
		return err
	}
	if _, err := pricing.ParseMode(string(j.Mode)); err != nil {
		return err
	}
	if j.VinylBrand != "" {
		if _, err := reference.VinylCost(j.VinylBrand); err != nil {
			return err
		}
	}
	if j.PrintBrand != "" {
		if _, err := reference.PrintLaminateCost(j.PrintBrand); err != nil {
			return err
		}
	}
	return nil
}

// unitCost is a resolved per-unit cost and where it came from
type unitCost struct {
	value  decimal.Decimal
	source explanation.Source
}

func resolve(explicit *decimal.Decimal, hint decimal.Decimal, hasHint bool) unitCost {
	switch {
	case explicit != nil:
		return unitCost{*explicit, explanation.SourceJob}
	case hasHint:
		return unitCost{hint, explanation.SourceBrandHint}
	default:
		return unitCost{decimal.Zero, explanation.SourceJob}
	}
}

// unitCosts resolves vinyl, print and laminate costs, preferring explicit values.
// Brands must already be validated.
func (j *Job) unitCosts() (vinyl, printCost, lamCost unitCost) {
	var vinylHint decimal.Decimal
	if j.VinylBrand != "" {
		vinylHint, _ = reference.VinylCost(j.VinylBrand)
	}
	var plHint reference.PrintLamCost
	if j.PrintBrand != "" {
		plHint, _ = reference.PrintLaminateCost(j.PrintBrand)
	}

	vinyl = resolve(j.VinylCostPerLinearFoot, vinylHint, j.VinylBrand != "")
	printCost = resolve(j.PrintCostPerArea, plHint.Print, j.PrintBrand != "")
	lamCost = resolve(j.LamCostPerArea, plHint.Lam, j.PrintBrand != "")
	return vinyl, printCost, lamCost
}

// Clone returns a copy of j that shares no pointers with it
func (j Job) Clone() Job {
	j.ManualHours = cloneDecimal(j.ManualHours)
	j.VinylCostPerLinearFoot = cloneDecimal(j.VinylCostPerLinearFoot)
	j.PrintCostPerArea = cloneDecimal(j.PrintCostPerArea)
	j.LamCostPerArea = cloneDecimal(j.LamCostPerArea)
	return j
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
