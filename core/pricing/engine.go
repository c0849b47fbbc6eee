package pricing

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// EffectivePercent returns the percent the engine will actually price at.
// Callers compare it with their request to find out whether clamping happened.
func EffectivePercent(mode Mode, percent decimal.Decimal) decimal.Decimal {
	return decimal.Min(percent, mode.Cap())
}

// Clamped reports whether percent exceeds the mode's cap
func Clamped(mode Mode, percent decimal.Decimal) bool {
	return percent.GreaterThan(mode.Cap())
}

// MaterialCost applies the scope and category rules to unit costs.
//
// Color change never bills print or laminate. Install-only bills the vinyl
// for color change and nothing for commercial print, whose material the
// customer supplies.
func MaterialCost(in *Input) decimal.Decimal {
	printCost, lamCost := in.PrintCostPerArea, in.LamCostPerArea
	if in.Category == ColorChange {
		printCost, lamCost = decimal.Zero, decimal.Zero
	}

	vinyl := in.LinearFeet.Mul(in.VinylCostPerLinearFoot)
	switch {
	case in.Scope != InstallOnly:
		return vinyl.
			Add(in.AdjustedArea.Mul(printCost)).
			Add(in.AdjustedArea.Mul(lamCost))
	case in.Category == ColorChange:
		return vinyl
	default:
		return decimal.Zero
	}
}

// LaborCost bills hours at the shop rate unless nothing is installed
func LaborCost(in *Input) decimal.Decimal {
	if in.Scope == PrintOnly {
		return decimal.Zero
	}
	return in.LaborRate.Mul(in.TotalLaborHours)
}

// Retail prices a subtotal under mode at the clamped percent
func Retail(mode Mode, percent, subtotal decimal.Decimal) decimal.Decimal {
	eff := EffectivePercent(mode, percent)
	if mode == ModeMarkup {
		return subtotal.Mul(one.Add(eff))
	}
	// eff <= 0.70, so the divisor is at least 0.30.
	return subtotal.Div(one.Sub(eff))
}

// Compute prices one job. It only fails on unknown scope, category or mode.
func Compute(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	materialCost := MaterialCost(&in)
	laborCost := LaborCost(&in)
	subtotal := materialCost.Add(laborCost).Add(in.Overhead).Add(in.DesignFee)

	retail := Retail(in.Mode, in.Percent, subtotal)
	profit := retail.Sub(subtotal)

	margin := decimal.Zero
	if retail.IsPositive() {
		margin = profit.Div(retail)
	}

	return &Result{
		MaterialCost:  materialCost,
		LaborCost:     laborCost,
		SubtotalCost:  subtotal,
		Retail:        retail,
		ProfitDollars: profit,
		ProfitMargin:  margin,
		DepositAmount: retail.Mul(in.DepositPercent.Div(hundred)),
	}, nil
}
