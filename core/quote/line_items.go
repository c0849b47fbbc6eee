package quote

import (
	"github.com/shopspring/decimal"

	"wrapquote/core/explanation"
	"wrapquote/core/pricing"
)

const (
	unitArea  = "sqft"
	unitLF    = "LF"
	unitHours = "h"
	unitMoney = "USD"
)

// LineItems explains every derived figure of the quote in pipeline order
func (q *Quote) LineItems() []*explanation.Explanation {
	return []*explanation.Explanation{
		q.baseAreaItem(),
		q.adjustedAreaItem(),
		q.linearFeetItem(),
		q.laborHoursItem(),
		q.materialCostItem(),
		q.laborCostItem(),
		explanation.New("Design fee", unitMoney, q.Job.DesignFee).
			AddInput("design fee", q.Job.DesignFee.String(), explanation.SourceJob),
		explanation.New("Overhead", unitMoney, q.Job.Overhead).
			AddInput("overhead", q.Job.Overhead.String(), explanation.SourceJob),
		explanation.New("Subtotal", unitMoney, q.Pricing.SubtotalCost).
			WithFormula("material + labor + overhead + design fee"),
		q.retailItem(),
		explanation.New("Profit", unitMoney, q.Pricing.ProfitDollars).
			WithFormula("retail − subtotal").
			AddNote("margin %s%% of retail", percentOf(q.Pricing.ProfitMargin)),
		explanation.New("Deposit", unitMoney, q.Pricing.DepositAmount).
			WithFormula("retail × deposit percent ÷ 100").
			AddInput("deposit percent", q.Job.DepositPercent.String(), explanation.SourceJob),
	}
}

func (q *Quote) baseAreaItem() *explanation.Explanation {
	e := explanation.New("Base area", unitArea, q.Material.BaseArea).
		AddInput("vehicle", string(q.Job.Vehicle), explanation.SourceTable).
		AddInput("wrap type", string(q.Job.Wrap), explanation.SourceTable)
	if q.Job.ExcludeRoof {
		e.WithFormula("full wrap area − roof area").AddNote("roof excluded")
	}
	return e
}

func (q *Quote) adjustedAreaItem() *explanation.Explanation {
	return explanation.New("Adjusted area", unitArea, q.Material.AdjustedArea).
		WithFormula("base area × (1 + waste + complexity waste)").
		AddInput("base area", q.Material.BaseArea.String(), explanation.SourceCalculated).
		AddInput("waste", q.Job.WastePercent.String(), explanation.SourceJob).
		AddInput("complexity waste", q.Material.ComplexityWastePercent.String(), explanation.SourceTable)
}

func (q *Quote) linearFeetItem() *explanation.Explanation {
	e := explanation.New("Linear feet", unitLF, q.Material.LinearFeet).
		WithFormula("max(ceil(adjusted area ÷ roll width in feet), minimum)").
		AddInput("adjusted area", q.Material.AdjustedArea.String(), explanation.SourceCalculated).
		AddInput("roll width", q.Job.RollWidth.String(), explanation.SourceJob)
	if q.Material.LinearFeet.GreaterThan(q.Material.RawLinearFeet.Ceil()) {
		e.AddNote("raised to the %s minimum", q.Job.Wrap)
	}
	return e
}

func (q *Quote) laborHoursItem() *explanation.Explanation {
	e := explanation.New("Labor hours", unitHours, q.Labor.TotalLaborHours)
	if q.Labor.ManualOverride {
		e.WithFormula("max(manual hours, minimum)").
			AddInput("manual hours", q.Job.ManualHours.String(), explanation.SourceOverride)
		return e
	}

	e.WithFormula("max(base hours + complexity hours, minimum)").
		AddInput("base hours", q.Labor.BaseHours.String(), explanation.SourceTable).
		AddInput("complexity hours", q.Labor.ComplexityHours.String(), explanation.SourceTable)
	if q.Labor.TotalLaborHours.GreaterThan(q.Labor.BaseHours.Add(q.Labor.ComplexityHours)) {
		e.AddNote("raised to the %s minimum", q.Job.Wrap)
	}
	return e
}

func (q *Quote) materialCostItem() *explanation.Explanation {
	e := explanation.New("Material cost", unitMoney, q.Pricing.MaterialCost)

	colorChange := q.Job.Category == pricing.ColorChange
	switch {
	case q.Job.Scope == pricing.InstallOnly && !colorChange:
		return e.AddNote("customer supplies printed material")
	case colorChange:
		e.WithFormula("linear feet × vinyl cost")
	default:
		e.WithFormula("linear feet × vinyl cost + area × (print + laminate)")
	}

	e.AddInput("linear feet", q.Material.LinearFeet.String(), explanation.SourceCalculated).
		AddInput("vinyl cost", q.vinyl.value.String(), q.vinyl.source)
	if !colorChange {
		e.AddInput("adjusted area", q.Material.AdjustedArea.String(), explanation.SourceCalculated).
			AddInput("print cost", q.print.value.String(), q.print.source).
			AddInput("laminate cost", q.lam.value.String(), q.lam.source)
	}
	return e
}

func (q *Quote) laborCostItem() *explanation.Explanation {
	e := explanation.New("Labor cost", unitMoney, q.Pricing.LaborCost)
	if q.Job.Scope == pricing.PrintOnly {
		return e.AddNote("print only, nothing installed")
	}
	return e.WithFormula("labor hours × labor rate").
		AddInput("labor hours", q.Labor.TotalLaborHours.String(), explanation.SourceCalculated).
		AddInput("labor rate", q.Job.LaborRate.String(), explanation.SourceJob)
}

func (q *Quote) retailItem() *explanation.Explanation {
	e := explanation.New("Retail", unitMoney, q.Pricing.Retail).
		AddInput("subtotal", q.Pricing.SubtotalCost.String(), explanation.SourceCalculated).
		AddInput(string(q.Job.Mode), q.EffectivePercent.String(), explanation.SourceJob)
	if q.Job.Mode == pricing.ModeMarkup {
		e.WithFormula("subtotal × (1 + markup)")
	} else {
		e.WithFormula("subtotal ÷ (1 − margin)")
	}
	if q.HasWarning(WarnPercentClamped) {
		e.AddNote("requested %s capped at %s", q.Job.Percent, q.Job.Mode.Cap())
	}
	return e
}

var hundred = decimal.NewFromInt(100)

// percentOf renders a fraction as a whole percent with one decimal
func percentOf(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(1)
}
