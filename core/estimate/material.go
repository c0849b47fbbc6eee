package estimate

import (
	"github.com/shopspring/decimal"

	"wrapquote/core/reference"
	"wrapquote/internal/errors"
)

// MaterialInput is everything the material estimate depends on
type MaterialInput struct {
	Vehicle   reference.VehicleCategory `json:"vehicle"`
	Wrap      reference.WrapType        `json:"wrap_type"`
	RollWidth reference.RollWidth       `json:"roll_width"`

	// WastePercent is a fraction (0.15 = 15%). It is not clamped.
	WastePercent decimal.Decimal `json:"waste_percent"`

	Complexity reference.Complexity `json:"complexity"`

	// ExcludeRoof drops the roof panel from a full wrap
	ExcludeRoof bool `json:"exclude_roof"`
}

// MaterialResult is the material side of a quote
type MaterialResult struct {
	BaseArea               decimal.Decimal `json:"base_area"`
	AdjustedArea           decimal.Decimal `json:"adjusted_area"`
	RawLinearFeet          decimal.Decimal `json:"raw_linear_feet"`
	LinearFeet             decimal.Decimal `json:"linear_feet"`
	ComplexityWastePercent decimal.Decimal `json:"complexity_waste_percent"`
}

// Material computes adjusted area and purchasable linear feet.
//
//	adjusted = base × (1 + waste + Σ complexity waste)
//	linear feet = max(ceil(adjusted ÷ roll width in feet), floor)
func (e *Estimator) Material(in MaterialInput) (*MaterialResult, error) {
	if !in.RollWidth.Valid() {
		return nil, errors.InvalidCategory("roll width", in.RollWidth.String())
	}

	baseArea, err := e.table.BaseArea(in.Vehicle, in.Wrap)
	if err != nil {
		return nil, err
	}

	if in.Wrap == reference.FullWrap && in.ExcludeRoof {
		roof, err := e.table.BaseArea(in.Vehicle, reference.Roof)
		if err != nil {
			return nil, err
		}
		baseArea = decimal.Max(decimal.Zero, baseArea.Sub(roof))
	}

	complexityWaste := in.Complexity.WastePercent()
	factor := decimal.NewFromInt(1).Add(in.WastePercent).Add(complexityWaste)
	adjusted := baseArea.Mul(factor)

	raw := adjusted.Div(in.RollWidth.Feet())
	linearFeet := raw.Ceil()
	if floor := e.table.MinLinearFeet(in.Wrap); floor.IsPositive() {
		linearFeet = decimal.Max(linearFeet, floor)
	}

	return &MaterialResult{
		BaseArea:               baseArea,
		AdjustedArea:           adjusted,
		RawLinearFeet:          raw,
		LinearFeet:             linearFeet,
		ComplexityWastePercent: complexityWaste,
	}, nil
}
