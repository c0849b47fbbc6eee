package estimate

import (
	"github.com/shopspring/decimal"

	"wrapquote/core/reference"
)

// LaborInput is everything the labor estimate depends on
type LaborInput struct {
	Vehicle    reference.VehicleCategory `json:"vehicle"`
	Wrap       reference.WrapType        `json:"wrap_type"`
	Complexity reference.Complexity      `json:"complexity"`

	// ManualHours replaces the table lookup when set. The floor still applies.
	ManualHours *decimal.Decimal `json:"manual_hours,omitempty"`

	// ExcludeRoof drops the roof hours from a full wrap
	ExcludeRoof bool `json:"exclude_roof"`
}

// LaborResult is the labor side of a quote
type LaborResult struct {
	BaseHours       decimal.Decimal `json:"base_hours"`
	ComplexityHours decimal.Decimal `json:"complexity_hours"`
	TotalLaborHours decimal.Decimal `json:"total_labor_hours"`
	ManualOverride  bool            `json:"manual_override"`
}

// Labor computes billable hours, never below the wrap type's minimum.
func (e *Estimator) Labor(in LaborInput) (*LaborResult, error) {
	// Validate both keys even on the manual path.
	baseHours, err := e.table.BaseHours(in.Vehicle, in.Wrap)
	if err != nil {
		return nil, err
	}
	floor := e.table.MinLaborHours(in.Wrap)

	if in.ManualHours != nil {
		return &LaborResult{
			BaseHours:       decimal.Zero,
			ComplexityHours: decimal.Zero,
			TotalLaborHours: decimal.Max(*in.ManualHours, floor),
			ManualOverride:  true,
		}, nil
	}

	if in.Wrap == reference.FullWrap && in.ExcludeRoof {
		roof, err := e.table.BaseHours(in.Vehicle, reference.Roof)
		if err != nil {
			return nil, err
		}
		baseHours = decimal.Max(decimal.Zero, baseHours.Sub(roof))
	}

	complexityHours := in.Complexity.Hours()

	return &LaborResult{
		BaseHours:       baseHours,
		ComplexityHours: complexityHours,
		TotalLaborHours: decimal.Max(baseHours.Add(complexityHours), floor),
	}, nil
}
