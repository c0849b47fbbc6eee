package quote

import "github.com/shopspring/decimal"

// AdvisoryInput is the read-only view of a quote handed to an external
// confidence checker. Nothing here reads it back.
type AdvisoryInput struct {
	Vehicle         string          `json:"vehicle"`
	Wrap            string          `json:"wrap_type"`
	Scope           string          `json:"scope"`
	Category        string          `json:"category"`
	AdjustedArea    decimal.Decimal `json:"adjusted_area"`
	LinearFeet      decimal.Decimal `json:"linear_feet"`
	TotalLaborHours decimal.Decimal `json:"total_labor_hours"`
	LaborRate       decimal.Decimal `json:"labor_rate"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	Retail          decimal.Decimal `json:"retail"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"`
}

// Advisory projects q onto the advisory view
func (q *Quote) Advisory() AdvisoryInput {
	return AdvisoryInput{
		Vehicle:         string(q.Job.Vehicle),
		Wrap:            string(q.Job.Wrap),
		Scope:           string(q.Job.Scope),
		Category:        string(q.Job.Category),
		AdjustedArea:    q.Material.AdjustedArea,
		LinearFeet:      q.Material.LinearFeet,
		TotalLaborHours: q.Labor.TotalLaborHours,
		LaborRate:       q.Job.LaborRate,
		MaterialCost:    q.Pricing.MaterialCost,
		Retail:          q.Pricing.Retail,
		ProfitMargin:    q.Pricing.ProfitMargin,
	}
}
