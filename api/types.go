package api

import (
	"github.com/shopspring/decimal"

	"wrapquote/core/pricing"
	"wrapquote/core/reference"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody names the failure
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

// VersionResponse is returned by GET /version
type VersionResponse struct {
	Version    string `json:"version"`
	Engine     string `json:"engine"`
	APIVersion string `json:"api_version"`
}

// PricingResponse is returned by POST /v1/pricing
type PricingResponse struct {
	*pricing.Result
	EffectivePercent decimal.Decimal `json:"effective_percent"`
	Clamped          bool            `json:"clamped"`
}

// ReferenceResponse is the reference data the calculator prices against
type ReferenceResponse struct {
	Vehicles          []reference.VehicleCategory `json:"vehicles"`
	WrapTypes         []reference.WrapType        `json:"wrap_types"`
	RollWidths        []reference.RollWidth       `json:"roll_widths"`
	Scopes            []pricing.JobScope          `json:"scopes"`
	Categories        []pricing.MaterialCategory  `json:"categories"`
	Modes             []ModeLimit                 `json:"modes"`
	BaseArea          []MatrixRow                 `json:"base_area"`
	BaseHours         []MatrixRow                 `json:"base_hours"`
	Floors            []Floor                     `json:"floors"`
	ComplexityFactors []ComplexityFactor          `json:"complexity_factors"`
	VinylBrands       []VinylBrand                `json:"vinyl_brands"`
	PrintBrands       []PrintBrand                `json:"print_brands"`
}

// ModeLimit is a pricing mode and its cap
type ModeLimit struct {
	Mode pricing.Mode    `json:"mode"`
	Cap  decimal.Decimal `json:"cap"`
}

// MatrixRow is one vehicle's values keyed by wrap type
type MatrixRow struct {
	Vehicle reference.VehicleCategory                `json:"vehicle"`
	Values  map[reference.WrapType]decimal.Decimal `json:"values"`
}

// Floor is the minimum billable quantity for a wrap type
type Floor struct {
	Wrap          reference.WrapType `json:"wrap_type"`
	MinLinearFeet decimal.Decimal    `json:"min_linear_feet"`
	MinLaborHours decimal.Decimal    `json:"min_labor_hours"`
}

// ComplexityFactor is a factor and what it adds
type ComplexityFactor struct {
	Factor reference.ComplexityFactor `json:"factor"`
	reference.Delta
}

// VinylBrand is a vinyl brand and its cost hint
type VinylBrand struct {
	Brand             reference.VinylBrand `json:"brand"`
	CostPerLinearFoot decimal.Decimal      `json:"cost_per_lf"`
}

// PrintBrand is a print brand and its cost hints
type PrintBrand struct {
	Brand reference.PrintBrand `json:"brand"`
	reference.PrintLamCost
}
