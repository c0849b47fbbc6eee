// Package pricing turns material and labor quantities into a retail price.
// The engine never fails on numeric input: percentages above a mode's cap
// are clamped without signal.
package pricing

import (
	"github.com/shopspring/decimal"

	"wrapquote/internal/errors"
)

// JobScope says which parts of the job the shop performs
type JobScope string

const (
	InstallOnly     JobScope = "install_only"
	PrintOnly       JobScope = "print_only"
	PrintAndInstall JobScope = "print_and_install"
)

// Valid reports whether s is a known scope
func (s JobScope) Valid() bool {
	return s == InstallOnly || s == PrintOnly || s == PrintAndInstall
}

// JobScopes returns every scope in display order
func JobScopes() []JobScope {
	return []JobScope{PrintAndInstall, InstallOnly, PrintOnly}
}

// ParseJobScope validates a scope string
func ParseJobScope(s string) (JobScope, error) {
	scope := JobScope(s)
	if !scope.Valid() {
		return "", errors.InvalidCategory("job scope", s)
	}
	return scope, nil
}

// MaterialCategory distinguishes solid color-change vinyl from printed graphics
type MaterialCategory string

const (
	ColorChange     MaterialCategory = "color_change"
	CommercialPrint MaterialCategory = "commercial_print"
)

// Valid reports whether c is a known category
func (c MaterialCategory) Valid() bool {
	return c == ColorChange || c == CommercialPrint
}

// MaterialCategories returns every category in display order
func MaterialCategories() []MaterialCategory {
	return []MaterialCategory{CommercialPrint, ColorChange}
}

// ParseMaterialCategory validates a category string
func ParseMaterialCategory(s string) (MaterialCategory, error) {
	c := MaterialCategory(s)
	if !c.Valid() {
		return "", errors.InvalidCategory("material category", s)
	}
	return c, nil
}

// Mode is the pricing strategy
type Mode string

const (
	// ModeMargin prices so that profit is a fraction of retail
	ModeMargin Mode = "margin"

	// ModeMarkup prices so that profit is a fraction of cost
	ModeMarkup Mode = "markup"
)

var (
	// MarginCap is the highest margin the engine will price at
	MarginCap = decimal.RequireFromString("0.70")

	// MarkupCap is the highest markup the engine will price at
	MarkupCap = decimal.RequireFromString("3.00")
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeMargin || m == ModeMarkup
}

// Cap returns the ceiling for the mode's percent
func (m Mode) Cap() decimal.Decimal {
	if m == ModeMarkup {
		return MarkupCap
	}
	return MarginCap
}

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", errors.InvalidCategory("pricing mode", s)
	}
	return m, nil
}

// Input is everything the engine needs for one job
type Input struct {
	LinearFeet      decimal.Decimal `json:"linear_feet"`
	AdjustedArea    decimal.Decimal `json:"adjusted_area"`
	TotalLaborHours decimal.Decimal `json:"total_labor_hours"`

	Scope    JobScope         `json:"scope"`
	Category MaterialCategory `json:"category"`

	VinylCostPerLinearFoot decimal.Decimal `json:"vinyl_cost_per_lf"`
	PrintCostPerArea       decimal.Decimal `json:"print_cost_per_sqft"`
	LamCostPerArea         decimal.Decimal `json:"lam_cost_per_sqft"`
	DesignFee              decimal.Decimal `json:"design_fee"`
	LaborRate              decimal.Decimal `json:"labor_rate"`
	Overhead               decimal.Decimal `json:"overhead"`

	Mode Mode `json:"mode"`

	// Percent is a fraction: 0.40 is a 40% margin or markup
	Percent decimal.Decimal `json:"percent"`

	// DepositPercent is a whole percent: 30 means 30% of retail
	DepositPercent decimal.Decimal `json:"deposit_percent"`
}

// Validate checks the enumerated fields. Numbers are never rejected.
func (in *Input) Validate() error {
	if !in.Scope.Valid() {
		return errors.InvalidCategory("job scope", string(in.Scope))
	}
	if !in.Category.Valid() {
		return errors.InvalidCategory("material category", string(in.Category))
	}
	if !in.Mode.Valid() {
		return errors.InvalidCategory("pricing mode", string(in.Mode))
	}
	return nil
}

// Result is the priced job
type Result struct {
	MaterialCost  decimal.Decimal `json:"material_cost"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	SubtotalCost  decimal.Decimal `json:"subtotal_cost"`
	Retail        decimal.Decimal `json:"retail"`
	ProfitDollars decimal.Decimal `json:"profit_dollars"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
}
