package quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wrapquote/core/estimate"
	"wrapquote/core/pricing"
	"wrapquote/core/reference"
)

// WarningCode identifies a condition the caller should know about.
// Warnings never stop a quote from being produced.
type WarningCode string

const (
	// WarnScopeForced means color change was switched to install only
	WarnScopeForced WarningCode = "scope_forced"

	// WarnPercentClamped means the requested percent exceeded the mode's cap
	WarnPercentClamped WarningCode = "percent_clamped"

	// WarnMissingVinylCost means a color change has no vinyl cost
	WarnMissingVinylCost WarningCode = "missing_vinyl_cost"

	// WarnRoofIgnored means exclude roof was set on a wrap type other than full wrap
	WarnRoofIgnored WarningCode = "roof_ignored"

	// WarnDecalQuantity means decal quantities are not floored and should be checked
	WarnDecalQuantity WarningCode = "decal_quantity"
)

// Warning is a coded, human-readable notice attached to a quote
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// UnitCosts are the per-unit costs the quote was priced with
type UnitCosts struct {
	VinylCostPerLinearFoot decimal.Decimal `json:"vinyl_cost_per_lf"`
	PrintCostPerArea       decimal.Decimal `json:"print_cost_per_sqft"`
	LamCostPerArea         decimal.Decimal `json:"lam_cost_per_sqft"`
}

// Quote is the full result of calculating one job
type Quote struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Job is the configuration after scope forcing and roof reset
	Job Job `json:"job"`

	UnitCosts UnitCosts               `json:"unit_costs"`
	Material  *estimate.MaterialResult `json:"material"`
	Labor     *estimate.LaborResult    `json:"labor"`
	Pricing   *pricing.Result          `json:"pricing"`

	// EffectivePercent is the percent actually priced at
	EffectivePercent decimal.Decimal `json:"effective_percent"`

	Warnings []Warning `json:"warnings,omitempty"`

	vinyl, print, lam unitCost
}

// HasWarning reports whether the quote carries code
func (q *Quote) HasWarning(code WarningCode) bool {
	for _, w := range q.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Valid reports whether the quote can be presented to a customer.
// A color change without a vinyl cost prices the material at zero.
func (q *Quote) Valid() bool {
	return !q.HasWarning(WarnMissingVinylCost)
}

func (q *Quote) warn(code WarningCode, format string, args ...any) {
	q.Warnings = append(q.Warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Calculator produces quotes against one reference table
type Calculator struct {
	estimator *estimate.Estimator
	now       func() time.Time
	newID     func() string
}

// NewCalculator creates a calculator over t. A nil table means the built-in one.
func NewCalculator(t *reference.Table) *Calculator {
	return &Calculator{
		estimator: estimate.New(t),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

var defaultCalculator = NewCalculator(nil)

// Calculate quotes job with the built-in table
func Calculate(job Job) (*Quote, error) {
	return defaultCalculator.Calculate(job)
}

// Calculate validates job and runs every stage from that one configuration.
// It fails only on unknown enum values or brand names.
func (c *Calculator) Calculate(job Job) (*Quote, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	q := &Quote{
		ID:        c.newID(),
		Name:      job.Name,
		CreatedAt: c.now().UTC(),
	}

	if job.Category == pricing.ColorChange && job.Scope != pricing.InstallOnly {
		q.warn(WarnScopeForced, "color change is install only; scope %s changed to %s", job.Scope, pricing.InstallOnly)
		job.Scope = pricing.InstallOnly
	}
	if job.ExcludeRoof && job.Wrap != reference.FullWrap {
		q.warn(WarnRoofIgnored, "exclude roof only applies to %s, ignored for %s", reference.FullWrap, job.Wrap)
		job.ExcludeRoof = false
	}
	if job.Wrap.IsDecal() {
		q.warn(WarnDecalQuantity, "%s has no linear foot minimum; check the quantity", job.Wrap)
	}

	q.vinyl, q.print, q.lam = job.unitCosts()
	q.UnitCosts = UnitCosts{
		VinylCostPerLinearFoot: q.vinyl.value,
		PrintCostPerArea:       q.print.value,
		LamCostPerArea:         q.lam.value,
	}
	if job.Category == pricing.ColorChange && !q.vinyl.value.IsPositive() {
		q.warn(WarnMissingVinylCost, "color change needs a vinyl cost per linear foot")
	}

	material, err := c.estimator.Material(estimate.MaterialInput{
		Vehicle:      job.Vehicle,
		Wrap:         job.Wrap,
		RollWidth:    job.RollWidth,
		WastePercent: job.WastePercent,
		Complexity:   job.Complexity,
		ExcludeRoof:  job.ExcludeRoof,
	})
	if err != nil {
		return nil, err
	}

	labor, err := c.estimator.Labor(estimate.LaborInput{
		Vehicle:     job.Vehicle,
		Wrap:        job.Wrap,
		Complexity:  job.Complexity,
		ManualHours: job.ManualHours,
		ExcludeRoof: job.ExcludeRoof,
	})
	if err != nil {
		return nil, err
	}

	priced, err := pricing.Compute(pricing.Input{
		LinearFeet:             material.LinearFeet,
		AdjustedArea:           material.AdjustedArea,
		TotalLaborHours:        labor.TotalLaborHours,
		Scope:                  job.Scope,
		Category:               job.Category,
		VinylCostPerLinearFoot: q.vinyl.value,
		PrintCostPerArea:       q.print.value,
		LamCostPerArea:         q.lam.value,
		DesignFee:              job.DesignFee,
		LaborRate:              job.LaborRate,
		Overhead:               job.Overhead,
		Mode:                   job.Mode,
		Percent:                job.Percent,
		DepositPercent:         job.DepositPercent,
	})
	if err != nil {
		return nil, err
	}

	q.EffectivePercent = pricing.EffectivePercent(job.Mode, job.Percent)
	if pricing.Clamped(job.Mode, job.Percent) {
		q.warn(WarnPercentClamped, "%s of %s exceeds the cap; priced at %s",
			job.Mode, job.Percent, q.EffectivePercent)
	}

	q.Job = job
	q.Material = material
	q.Labor = labor
	q.Pricing = priced
	return q, nil
}
