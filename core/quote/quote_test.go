package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"wrapquote/core/explanation"
	"wrapquote/core/pricing"
	"wrapquote/core/reference"
	"wrapquote/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func fixedCalculator() *Calculator {
	c := NewCalculator(nil)
	c.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*3600)) }
	c.newID = func() string { return "q-1" }
	return c
}

func mustCalculate(t *testing.T, job Job) *Quote {
	t.Helper()
	q, err := fixedCalculator().Calculate(job)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return q
}

func TestDefaultJob(t *testing.T) {
	q := mustCalculate(t, DefaultJob())

	assertDecimal(t, "AdjustedArea", q.Material.AdjustedArea, "230")
	assertDecimal(t, "LinearFeet", q.Material.LinearFeet, "52")
	assertDecimal(t, "TotalLaborHours", q.Labor.TotalLaborHours, "16")
	assertDecimal(t, "PrintCostPerArea", q.UnitCosts.PrintCostPerArea, "4.50")
	assertDecimal(t, "LamCostPerArea", q.UnitCosts.LamCostPerArea, "1.75")
	assertDecimal(t, "MaterialCost", q.Pricing.MaterialCost, "1957.5")
	assertDecimal(t, "LaborCost", q.Pricing.LaborCost, "1200")
	assertDecimal(t, "SubtotalCost", q.Pricing.SubtotalCost, "3607.5")
	assertDecimal(t, "Retail", q.Pricing.Retail, "6012.5")
	assertDecimal(t, "ProfitMargin", q.Pricing.ProfitMargin, "0.4")
	assertDecimal(t, "DepositAmount", q.Pricing.DepositAmount, "1803.75")

	if len(q.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", q.Warnings)
	}
	if !q.Valid() {
		t.Error("default quote should be valid")
	}
	if q.ID != "q-1" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.CreatedAt.Location() != time.UTC || q.CreatedAt.Hour() != 14 {
		t.Errorf("CreatedAt not normalized to UTC: %v", q.CreatedAt)
	}
}

func TestCalculateAssignsUUID(t *testing.T) {
	a, err := Calculate(DefaultJob())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Calculate(DefaultJob())
	if err != nil {
		t.Fatal(err)
	}
	if len(a.ID) != 36 || a.ID == b.ID {
		t.Errorf("expected distinct UUIDs, got %q and %q", a.ID, b.ID)
	}
}

func TestColorChangeForcesInstallOnly(t *testing.T) {
	job := DefaultJob()
	job.Category = pricing.ColorChange

	q := mustCalculate(t, job)
	if q.Job.Scope != pricing.InstallOnly {
		t.Errorf("Scope = %s, want install_only", q.Job.Scope)
	}
	if !q.HasWarning(WarnScopeForced) {
		t.Error("expected scope_forced warning")
	}
	assertDecimal(t, "MaterialCost", q.Pricing.MaterialCost, "520")
	assertDecimal(t, "SubtotalCost", q.Pricing.SubtotalCost, "2170")

	job.Scope = pricing.InstallOnly
	if q := mustCalculate(t, job); q.HasWarning(WarnScopeForced) {
		t.Error("no warning expected when scope is already install_only")
	}
}

func TestVinylCostFallsBackToBrand(t *testing.T) {
	tests := []struct {
		name      string
		brand     reference.VinylBrand
		wantCost  string
		wantValid bool
	}{
		{"priced brand", "3M_2080", "12", true},
		{"other brand has no hint", reference.BrandOther, "0", false},
		{"no brand", "", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := DefaultJob()
			job.Category = pricing.ColorChange
			job.Scope = pricing.InstallOnly
			job.VinylBrand = tt.brand
			job.VinylCostPerLinearFoot = nil

			q := mustCalculate(t, job)
			assertDecimal(t, "VinylCostPerLinearFoot", q.UnitCosts.VinylCostPerLinearFoot, tt.wantCost)
			assertDecimal(t, "MaterialCost", q.Pricing.MaterialCost, dec(tt.wantCost).Mul(dec("52")).String())
			if q.Valid() != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", q.Valid(), tt.wantValid)
			}
			if q.HasWarning(WarnMissingVinylCost) == tt.wantValid {
				t.Errorf("missing_vinyl_cost warning mismatch: %+v", q.Warnings)
			}
		})
	}
}

func TestExplicitCostsBeatHints(t *testing.T) {
	job := DefaultJob()
	job.PrintCostPerArea = ptr("5")
	job.LamCostPerArea = ptr("2")

	q := mustCalculate(t, job)
	assertDecimal(t, "PrintCostPerArea", q.UnitCosts.PrintCostPerArea, "5")
	assertDecimal(t, "LamCostPerArea", q.UnitCosts.LamCostPerArea, "2")
	// 52 × 10 + 230 × 7
	assertDecimal(t, "MaterialCost", q.Pricing.MaterialCost, "2130")
}

func TestRoofIgnoredOutsideFullWrap(t *testing.T) {
	job := DefaultJob()
	job.Wrap = reference.Hood
	job.ExcludeRoof = true

	q := mustCalculate(t, job)
	if !q.HasWarning(WarnRoofIgnored) {
		t.Error("expected roof_ignored warning")
	}
	if q.Job.ExcludeRoof {
		t.Error("ExcludeRoof should be reset")
	}
	assertDecimal(t, "BaseArea", q.Material.BaseArea, "25")
}

func TestExcludeRoofOnFullWrap(t *testing.T) {
	job := DefaultJob()
	job.ExcludeRoof = true

	q := mustCalculate(t, job)
	if q.HasWarning(WarnRoofIgnored) {
		t.Error("roof exclusion is valid on a full wrap")
	}
	assertDecimal(t, "BaseArea", q.Material.BaseArea, "170")
	assertDecimal(t, "TotalLaborHours", q.Labor.TotalLaborHours, "13.5")
}

func TestDecalWarning(t *testing.T) {
	job := DefaultJob()
	job.Wrap = reference.DecalsBasic

	q := mustCalculate(t, job)
	if !q.HasWarning(WarnDecalQuantity) {
		t.Error("expected decal_quantity warning")
	}
	assertDecimal(t, "LinearFeet", q.Material.LinearFeet, "2")
}

func TestPercentClampedWarning(t *testing.T) {
	tests := []struct {
		mode      pricing.Mode
		percent   string
		effective string
		clamped   bool
	}{
		{pricing.ModeMargin, "0.9", "0.7", true},
		{pricing.ModeMargin, "0.7", "0.7", false},
		{pricing.ModeMarkup, "5", "3", true},
		{pricing.ModeMarkup, "1.5", "1.5", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode)+"@"+tt.percent, func(t *testing.T) {
			job := DefaultJob()
			job.Mode = tt.mode
			job.Percent = dec(tt.percent)

			q := mustCalculate(t, job)
			assertDecimal(t, "EffectivePercent", q.EffectivePercent, tt.effective)
			if q.HasWarning(WarnPercentClamped) != tt.clamped {
				t.Errorf("percent_clamped = %v, want %v", q.HasWarning(WarnPercentClamped), tt.clamped)
			}
		})
	}
}

func TestCalculateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Job)
	}{
		{"vehicle", func(j *Job) { j.Vehicle = "spaceship" }},
		{"wrap", func(j *Job) { j.Wrap = "chrome_delete" }},
		{"roll width", func(j *Job) { j.RollWidth = 48 }},
		{"scope", func(j *Job) { j.Scope = "" }},
		{"category", func(j *Job) { j.Category = "reflective" }},
		{"mode", func(j *Job) { j.Mode = "cost_plus" }},
		{"vinyl brand", func(j *Job) { j.VinylBrand = "Acme" }},
		{"print brand", func(j *Job) { j.PrintBrand = "Acme" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := DefaultJob()
			tt.mut(&job)
			q, err := Calculate(job)
			if !errors.IsType(err, errors.TypeInvalidCategory) {
				t.Errorf("expected INVALID_CATEGORY, got %v", err)
			}
			if q != nil {
				t.Error("expected no quote")
			}
		})
	}
}

func TestLineItems(t *testing.T) {
	q := mustCalculate(t, DefaultJob())
	items := q.LineItems()

	wantNames := []string{
		"Base area", "Adjusted area", "Linear feet", "Labor hours",
		"Material cost", "Labor cost", "Design fee", "Overhead",
		"Subtotal", "Retail", "Profit", "Deposit",
	}
	if len(items) != len(wantNames) {
		t.Fatalf("got %d line items, want %d", len(items), len(wantNames))
	}
	for i, name := range wantNames {
		if items[i].Name != name {
			t.Errorf("item %d = %q, want %q", i, items[i].Name, name)
		}
	}

	if !items[9].Amount.Equal(q.Pricing.Retail) {
		t.Errorf("retail item amount %s, want %s", items[9].Amount, q.Pricing.Retail)
	}

	sources := map[string]explanation.Source{}
	for _, in := range items[4].Inputs {
		sources[in.Name] = in.Source
	}
	if sources["vinyl cost"] != explanation.SourceJob {
		t.Errorf("vinyl cost source = %q", sources["vinyl cost"])
	}
	if sources["print cost"] != explanation.SourceBrandHint {
		t.Errorf("print cost source = %q", sources["print cost"])
	}
}

func TestLineItemsManualHours(t *testing.T) {
	job := DefaultJob()
	job.ManualHours = ptr("20")

	q := mustCalculate(t, job)
	hours := q.LineItems()[3]
	if len(hours.Inputs) != 1 || hours.Inputs[0].Source != explanation.SourceOverride {
		t.Errorf("expected a single override input, got %+v", hours.Inputs)
	}
	assertDecimal(t, "hours", hours.Amount, "20")
}

func TestLineItemsNoteFloor(t *testing.T) {
	job := DefaultJob()
	job.Vehicle = reference.Motorcycle

	q := mustCalculate(t, job)
	lf := q.LineItems()[2]
	if len(lf.Notes) == 0 {
		t.Errorf("expected a minimum note on linear feet, got %+v", lf)
	}
	assertDecimal(t, "LinearFeet", lf.Amount, "50")
}

func TestAdvisory(t *testing.T) {
	q := mustCalculate(t, DefaultJob())
	a := q.Advisory()

	if a.Vehicle != "midsize_sedan" || a.Wrap != "full_wrap" || a.Scope != "print_and_install" || a.Category != "commercial_print" {
		t.Errorf("unexpected tags: %+v", a)
	}
	assertDecimal(t, "AdjustedArea", a.AdjustedArea, "230")
	assertDecimal(t, "LinearFeet", a.LinearFeet, "52")
	assertDecimal(t, "TotalLaborHours", a.TotalLaborHours, "16")
	assertDecimal(t, "LaborRate", a.LaborRate, "75")
	assertDecimal(t, "MaterialCost", a.MaterialCost, "1957.5")
	assertDecimal(t, "Retail", a.Retail, "6012.5")
	assertDecimal(t, "ProfitMargin", a.ProfitMargin, "0.4")
}

func TestCloneSharesNoPointers(t *testing.T) {
	job := DefaultJob()
	job.ManualHours = ptr("8")

	clone := job.Clone()
	*clone.VinylCostPerLinearFoot = dec("99")
	*clone.ManualHours = dec("1")

	assertDecimal(t, "original vinyl", *job.VinylCostPerLinearFoot, "10")
	assertDecimal(t, "original hours", *job.ManualHours, "8")
}
