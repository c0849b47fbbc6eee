package hcl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"wrapquote/core/pricing"
	"wrapquote/core/quote"
	"wrapquote/core/reference"
	"wrapquote/internal/errors"
)

const fleetFile = `
job "van-1" {
  vehicle       = "cargo_van"
  wrap_type     = "commercial_sides"
  roll_width    = 60
  waste_percent = 10

  complexity {
    rivets = true
  }

  pricing {
    mode    = "markup"
    percent = 150
  }
}

job "sedan-color" {
  category = "color_change"
  scope    = "install_only"

  materials {
    vinyl_brand = "3M_2080"
  }
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseOverlaysDefaults(t *testing.T) {
	jobs, err := NewLoader(quote.DefaultJob()).Parse([]byte(fleetFile), "fleet.hcl")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}

	van := jobs[0]
	if van.Name != "van-1" || van.Vehicle != reference.CargoVan || van.Wrap != reference.CommercialSides {
		t.Errorf("unexpected van job: %+v", van)
	}
	if van.RollWidth != reference.RollWidth60 {
		t.Errorf("RollWidth = %v", van.RollWidth)
	}
	if !van.WastePercent.Equal(decimal.RequireFromString("0.1")) {
		t.Errorf("WastePercent = %s, want 0.1", van.WastePercent)
	}
	if !van.Complexity.Rivets || van.Complexity.Mirrors {
		t.Errorf("Complexity = %+v", van.Complexity)
	}
	if van.Mode != pricing.ModeMarkup || !van.Percent.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("pricing = %s %s", van.Mode, van.Percent)
	}
	// untouched values keep their defaults
	if !van.LaborRate.Equal(decimal.NewFromInt(75)) || !van.DepositPercent.Equal(decimal.NewFromInt(30)) {
		t.Errorf("defaults lost: rate %s deposit %s", van.LaborRate, van.DepositPercent)
	}

	sedan := jobs[1]
	if sedan.Category != pricing.ColorChange || sedan.VinylBrand != "3M_2080" {
		t.Errorf("unexpected sedan job: %+v", sedan)
	}
	if sedan.VinylCostPerLinearFoot != nil {
		t.Error("naming a brand should defer to its cost hint")
	}

	q, err := quote.Calculate(sedan)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// 52 LF × $12
	if !q.Pricing.MaterialCost.Equal(decimal.NewFromInt(624)) {
		t.Errorf("MaterialCost = %s, want 624", q.Pricing.MaterialCost)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantType errors.Type
		wantLine int
	}{
		{
			name:     "syntax",
			src:      "job \"a\" {\n  vehicle = \n}\n",
			wantType: errors.TypeParsing,
		},
		{
			name:     "unknown attribute",
			src:      "job \"a\" {\n  color = \"red\"\n}\n",
			wantType: errors.TypeParsing,
			wantLine: 2,
		},
		{
			name:     "unknown vehicle",
			src:      "\njob \"a\" {\n  vehicle = \"tank\"\n}\n",
			wantType: errors.TypeInvalidCategory,
			wantLine: 2,
		},
		{
			name:     "bad roll width",
			src:      "job \"a\" {\n  roll_width = 48\n}\n",
			wantType: errors.TypeInvalidCategory,
			wantLine: 1,
		},
		{
			name:     "unknown brand",
			src:      "job \"a\" {\n  materials {\n    print_brand = \"Acme\"\n  }\n}\n",
			wantType: errors.TypeInvalidCategory,
			wantLine: 1,
		},
		{
			name:     "duplicate name",
			src:      "job \"a\" {}\njob \"a\" {}\n",
			wantType: errors.TypeInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(quote.DefaultJob()).Parse([]byte(tt.src), "bad.hcl")
			if !errors.IsType(err, tt.wantType) {
				t.Fatalf("expected %s, got %v", tt.wantType, err)
			}
			if tt.wantLine == 0 {
				return
			}
			e := err.(*errors.Error)
			if e.Context["line"] != tt.wantLine {
				t.Errorf("line = %v, want %d (%v)", e.Context["line"], tt.wantLine, err)
			}
			if e.Context["file"] != "bad.hcl" {
				t.Errorf("file = %v", e.Context["file"])
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.hcl", `job "one" { vehicle = "semi" }`)
	b := writeFile(t, dir, "b.hcl", `job "two" { wrap_type = "hood" }`)
	dup := writeFile(t, dir, "c.hcl", `job "one" {}`)

	jobs, err := NewLoader(quote.DefaultJob()).LoadFiles(a, b)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if len(jobs) != 2 || jobs[0].Vehicle != reference.Semi || jobs[1].Wrap != reference.Hood {
		t.Errorf("unexpected jobs: %+v", jobs)
	}

	_, err = NewLoader(quote.DefaultJob()).LoadFiles(a, dup)
	if !errors.IsType(err, errors.TypeInput) || !strings.Contains(err.Error(), `duplicate job "one"`) {
		t.Errorf("expected duplicate error, got %v", err)
	}

	_, err = NewLoader(quote.DefaultJob()).LoadFiles(filepath.Join(dir, "missing.hcl"))
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestManualHoursAndCosts(t *testing.T) {
	src := `
job "manual" {
  manual_hours = 20
  materials {
    vinyl_cost_per_lf   = 11.25
    print_cost_per_sqft = 5
    lam_cost_per_sqft   = 2
  }
  pricing {
    labor_rate      = 90
    deposit_percent = 50
  }
}
`
	jobs, err := NewLoader(quote.DefaultJob()).Parse([]byte(src), "manual.hcl")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	job := jobs[0]
	if job.ManualHours == nil || !job.ManualHours.Equal(decimal.NewFromInt(20)) {
		t.Errorf("ManualHours = %v", job.ManualHours)
	}
	if !job.VinylCostPerLinearFoot.Equal(decimal.RequireFromString("11.25")) {
		t.Errorf("VinylCostPerLinearFoot = %s", job.VinylCostPerLinearFoot)
	}
	if !job.PrintCostPerArea.Equal(decimal.NewFromInt(5)) || !job.LamCostPerArea.Equal(decimal.NewFromInt(2)) {
		t.Errorf("print/lam = %s/%s", job.PrintCostPerArea, job.LamCostPerArea)
	}
	if !job.LaborRate.Equal(decimal.NewFromInt(90)) || !job.DepositPercent.Equal(decimal.NewFromInt(50)) {
		t.Errorf("pricing = %s/%s", job.LaborRate, job.DepositPercent)
	}
}
