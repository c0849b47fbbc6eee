package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/shopspring/decimal"

	"wrapquote/core/pricing"
	"wrapquote/core/quote"
	"wrapquote/core/reference"
)

var hundred = decimal.NewFromInt(100)

// fileSchema is the top level of a job file
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "job", LabelNames: []string{"name"}},
	},
}

// jobSpec is the body of a job block
type jobSpec struct {
	Vehicle      *string  `hcl:"vehicle,optional"`
	WrapType     *string  `hcl:"wrap_type,optional"`
	Scope        *string  `hcl:"scope,optional"`
	Category     *string  `hcl:"category,optional"`
	RollWidth    *int     `hcl:"roll_width,optional"`
	WastePercent *float64 `hcl:"waste_percent,optional"`
	ExcludeRoof  *bool    `hcl:"exclude_roof,optional"`
	ManualHours  *float64 `hcl:"manual_hours,optional"`

	Complexity *complexitySpec `hcl:"complexity,block"`
	Materials  *materialsSpec  `hcl:"materials,block"`
	Pricing    *pricingSpec    `hcl:"pricing,block"`
}

type complexitySpec struct {
	Mirrors      bool `hcl:"mirrors,optional"`
	RoofRails    bool `hcl:"roof_rails,optional"`
	Rivets       bool `hcl:"rivets,optional"`
	DeepRecesses bool `hcl:"deep_recesses,optional"`
}

type materialsSpec struct {
	VinylBrand       *string  `hcl:"vinyl_brand,optional"`
	VinylCostPerLF   *float64 `hcl:"vinyl_cost_per_lf,optional"`
	PrintBrand       *string  `hcl:"print_brand,optional"`
	PrintCostPerSqft *float64 `hcl:"print_cost_per_sqft,optional"`
	LamCostPerSqft   *float64 `hcl:"lam_cost_per_sqft,optional"`
}

type pricingSpec struct {
	LaborRate      *float64 `hcl:"labor_rate,optional"`
	DesignFee      *float64 `hcl:"design_fee,optional"`
	Overhead       *float64 `hcl:"overhead,optional"`
	Mode           *string  `hcl:"mode,optional"`
	Percent        *float64 `hcl:"percent,optional"`
	DepositPercent *float64 `hcl:"deposit_percent,optional"`
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// setDecimal overwrites dst when f is set, dividing whole percents when asked
func setDecimal(dst *decimal.Decimal, f *float64, percent bool) {
	if f == nil {
		return
	}
	d := decimal.NewFromFloat(*f)
	if percent {
		d = d.Div(hundred)
	}
	*dst = d
}

// toJob overlays the block on defaults and validates every tag
func (s *jobSpec) toJob(name string, defaults quote.Job) (quote.Job, error) {
	job := defaults
	job.Name = name

	var err error
	if s.Vehicle != nil {
		if job.Vehicle, err = reference.ParseVehicleCategory(*s.Vehicle); err != nil {
			return job, err
		}
	}
	if s.WrapType != nil {
		if job.Wrap, err = reference.ParseWrapType(*s.WrapType); err != nil {
			return job, err
		}
	}
	if s.Scope != nil {
		if job.Scope, err = pricing.ParseJobScope(*s.Scope); err != nil {
			return job, err
		}
	}
	if s.Category != nil {
		if job.Category, err = pricing.ParseMaterialCategory(*s.Category); err != nil {
			return job, err
		}
	}
	if s.RollWidth != nil {
		if job.RollWidth, err = reference.ParseRollWidth(*s.RollWidth); err != nil {
			return job, err
		}
	}
	setDecimal(&job.WastePercent, s.WastePercent, true)
	if s.ExcludeRoof != nil {
		job.ExcludeRoof = *s.ExcludeRoof
	}
	if s.ManualHours != nil {
		job.ManualHours = decimalPtr(s.ManualHours)
	}

	if c := s.Complexity; c != nil {
		job.Complexity = reference.Complexity{
			Mirrors:      c.Mirrors,
			RoofRails:    c.RoofRails,
			Rivets:       c.Rivets,
			DeepRecesses: c.DeepRecesses,
		}
	}

	if m := s.Materials; m != nil {
		if m.VinylBrand != nil {
			job.VinylBrand = reference.VinylBrand(*m.VinylBrand)
			// A brand without a cost means "use the brand's hint".
			job.VinylCostPerLinearFoot = nil
		}
		if m.PrintBrand != nil {
			job.PrintBrand = reference.PrintBrand(*m.PrintBrand)
			job.PrintCostPerArea, job.LamCostPerArea = nil, nil
		}
		if m.VinylCostPerLF != nil {
			job.VinylCostPerLinearFoot = decimalPtr(m.VinylCostPerLF)
		}
		if m.PrintCostPerSqft != nil {
			job.PrintCostPerArea = decimalPtr(m.PrintCostPerSqft)
		}
		if m.LamCostPerSqft != nil {
			job.LamCostPerArea = decimalPtr(m.LamCostPerSqft)
		}
	}

	if p := s.Pricing; p != nil {
		setDecimal(&job.LaborRate, p.LaborRate, false)
		setDecimal(&job.DesignFee, p.DesignFee, false)
		setDecimal(&job.Overhead, p.Overhead, false)
		if p.Mode != nil {
			if job.Mode, err = pricing.ParseMode(*p.Mode); err != nil {
				return job, err
			}
		}
		setDecimal(&job.Percent, p.Percent, true)
		setDecimal(&job.DepositPercent, p.DepositPercent, false)
	}

	return job, job.Validate()
}
