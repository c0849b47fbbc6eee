package reference

import "github.com/shopspring/decimal"

// ComplexityFactor is a physical feature that adds waste and install time
type ComplexityFactor string

const (
	Mirrors      ComplexityFactor = "mirrors"
	RoofRails    ComplexityFactor = "roof_rails"
	Rivets       ComplexityFactor = "rivets"
	DeepRecesses ComplexityFactor = "deep_recesses"
)

// Delta is what one factor adds to a job
type Delta struct {
	// Waste is an additive fraction of base area
	Waste decimal.Decimal `json:"waste"`

	// Hours is an additive labor time
	Hours decimal.Decimal `json:"hours"`
}

var complexityFactors = []ComplexityFactor{Mirrors, RoofRails, Rivets, DeepRecesses}

var complexityDeltas = map[ComplexityFactor]Delta{
	Mirrors:      {Waste: decimal.RequireFromString("0.02"), Hours: decimal.RequireFromString("0.5")},
	RoofRails:    {Waste: decimal.RequireFromString("0.03"), Hours: decimal.RequireFromString("1.0")},
	Rivets:       {Waste: decimal.RequireFromString("0.05"), Hours: decimal.RequireFromString("2.0")},
	DeepRecesses: {Waste: decimal.RequireFromString("0.04"), Hours: decimal.RequireFromString("1.5")},
}

// ComplexityFactors returns every factor in display order
func ComplexityFactors() []ComplexityFactor {
	out := make([]ComplexityFactor, len(complexityFactors))
	copy(out, complexityFactors)
	return out
}

// DeltaFor returns the deltas for f; unknown factors contribute nothing.
func DeltaFor(f ComplexityFactor) Delta {
	d, ok := complexityDeltas[f]
	if !ok {
		return Delta{Waste: decimal.Zero, Hours: decimal.Zero}
	}
	return d
}

// Complexity is the closed set of toggles a job can enable
type Complexity struct {
	Mirrors      bool `json:"mirrors"`
	RoofRails    bool `json:"roof_rails"`
	Rivets       bool `json:"rivets"`
	DeepRecesses bool `json:"deep_recesses"`
}

// Enabled lists the factors that are switched on
func (c Complexity) Enabled() []ComplexityFactor {
	var out []ComplexityFactor
	if c.Mirrors {
		out = append(out, Mirrors)
	}
	if c.RoofRails {
		out = append(out, RoofRails)
	}
	if c.Rivets {
		out = append(out, Rivets)
	}
	if c.DeepRecesses {
		out = append(out, DeepRecesses)
	}
	return out
}

// WastePercent sums the waste deltas of enabled factors
func (c Complexity) WastePercent() decimal.Decimal {
	total := decimal.Zero
	for _, f := range c.Enabled() {
		total = total.Add(DeltaFor(f).Waste)
	}
	return total
}

// Hours sums the hour deltas of enabled factors
func (c Complexity) Hours() decimal.Decimal {
	total := decimal.Zero
	for _, f := range c.Enabled() {
		total = total.Add(DeltaFor(f).Hours)
	}
	return total
}

// Set switches one factor on by name.
// It returns false for an unknown name.
func (c *Complexity) Set(f ComplexityFactor) bool {
	switch f {
	case Mirrors:
		c.Mirrors = true
	case RoofRails:
		c.RoofRails = true
	case Rivets:
		c.Rivets = true
	case DeepRecesses:
		c.DeepRecesses = true
	default:
		return false
	}
	return true
}
