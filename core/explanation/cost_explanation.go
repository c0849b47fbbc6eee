// Package explanation - Figure explanation
// Exposes HOW each quoted number was derived, not just the number.
package explanation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Source says where an input value came from
type Source string

const (
	SourceTable      Source = "table"
	SourceJob        Source = "job"
	SourceBrandHint  Source = "brand_hint"
	SourceCalculated Source = "calculated"
	SourceOverride   Source = "override"
)

// Explanation provides full transparency for one derived figure
type Explanation struct {
	// Identity
	Name string `json:"name"`
	Unit string `json:"unit"`

	// Value of the figure
	Amount decimal.Decimal `json:"amount"`

	// Formula breakdown
	Formula string  `json:"formula,omitempty"`
	Inputs  []Input `json:"inputs,omitempty"`

	// Notes carry anything the formula alone doesn't show (floors, clamps)
	Notes []string `json:"notes,omitempty"`
}

// Input represents an input to the formula
type Input struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source Source `json:"source"`
}

// New creates a new explanation for a figure
func New(name, unit string, amount decimal.Decimal) *Explanation {
	return &Explanation{
		Name:   name,
		Unit:   unit,
		Amount: amount,
		Inputs: make([]Input, 0),
	}
}

// WithFormula sets the formula description
func (e *Explanation) WithFormula(formula string) *Explanation {
	e.Formula = formula
	return e
}

// AddInput adds an input to the explanation
func (e *Explanation) AddInput(name, value string, source Source) *Explanation {
	e.Inputs = append(e.Inputs, Input{
		Name:   name,
		Value:  value,
		Source: source,
	})
	return e
}

// AddNote appends a free-form note
func (e *Explanation) AddNote(format string, args ...any) *Explanation {
	e.Notes = append(e.Notes, fmt.Sprintf(format, args...))
	return e
}

// AmountString renders the amount for display; money in cents, quantities to two places.
func (e *Explanation) AmountString() string {
	if e.Unit == "USD" {
		return "$" + e.Amount.StringFixed(2)
	}
	return e.Amount.StringFixed(2) + " " + e.Unit
}

// ToJSON returns JSON representation
func (e *Explanation) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ToHover returns a compact multi-line format
func (e *Explanation) ToHover() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("**%s** → %s\n", e.Name, e.AmountString()))

	if e.Formula != "" {
		sb.WriteString(fmt.Sprintf("Formula: `%s`\n", e.Formula))
	}

	if len(e.Inputs) > 0 {
		sb.WriteString("Inputs:\n")
		for _, input := range e.Inputs {
			sb.WriteString(fmt.Sprintf("  • %s = %s (%s)\n", input.Name, input.Value, input.Source))
		}
	}

	for _, note := range e.Notes {
		sb.WriteString("Note: " + note + "\n")
	}

	return sb.String()
}

// ToNarrative returns a human-readable one-liner
func (e *Explanation) ToNarrative() string {
	if e.Formula == "" {
		return fmt.Sprintf("%s is %s", e.Name, e.AmountString())
	}
	return fmt.Sprintf("%s is %s, calculated as: %s", e.Name, e.AmountString(), e.Formula)
}
