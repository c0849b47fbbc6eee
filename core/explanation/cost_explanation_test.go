package explanation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountString(t *testing.T) {
	tests := []struct {
		unit   string
		amount string
		want   string
	}{
		{"USD", "5933.333333", "$5933.33"},
		{"USD", "0", "$0.00"},
		{"LF", "52", "52.00 LF"},
		{"sqft", "229.999", "230.00 sqft"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e := New("figure", tt.unit, decimal.RequireFromString(tt.amount))
			if got := e.AmountString(); got != tt.want {
				t.Errorf("AmountString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHoverListsInputsAndNotes(t *testing.T) {
	e := New("Linear feet", "LF", decimal.NewFromInt(52)).
		WithFormula("ceil(adjusted area / roll width)").
		AddInput("adjusted area", "230", SourceCalculated).
		AddNote("floor of %s LF applied", "0")

	hover := e.ToHover()
	for _, want := range []string{
		"**Linear feet** → 52.00 LF",
		"Formula: `ceil(adjusted area / roll width)`",
		"adjusted area = 230 (calculated)",
		"Note: floor of 0 LF applied",
	} {
		if !strings.Contains(hover, want) {
			t.Errorf("hover missing %q:\n%s", want, hover)
		}
	}
}

func TestNarrative(t *testing.T) {
	bare := New("Design fee", "USD", decimal.NewFromInt(400))
	if got := bare.ToNarrative(); got != "Design fee is $400.00" {
		t.Errorf("unexpected narrative %q", got)
	}

	withFormula := New("Labor cost", "USD", decimal.NewFromInt(1200)).WithFormula("hours × rate")
	if got := withFormula.ToNarrative(); got != "Labor cost is $1200.00, calculated as: hours × rate" {
		t.Errorf("unexpected narrative %q", got)
	}
}

func TestToJSON(t *testing.T) {
	e := New("Retail", "USD", decimal.RequireFromString("100.5")).
		AddInput("subtotal", "60", SourceCalculated)
	data, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var decoded Explanation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Amount.Equal(e.Amount) || len(decoded.Inputs) != 1 || decoded.Inputs[0].Source != SourceCalculated {
		t.Errorf("unexpected decoded explanation: %+v", decoded)
	}
}
