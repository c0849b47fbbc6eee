package reference

import (
	"testing"

	"github.com/shopspring/decimal"

	"wrapquote/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestDefaultTableCoversEveryPair verifies the parallel-key invariant on built-in data
func TestDefaultTableCoversEveryPair(t *testing.T) {
	table := Default()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}

	for _, v := range VehicleCategories() {
		for _, w := range WrapTypes() {
			if !table.Has(v, w) {
				t.Errorf("missing %s/%s", v, w)
				continue
			}
			if _, err := table.BaseArea(v, w); err != nil {
				t.Errorf("BaseArea(%s, %s): %v", v, w, err)
			}
			if _, err := table.BaseHours(v, w); err != nil {
				t.Errorf("BaseHours(%s, %s): %v", v, w, err)
			}
		}
	}

	if got := len(table.Keys()); got != 18*8 {
		t.Errorf("expected %d keys, got %d", 18*8, got)
	}
}

func TestLookupValues(t *testing.T) {
	tests := []struct {
		vehicle VehicleCategory
		wrap    WrapType
		area    string
		hours   string
	}{
		{MidsizeSedan, FullWrap, "200", "16"},
		{MidsizeSedan, Roof, "30", "2.5"},
		{MidsizeSedan, Trunk, "20", "1.75"},
		{CompactSUV, Trunk, "0", "0"},
		{Motorcycle, DecalsComplex, "8", "0.75"},
		{Semi, FullWrap, "800", "60"},
		{BoxTruckSmall, PartialWrap, "225", "17.5"},
	}

	for _, tt := range tests {
		t.Run(string(tt.vehicle)+"/"+string(tt.wrap), func(t *testing.T) {
			area, err := Default().BaseArea(tt.vehicle, tt.wrap)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !area.Equal(dec(tt.area)) {
				t.Errorf("area = %s, want %s", area, tt.area)
			}
			hours, err := Default().BaseHours(tt.vehicle, tt.wrap)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !hours.Equal(dec(tt.hours)) {
				t.Errorf("hours = %s, want %s", hours, tt.hours)
			}
		})
	}
}

func TestLookupRejectsUnknownKeys(t *testing.T) {
	if _, err := Default().BaseArea("tank", FullWrap); !errors.IsType(err, errors.TypeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY for unknown vehicle, got %v", err)
	}
	if _, err := Default().BaseHours(MidsizeSedan, "bumper"); !errors.IsType(err, errors.TypeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY for unknown wrap, got %v", err)
	}
}

func TestNewTableRejectsMismatchedKeys(t *testing.T) {
	area := map[Key]float64{
		{MidsizeSedan, FullWrap}: 200,
		{MidsizeSedan, Roof}:     30,
	}
	hours := map[Key]float64{
		{MidsizeSedan, FullWrap}: 16,
	}
	if _, err := NewTable(area, hours); err == nil {
		t.Fatal("expected error for area without hours")
	}

	hours[Key{MidsizeSedan, Roof}] = 2.5
	hours[Key{Coupe, Hood}] = 1.5
	if _, err := NewTable(area, hours); err == nil {
		t.Fatal("expected error for hours without area")
	}

	delete(hours, Key{Coupe, Hood})
	table, err := NewTable(area, hours)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := table.BaseArea(Coupe, Hood); !errors.IsType(err, errors.TypeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY for absent pair, got %v", err)
	}
	if got := table.Vehicles(); len(got) != 1 || got[0] != MidsizeSedan {
		t.Errorf("Vehicles() = %v", got)
	}
}

func TestNewTableRejectsNegativeValues(t *testing.T) {
	area := map[Key]float64{{Coupe, Hood}: -1}
	hours := map[Key]float64{{Coupe, Hood}: 1}
	if _, err := NewTable(area, hours); err == nil {
		t.Fatal("expected error for negative area")
	}
}

func TestFloors(t *testing.T) {
	table := Default()
	tests := []struct {
		wrap  WrapType
		lf    string
		hours string
	}{
		{FullWrap, "50", "12"},
		{PartialWrap, "25", "6"},
		{CommercialSides, "30", "8"},
		{Hood, "10", "1"},
		{DecalsBasic, "0", "0.5"},
		{DecalsComplex, "0", "1"},
	}
	for _, tt := range tests {
		if got := table.MinLinearFeet(tt.wrap); !got.Equal(dec(tt.lf)) {
			t.Errorf("MinLinearFeet(%s) = %s, want %s", tt.wrap, got, tt.lf)
		}
		if got := table.MinLaborHours(tt.wrap); !got.Equal(dec(tt.hours)) {
			t.Errorf("MinLaborHours(%s) = %s, want %s", tt.wrap, got, tt.hours)
		}
	}
}

func TestComplexitySumsAdditively(t *testing.T) {
	tests := []struct {
		name  string
		c     Complexity
		waste string
		hours string
	}{
		{"none", Complexity{}, "0", "0"},
		{"mirrors and rails", Complexity{Mirrors: true, RoofRails: true}, "0.05", "1.5"},
		{"rivets", Complexity{Rivets: true}, "0.05", "2"},
		{"all", Complexity{true, true, true, true}, "0.14", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.WastePercent(); !got.Equal(dec(tt.waste)) {
				t.Errorf("WastePercent = %s, want %s", got, tt.waste)
			}
			if got := tt.c.Hours(); !got.Equal(dec(tt.hours)) {
				t.Errorf("Hours = %s, want %s", got, tt.hours)
			}
		})
	}
}

func TestComplexitySet(t *testing.T) {
	var c Complexity
	for _, f := range ComplexityFactors() {
		if !c.Set(f) {
			t.Errorf("Set(%s) returned false", f)
		}
	}
	if len(c.Enabled()) != 4 {
		t.Errorf("expected all factors enabled, got %v", c.Enabled())
	}
	if c.Set("spoiler") {
		t.Error("Set should reject unknown factor")
	}
}

func TestRollWidth(t *testing.T) {
	if !RollWidth54.Feet().Equal(dec("4.5")) {
		t.Errorf("54\" = %s ft", RollWidth54.Feet())
	}
	if !RollWidth60.Feet().Equal(dec("5")) {
		t.Errorf("60\" = %s ft", RollWidth60.Feet())
	}
	if _, err := ParseRollWidth(48); !errors.IsType(err, errors.TypeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY for 48\", got %v", err)
	}
}

func TestParseEnums(t *testing.T) {
	if v, err := ParseVehicleCategory("cargo_van"); err != nil || v != CargoVan {
		t.Errorf("ParseVehicleCategory = %v, %v", v, err)
	}
	if _, err := ParseVehicleCategory("Cargo Van"); err == nil {
		t.Error("expected error for display name")
	}
	if w, err := ParseWrapType("decals_basic"); err != nil || !w.IsDecal() {
		t.Errorf("ParseWrapType = %v, %v", w, err)
	}
	if _, err := ParseWrapType("bumper"); err == nil {
		t.Error("expected error for unknown wrap type")
	}
}

func TestBrandHints(t *testing.T) {
	cost, err := VinylCost("3M_2080")
	if err != nil || !cost.Equal(dec("12")) {
		t.Errorf("VinylCost(3M_2080) = %s, %v", cost, err)
	}
	other, err := VinylCost(BrandOther)
	if err != nil || !other.IsZero() {
		t.Errorf("VinylCost(Other) = %s, %v", other, err)
	}
	if _, err := VinylCost("Generic"); !errors.IsType(err, errors.TypeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY, got %v", err)
	}

	pl, err := PrintLaminateCost("3M_IJ180")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pl.Print.Equal(dec("4.5")) || !pl.Lam.Equal(dec("1.75")) {
		t.Errorf("3M_IJ180 = %+v", pl)
	}
	if len(VinylBrands()) != 10 || len(PrintBrands()) != 9 {
		t.Errorf("unexpected brand counts %d/%d", len(VinylBrands()), len(PrintBrands()))
	}
}
