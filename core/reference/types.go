// Package reference holds the static lookup data behind every quote:
// base areas and labor hours per vehicle and wrap type, minimum floors,
// complexity deltas, roll widths and material brand cost hints.
//
// Everything here is built once at package init and never mutated,
// so it is safe to read from any number of goroutines.
package reference

import (
	"strconv"

	"github.com/shopspring/decimal"

	"wrapquote/internal/errors"
)

// VehicleCategory identifies a vehicle size/class
type VehicleCategory string

const (
	CompactSedan    VehicleCategory = "compact_sedan"
	MidsizeSedan    VehicleCategory = "midsize_sedan"
	FullsizeSedan   VehicleCategory = "fullsize_sedan"
	CompactSUV      VehicleCategory = "compact_suv"
	MidsizeSUV      VehicleCategory = "midsize_suv"
	FullsizeSUV     VehicleCategory = "fullsize_suv"
	PickupShortBed  VehicleCategory = "pickup_short_bed"
	PickupLongBed   VehicleCategory = "pickup_long_bed"
	CargoVan        VehicleCategory = "cargo_van"
	SprinterVan     VehicleCategory = "sprinter_van"
	Coupe           VehicleCategory = "coupe"
	Hatchback       VehicleCategory = "hatchback"
	Motorcycle      VehicleCategory = "motorcycle"
	CommercialVan   VehicleCategory = "commercial_van"
	CommercialTruck VehicleCategory = "commercial_truck"
	BoxTruckSmall   VehicleCategory = "box_truck_small"
	BoxTruckLarge   VehicleCategory = "box_truck_large"
	Semi            VehicleCategory = "semi"
)

var vehicleCategories = []VehicleCategory{
	CompactSedan, MidsizeSedan, FullsizeSedan,
	CompactSUV, MidsizeSUV, FullsizeSUV,
	PickupShortBed, PickupLongBed,
	CargoVan, SprinterVan,
	Coupe, Hatchback, Motorcycle,
	CommercialVan, CommercialTruck,
	BoxTruckSmall, BoxTruckLarge, Semi,
}

// VehicleCategories returns every category in display order
func VehicleCategories() []VehicleCategory {
	out := make([]VehicleCategory, len(vehicleCategories))
	copy(out, vehicleCategories)
	return out
}

// Valid reports whether v is a known category
func (v VehicleCategory) Valid() bool {
	for _, c := range vehicleCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ParseVehicleCategory validates a category string
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	v := VehicleCategory(s)
	if !v.Valid() {
		return "", errors.InvalidCategory("vehicle category", s)
	}
	return v, nil
}

// WrapType identifies the work scope on the vehicle
type WrapType string

const (
	FullWrap        WrapType = "full_wrap"
	PartialWrap     WrapType = "partial_wrap"
	CommercialSides WrapType = "commercial_sides"
	Hood            WrapType = "hood"
	Roof            WrapType = "roof"
	Trunk           WrapType = "trunk"
	DecalsBasic     WrapType = "decals_basic"
	DecalsComplex   WrapType = "decals_complex"
)

var wrapTypes = []WrapType{
	FullWrap, PartialWrap, CommercialSides,
	Hood, Roof, Trunk,
	DecalsBasic, DecalsComplex,
}

// WrapTypes returns every wrap type in display order
func WrapTypes() []WrapType {
	out := make([]WrapType, len(wrapTypes))
	copy(out, wrapTypes)
	return out
}

// Valid reports whether w is a known wrap type
func (w WrapType) Valid() bool {
	for _, t := range wrapTypes {
		if t == w {
			return true
		}
	}
	return false
}

// IsDecal reports whether the quantity for w is entered by the caller
// rather than floored.
func (w WrapType) IsDecal() bool {
	return w == DecalsBasic || w == DecalsComplex
}

// ParseWrapType validates a wrap type string
func ParseWrapType(s string) (WrapType, error) {
	w := WrapType(s)
	if !w.Valid() {
		return "", errors.InvalidCategory("wrap type", s)
	}
	return w, nil
}

// RollWidth is a standard vinyl roll width in inches
type RollWidth int

const (
	RollWidth54 RollWidth = 54
	RollWidth60 RollWidth = 60
)

// RollWidths returns the supported roll widths
func RollWidths() []RollWidth {
	return []RollWidth{RollWidth54, RollWidth60}
}

// Valid reports whether r is a stocked width
func (r RollWidth) Valid() bool {
	return r == RollWidth54 || r == RollWidth60
}

// Feet converts the width to feet
func (r RollWidth) Feet() decimal.Decimal {
	return decimal.NewFromInt(int64(r)).Div(decimal.NewFromInt(12))
}

// String returns the width with an inch mark
func (r RollWidth) String() string {
	return strconv.Itoa(int(r)) + `"`
}

// ParseRollWidth validates a width in inches
func ParseRollWidth(inches int) (RollWidth, error) {
	r := RollWidth(inches)
	if !r.Valid() {
		return 0, errors.InvalidCategory("roll width", strconv.Itoa(inches))
	}
	return r, nil
}
