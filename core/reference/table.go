package reference

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"wrapquote/internal/errors"
)

// Key addresses one cell of the lookup matrix
type Key struct {
	Vehicle VehicleCategory `json:"vehicle"`
	Wrap    WrapType        `json:"wrap_type"`
}

// String returns "vehicle/wrap"
func (k Key) String() string {
	return string(k.Vehicle) + "/" + string(k.Wrap)
}

// Table is an immutable set of base areas, base hours and floors.
// The area and hours mappings always share the same key set.
type Table struct {
	area     map[Key]decimal.Decimal
	hours    map[Key]decimal.Decimal
	minLF    map[WrapType]decimal.Decimal
	minHours map[WrapType]decimal.Decimal
}

var defaultTable = mustBuildDefault()

// Default returns the built-in table
func Default() *Table {
	return defaultTable
}

func mustBuildDefault() *Table {
	area := make(map[Key]float64)
	hours := make(map[Key]float64)
	for v, r := range baseAreaRows {
		for i, w := range wrapTypes {
			area[Key{v, w}] = r[i]
		}
	}
	for v, r := range baseHoursRows {
		for i, w := range wrapTypes {
			hours[Key{v, w}] = r[i]
		}
	}
	t, err := NewTable(area, hours)
	if err != nil {
		panic(fmt.Sprintf("reference: built-in table is inconsistent: %v", err))
	}
	return t
}

// NewTable builds a table from raw area and hours cells using the standard floors.
// It fails when the two mappings do not cover the same keys.
func NewTable(area, hours map[Key]float64) (*Table, error) {
	t := &Table{
		area:     make(map[Key]decimal.Decimal, len(area)),
		hours:    make(map[Key]decimal.Decimal, len(hours)),
		minLF:    make(map[WrapType]decimal.Decimal, len(minLinearFeet)),
		minHours: make(map[WrapType]decimal.Decimal, len(minLaborHours)),
	}
	for k, v := range area {
		t.area[k] = decimal.NewFromFloat(v)
	}
	for k, v := range hours {
		t.hours[k] = decimal.NewFromFloat(v)
	}
	for w, v := range minLinearFeet {
		t.minLF[w] = decimal.NewFromFloat(v)
	}
	for w, v := range minLaborHours {
		t.minHours[w] = decimal.NewFromFloat(v)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the parallel-key invariant and value sanity
func (t *Table) Validate() error {
	for k, v := range t.area {
		if err := validKey(k); err != nil {
			return err
		}
		if _, ok := t.hours[k]; !ok {
			return errors.Newf(errors.TypeInput, "%s has an area but no labor hours", k)
		}
		if v.IsNegative() {
			return errors.Newf(errors.TypeInput, "%s has negative area %s", k, v)
		}
	}
	for k, v := range t.hours {
		if err := validKey(k); err != nil {
			return err
		}
		if _, ok := t.area[k]; !ok {
			return errors.Newf(errors.TypeInput, "%s has labor hours but no area", k)
		}
		if v.IsNegative() {
			return errors.Newf(errors.TypeInput, "%s has negative hours %s", k, v)
		}
	}
	return nil
}

func validKey(k Key) error {
	if !k.Vehicle.Valid() {
		return errors.InvalidCategory("vehicle category", string(k.Vehicle))
	}
	if !k.Wrap.Valid() {
		return errors.InvalidCategory("wrap type", string(k.Wrap))
	}
	return nil
}

func (t *Table) lookup(m map[Key]decimal.Decimal, v VehicleCategory, w WrapType) (decimal.Decimal, error) {
	k := Key{v, w}
	if err := validKey(k); err != nil {
		return decimal.Zero, err
	}
	val, ok := m[k]
	if !ok {
		return decimal.Zero, errors.InvalidCategory("vehicle/wrap pair", k.String())
	}
	return val, nil
}

// BaseArea returns the base square footage for a vehicle and wrap type
func (t *Table) BaseArea(v VehicleCategory, w WrapType) (decimal.Decimal, error) {
	return t.lookup(t.area, v, w)
}

// BaseHours returns the base labor hours for a vehicle and wrap type
func (t *Table) BaseHours(v VehicleCategory, w WrapType) (decimal.Decimal, error) {
	return t.lookup(t.hours, v, w)
}

// Has reports whether the pair is present
func (t *Table) Has(v VehicleCategory, w WrapType) bool {
	_, ok := t.area[Key{v, w}]
	return ok
}

// MinLinearFeet returns the linear-feet floor for w. Zero means no floor.
func (t *Table) MinLinearFeet(w WrapType) decimal.Decimal {
	return t.minLF[w]
}

// MinLaborHours returns the labor-hours floor for w
func (t *Table) MinLaborHours(w WrapType) decimal.Decimal {
	return t.minHours[w]
}

// Vehicles returns the categories present in the table, in display order
func (t *Table) Vehicles() []VehicleCategory {
	present := make(map[VehicleCategory]bool)
	for k := range t.area {
		present[k.Vehicle] = true
	}
	out := make([]VehicleCategory, 0, len(present))
	for _, v := range vehicleCategories {
		if present[v] {
			out = append(out, v)
		}
	}
	return out
}

// Keys returns every key in stable order (vehicle display order, then wrap order)
func (t *Table) Keys() []Key {
	order := make(map[VehicleCategory]int, len(vehicleCategories))
	for i, v := range vehicleCategories {
		order[v] = i
	}
	wrapOrder := make(map[WrapType]int, len(wrapTypes))
	for i, w := range wrapTypes {
		wrapOrder[w] = i
	}

	keys := make([]Key, 0, len(t.area))
	for k := range t.area {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Vehicle != keys[j].Vehicle {
			return order[keys[i].Vehicle] < order[keys[j].Vehicle]
		}
		return wrapOrder[keys[i].Wrap] < wrapOrder[keys[j].Wrap]
	})
	return keys
}
