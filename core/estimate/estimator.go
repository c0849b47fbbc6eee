// Package estimate turns a vehicle and wrap type into material and labor quantities.
// Both estimators are pure: they read the reference table and their input only.
package estimate

import "wrapquote/core/reference"

// Estimator runs material and labor estimates against one reference table
type Estimator struct {
	table *reference.Table
}

// New creates an estimator over t. A nil table means the built-in one.
func New(t *reference.Table) *Estimator {
	if t == nil {
		t = reference.Default()
	}
	return &Estimator{table: t}
}

var defaultEstimator = New(nil)

// Material estimates material with the built-in table
func Material(in MaterialInput) (*MaterialResult, error) {
	return defaultEstimator.Material(in)
}

// Labor estimates labor with the built-in table
func Labor(in LaborInput) (*LaborResult, error) {
	return defaultEstimator.Labor(in)
}
