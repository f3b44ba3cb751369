// Package carbon estimates CO2 emitted by burning machine fuel.
package carbon

const (
	// DefaultFuel is used when a parameter set names no fuel type.
	DefaultFuel = "diesel"

	// KgPerMetricTon converts kilograms to metric tons.
	KgPerMetricTon = 1000.0
)
