// Package asset holds the immutable parameter set that every cost engine reads.
package asset

// Reference values for a forestry machine, taken from the Miyata (1980)
// machine-rate worksheet.
const (
	// DefaultPrice is the initial investment in currency units.
	DefaultPrice = 85000.00

	// DefaultLifeYears is the economic life of the equipment.
	DefaultLifeYears = 5

	// DefaultSalvagePct is the fraction of the price recovered at end of life.
	DefaultSalvagePct = 0.2

	// DefaultMaintenanceRatio is maintenance and repair as a multiple of
	// annual depreciation.
	DefaultMaintenanceRatio = 1.1

	// DefaultDBMultiplier is the declining-balance rate multiplier (double
	// declining balance).
	DefaultDBMultiplier = 2.0

	// DieselDensity is the weight of diesel fuel in lb/gal.
	DieselDensity = 7.08

	// GasolineDensity is the weight of gasoline in lb/gal.
	GasolineDensity = 6.01

	// DefaultFuelConsumption is fuel burned per horsepower-hour in lb (FAO 1976).
	DefaultFuelConsumption = 0.4

	DefaultFuelPrice = 2.614
	DefaultFuelTax   = 0.2429

	DefaultInterestPct  = 0.12
	DefaultInsurancePct = 0.03
	DefaultTaxPct       = 0.03

	DefaultHorsepower = 150.0

	// DefaultHPRatio is average net horsepower used over net horsepower available.
	DefaultHPRatio = 0.65

	// DefaultWage is the hourly labor rate.
	// Source: BLS OES 45-4029, logging equipment operators.
	DefaultWage = 15.82

	// DefaultLaborUtilization is the share of paid labor hours that are productive.
	DefaultLaborUtilization = 0.9

	DefaultTireCost        = 1000.00
	DefaultTireRetreadCost = 500.00
	DefaultTireLifeHours   = 3000.0
	DefaultTireMarkup      = 0.15

	// DefaultOilConsumption is engine oil consumed between changes in lb per hp-hour.
	DefaultOilConsumption = 0.006

	// DefaultOilWeight is engine oil weight in lb/gal.
	DefaultOilWeight = 7.4

	// DefaultOilPrice is engine oil cost per gallon.
	DefaultOilPrice = 4.00

	// DefaultLubeFraction is other lubricants as a fraction of engine oil cost.
	DefaultLubeFraction = 0.5

	// DefaultCrankcaseCapacity is in gallons.
	DefaultCrankcaseCapacity = 5.0

	// DefaultOilChangeInterval is hours between crankcase oil changes.
	DefaultOilChangeInterval = 90.0

	DefaultCapacityFactor = 0.9
	DefaultHoursPerDay    = 8.0
	DefaultDaysPerWeek    = 5.0
	DefaultWeeksPerYear   = 52.0

	// SelectorMean selects the arithmetic mean of all utilization classes.
	SelectorMean = "mean"

	FuelDiesel   = "diesel"
	FuelGasoline = "gasoline"
)
