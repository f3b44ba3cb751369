package asset

import (
	"math"

	"github.com/rshade/equipment-cost/internal/costerr"
)

// Validate checks the invariants shared by all engines. Formula-specific
// divisors are checked again by the engine that divides by them.
func (p Params) Validate() error {
	if err := costerr.Positive("price", p.Price); err != nil {
		return err
	}
	if p.LifeYears <= 0 {
		return costerr.Invalid("life_years", "must be greater than zero, got %d", p.LifeYears)
	}
	if p.SalvageValue != nil {
		if err := costerr.NonNegative("salvage_value", *p.SalvageValue); err != nil {
			return err
		}
	} else if err := costerr.Fraction("salvage_pct", p.SalvagePct); err != nil {
		return err
	}

	checks := []struct {
		field string
		check func(string, float64) error
		value float64
	}{
		{"maintenance_ratio", costerr.NonNegative, p.MaintenanceRatio},
		{"db_multiplier", costerr.NonNegative, p.DBMultiplier},
		{"fuel_consumption", costerr.NonNegative, p.FuelConsumption},
		{"fuel_price", costerr.NonNegative, p.FuelPrice},
		{"fuel_tax", costerr.NonNegative, p.FuelTax},
		{"interest_pct", costerr.Fraction, p.InterestPct},
		{"insurance_pct", costerr.Fraction, p.InsurancePct},
		{"tax_pct", costerr.Fraction, p.TaxPct},
		{"horsepower", costerr.NonNegative, p.Horsepower},
		{"hp_ratio", costerr.Fraction, p.HPRatio},
		{"wage", costerr.NonNegative, p.Wage},
		{"labor_utilization", costerr.NonNegative, p.LaborUtilization},
		{"tire_cost", costerr.NonNegative, p.TireCost},
		{"tire_retread_cost", costerr.NonNegative, p.TireRetreadCost},
		{"tire_markup", costerr.NonNegative, p.TireMarkup},
		{"oil_consumption", costerr.NonNegative, p.OilConsumption},
		{"oil_price", costerr.NonNegative, p.OilPrice},
		{"lube_fraction", costerr.Fraction, p.LubeFraction},
		{"crankcase_capacity", costerr.NonNegative, p.CrankcaseCapacity},
		{"capacity_factor", costerr.NonNegative, p.CapacityFactor},
		{"hours_per_day", costerr.NonNegative, p.HoursPerDay},
		{"days_per_week", costerr.NonNegative, p.DaysPerWeek},
		{"weeks_per_year", costerr.NonNegative, p.WeeksPerYear},
	}
	for _, c := range checks {
		if err := c.check(c.field, c.value); err != nil {
			return err
		}
	}

	for name, rate := range p.UtilizationClasses {
		if math.IsNaN(rate) || rate < 0 || rate > 1 {
			return costerr.Invalid("utilization_classes", "class %q has rate %v outside [0, 1]", name, rate)
		}
	}
	return nil
}
