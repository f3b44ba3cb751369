// Package operating computes hourly fuel, oil, lubricant and tire costs from
// consumption rates.
package operating

import (
	"fmt"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

// Engine evaluates operating-cost formulas over one parameter set.
type Engine struct {
	p asset.Params
}

// New validates p, including every divisor the formulas use.
func New(p asset.Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("operating: %w", err)
	}
	divisors := []struct {
		field string
		value float64
	}{
		{"fuel_density", p.FuelDensity},
		{"oil_weight", p.OilWeight},
		{"oil_change_interval", p.OilChangeInterval},
		{"tire_life_hours", p.TireLifeHours},
	}
	for _, d := range divisors {
		if err := costerr.Positive(d.field, d.value); err != nil {
			return nil, fmt.Errorf("operating: %w", err)
		}
	}
	return &Engine{p: p}, nil
}

// FuelConsumptionRate returns gallons per hour per horsepower:
// (lb per hp-hr * hpRatio) / fuel density.
func (e *Engine) FuelConsumptionRate() float64 {
	return (e.p.FuelConsumption * e.p.HPRatio) / e.p.FuelDensity
}

// HourlyFuelGallons returns fuel burned per machine hour.
func (e *Engine) HourlyFuelGallons() float64 {
	return e.FuelConsumptionRate() * e.p.Horsepower
}

// HourlyFuelCost returns FuelConsumptionRate * hp * (price + tax).
func (e *Engine) HourlyFuelCost() float64 {
	return e.FuelConsumptionRate() * e.p.Horsepower * (e.p.FuelPrice + e.p.FuelTax)
}

// EngineOilConsumption returns Q in gallons per hour: oil burned between
// changes plus the crankcase volume replaced at each change.
func (e *Engine) EngineOilConsumption() float64 {
	return e.p.HPRatio*((e.p.HPRatio*e.p.OilConsumption)/e.p.OilWeight) +
		(e.p.CrankcaseCapacity / e.p.OilChangeInterval)
}

// HourlyOilCost returns Q * oil price.
func (e *Engine) HourlyOilCost() float64 {
	return e.EngineOilConsumption() * e.p.OilPrice
}

// HourlyLubeCost returns other lubricants as a fraction of engine oil cost.
func (e *Engine) HourlyLubeCost() float64 {
	return e.HourlyOilCost() * e.p.LubeFraction
}

// HourlyOilLubeCost returns engine oil plus other lubricants.
func (e *Engine) HourlyOilLubeCost() float64 {
	return e.HourlyOilCost() + e.HourlyLubeCost()
}

// HourlyTireCost returns ((1 + markup)(tire + retread)) / tire life.
func (e *Engine) HourlyTireCost() float64 {
	return ((1 + e.p.TireMarkup) * (e.p.TireCost + e.p.TireRetreadCost)) / e.p.TireLifeHours
}

// Costs is the hourly operating cost set before maintenance.
type Costs struct {
	Fuel    float64 `json:"fuel" yaml:"fuel"`
	Oil     float64 `json:"oil" yaml:"oil"`
	Lube    float64 `json:"lube" yaml:"lube"`
	OilLube float64 `json:"oil_lube" yaml:"oil_lube"`
	Tires   float64 `json:"tires" yaml:"tires"`
}

// Hourly evaluates every hourly component at once.
func (e *Engine) Hourly() (Costs, error) {
	c := Costs{
		Fuel:  e.HourlyFuelCost(),
		Oil:   e.HourlyOilCost(),
		Lube:  e.HourlyLubeCost(),
		Tires: e.HourlyTireCost(),
	}
	c.OilLube = c.Oil + c.Lube
	if _, err := costerr.Finite("operating_cost", c.Fuel+c.OilLube+c.Tires); err != nil {
		return Costs{}, err
	}
	return c, nil
}
