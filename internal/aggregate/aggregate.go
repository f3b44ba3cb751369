// Package aggregate combines depreciation, operating and labor figures into
// fixed cost, operating cost and cost per productive machine hour (PMH).
package aggregate

import (
	"github.com/rshade/equipment-cost/internal/costerr"
)

// Units for Component values.
const (
	UnitPerYear = "per_year"
	UnitPerHour = "per_hour"
)

// Component is one named line of a breakdown.
type Component struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// FixedCost itemizes ownership costs.
type FixedCost struct {
	AnnualDepreciation     float64 `json:"annual_depreciation" yaml:"annual_depreciation"`
	AverageInvestment      float64 `json:"average_investment" yaml:"average_investment"`
	InterestInsuranceTaxes float64 `json:"interest_insurance_taxes" yaml:"interest_insurance_taxes"`
	Annual                 float64 `json:"annual" yaml:"annual"`
	Hourly                 float64 `json:"hourly" yaml:"hourly"`
}

// Components lists the breakdown in display order.
func (f FixedCost) Components() []Component {
	return []Component{
		{Name: "Depreciation (annual)", Value: f.AnnualDepreciation, Unit: UnitPerYear},
		{Name: "Average value of yearly investment", Value: f.AverageInvestment, Unit: UnitPerYear},
		{Name: "Interest, insurance and taxes", Value: f.InterestInsuranceTaxes, Unit: UnitPerYear},
		{Name: "Fixed annual costs", Value: f.Annual, Unit: UnitPerYear},
		{Name: "Fixed cost per H", Value: f.Hourly, Unit: UnitPerHour},
	}
}

// OperatingCost itemizes hourly running costs.
type OperatingCost struct {
	Maintenance float64 `json:"maintenance" yaml:"maintenance"`
	Fuel        float64 `json:"fuel" yaml:"fuel"`
	OilLube     float64 `json:"oil_lube" yaml:"oil_lube"`
	Tires       float64 `json:"tires" yaml:"tires"`
	Total       float64 `json:"total" yaml:"total"`
}

// Components lists the breakdown in display order.
func (o OperatingCost) Components() []Component {
	return []Component{
		{Name: "Hourly maintenance and repair", Value: o.Maintenance, Unit: UnitPerHour},
		{Name: "Fuel", Value: o.Fuel, Unit: UnitPerHour},
		{Name: "Oil & lubricants", Value: o.OilLube, Unit: UnitPerHour},
		{Name: "Tires", Value: o.Tires, Unit: UnitPerHour},
		{Name: "Operating cost", Value: o.Total, Unit: UnitPerHour},
	}
}

// Fixed returns the fixed-cost breakdown. Annual cost is depreciation plus
// interest, insurance and taxes; hourly divides it by productive hours.
func Fixed(annualDep, avi, iit, productiveHours float64) (FixedCost, error) {
	if err := costerr.Positive("productive_hours", productiveHours); err != nil {
		return FixedCost{}, err
	}
	annual := annualDep + iit
	hourly, err := costerr.Finite("fixed_hourly", annual/productiveHours)
	if err != nil {
		return FixedCost{}, err
	}
	return FixedCost{
		AnnualDepreciation:     annualDep,
		AverageInvestment:      avi,
		InterestInsuranceTaxes: iit,
		Annual:                 annual,
		Hourly:                 hourly,
	}, nil
}

// Operating returns the hourly operating-cost breakdown. maintAnnual is a
// yearly figure and is spread over productive hours; the rest are hourly.
func Operating(fuel, oilLube, tires, maintAnnual, productiveHours float64) (OperatingCost, error) {
	if err := costerr.Positive("productive_hours", productiveHours); err != nil {
		return OperatingCost{}, err
	}
	hMaint := maintAnnual / productiveHours
	total, err := costerr.Finite("operating_total", fuel+hMaint+oilLube+tires)
	if err != nil {
		return OperatingCost{}, err
	}
	return OperatingCost{
		Maintenance: hMaint,
		Fuel:        fuel,
		OilLube:     oilLube,
		Tires:       tires,
		Total:       total,
	}, nil
}

// MachineCostPerHour returns fixed plus operating cost per hour.
func MachineCostPerHour(fixed, operating float64) float64 {
	return fixed + operating
}

// CostPerPMH adds labor to the machine rate: machine + laborRate * laborUtilization.
func CostPerPMH(machine, laborRate, laborUtilization float64) float64 {
	return machine + laborRate*laborUtilization
}
