// Package maintenance estimates maintenance and repair cost as a ratio of
// annual depreciation.
package maintenance

import (
	"github.com/rshade/equipment-cost/internal/costerr"
)

// Annual returns the yearly maintenance and repair cost, annualDep * ratio.
func Annual(annualDep, ratio float64) (float64, error) {
	if err := costerr.NonNegative("annual_depreciation", annualDep); err != nil {
		return 0, err
	}
	if err := costerr.NonNegative("maintenance_ratio", ratio); err != nil {
		return 0, err
	}
	return annualDep * ratio, nil
}

// AnnualMaintenanceCost returns maintenance per productive hour,
// (annualDep * ratio) / productiveHours.
func AnnualMaintenanceCost(annualDep, productiveHours, ratio float64) (float64, error) {
	if err := costerr.Positive("productive_hours", productiveHours); err != nil {
		return 0, err
	}
	annual, err := Annual(annualDep, ratio)
	if err != nil {
		return 0, err
	}
	return costerr.Finite("maintenance_hourly", annual/productiveHours)
}
