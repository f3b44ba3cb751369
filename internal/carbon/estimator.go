package carbon

import (
	"strings"

	"github.com/rshade/equipment-cost/internal/costerr"
)

// Emissions is the CO2 output of one machine.
type Emissions struct {
	Fuel          string  `json:"fuel" yaml:"fuel"`
	KgPerGallon   float64 `json:"kg_co2_per_gal" yaml:"kg_co2_per_gal"`
	KgPerHour     float64 `json:"kg_co2_per_hour" yaml:"kg_co2_per_hour"`
	TonnesPerYear float64 `json:"t_co2_per_year" yaml:"t_co2_per_year"`
}

// Estimate returns emissions for a machine burning gallonsPerHour of fuel
// over productiveHours a year. An empty fuel means DefaultFuel.
func Estimate(fuel string, gallonsPerHour, productiveHours float64) (Emissions, error) {
	fuel = normalize(fuel)
	factor, ok := EmissionFactor(fuel)
	if !ok {
		return Emissions{}, costerr.Invalid("fuel_type", "no emission factor for fuel %q (want one of %s)",
			fuel, strings.Join(Fuels(), ", "))
	}
	if err := costerr.NonNegative("fuel_gallons_per_hour", gallonsPerHour); err != nil {
		return Emissions{}, err
	}
	if err := costerr.NonNegative("productive_hours", productiveHours); err != nil {
		return Emissions{}, err
	}

	perHour := gallonsPerHour * factor
	perYear, err := costerr.Finite("t_co2_per_year", perHour*productiveHours/KgPerMetricTon)
	if err != nil {
		return Emissions{}, err
	}
	return Emissions{
		Fuel:          fuel,
		KgPerGallon:   factor,
		KgPerHour:     perHour,
		TonnesPerYear: perYear,
	}, nil
}

// Supported reports whether fuel has an emission factor. An empty fuel means
// DefaultFuel.
func Supported(fuel string) bool {
	_, ok := EmissionFactor(normalize(fuel))
	return ok
}

func normalize(fuel string) string {
	fuel = strings.ToLower(strings.TrimSpace(fuel))
	if fuel == "" {
		return DefaultFuel
	}
	return fuel
}
