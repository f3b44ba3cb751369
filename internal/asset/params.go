package asset

// Params is the full parameter set for one piece of equipment. Engines take
// it by value and never modify it.
type Params struct {
	// Price is the purchase price P.
	Price float64 `json:"price" yaml:"price" mapstructure:"price"`

	// LifeYears is the economic life N in whole years.
	LifeYears int `json:"life_years" yaml:"life_years" mapstructure:"life_years"`

	// SalvagePct is the salvage value as a fraction of Price.
	SalvagePct float64 `json:"salvage_pct" yaml:"salvage_pct" mapstructure:"salvage_pct"`

	// SalvageValue overrides SalvagePct when set. It is rounded to whole
	// currency units.
	SalvageValue *float64 `json:"salvage_value,omitempty" yaml:"salvage_value,omitempty" mapstructure:"salvage_value"`

	// MaintenanceRatio is maintenance cost as a multiple of annual depreciation.
	MaintenanceRatio float64 `json:"maintenance_ratio" yaml:"maintenance_ratio" mapstructure:"maintenance_ratio"`

	// DBMultiplier scales the depreciation rate for the declining-balance method.
	DBMultiplier float64 `json:"db_multiplier" yaml:"db_multiplier" mapstructure:"db_multiplier"`

	// FuelType names an entry in the fuel pricing table (diesel, gasoline).
	FuelType string `json:"fuel_type,omitempty" yaml:"fuel_type,omitempty" mapstructure:"fuel_type"`

	// FuelDensity is in lb/gal.
	FuelDensity float64 `json:"fuel_density" yaml:"fuel_density" mapstructure:"fuel_density"`

	// FuelConsumption is lb of fuel per horsepower-hour.
	FuelConsumption float64 `json:"fuel_consumption" yaml:"fuel_consumption" mapstructure:"fuel_consumption"`

	FuelPrice float64 `json:"fuel_price" yaml:"fuel_price" mapstructure:"fuel_price"`
	FuelTax   float64 `json:"fuel_tax" yaml:"fuel_tax" mapstructure:"fuel_tax"`

	InterestPct  float64 `json:"interest_pct" yaml:"interest_pct" mapstructure:"interest_pct"`
	InsurancePct float64 `json:"insurance_pct" yaml:"insurance_pct" mapstructure:"insurance_pct"`
	TaxPct       float64 `json:"tax_pct" yaml:"tax_pct" mapstructure:"tax_pct"`

	Horsepower float64 `json:"horsepower" yaml:"horsepower" mapstructure:"horsepower"`

	// HPRatio is average net horsepower used over net horsepower available.
	HPRatio float64 `json:"hp_ratio" yaml:"hp_ratio" mapstructure:"hp_ratio"`

	// Wage is the hourly labor rate.
	Wage float64 `json:"wage" yaml:"wage" mapstructure:"wage"`

	// LaborUtilization scales the wage into cost per productive machine hour.
	LaborUtilization float64 `json:"labor_utilization" yaml:"labor_utilization" mapstructure:"labor_utilization"`

	TireCost        float64 `json:"tire_cost" yaml:"tire_cost" mapstructure:"tire_cost"`
	TireRetreadCost float64 `json:"tire_retread_cost" yaml:"tire_retread_cost" mapstructure:"tire_retread_cost"`
	TireLifeHours   float64 `json:"tire_life_hours" yaml:"tire_life_hours" mapstructure:"tire_life_hours"`
	TireMarkup      float64 `json:"tire_markup" yaml:"tire_markup" mapstructure:"tire_markup"`

	// OilConsumption is lb of engine oil consumed between changes per hp-hour.
	OilConsumption float64 `json:"oil_consumption" yaml:"oil_consumption" mapstructure:"oil_consumption"`

	// OilWeight is in lb/gal.
	OilWeight float64 `json:"oil_weight" yaml:"oil_weight" mapstructure:"oil_weight"`

	// OilPrice is per gallon.
	OilPrice float64 `json:"oil_price" yaml:"oil_price" mapstructure:"oil_price"`

	// LubeFraction is other lubricants as a fraction of engine oil cost.
	LubeFraction float64 `json:"lube_fraction" yaml:"lube_fraction" mapstructure:"lube_fraction"`

	// CrankcaseCapacity is in gallons.
	CrankcaseCapacity float64 `json:"crankcase_capacity" yaml:"crankcase_capacity" mapstructure:"crankcase_capacity"`

	// OilChangeInterval is hours between crankcase oil changes.
	OilChangeInterval float64 `json:"oil_change_interval" yaml:"oil_change_interval" mapstructure:"oil_change_interval"`

	CapacityFactor float64 `json:"capacity_factor" yaml:"capacity_factor" mapstructure:"capacity_factor"`
	HoursPerDay    float64 `json:"hours_per_day" yaml:"hours_per_day" mapstructure:"hours_per_day"`
	DaysPerWeek    float64 `json:"days_per_week" yaml:"days_per_week" mapstructure:"days_per_week"`
	WeeksPerYear   float64 `json:"weeks_per_year" yaml:"weeks_per_year" mapstructure:"weeks_per_year"`

	// UtilizationClasses maps equipment class names to historical utilization.
	UtilizationClasses map[string]float64 `json:"utilization_classes" yaml:"utilization_classes" mapstructure:"utilization_classes"`

	// Utilization selects the rate: a fraction such as "0.73", "mean", or a
	// class name.
	Utilization string `json:"utilization" yaml:"utilization" mapstructure:"utilization"`
}

// DefaultParams returns the reference parameter set. Each call returns a
// fresh copy, including its own class map.
func DefaultParams() Params {
	return Params{
		Price:              DefaultPrice,
		LifeYears:          DefaultLifeYears,
		SalvagePct:         DefaultSalvagePct,
		MaintenanceRatio:   DefaultMaintenanceRatio,
		DBMultiplier:       DefaultDBMultiplier,
		FuelType:           FuelDiesel,
		FuelDensity:        DieselDensity,
		FuelConsumption:    DefaultFuelConsumption,
		FuelPrice:          DefaultFuelPrice,
		FuelTax:            DefaultFuelTax,
		InterestPct:        DefaultInterestPct,
		InsurancePct:       DefaultInsurancePct,
		TaxPct:             DefaultTaxPct,
		Horsepower:         DefaultHorsepower,
		HPRatio:            DefaultHPRatio,
		Wage:               DefaultWage,
		LaborUtilization:   DefaultLaborUtilization,
		TireCost:           DefaultTireCost,
		TireRetreadCost:    DefaultTireRetreadCost,
		TireLifeHours:      DefaultTireLifeHours,
		TireMarkup:         DefaultTireMarkup,
		OilConsumption:     DefaultOilConsumption,
		OilWeight:          DefaultOilWeight,
		OilPrice:           DefaultOilPrice,
		LubeFraction:       DefaultLubeFraction,
		CrankcaseCapacity:  DefaultCrankcaseCapacity,
		OilChangeInterval:  DefaultOilChangeInterval,
		CapacityFactor:     DefaultCapacityFactor,
		HoursPerDay:        DefaultHoursPerDay,
		DaysPerWeek:        DefaultDaysPerWeek,
		WeeksPerYear:       DefaultWeeksPerYear,
		UtilizationClasses: DefaultClasses(),
		Utilization:        SelectorMean,
	}
}

// Clone returns a deep copy so callers can derive variants without sharing
// the class map or the salvage override.
func (p Params) Clone() Params {
	out := p
	if p.SalvageValue != nil {
		v := *p.SalvageValue
		out.SalvageValue = &v
	}
	if p.UtilizationClasses != nil {
		out.UtilizationClasses = make(map[string]float64, len(p.UtilizationClasses))
		for k, v := range p.UtilizationClasses {
			out.UtilizationClasses[k] = v
		}
	}
	return out
}

// WithSalvageValue returns a copy of p with an explicit salvage value.
func (p Params) WithSalvageValue(v float64) Params {
	out := p.Clone()
	out.SalvageValue = &v
	return out
}
