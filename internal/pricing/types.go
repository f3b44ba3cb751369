package pricing

// fuelTable mirrors data/fuels.json.
type fuelTable struct {
	Currency string               `json:"currency"`
	Fuels    map[string]fuelEntry `json:"fuels"`
}

// fuelEntry is one fuel as stored in the embedded table.
type fuelEntry struct {
	DensityLbPerGal float64 `json:"density_lb_per_gal"`
	PricePerGal     float64 `json:"price_per_gal"`
	TaxPerGal       float64 `json:"tax_per_gal"`
}

// Fuel is the distilled reference data for one fuel type.
type Fuel struct {
	Name    string  `json:"name" yaml:"name"`
	Density float64 `json:"density_lb_per_gal" yaml:"density_lb_per_gal"`
	Price   float64 `json:"price_per_gal" yaml:"price_per_gal"`
	Tax     float64 `json:"tax_per_gal" yaml:"tax_per_gal"`
}
