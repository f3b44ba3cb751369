// Package pricing provides the embedded fuel reference table used to fill
// fuel density and price from a fuel-type name.
package pricing

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

// slowLookup is the threshold above which a lookup is logged.
const slowLookup = 50 * time.Millisecond

// FuelPricer provides fuel reference lookups.
type FuelPricer interface {
	// Currency returns the currency code of the table.
	Currency() string

	// Fuel returns the entry for a fuel type.
	// Returns (fuel, true) if found, (Fuel{}, false) if not found.
	Fuel(name string) (Fuel, bool)

	// FuelTypes returns the known fuel type names, sorted.
	FuelTypes() []string
}

// Client implements FuelPricer with embedded JSON data.
type Client struct {
	currency string
	logger   zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	fuelIndex map[string]Fuel
}

// NewClient parses the embedded fuel table and returns a ready Client.
func NewClient(logger zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses embedded fuel data exactly once
func (c *Client) init() error {
	c.once.Do(func() {
		var data fuelTable
		if err := json.Unmarshal(rawFuelsJSON, &data); err != nil {
			c.err = fmt.Errorf("failed to parse fuel data: %w", err)
			return
		}

		c.currency = data.Currency
		if c.currency == "" {
			c.currency = "USD"
		}

		c.fuelIndex = make(map[string]Fuel, len(data.Fuels))
		for name, entry := range data.Fuels {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" || entry.DensityLbPerGal <= 0 {
				c.logger.Warn().
					Str("fuel_type", name).
					Float64("density", entry.DensityLbPerGal).
					Msg("skipping fuel entry with missing name or density")
				continue
			}
			c.fuelIndex[key] = Fuel{
				Name:    key,
				Density: entry.DensityLbPerGal,
				Price:   entry.PricePerGal,
				Tax:     entry.TaxPerGal,
			}
		}

		if len(c.fuelIndex) == 0 {
			c.err = fmt.Errorf("fuel data contains no usable entries")
		}
	})
	return c.err
}

// Currency returns the currency code
func (c *Client) Currency() string {
	_ = c.init() // Ensure initialization
	return c.currency
}

// Fuel returns the reference entry for a fuel type, matched case-insensitively.
func (c *Client) Fuel(name string) (Fuel, bool) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if elapsed > slowLookup {
			c.logger.Warn().
				Str("fuel_type", name).
				Dur("elapsed", elapsed).
				Msg("fuel lookup took too long")
		}
	}()

	if err := c.init(); err != nil {
		return Fuel{}, false
	}

	fuel, found := c.fuelIndex[strings.ToLower(strings.TrimSpace(name))]
	return fuel, found
}

// FuelTypes returns the known fuel types sorted by name.
func (c *Client) FuelTypes() []string {
	if err := c.init(); err != nil {
		return nil
	}
	names := make([]string, 0, len(c.fuelIndex))
	for name := range c.fuelIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Param keys of the fuel fields Resolve fills in.
const (
	KeyFuelType    = "fuel_type"
	KeyFuelDensity = "fuel_density"
	KeyFuelPrice   = "fuel_price"
	KeyFuelTax     = "fuel_tax"
)

// Resolve looks up p.FuelType in fuels and fills density, price and tax from
// the table. Fields for which explicit(key) is true keep the value in p. An
// empty fuel type leaves p unchanged.
func Resolve(fuels FuelPricer, p asset.Params, explicit func(key string) bool) (asset.Params, error) {
	if p.FuelType == "" {
		return p, nil
	}
	f, ok := fuels.Fuel(p.FuelType)
	if !ok {
		return asset.Params{}, costerr.Invalid(KeyFuelType, "unknown fuel type %q (want one of %s)",
			p.FuelType, strings.Join(fuels.FuelTypes(), ", "))
	}
	out := Apply(p, f)
	if explicit(KeyFuelDensity) {
		out.FuelDensity = p.FuelDensity
	}
	if explicit(KeyFuelPrice) {
		out.FuelPrice = p.FuelPrice
	}
	if explicit(KeyFuelTax) {
		out.FuelTax = p.FuelTax
	}
	return out, nil
}

// Apply returns a copy of p with fuel type, density, price and tax taken
// from f.
func Apply(p asset.Params, f Fuel) asset.Params {
	out := p.Clone()
	out.FuelType = f.Name
	out.FuelDensity = f.Density
	out.FuelPrice = f.Price
	out.FuelTax = f.Tax
	return out
}
