// Package depreciation computes salvage value, average yearly investment and
// depreciation schedules for an asset.
package depreciation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

// Engine evaluates depreciation formulas over one parameter set.
type Engine struct {
	p       asset.Params
	salvage float64
}

// New validates p and returns an Engine for it.
func New(p asset.Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("depreciation: %w", err)
	}
	return &Engine{p: p, salvage: salvageValue(p)}, nil
}

// salvageValue rounds an explicit override to whole currency units
// (half away from zero) or falls back to SalvagePct * Price.
func salvageValue(p asset.Params) float64 {
	if p.SalvageValue != nil {
		return decimal.NewFromFloat(*p.SalvageValue).Round(0).InexactFloat64()
	}
	return p.SalvagePct * p.Price
}

// ParseSalvage interprets a user-supplied salvage value. Text that is not a
// finite number fails with InvalidInput; there is no silent fallback to the
// percentage-based default.
func ParseSalvage(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, costerr.Invalid("salvage_value", "salvage value can't be %q", s)
	}
	if d.IsNegative() {
		return 0, costerr.Invalid("salvage_value", "must not be negative, got %s", d.String())
	}
	return d.InexactFloat64(), nil
}

// SalvageValue returns S.
func (e *Engine) SalvageValue() float64 {
	return e.salvage
}

// AverageYearlyInvestment returns AVI = ((P - S)(N + 1)) / 2N + S.
func (e *Engine) AverageYearlyInvestment() float64 {
	n := float64(e.p.LifeYears)
	return ((e.p.Price-e.salvage)*(n+1))/(2*n) + e.salvage
}

// Rate returns the depreciation rate 1/N.
func (e *Engine) Rate() float64 {
	return 1.0 / float64(e.p.LifeYears)
}

// StraightLine returns the constant annual depreciation (P - S) / N.
func (e *Engine) StraightLine() float64 {
	return (e.p.Price - e.salvage) / float64(e.p.LifeYears)
}

// InterestInsuranceTaxes returns the flat (non-amortized) annual charge
// (interest + insurance + taxes) * AVI.
func (e *Engine) InterestInsuranceTaxes() float64 {
	return (e.p.InterestPct + e.p.InsurancePct + e.p.TaxPct) * e.AverageYearlyInvestment()
}
