// Package report renders estimates, schedules and reference tables.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/estimate"
	"github.com/rshade/equipment-cost/internal/pricing"
	"github.com/rshade/equipment-cost/internal/utilization"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ClassTable is the utilization class listing with its mean.
type ClassTable struct {
	Classes []asset.Class `json:"classes" yaml:"classes"`
	Mean    float64       `json:"mean" yaml:"mean"`
}

// FuelTable is the fuel reference listing.
type FuelTable struct {
	Currency string         `json:"currency" yaml:"currency"`
	Fuels    []pricing.Fuel `json:"fuels" yaml:"fuels"`
}

// NewClassTable lists the default utilization classes with their mean.
func NewClassTable() (ClassTable, error) {
	model, err := utilization.New(asset.DefaultParams())
	if err != nil {
		return ClassTable{}, err
	}
	mean, err := model.MeanRate()
	if err != nil {
		return ClassTable{}, err
	}
	return ClassTable{Classes: asset.Classes(), Mean: mean}, nil
}

// NewFuelTable lists every fuel known to fuels.
func NewFuelTable(fuels pricing.FuelPricer) FuelTable {
	table := FuelTable{Currency: fuels.Currency()}
	for _, name := range fuels.FuelTypes() {
		if f, ok := fuels.Fuel(name); ok {
			table.Fuels = append(table.Fuels, f)
		}
	}
	return table
}

// Renderer writes values in one output format.
type Renderer interface {
	Report(r *estimate.Report) error
	Schedule(s depreciation.Schedule) error
	Classes(c ClassTable) error
	Fuels(f FuelTable) error
}

// Formats lists the supported formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// New returns the renderer for format. A nil writer means stdout.
func New(format string, w io.Writer) (Renderer, error) {
	if w == nil {
		w = os.Stdout
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewText(w), nil
	case FormatJSON:
		return &JSON{w: w}, nil
	case FormatYAML, "yml":
		return &YAML{w: w}, nil
	}
	return nil, costerr.Invalid("format", "unknown output format %q (want one of %s)",
		format, strings.Join(Formats(), ", "))
}

// errWrite wraps a failed write.
func errWrite(what string, err error) error {
	return fmt.Errorf("failed to write %s: %w", what, err)
}
