// Package utilization models scheduled and productive machine time.
package utilization

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

// Model converts a work schedule and a utilization rate into productive hours.
type Model struct {
	capacityFactor float64
	hoursPerDay    float64
	daysPerWeek    float64
	weeksPerYear   float64
	classes        map[string]float64
}

// New validates p and copies the schedule and class table out of it.
func New(p asset.Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("utilization: %w", err)
	}
	classes := make(map[string]float64, len(p.UtilizationClasses))
	for k, v := range p.UtilizationClasses {
		classes[k] = v
	}
	return &Model{
		capacityFactor: p.CapacityFactor,
		hoursPerDay:    p.HoursPerDay,
		daysPerWeek:    p.DaysPerWeek,
		weeksPerYear:   p.WeeksPerYear,
		classes:        classes,
	}, nil
}

// AnnualWorkHours returns days/week * weeks/year * hours/day.
func (m *Model) AnnualWorkHours() float64 {
	return m.daysPerWeek * m.weeksPerYear * m.hoursPerDay
}

// ScheduledHours returns SH, the capacity-adjusted annual work hours.
func (m *Model) ScheduledHours() float64 {
	return m.capacityFactor * m.AnnualWorkHours()
}

// Rate resolves a selector against the model's class table.
func (m *Model) Rate(sel Selector) (float64, error) {
	switch sel.Kind {
	case KindFixed:
		if err := costerr.Fraction("utilization", sel.Value); err != nil {
			return 0, err
		}
		return sel.Value, nil
	case KindMean:
		return m.MeanRate()
	case KindClass:
		rate, ok := m.lookup(sel.Class)
		if !ok {
			return 0, costerr.Invalid("utilization", "unknown equipment class %q", sel.Class)
		}
		return rate, nil
	}
	return 0, costerr.Invalid("utilization", "unrecognized utilization selector")
}

// MeanRate returns the arithmetic mean of all class rates. Values are sorted
// before summing so the result does not depend on map iteration order.
func (m *Model) MeanRate() (float64, error) {
	if len(m.classes) == 0 {
		return 0, costerr.Invalid("utilization_classes", "no classes configured for %q", asset.SelectorMean)
	}
	values := make([]float64, 0, len(m.classes))
	for _, v := range m.classes {
		values = append(values, v)
	}
	sort.Float64s(values)
	return stat.Mean(values, nil), nil
}

// lookup matches a class name exactly first, then case-insensitively so that
// names lowercased by config loaders still resolve.
func (m *Model) lookup(name string) (float64, bool) {
	if rate, ok := m.classes[name]; ok {
		return rate, true
	}
	for _, k := range m.ClassNames() {
		if strings.EqualFold(k, name) {
			return m.classes[k], true
		}
	}
	return 0, false
}

// ClassNames returns the configured class names sorted.
func (m *Model) ClassNames() []string {
	names := make([]string, 0, len(m.classes))
	for k := range m.classes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ProductiveHours returns H = ScheduledHours * rate. Rates above 1 are
// accepted as-is.
func (m *Model) ProductiveHours(rate float64) (float64, error) {
	if err := costerr.NonNegative("utilization", rate); err != nil {
		return 0, err
	}
	return m.ScheduledHours() * rate, nil
}
