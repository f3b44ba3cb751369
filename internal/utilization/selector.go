package utilization

import (
	"strconv"
	"strings"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

// Kind says how a Selector picks a rate.
type Kind int

const (
	KindFixed Kind = iota + 1
	KindMean
	KindClass
)

// Selector picks a utilization rate: a fixed fraction, the mean over all
// classes, or a named class.
type Selector struct {
	Kind  Kind
	Value float64
	Class string
}

// Fixed selects an explicit fraction.
func Fixed(v float64) Selector { return Selector{Kind: KindFixed, Value: v} }

// Mean selects the mean over all classes.
func Mean() Selector { return Selector{Kind: KindMean} }

// Class selects a named class.
func Class(name string) Selector { return Selector{Kind: KindClass, Class: name} }

// ParseSelector reads a selector from text. Numbers become Fixed, "mean" or
// an empty string becomes Mean, anything else is treated as a class name and
// checked when the rate is resolved.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, asset.SelectorMean) {
		return Mean(), nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if err := costerr.Fraction("utilization", v); err != nil {
			return Selector{}, err
		}
		return Fixed(v), nil
	}
	return Class(s), nil
}

// String renders the selector the way ParseSelector reads it.
func (s Selector) String() string {
	switch s.Kind {
	case KindFixed:
		return strconv.FormatFloat(s.Value, 'f', -1, 64)
	case KindMean:
		return asset.SelectorMean
	case KindClass:
		return s.Class
	}
	return ""
}
