package depreciation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

func newEngine(t *testing.T, p asset.Params) *Engine {
	t.Helper()
	e, err := New(p)
	require.NoError(t, err)
	return e
}

func TestEngine_ReferenceValues(t *testing.T) {
	e := newEngine(t, asset.DefaultParams())

	assert.InDelta(t, 17000.0, e.SalvageValue(), 1e-9)
	assert.InDelta(t, 57800.0, e.AverageYearlyInvestment(), 1e-9)
	assert.InDelta(t, 13600.0, e.StraightLine(), 1e-9)
	assert.InDelta(t, 0.2, e.Rate(), 1e-12)
	assert.InDelta(t, 0.18*57800.0, e.InterestInsuranceTaxes(), 1e-9)
}

func TestNew_RejectsNonPositiveLife(t *testing.T) {
	p := asset.DefaultParams()
	p.LifeYears = 0

	_, err := New(p)
	assert.ErrorIs(t, err, costerr.ErrInvalidInput)
}

func TestSalvageValue_Explicit(t *testing.T) {
	tests := []struct {
		name     string
		explicit float64
		want     float64
	}{
		{"whole number", 12000, 12000},
		{"rounds down", 12000.49, 12000},
		{"rounds half away from zero", 12000.5, 12001},
		{"rounds up", 9999.7, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, asset.DefaultParams().WithSalvageValue(tt.explicit))
			assert.Equal(t, tt.want, e.SalvageValue())
		})
	}
}

func TestParseSalvage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "17000", 17000, false},
		{"decimal with spaces", " 15250.75 ", 15250.75, false},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
		{"NaN", "NaN", 0, true},
		{"negative", "-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSalvage(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, costerr.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageYearlyInvestment_SingleYear(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		salvage float64
	}{
		{"reference", 85000, 17000},
		{"no salvage", 40000, 0},
		{"full salvage", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := asset.DefaultParams().WithSalvageValue(tt.salvage)
			p.Price = tt.price
			p.LifeYears = 1

			e := newEngine(t, p)
			assert.InDelta(t, (tt.price+tt.salvage)/2, e.AverageYearlyInvestment(), 1e-9)
		})
	}
}

func TestStraightLine_ConstantAcrossLives(t *testing.T) {
	for _, life := range []int{1, 2, 5, 10, 25} {
		p := asset.DefaultParams()
		p.LifeYears = life
		e := newEngine(t, p)

		want := (p.Price - e.SalvageValue()) / float64(life)
		assert.InDelta(t, want, e.StraightLine(), 1e-9)

		sched := e.StraightLineSchedule()
		require.Len(t, sched.Entries, life+1)
		for _, entry := range sched.Entries[1:] {
			assert.InDelta(t, want, entry.Depreciation, 1e-9)
		}
		assert.InDelta(t, e.SalvageValue(), sched.Final().BookValue, 1e-6)
	}
}
