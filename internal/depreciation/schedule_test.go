package depreciation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{"", StraightLine, false},
		{"sl", StraightLine, false},
		{"Declining-Balance", DecliningBalance, false},
		{"db", DecliningBalance, false},
		{"soyd", SumOfYearsDigits, false},
		{"sum-of-years-digits", SumOfYearsDigits, false},
		{"annuity", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, costerr.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecliningBalance_Reference(t *testing.T) {
	e := newEngine(t, asset.DefaultParams())
	sched := e.DecliningBalance()

	want := []Entry{
		{Year: 0, Depreciation: 0, BookValue: 85000},
		{Year: 1, Depreciation: 34000, BookValue: 51000},
		{Year: 2, Depreciation: 20400, BookValue: 30600},
		{Year: 3, Depreciation: 12240, BookValue: 18360},
		{Year: 4, Depreciation: 7344, BookValue: 11016},
		{Year: 5, Depreciation: 4406.4, BookValue: 6609.6},
	}
	require.Len(t, sched.Entries, len(want))
	for i, w := range want {
		assert.Equal(t, w.Year, sched.Entries[i].Year)
		assert.InDelta(t, w.Depreciation, sched.Entries[i].Depreciation, 1e-6)
		assert.InDelta(t, w.BookValue, sched.Entries[i].BookValue, 1e-6)
	}

	// Double declining balance over five years ends below salvage; not floored.
	assert.Less(t, sched.Final().BookValue, sched.Salvage)
}

func TestDecliningBalance_NonIncreasing(t *testing.T) {
	for _, mult := range []float64{0, 0.5, 1.5, 2, 3} {
		p := asset.DefaultParams()
		p.DBMultiplier = mult
		p.LifeYears = 8
		sched := newEngine(t, p).DecliningBalance()

		assert.Equal(t, Entry{Year: 0, BookValue: p.Price}, sched.Entries[0])
		for i := 1; i < len(sched.Entries); i++ {
			assert.LessOrEqual(t, sched.Entries[i].BookValue, sched.Entries[i-1].BookValue,
				"multiplier %v year %d", mult, i)
		}
	}
}

func TestDecliningBalance_LargeMultiplierStopsAtZero(t *testing.T) {
	tests := []struct {
		name string
		life int
		mult float64
	}{
		{"multiplier above life", 2, 3},
		{"multiplier equals life", 4, 4},
		{"huge multiplier", 1, 1e308},
		{"huge multiplier long life", 5, 1e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := asset.DefaultParams()
			p.LifeYears = tt.life
			p.DBMultiplier = tt.mult
			sched, err := newEngine(t, p).Schedule(DecliningBalance)
			require.NoError(t, err)
			require.Len(t, sched.Entries, tt.life+1)

			assert.Equal(t, p.Price, sched.Entries[1].Depreciation)
			for i := 1; i < len(sched.Entries); i++ {
				assert.LessOrEqual(t, sched.Entries[i].BookValue, sched.Entries[i-1].BookValue,
					"year %d", i)
				assert.GreaterOrEqual(t, sched.Entries[i].BookValue, 0.0, "year %d", i)
			}
			assert.Equal(t, 0.0, sched.Final().BookValue)
			assert.InDelta(t, p.Price, sched.TotalDepreciation(), 1e-9)
		})
	}
}

func TestSchedule_NonFinite(t *testing.T) {
	p := asset.DefaultParams()
	p.Price = math.MaxFloat64

	e := newEngine(t, p)
	_, err := e.Schedule(SumOfYearsDigits)
	assert.ErrorIs(t, err, costerr.ErrArithmeticDomain)

	_, err = e.Schedule(StraightLine)
	assert.NoError(t, err)
}

func TestDecliningBalance_MayStayAboveSalvage(t *testing.T) {
	p := asset.DefaultParams()
	p.DBMultiplier = 1.0
	p.SalvagePct = 0.05
	sched := newEngine(t, p).DecliningBalance()

	assert.Greater(t, sched.Final().BookValue, sched.Salvage)
}

func TestSumOfYearsDigits_FractionsSumToOne(t *testing.T) {
	for _, life := range []int{1, 3, 5, 7, 12, 30} {
		p := asset.DefaultParams()
		p.LifeYears = life
		e := newEngine(t, p)
		sched := e.SumOfYearsDigits()

		require.Len(t, sched.Entries, life+1)
		assert.Equal(t, Entry{Year: 0, BookValue: p.Price}, sched.Entries[0])

		depreciable := p.Price - e.SalvageValue()
		var sum float64
		for _, entry := range sched.Entries[1:] {
			sum += entry.Depreciation / depreciable
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "life %d", life)
		assert.InDelta(t, e.SalvageValue(), sched.Final().BookValue, 1e-6)
	}
}

func TestSumOfYearsDigits_Reference(t *testing.T) {
	sched := newEngine(t, asset.DefaultParams()).SumOfYearsDigits()

	// T = 68000, digits = 15
	wantDep := []float64{0, 68000 * 5 / 15.0, 68000 * 4 / 15.0, 68000 * 3 / 15.0, 68000 * 2 / 15.0, 68000 / 15.0}
	for i, w := range wantDep {
		assert.InDelta(t, w, sched.Entries[i].Depreciation, 1e-9)
	}
	assert.InDelta(t, 68000.0, sched.TotalDepreciation(), 1e-9)
}

func TestSchedule_Dispatch(t *testing.T) {
	e := newEngine(t, asset.DefaultParams())

	for _, m := range Methods() {
		t.Run(string(m), func(t *testing.T) {
			sched, err := e.Schedule(m)
			require.NoError(t, err)
			assert.Equal(t, m, sched.Method)
			assert.Len(t, sched.Entries, 6)
		})
	}

	_, err := e.Schedule(Method("annuity"))
	assert.ErrorIs(t, err, costerr.ErrInvalidInput)
}

func TestSchedule_EmptyFinal(t *testing.T) {
	assert.Equal(t, Entry{}, Schedule{}.Final())
}
