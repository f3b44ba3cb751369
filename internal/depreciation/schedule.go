package depreciation

import (
	"math"
	"strings"

	"github.com/rshade/equipment-cost/internal/costerr"
)

// Method names a depreciation schedule algorithm.
type Method string

const (
	StraightLine     Method = "straight-line"
	DecliningBalance Method = "declining-balance"
	SumOfYearsDigits Method = "sum-of-years-digits"
)

// Methods lists the supported methods in display order.
func Methods() []Method {
	return []Method{StraightLine, DecliningBalance, SumOfYearsDigits}
}

// ParseMethod accepts a method name or one of the short aliases sl, db, soyd.
// An empty string selects straight-line.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sl", string(StraightLine):
		return StraightLine, nil
	case "db", string(DecliningBalance):
		return DecliningBalance, nil
	case "soyd", string(SumOfYearsDigits):
		return SumOfYearsDigits, nil
	}
	return "", costerr.Invalid("method", "unknown depreciation method %q", s)
}

// Entry is one year of a schedule. Year 0 carries no depreciation and the
// full purchase price as book value.
type Entry struct {
	Year         int     `json:"year" yaml:"year"`
	Depreciation float64 `json:"depreciation" yaml:"depreciation"`
	BookValue    float64 `json:"book_value" yaml:"book_value"`
}

// Schedule is the year-by-year depreciation from year 0 through year N.
type Schedule struct {
	Method  Method  `json:"method" yaml:"method"`
	Salvage float64 `json:"salvage" yaml:"salvage"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Final returns the last entry.
func (s Schedule) Final() Entry {
	if len(s.Entries) == 0 {
		return Entry{}
	}
	return s.Entries[len(s.Entries)-1]
}

// TotalDepreciation sums depreciation over all years.
func (s Schedule) TotalDepreciation() float64 {
	var total float64
	for _, e := range s.Entries {
		total += e.Depreciation
	}
	return total
}

// Schedule builds the schedule for m. A schedule with any non-finite entry
// fails with ArithmeticDomainError.
func (e *Engine) Schedule(m Method) (Schedule, error) {
	var s Schedule
	switch m {
	case StraightLine:
		s = e.StraightLineSchedule()
	case DecliningBalance:
		s = e.DecliningBalance()
	case SumOfYearsDigits:
		s = e.SumOfYearsDigits()
	default:
		return Schedule{}, costerr.Invalid("method", "unknown depreciation method %q", m)
	}
	if err := s.finite(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

func (s Schedule) finite() error {
	for _, e := range s.Entries {
		if !isFinite(e.Depreciation) || !isFinite(e.BookValue) {
			return costerr.Domain("schedule", "%s schedule is not finite in year %d", s.Method, e.Year)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// StraightLineSchedule spreads P - S evenly; the book value reaches S in year N.
func (e *Engine) StraightLineSchedule() Schedule {
	n := e.p.LifeYears
	dep := e.StraightLine()
	entries := make([]Entry, 0, n+1)
	entries = append(entries, Entry{Year: 0, BookValue: e.p.Price})

	book := e.p.Price
	for year := 1; year <= n; year++ {
		book -= dep
		entries = append(entries, Entry{Year: year, Depreciation: dep, BookValue: book})
	}
	return Schedule{Method: StraightLine, Salvage: e.salvage, Entries: entries}
}

// DecliningBalance depreciates the remaining book value by Rate * DBMultiplier
// each year. The book value is not floored at salvage: it may end above S,
// or below it when the multiplier is large. It never drops below zero, so a
// multiplier above LifeYears writes the machine off in the first year.
func (e *Engine) DecliningBalance() Schedule {
	n := e.p.LifeYears
	factor := e.Rate() * e.p.DBMultiplier
	entries := make([]Entry, 0, n+1)
	entries = append(entries, Entry{Year: 0, BookValue: e.p.Price})

	book := e.p.Price
	for year := 1; year <= n; year++ {
		dep := math.Min(book*factor, book)
		book -= dep
		entries = append(entries, Entry{Year: year, Depreciation: dep, BookValue: book})
	}
	return Schedule{Method: DecliningBalance, Salvage: e.salvage, Entries: entries}
}

// SumOfYearsDigits depreciates T = P - S by (N - k + 1) / (1 + 2 + ... + N)
// in year k, so the book value reaches S in year N.
func (e *Engine) SumOfYearsDigits() Schedule {
	n := e.p.LifeYears
	total := e.p.Price - e.salvage
	digits := float64(n*(n+1)) / 2
	entries := make([]Entry, 0, n+1)
	entries = append(entries, Entry{Year: 0, BookValue: e.p.Price})

	book := e.p.Price
	for year := 1; year <= n; year++ {
		dep := total * float64(n-year+1) / digits
		book -= dep
		entries = append(entries, Entry{Year: year, Depreciation: dep, BookValue: book})
	}
	return Schedule{Method: SumOfYearsDigits, Salvage: e.salvage, Entries: entries}
}
