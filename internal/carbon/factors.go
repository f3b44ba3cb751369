package carbon

import (
	_ "embed"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CSV columns of data/emission_factors.csv.
// Source: US EPA GHG Emission Factors Hub, mobile combustion CO2 factors.
const (
	colFuel      = 0
	colKgPerGal  = 1
	factorFields = 2
)

//go:embed data/emission_factors.csv
var emissionFactorsCSV string

var (
	emissionFactors     map[string]float64
	emissionFactorsOnce sync.Once
)

// parseEmissionFactors loads the embedded factor table. Rows with an empty
// fuel name or a non-positive factor are skipped.
func parseEmissionFactors() {
	emissionFactors = make(map[string]float64)

	reader := csv.NewReader(strings.NewReader(emissionFactorsCSV))
	reader.FieldsPerRecord = factorFields

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		fuel := strings.ToLower(strings.TrimSpace(record[colFuel]))
		if fuel == "" {
			continue
		}
		kg, err := strconv.ParseFloat(strings.TrimSpace(record[colKgPerGal]), 64)
		if err != nil || kg <= 0 {
			continue
		}
		emissionFactors[fuel] = kg
	}
}

// EmissionFactor returns kg CO2 per gallon for a fuel, matched
// case-insensitively.
func EmissionFactor(fuel string) (float64, bool) {
	emissionFactorsOnce.Do(parseEmissionFactors)
	kg, ok := emissionFactors[strings.ToLower(strings.TrimSpace(fuel))]
	return kg, ok
}

// Fuels returns the fuels with a known factor, sorted.
func Fuels() []string {
	emissionFactorsOnce.Do(parseEmissionFactors)
	names := make([]string, 0, len(emissionFactors))
	for name := range emissionFactors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
