package asset

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices in utilization_classes.csv.
const (
	colClassName   = 0
	colClassRate   = 1
	classCSVFields = 2
)

//go:embed data/utilization_classes.csv
var utilizationClassesCSV string

// Class is one historical equipment utilization entry.
type Class struct {
	Name string  `json:"name" yaml:"name"`
	Rate float64 `json:"rate" yaml:"rate"`
}

var (
	defaultClasses     []Class
	defaultClassesOnce sync.Once
)

// parseClasses loads the embedded class table. Rows with an empty name or a
// rate outside [0, 1] are skipped.
func parseClasses() {
	reader := csv.NewReader(strings.NewReader(utilizationClassesCSV))
	reader.FieldsPerRecord = classCSVFields

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

		name := strings.TrimSpace(record[colClassName])
		if name == "" {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(record[colClassRate]), 64)
		if err != nil || rate < 0 || rate > 1 {
			continue
		}
		defaultClasses = append(defaultClasses, Class{Name: name, Rate: rate})
	}
}

// Classes returns the embedded utilization classes in file order. The
// returned slice is a copy.
func Classes() []Class {
	defaultClassesOnce.Do(parseClasses)
	out := make([]Class, len(defaultClasses))
	copy(out, defaultClasses)
	return out
}

// DefaultClasses returns the embedded class table as a new map.
func DefaultClasses() map[string]float64 {
	classes := Classes()
	out := make(map[string]float64, len(classes))
	for _, c := range classes {
		out[c.Name] = c.Rate
	}
	return out
}

// ClassCount reports how many classes were loaded from the embedded table.
func ClassCount() int {
	defaultClassesOnce.Do(parseClasses)
	return len(defaultClasses)
}
