package report

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/estimate"
)

// JSON writes indented JSON documents.
type JSON struct {
	w io.Writer
}

func (j *JSON) encode(what string, v any) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errWrite(what, err)
	}
	return nil
}

func (j *JSON) Report(r *estimate.Report) error       { return j.encode("report", r) }
func (j *JSON) Schedule(s depreciation.Schedule) error { return j.encode("schedule", s) }
func (j *JSON) Classes(c ClassTable) error             { return j.encode("classes", c) }
func (j *JSON) Fuels(f FuelTable) error                { return j.encode("fuels", f) }

// YAML writes YAML documents.
type YAML struct {
	w io.Writer
}

func (y *YAML) encode(what string, v any) error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errWrite(what, err)
	}
	if err := enc.Close(); err != nil {
		return errWrite(what, err)
	}
	return nil
}

func (y *YAML) Report(r *estimate.Report) error       { return y.encode("report", r) }
func (y *YAML) Schedule(s depreciation.Schedule) error { return y.encode("schedule", s) }
func (y *YAML) Classes(c ClassTable) error             { return y.encode("classes", c) }
func (y *YAML) Fuels(f FuelTable) error                { return y.encode("fuels", f) }
