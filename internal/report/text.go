package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/estimate"
)

// TableConfig sets the column widths of text tables.
type TableConfig struct {
	NameWidth  int
	ValueWidth int
	UnitWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  40,
		ValueWidth: 14,
		UnitWidth:  10,
	}
}

// Text writes fixed-width tables.
type Text struct {
	w      io.Writer
	config TableConfig
	tmpl   *template.Template
}

const reportTemplate = `Equipment cost estimate (trace {{.TraceID}})

Purchase price: {{money .Params.Price}}
Economic life: {{.Params.LifeYears}} years
Salvage value: {{money .Salvage}}
Utilization: {{.Hours.Utilization}} ({{rate .Hours.UtilizationRate}})
Scheduled hours: {{hours .Hours.Scheduled}}
Productive hours: {{hours .Hours.Productive}}

=== Fixed costs ===
{{separator}}
{{formatRow "Name" "Value" "Unit"}}
{{separator}}
{{range .Fixed.Components}}{{formatRow .Name (money .Value) .Unit}}
{{end}}{{separator}}

=== Operating costs ===
{{separator}}
{{formatRow "Name" "Value" "Unit"}}
{{separator}}
{{range .OperatingCost.Components}}{{formatRow .Name (money .Value) .Unit}}
{{end}}{{separator}}

{{template "schedule" .Schedule}}
Machine cost per hour: {{money .MachineCostPerHour}}
Labor cost per hour: {{money .LaborCostPerHour}}
Cost per PMH: {{money .CostPerPMH}}

{{with .Emissions}}CO2 ({{.Fuel}}): {{money .KgPerHour}} kg/h, {{money .TonnesPerYear}} t/yr
{{end}}`

const scheduleTemplate = `=== Depreciation schedule ({{.Method}}) ===
{{separator}}
{{formatRow "Year" "Depreciation" "Book value"}}
{{separator}}
{{range .Entries}}{{formatRow (printf "%d" .Year) (money .Depreciation) (money .BookValue)}}
{{end}}{{separator}}
`

const classesTemplate = `=== Utilization classes ===
{{separator}}
{{formatRow "Class" "Utilization" ""}}
{{separator}}
{{range .Classes}}{{formatRow .Name (rate .Rate) ""}}
{{end}}{{separator}}
{{formatRow "Mean" (rate .Mean) ""}}
{{separator}}
`

const fuelsTemplate = `=== Fuels ({{.Currency}}) ===
{{separator}}
{{formatRow "Fuel" "Price/gal" "Tax/gal"}}
{{separator}}
{{range .Fuels}}{{formatRow .Name (money .Price) (money .Tax)}}
{{end}}{{separator}}
`

// NewText returns a text renderer with the default table layout.
func NewText(w io.Writer) *Text {
	t := &Text{w: w, config: DefaultTableConfig()}
	t.tmpl = template.Must(template.New("report").Funcs(t.funcs()).Parse(reportTemplate))
	template.Must(t.tmpl.New("schedule").Parse(scheduleTemplate))
	template.Must(t.tmpl.New("classes").Parse(classesTemplate))
	template.Must(t.tmpl.New("fuels").Parse(fuelsTemplate))
	return t
}

func (t *Text) funcs() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(name, value, unit string) string {
			return fmt.Sprintf("| %-*s | %*s | %-*s |",
				t.config.NameWidth, name,
				t.config.ValueWidth, value,
				t.config.UnitWidth, unit)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", t.config.NameWidth+2),
				strings.Repeat("-", t.config.ValueWidth+2),
				strings.Repeat("-", t.config.UnitWidth+2))
		},
		"money": Money,
		"rate":  func(v float64) string { return decimal.NewFromFloat(v).StringFixed(4) },
		"hours": func(v float64) string { return decimal.NewFromFloat(v).StringFixed(1) },
	}
}

// Money formats v rounded half away from zero to cents.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func (t *Text) execute(name string, data any) error {
	if err := t.tmpl.ExecuteTemplate(t.w, name, data); err != nil {
		return errWrite(name, err)
	}
	return nil
}

func (t *Text) Report(r *estimate.Report) error       { return t.execute("report", r) }
func (t *Text) Schedule(s depreciation.Schedule) error { return t.execute("schedule", s) }
func (t *Text) Classes(c ClassTable) error             { return t.execute("classes", c) }
func (t *Text) Fuels(f FuelTable) error                { return t.execute("fuels", f) }
