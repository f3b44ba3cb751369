package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/estimate"
	"github.com/rshade/equipment-cost/internal/pricing"
)

func sampleReport(t *testing.T) *estimate.Report {
	t.Helper()
	ctx := estimate.WithTraceID(context.Background(), "trace-1")
	r, err := estimate.New(zerolog.Nop()).Estimate(ctx, estimate.Request{
		Params: asset.DefaultParams(),
		Method: depreciation.DecliningBalance,
	})
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		want    any
		wantErr bool
	}{
		{format: "", want: &Text{}},
		{format: "text", want: &Text{}},
		{format: "JSON", want: &JSON{}},
		{format: "yaml", want: &YAML{}},
		{format: "yml", want: &YAML{}},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := New(tt.format, &bytes.Buffer{})
			if tt.wantErr {
				assert.ErrorIs(t, err, costerr.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 17000, want: "17000.00"},
		{in: 0.575, want: "0.58"},
		{in: 1.005, want: "1.01"},
		{in: -2.345, want: "-2.35"},
		{in: 19.7504, want: "19.75"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.in))
		})
	}
}

func TestText_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewText(&buf).Report(sampleReport(t)))

	out := buf.String()
	assert.Contains(t, out, "trace trace-1")
	assert.Contains(t, out, "Salvage value: 17000.00")
	assert.Contains(t, out, "Scheduled hours: 1872.0")
	assert.Contains(t, out, "=== Depreciation schedule (declining-balance) ===")
	assert.Contains(t, out, "Interest, insurance and taxes")
	assert.Contains(t, out, "10404.00")
	assert.Contains(t, out, "Cost per PMH:")
	assert.Contains(t, out, "CO2 (diesel):")

	// Every table row has the same width.
	var width int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") && !strings.HasPrefix(line, "+") {
			continue
		}
		if width == 0 {
			width = len(line)
		}
		assert.Len(t, line, width, line)
	}
}

func TestText_ReportWithoutEmissions(t *testing.T) {
	r := sampleReport(t)
	r.Emissions = nil

	var buf bytes.Buffer
	require.NoError(t, NewText(&buf).Report(r))
	assert.NotContains(t, buf.String(), "CO2")
	assert.Contains(t, buf.String(), "Cost per PMH:")
}

func TestText_Schedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewText(&buf).Schedule(sampleReport(t).Schedule))

	out := buf.String()
	assert.Contains(t, out, "85000.00")
	assert.Contains(t, out, "34000.00")
	assert.Contains(t, out, "4406.40")
}

func TestText_Classes(t *testing.T) {
	var buf bytes.Buffer
	table, err := NewClassTable()
	require.NoError(t, err)
	assert.Len(t, table.Classes, asset.ClassCount())
	assert.InDelta(t, 8.44/13, table.Mean, 1e-12)
	require.NoError(t, NewText(&buf).Classes(table))

	out := buf.String()
	assert.Contains(t, out, "Chipper")
	assert.Contains(t, out, "0.7500")
	assert.Contains(t, out, "0.6492")
}

func TestText_Fuels(t *testing.T) {
	client, err := pricing.NewClient(zerolog.Nop())
	require.NoError(t, err)

	table := NewFuelTable(client)
	require.Len(t, table.Fuels, 2)

	var buf bytes.Buffer
	require.NoError(t, NewText(&buf).Fuels(table))
	assert.Contains(t, buf.String(), "=== Fuels (USD) ===")
	assert.Contains(t, buf.String(), "diesel")
	assert.Contains(t, buf.String(), "2.61")
}

func TestJSON_Report(t *testing.T) {
	want := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, (&JSON{w: &buf}).Report(want))

	var got estimate.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *want, got)
}

func TestYAML_Schedule(t *testing.T) {
	want := sampleReport(t).Schedule

	var buf bytes.Buffer
	require.NoError(t, (&YAML{w: &buf}).Schedule(want))
	assert.Contains(t, buf.String(), "method: declining-balance")

	var got depreciation.Schedule
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}
