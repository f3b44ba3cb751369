package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
)

// isolate points Load at a missing .env so tests never read the working
// directory's file.
func isolate(t *testing.T, opts Options) Options {
	t.Helper()
	if opts.EnvFile == "" {
		opts.EnvFile = filepath.Join(t.TempDir(), "missing.env")
	}
	opts.Logger = zerolog.Nop()
	return opts
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetForTest removes key for the duration of the test and restores it after.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	p, err := Load(isolate(t, Options{}))
	require.NoError(t, err)
	assert.Equal(t, asset.DefaultParams(), p)
}

func TestLoad_File(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "machine.yaml",
			content: "price: 120000\nlife_years: 7\nsalvage_value: 15000.4\nutilization: Chipper\n",
		},
		{
			name:    "json",
			file:    "machine.json",
			content: `{"price": 120000, "life_years": 7, "salvage_value": 15000.4, "utilization": "Chipper"}`,
		},
		{
			name:    "toml",
			file:    "machine.toml",
			content: "price = 120000\nlife_years = 7\nsalvage_value = 15000.4\nutilization = \"Chipper\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			p, err := Load(isolate(t, Options{File: path}))
			require.NoError(t, err)

			assert.Equal(t, 120000.0, p.Price)
			assert.Equal(t, 7, p.LifeYears)
			require.NotNil(t, p.SalvageValue)
			assert.Equal(t, 15000.4, *p.SalvageValue)
			assert.Equal(t, "Chipper", p.Utilization)
			// Untouched fields keep their defaults.
			assert.Equal(t, asset.DefaultWage, p.Wage)
			assert.Len(t, p.UtilizationClasses, asset.ClassCount())
		})
	}
}

func TestLoad_FileReplacesClasses(t *testing.T) {
	path := writeFile(t, "classes.yaml", "utilization_classes:\n  harvester: 0.7\n  forwarder: 0.6\n")
	p, err := Load(isolate(t, Options{File: path}))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"harvester": 0.7, "forwarder": 0.6}, p.UtilizationClasses)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(isolate(t, Options{File: filepath.Join(t.TempDir(), "nope.yaml")}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("EQCOST_PRICE", "90000")
	t.Setenv("EQCOST_LIFE_YEARS", "6")
	t.Setenv("EQCOST_UTILIZATION", "0.8")

	path := writeFile(t, "machine.yaml", "price: 120000\n")
	p, err := Load(isolate(t, Options{File: path}))
	require.NoError(t, err)

	assert.Equal(t, 90000.0, p.Price, "env wins over file")
	assert.Equal(t, 6, p.LifeYears)
	assert.Equal(t, "0.8", p.Utilization)
}

func TestLoad_CustomPrefix(t *testing.T) {
	t.Setenv("MACHINE_WAGE", "20.5")
	p, err := Load(isolate(t, Options{EnvPrefix: "MACHINE"}))
	require.NoError(t, err)
	assert.Equal(t, 20.5, p.Wage)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetForTest(t, "EQCOST_HORSEPOWER")
	envFile := writeFile(t, "test.env", "EQCOST_HORSEPOWER=210\n")

	p, err := Load(isolate(t, Options{EnvFile: envFile}))
	require.NoError(t, err)
	assert.Equal(t, 210.0, p.Horsepower)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("EQCOST_PRICE", "90000")
	p, err := Load(isolate(t, Options{Overrides: map[string]any{
		"price":         100000.0,
		"salvage_value": 9999.0,
	}}))
	require.NoError(t, err)
	assert.Equal(t, 100000.0, p.Price)
	require.NotNil(t, p.SalvageValue)
	assert.Equal(t, 9999.0, *p.SalvageValue)
}

func TestLoad_Fuel(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		overrides   map[string]any
		wantDensity float64
		wantPrice   float64
		wantErr     bool
	}{
		{
			name:        "gasoline from table",
			overrides:   map[string]any{"fuel_type": "gasoline"},
			wantDensity: asset.GasolineDensity,
			wantPrice:   asset.DefaultFuelPrice,
		},
		{
			name:        "explicit price kept",
			content:     "fuel_type: Gasoline\nfuel_price: 3.5\n",
			wantDensity: asset.GasolineDensity,
			wantPrice:   3.5,
		},
		{
			name:        "explicit density kept",
			content:     "fuel_type: diesel\nfuel_density: 7.1\n",
			wantDensity: 7.1,
			wantPrice:   asset.DefaultFuelPrice,
		},
		{
			name:      "unknown fuel",
			overrides: map[string]any{"fuel_type": "kerosene"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Overrides: tt.overrides}
			if tt.content != "" {
				opts.File = writeFile(t, "fuel.yaml", tt.content)
			}
			p, err := Load(isolate(t, opts))
			if tt.wantErr {
				assert.ErrorIs(t, err, costerr.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDensity, p.FuelDensity)
			assert.Equal(t, tt.wantPrice, p.FuelPrice)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero life", content: "life_years: 0\n"},
		{name: "negative price", content: "price: -1\n"},
		{name: "salvage pct above one", content: "salvage_pct: 1.5\n"},
		{name: "not a number", content: "price: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tt.content)
			_, err := Load(isolate(t, Options{File: path}))
			assert.ErrorIs(t, err, costerr.ErrInvalidInput)
		})
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "price")
	assert.Contains(t, keys, "salvage_value")
	assert.Contains(t, keys, "utilization_classes")
	assert.NotContains(t, keys, "")
}
