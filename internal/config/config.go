// Package config assembles validated equipment parameters from defaults, a
// config file, .env, the environment and explicit overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
	"github.com/rshade/equipment-cost/internal/pricing"
)

const (
	// DefaultEnvPrefix prefixes every environment override, e.g. EQCOST_PRICE.
	DefaultEnvPrefix = "EQCOST"

	// DefaultEnvFile is loaded when present.
	DefaultEnvFile = ".env"
)

const keyClasses = "utilization_classes"

// Options controls Load. The zero value reads only defaults, .env and the
// environment.
type Options struct {
	// File is an optional YAML, JSON or TOML parameter file.
	File string

	// EnvFile overrides DefaultEnvFile. A missing file is ignored.
	EnvFile string

	// EnvPrefix overrides DefaultEnvPrefix.
	EnvPrefix string

	// Overrides take precedence over every other source. Keys are the
	// mapstructure names of asset.Params fields.
	Overrides map[string]any

	// Fuels resolves fuel_type. Nil means the embedded table.
	Fuels pricing.FuelPricer

	Logger zerolog.Logger
}

// Load builds Params. Precedence, lowest first: defaults, file, environment,
// overrides. When fuel_type is set, density, price and tax come from the fuel
// table unless one of the sources set them.
func Load(opts Options) (asset.Params, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return asset.Params{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		opts.Logger.Debug().Str("env_file", envFile).Msg("loaded env file")
	}

	v := viper.New()
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range Keys() {
		if key == keyClasses {
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return asset.Params{}, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return asset.Params{}, fmt.Errorf("failed to read config file: %w", err)
		}
		opts.Logger.Debug().Str("config_file", opts.File).Msg("loaded config file")
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	p := asset.DefaultParams()
	if v.IsSet(keyClasses) {
		p.UtilizationClasses = nil
	}
	if err := v.Unmarshal(&p); err != nil {
		return asset.Params{}, costerr.Invalid("config", "failed to parse parameters: %v", err)
	}

	if p.FuelType != "" {
		fuels := opts.Fuels
		if fuels == nil {
			client, err := pricing.NewClient(opts.Logger)
			if err != nil {
				return asset.Params{}, err
			}
			fuels = client
		}
		var err error
		if p, err = pricing.Resolve(fuels, p, v.IsSet); err != nil {
			return asset.Params{}, err
		}
	}

	if err := p.Validate(); err != nil {
		return asset.Params{}, err
	}
	return p, nil
}

// Keys returns the mapstructure key of every asset.Params field.
func Keys() []string {
	t := reflect.TypeOf(asset.Params{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("mapstructure")
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}
