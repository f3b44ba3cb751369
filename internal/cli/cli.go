// Package cli implements the equipment-cost command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/config"
	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/pricing"
	"github.com/rshade/equipment-cost/internal/report"
)

// CLI represents the command-line interface
type CLI struct {
	out    io.Writer
	errOut io.Writer
	logger zerolog.Logger

	configFile string
	envFile    string
	format     string
	logLevel   string

	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output      io.Writer
	ErrorOutput io.Writer
	Args        []string
}

// New creates a new CLI instance
func New(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrorOutput == nil {
		opts.ErrorOutput = os.Stderr
	}

	cli := &CLI{
		out:    opts.Output,
		errOut: opts.ErrorOutput,
		logger: zerolog.Nop(),
	}
	cli.rootCmd = cli.newRootCmd()
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "equipment-cost",
		Short:         "Heavy equipment ownership and operating cost calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cli.setupLogger()
		},
	}
	cmd.SetOut(cli.out)
	cmd.SetErr(cli.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configFile, "config", "c", "", "Parameter file (YAML, JSON or TOML)")
	flags.StringVar(&cli.envFile, "env-file", config.DefaultEnvFile, "Env file with EQCOST_* overrides")
	flags.StringVarP(&cli.format, "format", "f", report.FormatText,
		"Output format ("+strings.Join(report.Formats(), ", ")+")")
	flags.StringVar(&cli.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(cli.newEstimateCmd())
	cmd.AddCommand(cli.newScheduleCmd())
	cmd.AddCommand(cli.newClassesCmd())
	cmd.AddCommand(cli.newFuelsCmd())
	cmd.AddCommand(cli.newServeCmd())

	return cmd
}

func (cli *CLI) setupLogger() error {
	level, err := zerolog.ParseLevel(strings.ToLower(cli.logLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.logLevel, err)
	}
	cli.logger = zerolog.New(zerolog.ConsoleWriter{Out: cli.errOut}).
		Level(level).
		With().
		Timestamp().
		Str("component", "equipment-cost").
		Logger()
	return nil
}

func (cli *CLI) renderer() (report.Renderer, error) {
	return report.New(cli.format, cli.out)
}

// paramFlags are the flags shared by commands that build Params.
type paramFlags struct {
	salvage string
	fuel    string
	method  string
}

func (pf *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.salvage, "salvage", "", "Explicit salvage value (overrides salvage_pct)")
	cmd.Flags().StringVar(&pf.fuel, "fuel", "", "Fuel type from the fuel table (diesel, gasoline)")
	cmd.Flags().StringVarP(&pf.method, "method", "m", string(depreciation.StraightLine),
		"Depreciation method (straight-line, declining-balance, sum-of-years-digits)")
}

// load builds validated Params from the config sources and pf.
func (cli *CLI) load(pf *paramFlags) (asset.Params, depreciation.Method, error) {
	method, err := depreciation.ParseMethod(pf.method)
	if err != nil {
		return asset.Params{}, "", err
	}

	overrides := map[string]any{}
	if pf.salvage != "" {
		s, err := depreciation.ParseSalvage(pf.salvage)
		if err != nil {
			return asset.Params{}, "", err
		}
		overrides["salvage_value"] = s
	}
	if pf.fuel != "" {
		overrides["fuel_type"] = pf.fuel
	}

	p, err := config.Load(config.Options{
		File:      cli.configFile,
		EnvFile:   cli.envFile,
		Overrides: overrides,
		Logger:    cli.logger,
	})
	if err != nil {
		return asset.Params{}, "", err
	}
	return p, method, nil
}

func (cli *CLI) fuels() (*pricing.Client, error) {
	return pricing.NewClient(cli.logger)
}
