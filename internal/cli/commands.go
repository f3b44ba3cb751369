package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/estimate"
	"github.com/rshade/equipment-cost/internal/report"
	"github.com/rshade/equipment-cost/internal/server"
	"github.com/rshade/equipment-cost/internal/utilization"
)

type estimateCmd struct {
	cli         *CLI
	params      paramFlags
	utilization []string
}

func (cli *CLI) newEstimateCmd() *cobra.Command {
	ec := &estimateCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate hourly machine and PMH cost",
		Long: "Estimate fixed, operating and labor cost per productive machine hour.\n" +
			"Repeat --utilization to compare several utilization rates in one run.",
		Args: cobra.NoArgs,
		RunE: ec.run,
	}
	ec.params.register(cmd)
	cmd.Flags().StringSliceVarP(&ec.utilization, "utilization", "u", nil,
		"Utilization: a fraction, a class name or \"mean\" (repeatable)")
	return cmd
}

func (ec *estimateCmd) run(cmd *cobra.Command, _ []string) error {
	p, method, err := ec.cli.load(&ec.params)
	if err != nil {
		return err
	}
	r, err := ec.cli.renderer()
	if err != nil {
		return err
	}

	reqs := []estimate.Request{{Params: p, Method: method}}
	if len(ec.utilization) > 0 {
		reqs = reqs[:0]
		for _, raw := range ec.utilization {
			sel, err := utilization.ParseSelector(raw)
			if err != nil {
				return err
			}
			reqs = append(reqs, estimate.Request{Params: p, Method: method, Utilization: &sel})
		}
	}

	reports, err := estimate.New(ec.cli.logger).EstimateBatch(cmd.Context(), reqs)
	if err != nil {
		return err
	}
	for _, rep := range reports {
		if err := r.Report(rep); err != nil {
			return err
		}
	}
	return nil
}

type scheduleCmd struct {
	cli    *CLI
	params paramFlags
}

func (cli *CLI) newScheduleCmd() *cobra.Command {
	sc := &scheduleCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the year-by-year depreciation schedule",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}
	sc.params.register(cmd)
	return cmd
}

func (sc *scheduleCmd) run(_ *cobra.Command, _ []string) error {
	p, method, err := sc.cli.load(&sc.params)
	if err != nil {
		return err
	}
	r, err := sc.cli.renderer()
	if err != nil {
		return err
	}
	dep, err := depreciation.New(p)
	if err != nil {
		return err
	}
	s, err := dep.Schedule(method)
	if err != nil {
		return err
	}
	return r.Schedule(s)
}

func (cli *CLI) newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the utilization classes and their mean",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := cli.renderer()
			if err != nil {
				return err
			}
			table, err := report.NewClassTable()
			if err != nil {
				return err
			}
			return r.Classes(table)
		},
	}
}

func (cli *CLI) newFuelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuels",
		Short: "List the fuel pricing table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := cli.renderer()
			if err != nil {
				return err
			}
			fuels, err := cli.fuels()
			if err != nil {
				return err
			}
			return r.Fuels(report.NewFuelTable(fuels))
		},
	}
}

func (cli *CLI) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cost API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fuels, err := cli.fuels()
			if err != nil {
				return err
			}
			cfg := server.ParseConfig(cli.logger)
			if addr != "" {
				cfg.Addr = addr
			}
			api := server.NewWebAPI(cli.logger, cfg, server.Dependencies{
				Estimator: estimate.New(cli.logger),
				Fuels:     fuels,
			})
			return api.Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides "+server.EnvListenAddr+")")
	return cmd
}
