// Package estimate runs the full machine-rate calculation for a parameter set.
package estimate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/equipment-cost/internal/aggregate"
	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/carbon"
	"github.com/rshade/equipment-cost/internal/costerr"
	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/maintenance"
	"github.com/rshade/equipment-cost/internal/operating"
	"github.com/rshade/equipment-cost/internal/utilization"
)

// Log field names.
const (
	FieldTraceID    = "trace_id"
	FieldOperation  = "operation"
	FieldDurationMs = "duration_ms"
	FieldErrorKind  = "error_kind"
)

// Request is one estimate to compute.
type Request struct {
	Params asset.Params

	// Method picks the reported depreciation schedule. Empty means straight-line.
	Method depreciation.Method

	// Utilization overrides Params.Utilization when set.
	Utilization *utilization.Selector
}

// Hours summarizes the time model.
type Hours struct {
	AnnualWork      float64 `json:"annual_work" yaml:"annual_work"`
	Scheduled       float64 `json:"scheduled" yaml:"scheduled"`
	UtilizationRate float64 `json:"utilization_rate" yaml:"utilization_rate"`
	Utilization     string  `json:"utilization" yaml:"utilization"`
	Productive      float64 `json:"productive" yaml:"productive"`
}

// Report is the complete output of one estimate.
type Report struct {
	TraceID            string                  `json:"trace_id" yaml:"trace_id"`
	Params             asset.Params            `json:"params" yaml:"params"`
	Salvage            float64                 `json:"salvage" yaml:"salvage"`
	Hours              Hours                   `json:"hours" yaml:"hours"`
	Schedule           depreciation.Schedule   `json:"schedule" yaml:"schedule"`
	Operating          operating.Costs         `json:"operating_detail" yaml:"operating_detail"`
	Fixed              aggregate.FixedCost     `json:"fixed" yaml:"fixed"`
	OperatingCost      aggregate.OperatingCost `json:"operating" yaml:"operating"`
	MachineCostPerHour float64                 `json:"machine_cost_per_hour" yaml:"machine_cost_per_hour"`
	LaborCostPerHour   float64                 `json:"labor_cost_per_hour" yaml:"labor_cost_per_hour"`
	CostPerPMH         float64                 `json:"cost_per_pmh" yaml:"cost_per_pmh"`
	Emissions          *carbon.Emissions       `json:"emissions,omitempty" yaml:"emissions,omitempty"`
}

// Estimator computes reports and logs each computation.
type Estimator struct {
	logger zerolog.Logger
}

// New returns an Estimator that logs to logger.
func New(logger zerolog.Logger) *Estimator {
	return &Estimator{logger: logger}
}

type traceIDKey struct{}

// WithTraceID attaches a trace ID that Estimate will use instead of
// generating one.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// traceID returns the trace ID from ctx or a new UUID.
func traceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

// Estimate runs the full calculation for req.
func (e *Estimator) Estimate(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	id := traceID(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := compute(req)
	if err != nil {
		e.logger.Error().
			Str(FieldTraceID, id).
			Str(FieldOperation, "Estimate").
			Str(FieldErrorKind, costerr.KindOf(err).String()).
			Err(err).
			Msg("estimate failed")
		return nil, err
	}
	report.TraceID = id

	e.logger.Info().
		Str(FieldTraceID, id).
		Str(FieldOperation, "Estimate").
		Str("method", string(report.Schedule.Method)).
		Str("utilization", report.Hours.Utilization).
		Float64("cost_per_pmh", report.CostPerPMH).
		Int64(FieldDurationMs, time.Since(start).Milliseconds()).
		Msg("cost estimated")

	return report, nil
}

// EstimateBatch computes independent requests in parallel. Results keep the
// order of reqs. The first failure cancels requests that have not started.
func (e *Estimator) EstimateBatch(ctx context.Context, reqs []Request) ([]*Report, error) {
	reports := make([]*Report, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			r, err := e.Estimate(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func compute(req Request) (*Report, error) {
	p := req.Params

	dep, err := depreciation.New(p)
	if err != nil {
		return nil, err
	}
	ops, err := operating.New(p)
	if err != nil {
		return nil, err
	}
	model, err := utilization.New(p)
	if err != nil {
		return nil, err
	}

	sel, err := selector(req)
	if err != nil {
		return nil, err
	}
	rate, err := model.Rate(sel)
	if err != nil {
		return nil, err
	}
	productive, err := model.ProductiveHours(rate)
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = depreciation.StraightLine
	}
	schedule, err := dep.Schedule(method)
	if err != nil {
		return nil, err
	}

	annualDep := dep.StraightLine()
	fixed, err := aggregate.Fixed(annualDep, dep.AverageYearlyInvestment(), dep.InterestInsuranceTaxes(), productive)
	if err != nil {
		return nil, err
	}

	hourly, err := ops.Hourly()
	if err != nil {
		return nil, err
	}
	maintAnnual, err := maintenance.Annual(annualDep, p.MaintenanceRatio)
	if err != nil {
		return nil, err
	}
	opCost, err := aggregate.Operating(hourly.Fuel, hourly.OilLube, hourly.Tires, maintAnnual, productive)
	if err != nil {
		return nil, err
	}

	// Emissions are reported only for fuels with a known factor.
	var emissions *carbon.Emissions
	if carbon.Supported(p.FuelType) {
		em, err := carbon.Estimate(p.FuelType, ops.HourlyFuelGallons(), productive)
		if err != nil {
			return nil, err
		}
		emissions = &em
	}

	machine, err := costerr.Finite("machine_cost_per_hour", aggregate.MachineCostPerHour(fixed.Hourly, opCost.Total))
	if err != nil {
		return nil, err
	}
	pmh, err := costerr.Finite("cost_per_pmh", aggregate.CostPerPMH(machine, p.Wage, p.LaborUtilization))
	if err != nil {
		return nil, err
	}

	return &Report{
		Params:  p.Clone(),
		Salvage: dep.SalvageValue(),
		Hours: Hours{
			AnnualWork:      model.AnnualWorkHours(),
			Scheduled:       model.ScheduledHours(),
			UtilizationRate: rate,
			Utilization:     sel.String(),
			Productive:      productive,
		},
		Schedule:           schedule,
		Operating:          hourly,
		Fixed:              fixed,
		OperatingCost:      opCost,
		MachineCostPerHour: machine,
		LaborCostPerHour:   p.Wage * p.LaborUtilization,
		CostPerPMH:         pmh,
		Emissions:          emissions,
	}, nil
}

func selector(req Request) (utilization.Selector, error) {
	if req.Utilization != nil {
		return *req.Utilization, nil
	}
	return utilization.ParseSelector(req.Params.Utilization)
}
