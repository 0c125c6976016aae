// =============================================================================
// Workday Report Flattener - Runner Module
// =============================================================================
//
// This module fans the driver out across report types. Report types share
// no state and write disjoint files, so they process concurrently up to the
// configured limit. Each invocation gets a unique run ID that tags every
// log line and the on-disk run summary.
//
// Non-fatal degradations (missing input, malformed XML) never stop the run.
// Fatal failures stop the remaining reports only when fail_fast is set.
//
// =============================================================================

package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nshe-dis/wdreports/internal/config"
	"github.com/nshe-dis/wdreports/internal/schema"
	"github.com/nshe-dis/wdreports/internal/tabular"
	"github.com/nshe-dis/wdreports/pkg/utils"
)

// Runner processes a set of report types against one configuration.
type Runner struct {
	cfg    *config.Config
	reg    *schema.Registry
	driver *Driver
	logger *zap.Logger
}

// NewRunner wires a Runner from its parts.
func NewRunner(cfg *config.Config, reg *schema.Registry, format tabular.Format, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		reg:    reg,
		driver: NewDriver(cfg, format, logger),
		logger: logger,
	}
}

// Run processes the named report types, or every registered type when names
// is empty. It returns the run summary and the first fatal error, if any.
// A summary log is written to the output directory in both cases.
func (r *Runner) Run(ctx context.Context, names []string) (utils.RunSummary, error) {
	reports, err := r.selectReports(names)
	if err != nil {
		return utils.RunSummary{}, err
	}

	runID := uuid.New().String()
	start := time.Now()
	log := r.logger.With(zap.String("run_id", runID))
	log.Info("starting run",
		zap.Int("reports", len(reports)),
		zap.Int("max_concurrency", r.cfg.MaxConcurrency))

	results := make(chan Result, len(reports))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxConcurrency)

	for _, rep := range reports {
		rep := rep
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.driver.Process(rep)
			results <- res
			if res.Err != nil {
				log.Error("report failed", zap.String("report", rep.Name), zap.Error(res.Err))
				if r.cfg.FailFast {
					return res.Err
				}
			}
			return nil
		})
	}

	waitErr := g.Wait()
	close(results)

	summary := utils.RunSummary{
		RunID:     runID,
		StartTime: start,
		Elapsed:   time.Since(start),
	}

	var fatal error
	for res := range results {
		summary.Outcomes = append(summary.Outcomes, outcome(res))
		if res.Err != nil && fatal == nil {
			fatal = res.Err
		}
	}
	if fatal == nil && waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		fatal = waitErr
	}

	if path, err := utils.WriteSummaryLog(summary, r.cfg.OutputDir); err != nil {
		log.Warn("failed to write run summary log", zap.Error(err))
	} else {
		log.Info("run summary written", zap.String("path", path))
	}

	log.Info("run complete",
		zap.Int("completed", len(summary.Outcomes)),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, fatal
}

// selectReports resolves the requested report type names, defaulting to
// every registered type in registration order.
func (r *Runner) selectReports(names []string) ([]*schema.Report, error) {
	if len(names) == 0 {
		return r.reg.All(), nil
	}
	reports := make([]*schema.Report, 0, len(names))
	for _, name := range names {
		rep, err := r.reg.Get(name)
		if err != nil {
			return nil, fmt.Errorf("cannot run report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// outcome converts a driver Result into its summary line.
func outcome(res Result) utils.ReportOutcome {
	o := utils.ReportOutcome{
		Report:     res.Report,
		OutputFile: res.OutputFile,
		Rows:       res.Rows,
	}
	switch {
	case res.Err != nil:
		o.Status = "failed"
		o.Detail = res.Err.Error()
	case res.Skipped:
		o.Status = "skipped"
		o.Detail = res.SkipReason
	default:
		o.Status = "ok"
	}
	return o
}
