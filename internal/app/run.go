package app

import (
	"context"
	"fmt"

	"github.com/vk/getarg/internal/argexpr"
	"github.com/vk/getarg/internal/report"
)

// Run writes the flag report, evaluates the configured expressions and, if a
// health check port is configured, serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.", "flags", a.args.Len())

	if a.config.PrintArgs {
		entries := report.Build(a.args)
		if err := report.Write(a.outW, a.config.ReportFormat, entries); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		a.logger.Debug("Report written.", "format", a.config.ReportFormat, "entries", len(entries))
	}

	for _, expr := range a.config.Evals {
		val, err := argexpr.Evaluate(ctx, a.args, expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s = %s\n", expr, argexpr.Format(val))
	}

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthCheckServer(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		a.logger.Info("Shutdown requested.", "reason", context.Cause(ctx))
		if err := a.closeHealthCheckServer(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
