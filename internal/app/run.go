package app

import (
	"context"
	"fmt"

	"github.com/vk/plategen/internal/builder"
	"github.com/vk/plategen/internal/ctxlog"
	"github.com/vk/plategen/internal/export"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.site.Recipes) == 0 {
		a.logger.Warn("No recipes found in site data, nothing to compute.")
		return nil
	}

	a.logger.Info("Computing recipe models...",
		"recipes", len(a.site.Recipes), "workers", appConfig.WorkerCount)
	result, err := builder.Build(ctx, a.site, builder.Options{
		Workers: appConfig.WorkerCount,
	})
	if err != nil {
		return fmt.Errorf("site computation failed: %w", err)
	}
	a.logger.Info("Computation finished.", "models", len(result.Models))

	if appConfig.OutputPath != "" {
		if err := export.WriteSite(ctx, result, appConfig.OutputPath); err != nil {
			return fmt.Errorf("failed to export site: %w", err)
		}
		a.logger.Info("Site artifacts written.", "dir", appConfig.OutputPath)
	} else {
		if err := export.WriteSummary(a.outW, result); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
