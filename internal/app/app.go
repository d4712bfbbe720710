package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	site   *config.Site
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the site data
// already loaded into the format-agnostic model. Artifacts and the summary
// go to outW; log output goes to logW so piped JSON stays clean.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	site, err := loader.Load(ctx, appConfig.DataPath)
	if err != nil {
		// A failure to load site data is a fatal startup error.
		panic(fmt.Errorf("failed to load site data: %w", err))
	}
	logger.Debug("Site data loaded and translated into unified model.",
		"foods", len(site.Foods), "recipes", len(site.Recipes))

	return &App{
		outW:   outW,
		logger: logger,
		site:   site,
	}
}

// Site returns the loaded site data. This is primarily for testing.
func (a *App) Site() *config.Site {
	return a.site
}
