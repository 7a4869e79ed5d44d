package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/getarg/internal/argreg"
	"github.com/vk/getarg/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	args       *argreg.Registry
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Reports and
// evaluation results go to outW, logs go to logW. The registry is owned by
// the caller and only read by the App.
func NewApp(outW, logW io.Writer, cfg *Config, args *argreg.Registry) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		args:   args,
	}
}

// Args returns the registry the application was built with.
func (a *App) Args() *argreg.Registry {
	return a.args
}

// withLogger returns ctx with the application logger attached.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
