package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/tui"
)

var errNoUI = errors.New("client: terminal ui is required")

type App struct {
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{tui: ui, logger: logger}, nil
}

// Run shows the terminal ui until the user quits or the process is
// signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("starting terminal ui")
	return a.tui.Run(ctx)
}
