package handler

import (
	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/handler/http"
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(deps http.Dependencies, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(deps, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
