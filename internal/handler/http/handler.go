package http

import (
	"net/http"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/session"
	"github.com/MKhiriev/go-maintenance-search/internal/validators"
	"github.com/MKhiriev/go-maintenance-search/models"
)

// Dependencies are the collaborators of the web front end.
type Dependencies struct {
	Sessions  *session.Store
	Signer    *session.Signer
	Validator validators.Validator

	// Metrics serves GET /metrics. Nil disables the route.
	Metrics http.Handler

	BuildInfo models.AppBuildInfo
	Locale    string
}

type Handler struct {
	sessions  *session.Store
	signer    *session.Signer
	validator validators.Validator
	metrics   http.Handler
	buildInfo models.AppBuildInfo
	locale    string

	logger *logger.Logger
}

func NewHandler(deps Dependencies, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	if deps.Validator == nil {
		deps.Validator = validators.NewModelValidator()
	}

	return &Handler{
		sessions:  deps.Sessions,
		signer:    deps.Signer,
		validator: deps.Validator,
		metrics:   deps.Metrics,
		buildInfo: deps.BuildInfo,
		locale:    deps.Locale,
		logger:    logger,
	}
}
