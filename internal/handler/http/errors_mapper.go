package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-maintenance-search/internal/session"
	"github.com/MKhiriev/go-maintenance-search/internal/validators"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
)

// errorStatusMap lists the errors that reach the client as a status code.
// Load and delete failures are absent on purpose: they are shown inside the
// page and never turn into an error status.
var errorStatusMap = map[error]int{
	validators.ErrInvalidCriteria: http.StatusBadRequest,
	view.ErrRecordNotFound:        http.StatusNotFound,
	session.ErrInvalidSession:     http.StatusUnauthorized,
	ErrNoSessionView:              http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
