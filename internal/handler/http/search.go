package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/render"
	"github.com/MKhiriev/go-maintenance-search/internal/utils"
	"github.com/MKhiriev/go-maintenance-search/internal/validators"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/MKhiriev/go-maintenance-search/models"
)

// index renders the session's view. The working set is fetched on the first
// visit and again when ?reload=1 is given.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	v, err := viewFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// Load finishes before the page is rendered, so the loading state is
	// never shown here. A failed load is rendered as the page's empty state.
	if !v.Loaded() || r.URL.Query().Get("reload") == "1" {
		_ = v.Load(r.Context())
	}

	h.renderPage(w, r, v)
}

// search applies the criteria given in the query string.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	v, err := viewFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	query := r.URL.Query()
	criteria := models.Criteria{
		ClientName:   query.Get("client_name"),
		Registration: query.Get("registration"),
		Chassis:      query.Get("chassis"),
		Status:       models.Status(query.Get("status")),
	}.Normalize()

	if err = h.validator.Validate(r.Context(), criteria); err != nil {
		log.Info().
			Err(err).
			Interface("fields", validators.Details(err)).
			Msg("invalid search criteria")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// synchronous, as in index
	if !v.Loaded() {
		_ = v.Load(r.Context())
	}
	v.ApplyFilter(criteria)

	h.renderPage(w, r, v)
}

func (h *Handler) clearSearch(w http.ResponseWriter, r *http.Request) {
	v, err := viewFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Send()
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	v.Clear()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, v *view.RecordSearchView) {
	page := render.NewPage(v.Snapshot(), v.Printer(), h.locale, webRoutes{})

	_, err := utils.WriteHTML(w, http.StatusOK, func(out io.Writer) error {
		return render.HTML(out, page)
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering search page")
	}
}
