package http

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/render"
	"github.com/MKhiriev/go-maintenance-search/internal/utils"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) openDetail(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, func(v *view.RecordSearchView) models.Navigation {
		return v.OpenDetail(pathParam(r, "id"))
	})
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, func(v *view.RecordSearchView) models.Navigation {
		return v.Edit(pathParam(r, "id"))
	})
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, func(v *view.RecordSearchView) models.Navigation {
		return v.ExportPDF(pathParam(r, "id"))
	})
}

// openCustomerPage redirects to the customer page. The rendered link already
// targets a new browsing context, so the search page stays open.
func (h *Handler) openCustomerPage(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, func(v *view.RecordSearchView) models.Navigation {
		return v.OpenCustomerPage(pathParam(r, "token"))
	})
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request, action func(*view.RecordSearchView) models.Navigation) {
	v, err := viewFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Send()
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	http.Redirect(w, r, rootRelative(action(v).URL), http.StatusSeeOther)
}

// rootRelative anchors a relative navigation target at the site root, so
// "inspection.html?id=1" does not resolve against /records/.
func rootRelative(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" || strings.HasPrefix(u.Path, "/") {
		return target
	}
	return "/" + target
}

// confirmDelete renders the confirmation step of a delete.
func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	v, err := viewFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	id := pathParam(r, "id")
	record, err := v.Record(id)
	if err != nil {
		log.Info().Err(err).Str("id", id).Msg("delete confirmation for unknown record")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	page := render.NewConfirmPage(record, v.Printer(), h.locale, webRoutes{}.Delete(id))
	if _, err = utils.WriteHTML(w, http.StatusOK, func(out io.Writer) error {
		return render.ConfirmHTML(out, page)
	}); err != nil {
		log.Err(err).Msg("error rendering delete confirmation")
	}
}

// deleteRecord deletes when the form carries confirm=yes. Any other answer
// declines. Either way the user returns to the search page, where the
// outcome is shown as a toast.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	v, err := viewFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	confirmer := view.Declined
	if r.PostFormValue("confirm") == "yes" {
		confirmer = view.Confirmed
	}

	id := pathParam(r, "id")
	if err = v.Delete(r.Context(), id, confirmer); err != nil && !errors.Is(err, view.ErrDeleteDeclined) {
		log.Debug().Err(err).Str("id", id).Msg("delete finished with failure toast")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// pathParam returns the decoded value of a route parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
