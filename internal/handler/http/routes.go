package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(5))

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics)
		}
	})

	// routes bound to the session's view
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.index)
		r.Get("/search", h.search)
		r.Post("/search/clear", h.clearSearch)

		r.Get("/records/{id}", h.openDetail)
		r.Get("/records/{id}/edit", h.edit)
		r.Get("/records/{id}/pdf", h.exportPDF)
		r.Get("/customer/{token}", h.openCustomerPage)

		r.Get("/records/{id}/delete", h.confirmDelete)
		r.Post("/records/{id}/delete", h.deleteRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// webRoutes builds the links rendered into the page.
type webRoutes struct{}

func (webRoutes) Detail(id string) string { return "/records/" + url.PathEscape(id) }
func (webRoutes) Edit(id string) string   { return "/records/" + url.PathEscape(id) + "/edit" }
func (webRoutes) PDF(id string) string    { return "/records/" + url.PathEscape(id) + "/pdf" }
func (webRoutes) Customer(token string) string {
	return "/customer/" + url.PathEscape(token)
}
func (webRoutes) Delete(id string) string { return "/records/" + url.PathEscape(id) + "/delete" }
