package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/session"
	"github.com/MKhiriev/go-maintenance-search/internal/utils"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
)

type viewCtxKey struct{}

// withSession resolves the session cookie, issuing a new session when the
// cookie is missing or fails verification, and attaches the session's view
// to the request context.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sessionID, err := h.sessionFromCookie(r)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				log.Warn().Err(err).Msg("rejected session cookie, starting a new session")
			}

			token, issueErr := h.signer.Issue()
			if issueErr != nil {
				log.Err(issueErr).Msg("error issuing session")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			sessionID = token.SessionID
			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    token.String(),
				Path:     "/",
				MaxAge:   int(h.signer.Duration().Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := utils.WithSessionID(r.Context(), sessionID)
		ctx = context.WithValue(ctx, viewCtxKey{}, h.sessions.Get(sessionID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sessionFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return "", err
	}
	return h.signer.Verify(cookie.Value)
}

func viewFromRequest(r *http.Request) (*view.RecordSearchView, error) {
	v, ok := r.Context().Value(viewCtxKey{}).(*view.RecordSearchView)
	if !ok || v == nil {
		return nil, ErrNoSessionView
	}
	return v, nil
}
