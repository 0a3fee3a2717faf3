package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/app/config"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote/pdf"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/quoteapi"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/session"
)

type Handlers struct {
	Cfg   config.Config
	Log   *zap.SugaredLogger
	Store *session.Store
	API   *quoteapi.Client
	PDF   pdf.Generator
}

func New(cfg config.Config, log *zap.SugaredLogger, store *session.Store, api *quoteapi.Client, gen pdf.Generator) *Handlers {
	return &Handlers{
		Cfg:   cfg,
		Log:   log,
		Store: store,
		API:   api,
		PDF:   gen,
	}
}

const sessionCookie = "mm_session"

// sessionID resolves the browser session, minting a cookie on first contact.
func (h *Handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMensaje is the inline-error envelope the page renders next to the form.
func writeMensaje(w http.ResponseWriter, status int, mensaje string) {
	writeJSON(w, status, map[string]string{"mensaje": mensaje})
}
