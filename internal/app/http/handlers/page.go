package handlers

import (
	"net/http"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/app/http/web"
)

func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	h.sessionID(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Index(w); err != nil {
		h.Log.Warnf("page: render failed: %v", err)
	}
}
