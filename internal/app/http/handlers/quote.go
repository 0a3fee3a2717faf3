package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/capture"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/quoteapi"
)

// SubmitQuote validates the session form, issues the single upstream POST and
// returns the quotation. No retry, no dedup: a double submit means two
// upstream requests, as in the original page.
func (h *Handlers) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	var req struct {
		Nombre string `json:"nombre"`
		Email  string `json:"email"`
		Ciudad string `json:"ciudad"`
		Texto  string `json:"texto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMensaje(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	var form capture.FormState
	h.Store.UpdateForm(id, func(f *capture.FormState) {
		f.SetRequester(req.Nombre, req.Email, req.Ciudad)
		if f.Formato == capture.ModalityText {
			f.SetText(req.Texto)
		}
		form = *f
	})

	if err := form.Validate(); err != nil {
		var ve *capture.ValidationError
		if errors.As(err, &ve) {
			writeMensaje(w, http.StatusBadRequest, ve.Mensaje)
			return
		}
		writeMensaje(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	data := quoteapi.CotizarData{
		Nombre:        form.Nombre,
		Requerimiento: form.Requirement(),
		Formato:       string(form.Formato),
		Email:         form.Email,
		Ciudad:        form.Ciudad,
		IngresoFecha:  capture.SubmittedAt(time.Now()),
	}

	cot, err := h.API.Cotizar(r.Context(), data)
	if err != nil {
		var re *quoteapi.RequestError
		if errors.As(err, &re) {
			writeMensaje(w, http.StatusBadGateway, re.Mensaje)
			return
		}
		h.Log.Warnf("quote submit: upstream failed: %v", err)
		writeMensaje(w, http.StatusBadGateway, quoteapi.GenericMensaje)
		return
	}

	h.Store.SetQuote(id, cot)
	writeJSON(w, http.StatusOK, cot)
}

// ExportPDF renders the session's last quotation to a single-page PDF and
// sends it as a download. A generation failure reports a generic message and
// leaves the stored quotation untouched.
func (h *Handlers) ExportPDF(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	cot, ok := h.Store.Quote(id)
	if !ok {
		writeMensaje(w, http.StatusNotFound, "Genera una cotización antes de exportar")
		return
	}

	out, err := h.PDF.Generate(quote.NewView(cot))
	if err != nil {
		h.Log.Warnf("quote pdf: generation failed: %v", err)
		writeMensaje(w, http.StatusInternalServerError, "No pudimos generar el PDF. Intenta de nuevo.")
		return
	}

	filename := quote.FileName(cot.Cliente, time.Now())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
