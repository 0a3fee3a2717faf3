package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/capture"
)

// SetModality switches the active input format. Any text or payload captured
// under the previous modality is dropped.
func (h *Handlers) SetModality(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	var req struct {
		Formato string `json:"formato"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMensaje(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	m, ok := capture.ParseModality(req.Formato)
	if !ok {
		writeMensaje(w, http.StatusBadRequest, "Formato de entrada desconocido")
		return
	}

	var form capture.FormState
	h.Store.UpdateForm(id, func(f *capture.FormState) {
		f.SelectModality(m)
		form = *f
	})
	writeJSON(w, http.StatusOK, form)
}

func (h *Handlers) SetText(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	var req struct {
		Texto string `json:"texto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMensaje(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	var form capture.FormState
	h.Store.UpdateForm(id, func(f *capture.FormState) {
		f.SetText(req.Texto)
		form = *f
	})
	writeJSON(w, http.StatusOK, form)
}

// UploadFile accepts exactly one file for the image or audio modality, reads
// it fully and stores it base64-encoded. The file handle is not retained.
func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	maxBytes := int64(h.Cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		h.Log.Warnf("capture upload: parse multipart failed: %v", err)
		writeMensaje(w, http.StatusBadRequest, "El archivo supera el tamaño permitido")
		return
	}

	if formato := strings.TrimSpace(r.FormValue("formato")); formato != "" {
		m, ok := capture.ParseModality(formato)
		if !ok || m == capture.ModalityText {
			writeMensaje(w, http.StatusBadRequest, "Formato de entrada desconocido")
			return
		}
		h.Store.UpdateForm(id, func(f *capture.FormState) { f.SelectModality(m) })
	}
	if h.Store.Form(id).Formato == capture.ModalityText {
		writeMensaje(w, http.StatusBadRequest, "Cambia a imagen o audio para adjuntar un archivo")
		return
	}

	file, fh, err := r.FormFile("file")
	if err != nil {
		writeMensaje(w, http.StatusBadRequest, "Adjunta un archivo")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Log.Warnf("capture upload: read failed: %v", err)
		writeMensaje(w, http.StatusBadRequest, "No pudimos leer el archivo")
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename)))
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	var form capture.FormState
	var attachErr error
	h.Store.UpdateForm(id, func(f *capture.FormState) {
		attachErr = f.AttachPayload(fh.Filename, contentType, data)
		form = *f
	})
	if attachErr != nil {
		var ve *capture.ValidationError
		if errors.As(attachErr, &ve) {
			writeMensaje(w, http.StatusBadRequest, ve.Mensaje)
			return
		}
		writeMensaje(w, http.StatusBadRequest, "No pudimos procesar el archivo")
		return
	}

	h.Log.Infow("capture upload", "file", fh.Filename, "bytes", len(data), "mime", contentType)
	writeJSON(w, http.StatusOK, form)
}
