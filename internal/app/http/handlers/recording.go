package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/capture"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/recording"
)

type recordingStatus struct {
	Estado   recording.State `json:"estado"`
	Segundos int             `json:"segundos"`
}

// StartRecording moves the session recorder idle→recording. The page reports
// a browser-side microphone denial with denied=true; the recorder then stays
// idle and the permission message is surfaced inline.
func (h *Handlers) StartRecording(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	var req struct {
		Denied bool `json:"denied"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Denied {
		h.Log.Warnf("recording: microphone permission denied session=%s", id)
		writeMensaje(w, http.StatusForbidden, recording.ErrPermissionDenied.Error())
		return
	}

	rec := h.Store.Recording(id)
	if err := rec.Start(time.Now()); err != nil {
		writeMensaje(w, http.StatusConflict, "Ya hay una grabación en curso")
		return
	}
	writeJSON(w, http.StatusOK, recordingStatus{Estado: rec.State()})
}

// AppendChunk accepts one binary audio block from the live stream.
func (h *Handlers) AppendChunk(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	maxBytes := int64(h.Cfg.MaxUploadMB) << 20
	chunk, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		writeMensaje(w, http.StatusBadRequest, "No pudimos leer el audio")
		return
	}

	rec := h.Store.Recording(id)
	if err := rec.Append(chunk); err != nil {
		writeMensaje(w, http.StatusConflict, "No hay una grabación en curso")
		return
	}
	writeJSON(w, http.StatusOK, recordingStatus{
		Estado:   rec.State(),
		Segundos: rec.Elapsed(time.Now()),
	})
}

// StopRecording closes the session, joins the captured chunks and installs
// the encoded audio as the form payload, same shape as an uploaded file.
func (h *Handlers) StopRecording(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	rec := h.Store.Recording(id)
	p, err := rec.Stop(time.Now())
	if err != nil {
		if errors.Is(err, recording.ErrNotRecording) {
			writeMensaje(w, http.StatusConflict, "No hay una grabación en curso")
			return
		}
		writeMensaje(w, http.StatusInternalServerError, "No pudimos detener la grabación")
		return
	}

	if p.Base64 != "" {
		data, decErr := base64.StdEncoding.DecodeString(p.Base64)
		if decErr == nil {
			h.Store.UpdateForm(id, func(f *capture.FormState) {
				f.SelectModality(capture.ModalityAudio)
				f.AttachPayload("grabacion.webm", "audio/webm", data)
			})
		}
	}

	h.Log.Infow("recording stopped", "session", id, "bytes", p.Bytes, "seconds", p.Seconds)
	writeJSON(w, http.StatusOK, p)
}
