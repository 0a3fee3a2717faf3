package capture

import (
	"encoding/base64"
	"strings"
	"time"
)

// Modality is the input format currently selected on the form.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
)

func ParseModality(s string) (Modality, bool) {
	switch Modality(strings.TrimSpace(s)) {
	case ModalityText:
		return ModalityText, true
	case ModalityImage:
		return ModalityImage, true
	case ModalityAudio:
		return ModalityAudio, true
	}
	return "", false
}

// ValidationError blocks submission and carries the inline message shown
// next to the form.
type ValidationError struct {
	Mensaje string
}

func (e *ValidationError) Error() string { return e.Mensaje }

// FormState is the page's view model: exactly one modality is active and at
// most one captured payload exists at a time. All mutation goes through the
// named transitions below.
type FormState struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Ciudad string `json:"ciudad,omitempty"`

	Formato Modality `json:"formato"`
	Texto   string   `json:"texto,omitempty"`

	Payload     string `json:"payload,omitempty"` // base64 of the uploaded/recorded bytes
	PayloadName string `json:"payloadName,omitempty"`
	PayloadMIME string `json:"payloadMime,omitempty"`
}

func NewFormState() FormState {
	return FormState{Formato: ModalityText}
}

// SelectModality switches the active input format. Any previously captured
// text or binary payload is dropped, also when re-selecting the current one.
func (f *FormState) SelectModality(m Modality) {
	f.Formato = m
	f.Texto = ""
	f.Payload = ""
	f.PayloadName = ""
	f.PayloadMIME = ""
}

func (f *FormState) SetRequester(nombre, email, ciudad string) {
	f.Nombre = strings.TrimSpace(nombre)
	f.Email = strings.TrimSpace(email)
	f.Ciudad = strings.TrimSpace(ciudad)
}

func (f *FormState) SetText(texto string) {
	f.Texto = texto
	f.Payload = ""
	f.PayloadName = ""
	f.PayloadMIME = ""
}

// AttachPayload installs the fully read file or recording as the single
// captured payload. The original bytes are not retained beyond the encoding.
func (f *FormState) AttachPayload(name, mimeType string, data []byte) error {
	if len(data) == 0 {
		return &ValidationError{Mensaje: "El archivo está vacío"}
	}
	f.Texto = ""
	f.Payload = base64.StdEncoding.EncodeToString(data)
	f.PayloadName = name
	f.PayloadMIME = mimeType
	return nil
}

func (f *FormState) Reset() {
	*f = NewFormState()
}

// Validate checks the state right before submission. A nil return means the
// form can be serialized into a quote request.
func (f *FormState) Validate() error {
	if strings.TrimSpace(f.Nombre) == "" {
		return &ValidationError{Mensaje: "El nombre es requerido"}
	}
	switch f.Formato {
	case ModalityText:
		if strings.TrimSpace(f.Texto) == "" {
			return &ValidationError{Mensaje: "Describe tu requerimiento antes de cotizar"}
		}
	case ModalityImage:
		if err := f.validatePayload("Adjunta una imagen antes de cotizar"); err != nil {
			return err
		}
	case ModalityAudio:
		if err := f.validatePayload("Adjunta o graba un audio antes de cotizar"); err != nil {
			return err
		}
	default:
		return &ValidationError{Mensaje: "Formato de entrada desconocido"}
	}
	return nil
}

func (f *FormState) validatePayload(missing string) error {
	if f.Payload == "" {
		return &ValidationError{Mensaje: missing}
	}
	decoded, err := base64.StdEncoding.DecodeString(f.Payload)
	if err != nil || len(decoded) == 0 {
		return &ValidationError{Mensaje: missing}
	}
	return nil
}

// Requirement returns what goes into the requerimiento field: the typed text
// for the text modality, the base64 payload otherwise.
func (f *FormState) Requirement() string {
	if f.Formato == ModalityText {
		return f.Texto
	}
	return f.Payload
}

// SubmittedAt formats the submission instant the way the quoting API expects
// it in ingresoFecha.
func SubmittedAt(now time.Time) string {
	return now.Format(time.RFC3339)
}
