package quoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/catalog"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"
)

// GenericMensaje is the fallback shown when the backend fails without a
// usable mensaje field.
const GenericMensaje = "No pudimos generar la cotización. Intenta de nuevo."

// RequestError is a non-2xx answer from the quoting backend, carrying the
// human-readable mensaje from its body.
type RequestError struct {
	Status  int
	Mensaje string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("quoteapi: status %d: %s", e.Status, e.Mensaje)
}

// CotizarData is the payload of POST /cotizar. Requerimiento holds the typed
// text or the base64 payload, disambiguated by Formato.
type CotizarData struct {
	Nombre        string `json:"nombre"`
	Requerimiento string `json:"requerimiento"`
	Formato       string `json:"formato"`
	Email         string `json:"email,omitempty"`
	Ciudad        string `json:"ciudad,omitempty"`
	IngresoFecha  string `json:"ingresoFecha"`
}

type cotizarEnvelope struct {
	Data CotizarData `json:"data"`
}

// Client talks to the remote quoting API. It performs no retries and adds no
// idempotency key; a duplicate submission issues a duplicate request.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Log:     log,
	}
}

// Cotizar submits one quote request and decodes the quotation. Non-2xx
// answers become *RequestError with the backend's mensaje when present.
func (c *Client) Cotizar(ctx context.Context, data CotizarData) (quote.Cotizacion, error) {
	body, err := json.Marshal(cotizarEnvelope{Data: data})
	if err != nil {
		return quote.Cotizacion{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/cotizar", bytes.NewReader(body))
	if err != nil {
		return quote.Cotizacion{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Warnf("quoteapi: cotizar request failed: %v", err)
		return quote.Cotizacion{}, fmt.Errorf("cotizar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return quote.Cotizacion{}, c.requestError(resp)
	}

	var out quote.Cotizacion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.Log.Warnf("quoteapi: cotizar decode failed: %v", err)
		return quote.Cotizacion{}, fmt.Errorf("cotizar decode: %w", err)
	}
	return out, nil
}

// Catalogo fetches the read-only product catalog.
func (c *Client) Catalogo(ctx context.Context) (catalog.Catalogo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/catalogo", nil)
	if err != nil {
		return catalog.Catalogo{}, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Warnf("quoteapi: catalogo request failed: %v", err)
		return catalog.Catalogo{}, fmt.Errorf("catalogo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return catalog.Catalogo{}, c.requestError(resp)
	}

	var out catalog.Catalogo
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return catalog.Catalogo{}, fmt.Errorf("catalogo decode: %w", err)
	}
	return out, nil
}

func (c *Client) requestError(resp *http.Response) *RequestError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body struct {
		Mensaje string `json:"mensaje"`
	}
	mensaje := GenericMensaje
	if err := json.Unmarshal(raw, &body); err == nil && strings.TrimSpace(body.Mensaje) != "" {
		mensaje = strings.TrimSpace(body.Mensaje)
	}
	c.Log.Warnf("quoteapi: status=%d mensaje=%s", resp.StatusCode, mensaje)
	return &RequestError{Status: resp.StatusCode, Mensaje: mensaje}
}
