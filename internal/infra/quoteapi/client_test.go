package quoteapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testClient(url string) *Client {
	return New(url, 5*time.Second, zap.NewNop().Sugar())
}

func TestCotizarSendsEnvelopeAndDecodes(t *testing.T) {
	var calls int
	var got cotizarEnvelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != "/cotizar" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cliente":"Ana","fecha":"2025-03-01",
			"items":[{"producto":"Silla","cantidad":5,"precioUnitario":10.0,"subtotal":50.0}],
			"subtotal":50.0,"iva":9.5,"total":59.5,
			"debug":{"textoInterpretado":"cinco sillas","formatoProcesado":"text"}
		}`))
	}))
	defer srv.Close()

	data := CotizarData{
		Nombre:        "Ana",
		Requerimiento: "cinco sillas de comedor",
		Formato:       "text",
		IngresoFecha:  "2025-03-01T10:00:00Z",
	}
	cot, err := testClient(srv.URL).Cotizar(context.Background(), data)
	if err != nil {
		t.Fatalf("cotizar: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls %d, want exactly one POST", calls)
	}
	if got.Data.Formato != "text" || got.Data.Requerimiento != "cinco sillas de comedor" {
		t.Fatalf("sent data %+v", got.Data)
	}
	if cot.Total != 59.5 || len(cot.Items) != 1 || cot.Items[0].Producto != "Silla" {
		t.Fatalf("decoded %+v", cot)
	}
	if cot.Debug == nil || cot.Debug.TextoInterpretado != "cinco sillas" {
		t.Fatalf("debug %+v", cot.Debug)
	}
}

func TestCotizarSurfacesMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"mensaje":"Formato invalido"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Cotizar(context.Background(), CotizarData{})
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if re.Mensaje != "Formato invalido" {
		t.Fatalf("mensaje %q", re.Mensaje)
	}
	if re.Status != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", re.Status)
	}
}

func TestCotizarGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>upstream exploded</html>`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Cotizar(context.Background(), CotizarData{})
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if re.Mensaje != GenericMensaje {
		t.Fatalf("mensaje %q, want generic fallback", re.Mensaje)
	}
}

func TestCatalogoDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/catalogo" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"total":2,"categorias":["sillas","mesas"],"productos":[
			{"id":"p1","nombre":"Silla Oslo","categoria":"sillas","precio":120.0},
			{"id":"p2","nombre":"Mesa Centro","categoria":"mesas","precio":340.5,"descripcion":"vidrio templado"}
		]}`))
	}))
	defer srv.Close()

	cat, err := testClient(srv.URL).Catalogo(context.Background())
	if err != nil {
		t.Fatalf("catalogo: %v", err)
	}
	if cat.Total != 2 || len(cat.Productos) != 2 || cat.Productos[1].Descripcion != "vidrio templado" {
		t.Fatalf("decoded %+v", cat)
	}
}

func TestCatalogoErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Catalogo(context.Background()); err == nil {
		t.Fatal("want error on non-2xx catalogo")
	}
}
