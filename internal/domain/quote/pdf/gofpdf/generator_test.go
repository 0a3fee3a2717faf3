package gofpdf

import (
	"bytes"
	"testing"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"
)

func TestGenerateProducesPDF(t *testing.T) {
	v := quote.NewView(quote.Cotizacion{
		Cliente: "Ana Pérez",
		Fecha:   "2025-03-01",
		Items: []quote.Item{
			{Producto: "Silla", Cantidad: 5, PrecioUnitario: 10, Subtotal: 50},
			{Producto: "Mesa de comedor extensible en roble macizo con acabado natural", Cantidad: 1, PrecioUnitario: 890.9, Subtotal: 890.9},
		},
		Subtotal: 940.9,
		IVA:      178.77,
		Total:    1119.67,
	})
	out, err := New().Generate(v)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", out[:8])
	}
}

func TestGenerateEmptyQuote(t *testing.T) {
	out, err := New().Generate(quote.NewView(quote.Cotizacion{}))
	if err != nil {
		t.Fatalf("generate empty: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}
