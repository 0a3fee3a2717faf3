package gofpdf

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"
)

// Generator renders a quotation view onto a single A4 portrait page. Values
// arrive pre-formatted; nothing is recomputed here.
type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(v quote.View) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cotización", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Cotización Megamobilier"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if v.Cliente != "" {
		pdf.Cell(0, 6, tr("Cliente: "+v.Cliente))
		pdf.Ln(6)
	}
	if v.Fecha != "" {
		pdf.Cell(0, 6, tr("Fecha: "+v.Fecha))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(95, 7, tr("Producto"))
	pdf.Cell(25, 7, tr("Cantidad"))
	pdf.Cell(35, 7, tr("Precio unitario"))
	pdf.Cell(35, 7, tr("Subtotal"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range v.Items {
		pdf.Cell(95, 6, tr(trim(it.Producto, 52)))
		pdf.Cell(25, 6, it.Cantidad)
		pdf.Cell(35, 6, it.PrecioUnitario)
		pdf.Cell(35, 6, it.Subtotal)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Subtotal: "+v.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("IVA: "+v.IVA))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Total: "+v.Total))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, tr("Megamobilier • Cotizador de muebles"))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr("Generado: "+time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
