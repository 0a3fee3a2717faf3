package quote

import (
	"fmt"
	"strings"
	"time"
)

// View is the render-ready projection of a Cotizacion: every currency value
// formatted to two decimals, pass-through otherwise. Shared by the page
// template and the PDF generator.
type View struct {
	Cliente  string
	Fecha    string
	Items    []ItemView
	Subtotal string
	IVA      string
	Total    string

	// Interpretado feeds the "interpretado como" banner when present.
	Interpretado string
}

type ItemView struct {
	Producto       string
	Cantidad       string
	PrecioUnitario string
	Subtotal       string
}

func NewView(c Cotizacion) View {
	v := View{
		Cliente:  c.Cliente,
		Fecha:    c.Fecha,
		Subtotal: money(c.Subtotal),
		IVA:      money(c.IVA),
		Total:    money(c.Total),
	}
	for _, it := range c.Items {
		v.Items = append(v.Items, ItemView{
			Producto:       it.Producto,
			Cantidad:       fmt.Sprintf("%d", it.Cantidad),
			PrecioUnitario: money(it.PrecioUnitario),
			Subtotal:       money(it.Subtotal),
		})
	}
	if c.Debug != nil {
		v.Interpretado = strings.TrimSpace(c.Debug.TextoInterpretado)
	}
	return v
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FileName builds the download name for the exported PDF: client name with
// whitespace collapsed to underscores plus the current ISO date.
func FileName(cliente string, on time.Time) string {
	name := strings.Join(strings.Fields(cliente), "_")
	if name == "" {
		name = "Cliente"
	}
	return fmt.Sprintf("Cotizacion_%s_%s.pdf", name, on.Format("2006-01-02"))
}
