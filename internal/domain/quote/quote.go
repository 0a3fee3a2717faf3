package quote

// Cotizacion is the quotation exactly as the quoting backend returned it.
// Every amount is server-computed; nothing here re-derives or validates the
// arithmetic.
type Cotizacion struct {
	Cliente  string  `json:"cliente"`
	Fecha    string  `json:"fecha"`
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
	IVA      float64 `json:"iva"`
	Total    float64 `json:"total"`
	Debug    *Debug  `json:"debug,omitempty"`
}

type Item struct {
	Producto       string  `json:"producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
}

// Debug carries the backend's interpretation trace. Informational only; it
// never feeds back into the displayed amounts.
type Debug struct {
	TextoInterpretado string `json:"textoInterpretado,omitempty"`
	FormatoProcesado  string `json:"formatoProcesado,omitempty"`
}
