package catalog

// Producto is one purchasable item of the remote catalog. The catalog is
// read-only here; the backend owns every entry.
type Producto struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Categoria   string  `json:"categoria"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion,omitempty"`
}

type Catalogo struct {
	Total      int        `json:"total"`
	Categorias []string   `json:"categorias"`
	Productos  []Producto `json:"productos"`
}

// CategoriaTodas is the default filter value that selects the whole list.
const CategoriaTodas = "todas"

// FilterByCategory is a pure projection over an already fetched list. No
// network call is involved; "todas" and the empty string select everything,
// anything else matches categoria exactly.
func FilterByCategory(items []Producto, categoria string) []Producto {
	if categoria == "" || categoria == CategoriaTodas {
		return items
	}
	out := make([]Producto, 0, len(items))
	for _, p := range items {
		if p.Categoria == categoria {
			out = append(out, p)
		}
	}
	return out
}

// Categories derives the distinct category set in first-seen order.
func Categories(items []Producto) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range items {
		if p.Categoria == "" {
			continue
		}
		if _, ok := seen[p.Categoria]; ok {
			continue
		}
		seen[p.Categoria] = struct{}{}
		out = append(out, p.Categoria)
	}
	return out
}
