package handlers

import (
	"net/http"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/catalog"
)

// Catalog serves the read-only product list with the category filter applied.
// The upstream catalog is fetched once per page session; a fetch failure is
// logged and answered with an empty list, never an error banner.
func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)

	cat, ok := h.Store.Catalog(id)
	if !ok {
		fetched, err := h.API.Catalogo(r.Context())
		if err != nil {
			h.Log.Warnf("catalog: fetch failed: %v", err)
			writeJSON(w, http.StatusOK, catalog.Catalogo{
				Categorias: []string{},
				Productos:  []catalog.Producto{},
			})
			return
		}
		h.Store.SetCatalog(id, fetched)
		cat = fetched
	}

	categorias := cat.Categorias
	if len(categorias) == 0 {
		categorias = catalog.Categories(cat.Productos)
	}

	filtered := catalog.FilterByCategory(cat.Productos, r.URL.Query().Get("categoria"))
	writeJSON(w, http.StatusOK, catalog.Catalogo{
		Total:      len(filtered),
		Categorias: categorias,
		Productos:  filtered,
	})
}
