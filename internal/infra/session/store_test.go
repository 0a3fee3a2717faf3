package session

import (
	"testing"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/capture"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/catalog"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"
)

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	a, b := NewID(), NewID()
	if a == b {
		t.Fatal("ids collide")
	}

	s.UpdateForm(a, func(f *capture.FormState) { f.SetText("sofá") })
	if got := s.Form(a).Texto; got != "sofá" {
		t.Fatalf("form a %q", got)
	}
	if got := s.Form(b).Texto; got != "" {
		t.Fatalf("form b leaked %q", got)
	}
}

func TestStoreCatalogAndQuote(t *testing.T) {
	s := NewStore()
	id := NewID()

	if _, ok := s.Catalog(id); ok {
		t.Fatal("catalog present before set")
	}
	s.SetCatalog(id, catalog.Catalogo{Total: 1, Productos: []catalog.Producto{{ID: "p1"}}})
	cat, ok := s.Catalog(id)
	if !ok || cat.Total != 1 {
		t.Fatalf("catalog %+v ok=%v", cat, ok)
	}

	if _, ok := s.Quote(id); ok {
		t.Fatal("quote present before set")
	}
	s.SetQuote(id, quote.Cotizacion{Cliente: "Ana", Total: 59.5})
	q, ok := s.Quote(id)
	if !ok || q.Cliente != "Ana" {
		t.Fatalf("quote %+v ok=%v", q, ok)
	}
}

func TestRecordingIsPerSession(t *testing.T) {
	s := NewStore()
	id := NewID()
	if s.Recording(id) != s.Recording(id) {
		t.Fatal("recording session not stable across lookups")
	}
	if s.Recording(id) == s.Recording(NewID()) {
		t.Fatal("recording session shared across sessions")
	}
}
