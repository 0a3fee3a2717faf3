package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/capture"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/catalog"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/recording"
)

// State is everything the page keeps for one browser session. Nothing here
// outlives the process; the backend owns all durable data.
type State struct {
	Form      capture.FormState
	Recording *recording.Session
	Catalog   *catalog.Catalogo
	LastQuote *quote.Cotizacion
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*State)}
}

func NewID() string { return uuid.NewString() }

func (s *Store) get(id string) *State {
	st, ok := s.sessions[id]
	if !ok {
		st = &State{
			Form:      capture.NewFormState(),
			Recording: recording.NewSession(),
		}
		s.sessions[id] = st
	}
	return st
}

// UpdateForm mutates the session's form state under the store lock.
func (s *Store) UpdateForm(id string, fn func(*capture.FormState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.get(id).Form)
}

func (s *Store) Form(id string) capture.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id).Form
}

// Recording returns the session's recorder; the Session carries its own lock.
func (s *Store) Recording(id string) *recording.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id).Recording
}

func (s *Store) SetCatalog(id string, c catalog.Catalogo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(id).Catalog = &c
}

func (s *Store) Catalog(id string) (catalog.Catalogo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[id]
	if !ok || st.Catalog == nil {
		return catalog.Catalogo{}, false
	}
	return *st.Catalog, true
}

func (s *Store) SetQuote(id string, c quote.Cotizacion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(id).LastQuote = &c
}

func (s *Store) Quote(id string) (quote.Cotizacion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[id]
	if !ok || st.LastQuote == nil {
		return quote.Cotizacion{}, false
	}
	return *st.LastQuote, true
}
