package session

import (
	"net/http"
	"sync"

	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/google/uuid"
)

const CookieName = "pos_session"

type Flash struct {
	Level   string
	Message string
}

// Session holds the per-browser state: the cart value and pending
// flash notices. One session serves one user, the mutex only guards
// against double-submits from the same browser.
type Session struct {
	ID string

	mu      sync.Mutex
	cart    domain.Cart
	flashes []Flash
}

func (s *Session) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

func (s *Session) SetCart(c domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = c
}

func (s *Session) ClearCart() {
	s.SetCart(domain.Cart{})
}

func (s *Session) Flash(level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, Flash{level, message})
}

// PopFlashes returns the pending notices and clears them, so each
// notice renders exactly once.
func (s *Session) PopFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs := s.flashes
	s.flashes = nil
	return fs
}

// Store keeps sessions in memory, keyed by the cookie value.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session referenced by the request cookie, creating
// the session and setting the cookie when absent or unknown.
func (st *Store) Get(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(CookieName); err == nil {
		st.mu.Lock()
		s, ok := st.sessions[c.Value]
		st.mu.Unlock()
		if ok {
			return s
		}
	}

	s := &Session{ID: uuid.NewString()}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}
