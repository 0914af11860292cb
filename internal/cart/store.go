package cart

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store holds the active session carts in process memory. Carts are
// never persisted; they vanish on clear or process exit. Requests for
// the same session can arrive concurrently, so a mutex guards the map.
type Store struct {
	mu     sync.Mutex
	carts  map[string]*Cart
	logger zerolog.Logger
}

// NewStore creates an empty session cart store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		carts:  make(map[string]*Cart),
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

// Update runs fn against the session's cart, creating the cart if the
// session has none yet. The callback runs under the store lock.
func (s *Store) Update(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
		s.logger.Debug().Str("session_id", sessionID).Msg("session cart created")
	}
	fn(c)
}

// View runs fn against a snapshot-safe view of the session's cart.
// Sessions without a cart see an empty one.
func (s *Store) View(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
	}
	fn(c)
}

// Clear empties and drops the session's cart.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	s.logger.Debug().Str("session_id", sessionID).Msg("session cart cleared")
}
