package memory

import (
	"context"
	"sync"

	"github.com/paystream/txengine/internal/interfaces"
	"github.com/paystream/txengine/internal/models"
)

// Store is an in-memory implementation of interfaces.Ledger backed by a map.
// Each account owns its own Store, but the mutex keeps it safe should a
// caller ever share one across goroutines.
type Store struct {
	mu sync.Mutex
	db map[models.TransactionID]models.TransactionState
}

// NewStore creates an empty in-memory ledger.
func NewStore() *Store {
	return &Store{
		db: make(map[models.TransactionID]models.TransactionState),
	}
}

// Contains reports whether the given transaction id has been recorded.
func (s *Store) Contains(ctx context.Context, id models.TransactionID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.db[id]
	return ok, nil
}

// Get returns the recorded state for the given transaction id, or nil when
// the id is unknown.
func (s *Store) Get(ctx context.Context, id models.TransactionID) (*models.TransactionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.db[id]
	if !ok {
		return nil, nil
	}
	// return a copy so callers can't mutate the stored record
	return &state, nil
}

// Insert records or updates the state for the given transaction id.
// Always succeeds in memory; a real database could fail here.
func (s *Store) Insert(ctx context.Context, id models.TransactionID, state models.TransactionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db[id] = state
	return nil
}

// Compile-time check: ensure Store implements the Ledger interface
var _ interfaces.Ledger = (*Store)(nil)
