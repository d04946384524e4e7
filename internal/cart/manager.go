package cart

import (
	"context"
	"log"
	"sync"

	"github.com/frostline/storefront/internal/storage"
)

// Manager hands out one Store per user, restoring each from its blob key on
// first use.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	blob   storage.BlobStore
	logger *log.Logger
}

func NewManager(blob storage.BlobStore, logger *log.Logger) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		blob:   blob,
		logger: logger,
	}
}

// ForUser returns the user's cart store, creating and restoring it if this
// is the first access.
func (m *Manager) ForUser(ctx context.Context, userID string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[userID]; ok {
		return s, nil
	}
	s := NewStore(m.blob, Key(userID), m.logger)
	if err := s.Restore(ctx); err != nil {
		return nil, err
	}
	m.stores[userID] = s
	return s, nil
}

// Key is the blob key a user's cart persists under.
func Key(userID string) string {
	return "cart:" + userID
}
