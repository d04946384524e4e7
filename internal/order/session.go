package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/frostline/storefront/internal/storage"
)

// SessionStore keeps the per-user "pending" and "last" order blobs that
// bridge checkout to the confirmation view across a reload. A corrupt blob
// reads as absent; the fallback chain treats both the same way.
type SessionStore struct {
	blob   storage.BlobStore
	logger *log.Logger
}

func NewSessionStore(blob storage.BlobStore, logger *log.Logger) *SessionStore {
	return &SessionStore{blob: blob, logger: logger}
}

func pendingKey(userID string) string { return "order:pending:" + userID }
func lastKey(userID string) string    { return "order:last:" + userID }

func (s *SessionStore) Pending(ctx context.Context, userID string) (*Order, error) {
	return s.get(ctx, pendingKey(userID))
}

func (s *SessionStore) Last(ctx context.Context, userID string) (*Order, error) {
	return s.get(ctx, lastKey(userID))
}

func (s *SessionStore) SetPending(ctx context.Context, userID string, o *Order) error {
	return s.put(ctx, pendingKey(userID), o)
}

func (s *SessionStore) SetLast(ctx context.Context, userID string, o *Order) error {
	return s.put(ctx, lastKey(userID), o)
}

func (s *SessionStore) ClearPending(ctx context.Context, userID string) error {
	return s.blob.Delete(ctx, pendingKey(userID))
}

func (s *SessionStore) get(ctx context.Context, key string) (*Order, error) {
	raw, ok, err := s.blob.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var o Order
	if err := json.Unmarshal(raw, &o); err != nil {
		s.logger.Printf("session %s: discarding corrupt blob: %v", key, err)
		if err := s.blob.Delete(ctx, key); err != nil {
			s.logger.Printf("session %s: delete corrupt blob: %v", key, err)
		}
		return nil, nil
	}
	return &o, nil
}

func (s *SessionStore) put(ctx context.Context, key string, o *Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.blob.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
