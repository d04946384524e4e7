package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/frostline/storefront/internal/storage"
)

// Store holds one cart. Every mutation runs under the lock and finishes with
// the derived totals recomputed and the full state written to the blob store,
// so no caller ever observes a half-applied transition. Persistence is best
// effort: write failures are logged and the in-memory state stays
// authoritative.
type Store struct {
	mu     sync.Mutex
	state  State
	blob   storage.BlobStore
	key    string
	logger *log.Logger
}

func NewStore(blob storage.BlobStore, key string, logger *log.Logger) *Store {
	return &Store{
		blob:   blob,
		key:    key,
		logger: logger,
		state:  State{Items: []Line{}},
	}
}

// AddItem adds one unit of the product. An existing line for the same
// product gains one to its quantity; otherwise a new line is appended with
// quantity 1, keeping insertion order. There is no quantity cap.
func (s *Store) AddItem(ctx context.Context, line Line) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(line)
	s.recompute()
	s.persist(ctx)
	return s.snapshot()
}

// RemoveItem deletes the whole line for the product, regardless of quantity.
func (s *Store) RemoveItem(ctx context.Context, productID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.state.Items[:0]
	for _, it := range s.state.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	s.state.Items = items
	s.recompute()
	s.persist(ctx)
	return s.snapshot()
}

// UpdateQuantity sets the line's quantity to max(1, q). It never removes a
// line; callers that want a line gone use RemoveItem. Unknown product IDs are
// a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, q int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q < 1 {
		q = 1
	}
	for i := range s.state.Items {
		if s.state.Items[i].ProductID == productID {
			s.state.Items[i].Quantity = q
			s.recompute()
			s.persist(ctx)
			break
		}
	}
	return s.snapshot()
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = []Line{}
	s.recompute()
	s.persist(ctx)
	return s.snapshot()
}

// Contains reports whether the product has a line in the cart.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.state.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Restore loads the persisted blob and rebuilds the cart from it. A missing
// blob is an empty cart. Unparseable content is discarded and the key
// deleted. Parsed items that fail validation are dropped; the survivors are
// replayed through the add path one quantity unit at a time, so the derived
// totals always agree with what the same sequence of AddItem calls would
// have produced.
func (s *Store) Restore(ctx context.Context) error {
	raw, ok, err := s.blob.Get(ctx, s.key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var persisted State
	if err := json.Unmarshal(raw, &persisted); err != nil {
		s.logger.Printf("cart %s: discarding corrupt blob: %v", s.key, err)
		if err := s.blob.Delete(ctx, s.key); err != nil {
			s.logger.Printf("cart %s: delete corrupt blob: %v", s.key, err)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Items: []Line{}}
	for _, it := range persisted.Items {
		if !validLine(it) {
			s.logger.Printf("cart %s: dropping invalid line %q", s.key, it.ProductID)
			continue
		}
		unit := it
		unit.Quantity = 1
		for n := 0; n < it.Quantity; n++ {
			s.add(unit)
		}
	}
	s.recompute()
	s.persist(ctx)
	return nil
}

func validLine(l Line) bool {
	return l.ProductID != "" && l.Title != "" && l.Image != "" && l.Price > 0 && l.Quantity >= 1
}

// add must be called with the lock held.
func (s *Store) add(line Line) {
	for i := range s.state.Items {
		if s.state.Items[i].ProductID == line.ProductID {
			s.state.Items[i].Quantity++
			return
		}
	}
	line.Quantity = 1
	s.state.Items = append(s.state.Items, line)
}

// recompute must be called with the lock held after every mutation.
func (s *Store) recompute() {
	totalItems := 0
	totalPrice := 0.0
	for _, it := range s.state.Items {
		totalItems += it.Quantity
		totalPrice += EffectivePrice(it) * float64(it.Quantity)
	}
	s.state.TotalItems = totalItems
	s.state.TotalPrice = totalPrice
}

// persist must be called with the lock held.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Printf("cart %s: marshal state: %v", s.key, err)
		return
	}
	if err := s.blob.Put(ctx, s.key, raw); err != nil {
		s.logger.Printf("cart %s: persist state: %v", s.key, err)
	}
}

func (s *Store) snapshot() State {
	out := s.state
	out.Items = make([]Line, len(s.state.Items))
	copy(out.Items, s.state.Items)
	return out
}
