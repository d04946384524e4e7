package order

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/frostline/storefront/internal/cart"
)

var (
	// ErrEmptyCart rejects a checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoOrder means no pending order, no last order, and an empty cart:
	// there are no order details to show.
	ErrNoOrder = errors.New("no order details found")
)

// Publisher emits an event when an order is placed.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, o *Order) error
}

// Service runs checkout and the confirmation fallback chain.
type Service struct {
	carts     *cart.Manager
	session   *SessionStore
	repo      Repository
	publisher Publisher
	logger    *log.Logger

	// paymentDelay simulates the payment gateway round trip. The wait is
	// cooperative: it ends early if the request context is cancelled.
	paymentDelay time.Duration

	now   func() time.Time
	newID func() string
}

func NewService(carts *cart.Manager, session *SessionStore, repo Repository, publisher Publisher, paymentDelay time.Duration, logger *log.Logger) *Service {
	return &Service{
		carts:        carts,
		session:      session,
		repo:         repo,
		publisher:    publisher,
		logger:       logger,
		paymentDelay: paymentDelay,
		now:          time.Now,
		newID:        NewOrderID,
	}
}

// Checkout places an order from the user's current cart: simulated payment,
// pending session blob, durable archive row, OrderPlaced event. The live cart
// is left intact here; the confirmation step clears it.
func (s *Service) Checkout(ctx context.Context, userID, shippingAddress, paymentMethod string) (*Order, error) {
	store, err := s.carts.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.processPayment(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	o := &Order{
		OrderID:           s.newID(),
		UserID:            userID,
		Items:             snap.Items,
		Total:             snap.TotalPrice,
		ShippingAddress:   shippingAddress,
		PaymentMethod:     paymentMethod,
		EstimatedDelivery: now.Add(3 * 24 * time.Hour),
		Timestamp:         now,
	}

	if err := s.session.SetPending(ctx, userID, o); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	// Event delivery is best effort; the order is already placed.
	if err := s.publisher.PublishOrderPlaced(ctx, o); err != nil {
		s.logger.Printf("order %s: publish OrderPlaced: %v", o.OrderID, err)
	}

	return o, nil
}

// Confirm resolves the order to show on the confirmation view:
// pending order, else last order, else an order synthesized from a non-empty
// cart, else ErrNoOrder. Consuming a pending order promotes it to the last
// order, clears the pending blob, and clears the live cart, so a reload of
// the view keeps working.
func (s *Service) Confirm(ctx context.Context, userID string) (*Order, error) {
	pending, err := s.session.Pending(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		if err := s.session.SetLast(ctx, userID, pending); err != nil {
			return nil, err
		}
		if err := s.session.ClearPending(ctx, userID); err != nil {
			return nil, err
		}
		store, err := s.carts.ForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		store.Clear(ctx)
		return pending, nil
	}

	last, err := s.session.Last(ctx, userID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		return last, nil
	}

	store, err := s.carts.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return nil, ErrNoOrder
	}
	return &Order{
		OrderID:   s.newID(),
		UserID:    userID,
		Items:     snap.Items,
		Total:     snap.TotalPrice,
		Timestamp: s.now(),
	}, nil
}

// Orders returns the user's archived orders, newest first.
func (s *Service) Orders(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) processPayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}
	t := time.NewTimer(s.paymentDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
