package order

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostline/storefront/internal/cart"
	"github.com/frostline/storefront/internal/storage"
)

type fakeRepo struct {
	createFunc     func(ctx context.Context, o *Order) error
	listByUserFunc func(ctx context.Context, userID string) ([]Order, error)
	created        []Order
}

func (f *fakeRepo) Create(ctx context.Context, o *Order) error {
	f.created = append(f.created, *o)
	if f.createFunc != nil {
		return f.createFunc(ctx, o)
	}
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	return nil, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	if f.listByUserFunc != nil {
		return f.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

type fakePublisher struct {
	published []Order
	err       error
}

func (f *fakePublisher) PublishOrderPlaced(ctx context.Context, o *Order) error {
	f.published = append(f.published, *o)
	return f.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testService(t *testing.T, repo Repository, pub Publisher) (*Service, *cart.Manager, *SessionStore) {
	t.Helper()
	carts := cart.NewManager(storage.NewMemory(), testLogger())
	session := NewSessionStore(storage.NewMemory(), testLogger())
	svc := NewService(carts, session, repo, pub, 0, testLogger())
	return svc, carts, session
}

func fillCart(t *testing.T, carts *cart.Manager, userID string) cart.State {
	t.Helper()
	store, err := carts.ForUser(context.Background(), userID)
	require.NoError(t, err)
	store.AddItem(context.Background(), cart.Line{
		ProductID: "p1", Title: "Split AC", Price: 40000, MRP: 46000, DiscountPct: 10, Image: "/p1.jpg",
	})
	store.AddItem(context.Background(), cart.Line{
		ProductID: "p2", Title: "Microwave", Price: 6000, Image: "/p2.jpg",
	})
	return store.Snapshot()
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := testService(t, &fakeRepo{}, &fakePublisher{})

	_, err := svc.Checkout(context.Background(), "u1", "12 Lake Road", "card")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutPlacesOrder(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{}
	svc, carts, session := testService(t, repo, pub)
	snap := fillCart(t, carts, "u1")

	o, err := svc.Checkout(context.Background(), "u1", "12 Lake Road", "card")
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^\d{6}$`), o.OrderID)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, snap.TotalPrice, o.Total)
	assert.Equal(t, snap.Items, o.Items)
	assert.Equal(t, "12 Lake Road", o.ShippingAddress)
	assert.Equal(t, "card", o.PaymentMethod)
	assert.True(t, o.EstimatedDelivery.After(o.Timestamp))

	// archived and published
	require.Len(t, repo.created, 1)
	require.Len(t, pub.published, 1)
	assert.Equal(t, o.OrderID, pub.published[0].OrderID)

	// pending blob written, live cart untouched until confirmation
	pending, err := session.Pending(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, o.OrderID, pending.OrderID)

	store, err := carts.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, store.Snapshot().Items)
}

func TestCheckoutPublishFailureIsNotFatal(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc, carts, _ := testService(t, repo, pub)
	fillCart(t, carts, "u1")

	o, err := svc.Checkout(context.Background(), "u1", "", "")
	require.NoError(t, err)
	require.NotNil(t, o)
	require.Len(t, repo.created, 1)
}

func TestCheckoutArchiveFailure(t *testing.T) {
	repo := &fakeRepo{createFunc: func(ctx context.Context, o *Order) error {
		return errors.New("db down")
	}}
	svc, carts, _ := testService(t, repo, &fakePublisher{})
	fillCart(t, carts, "u1")

	_, err := svc.Checkout(context.Background(), "u1", "", "")
	require.Error(t, err)
}

func TestCheckoutPaymentDelayHonorsCancellation(t *testing.T) {
	svc, carts, _ := testService(t, &fakeRepo{}, &fakePublisher{})
	svc.paymentDelay = 5 * time.Second
	fillCart(t, carts, "u1")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Checkout(ctx, "u1", "", "")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)
}

func TestConfirmConsumesPendingOrder(t *testing.T) {
	svc, carts, session := testService(t, &fakeRepo{}, &fakePublisher{})
	fillCart(t, carts, "u1")

	placed, err := svc.Checkout(context.Background(), "u1", "12 Lake Road", "card")
	require.NoError(t, err)

	o, err := svc.Confirm(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, placed.OrderID, o.OrderID)

	// pending promoted to last, pending cleared, live cart cleared
	pending, err := session.Pending(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, pending)

	last, err := session.Last(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, placed.OrderID, last.OrderID)

	store, err := carts.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, store.Snapshot().Items)
}

func TestConfirmFallsBackToLastOrder(t *testing.T) {
	svc, carts, _ := testService(t, &fakeRepo{}, &fakePublisher{})
	fillCart(t, carts, "u1")

	placed, err := svc.Checkout(context.Background(), "u1", "", "")
	require.NoError(t, err)

	first, err := svc.Confirm(context.Background(), "u1")
	require.NoError(t, err)

	// a reload of the confirmation view keeps resolving the same order
	second, err := svc.Confirm(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, placed.OrderID, first.OrderID)
	assert.Equal(t, first.OrderID, second.OrderID)
}

func TestConfirmSynthesizesFromCart(t *testing.T) {
	svc, carts, _ := testService(t, &fakeRepo{}, &fakePublisher{})
	snap := fillCart(t, carts, "u1")

	o, err := svc.Confirm(context.Background(), "u1")
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^\d{6}$`), o.OrderID)
	assert.Equal(t, snap.TotalPrice, o.Total)
	assert.Len(t, o.Items, 2)
	assert.False(t, o.Timestamp.IsZero())
}

func TestConfirmNothingToShow(t *testing.T) {
	svc, _, _ := testService(t, &fakeRepo{}, &fakePublisher{})

	_, err := svc.Confirm(context.Background(), "u1")
	require.ErrorIs(t, err, ErrNoOrder)
}

func TestNewOrderIDIsSixDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.Regexp(t, regexp.MustCompile(`^\d{6}$`), NewOrderID())
	}
}
