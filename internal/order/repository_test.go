package order

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/frostline/storefront/internal/cart"
)

func TestRepositoryCreate_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	o := &Order{
		OrderID:           "123456",
		UserID:            "u1",
		Total:             47400,
		ShippingAddress:   "12 Lake Road",
		PaymentMethod:     "card",
		EstimatedDelivery: now.Add(72 * time.Hour),
		Timestamp:         now,
		Items: []cart.Line{
			{ProductID: "p1", Title: "Split AC", Quantity: 1, Price: 40000, MRP: 46000, DiscountPct: 10},
			{ProductID: "p2", Title: "Microwave", Quantity: 1, Price: 6000, MRP: 6000, DiscountPct: 0},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders (id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`)).
		WithArgs(o.OrderID, o.UserID, o.Total, o.ShippingAddress, o.PaymentMethod, o.EstimatedDelivery, o.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_items (id, order_id, product_id, title, quantity, price, mrp, discount_pct)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)).
		WithArgs(sqlmock.AnyArg(), o.OrderID, "p1", "Split AC", 1, 40000.0, 46000.0, 10.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_items (id, order_id, product_id, title, quantity, price, mrp, discount_pct)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)).
		WithArgs(sqlmock.AnyArg(), o.OrderID, "p2", "Microwave", 1, 6000.0, 6000.0, 0.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectCommit()

	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate_OrderInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	o := &Order{OrderID: "123456", UserID: "u1", Total: 10, EstimatedDelivery: now, Timestamp: now}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders (id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`)).
		WithArgs(o.OrderID, o.UserID, o.Total, "", "", o.EstimatedDelivery, o.Timestamp).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), o)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at
         FROM orders WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	o, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, o)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at
         FROM orders WHERE id = $1`)).
		WithArgs("123456").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "payment_method", "estimated_delivery", "created_at"}).
			AddRow("123456", "u1", 47400.0, "12 Lake Road", "card", now.Add(72*time.Hour), now))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, title, quantity, price, mrp, discount_pct
         FROM order_items WHERE order_id = $1`)).
		WithArgs("123456").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "title", "quantity", "price", "mrp", "discount_pct"}).
			AddRow("p1", "Split AC", 1, 40000.0, 46000.0, 10.0))

	o, err := repo.GetByID(context.Background(), "123456")
	require.NoError(t, err)
	require.NotNil(t, o)
	require.Equal(t, "u1", o.UserID)
	require.Len(t, o.Items, 1)
	require.Equal(t, "p1", o.Items[0].ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListByUser_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at
         FROM orders WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs("u-empty").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "payment_method", "estimated_delivery", "created_at"}))

	orders, err := repo.ListByUser(context.Background(), "u-empty")
	require.NoError(t, err)
	require.Empty(t, orders)
	require.NoError(t, mock.ExpectationsWereMet())
}
