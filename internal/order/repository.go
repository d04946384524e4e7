package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/frostline/storefront/internal/cart"
)

// Repository archives placed orders. GetByID returns (nil, nil) when the
// order does not exist; the handler turns that into a 404.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.OrderID, o.UserID, o.Total, o.ShippingAddress, o.PaymentMethod, o.EstimatedDelivery, o.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, title, quantity, price, mrp, discount_pct)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), o.OrderID, it.ProductID, it.Title, it.Quantity, it.Price, it.MRP, it.DiscountPct,
		)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at
         FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.OrderID, &o.UserID, &o.Total, &o.ShippingAddress, &o.PaymentMethod, &o.EstimatedDelivery, &o.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	items, err := r.loadItems(ctx, o.OrderID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, total_amount, shipping_address, payment_method, estimated_delivery, created_at
         FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.Total, &o.ShippingAddress, &o.PaymentMethod, &o.EstimatedDelivery, &o.Timestamp); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *repo) loadItems(ctx context.Context, orderID string) ([]cart.Line, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, title, quantity, price, mrp, discount_pct
         FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order_items: %w", err)
	}
	defer rows.Close()

	var items []cart.Line
	for rows.Next() {
		var it cart.Line
		if err := rows.Scan(&it.ProductID, &it.Title, &it.Quantity, &it.Price, &it.MRP, &it.DiscountPct); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}
