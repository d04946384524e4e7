package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/frostline/storefront/internal/order"
)

const OrderPlacedQueue = "order.placed"

// OrderPlaced is the wire contract published when an order is placed.
type OrderPlaced struct {
	EventType string            `json:"eventType"`
	EventID   string            `json:"eventId"`
	OrderID   string            `json:"orderId"`
	UserID    string            `json:"userId"`
	Total     float64           `json:"totalAmount"`
	Items     []OrderPlacedItem `json:"items"`
	Timestamp time.Time         `json:"timestamp"`
}

type OrderPlacedItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher opens a channel and declares the queue up front so publishing
// never fails on missing infra.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(OrderPlacedQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", OrderPlacedQueue, err)
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	ev := BuildOrderPlaced(o)

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",               // default exchange
		OrderPlacedQueue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// BuildOrderPlaced maps an order onto the event contract.
func BuildOrderPlaced(o *order.Order) OrderPlaced {
	ev := OrderPlaced{
		EventType: "OrderPlaced",
		EventID:   uuid.NewString(),
		OrderID:   o.OrderID,
		UserID:    o.UserID,
		Total:     o.Total,
		Timestamp: time.Now().UTC(),
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderPlacedItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return ev
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	return nil
}

// MustDialRabbit connects to RabbitMQ or panics; call only at startup.
func MustDialRabbit(url string) *amqp.Connection {
	conn, err := amqp.Dial(url)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to RabbitMQ: %v", err))
	}
	return conn
}
