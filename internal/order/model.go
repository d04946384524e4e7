package order

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/frostline/storefront/internal/cart"
)

// Order is a placed (or synthesized) order. Pending and last-order session
// blobs and the archive rows all carry this shape.
type Order struct {
	OrderID           string      `json:"orderId"`
	UserID            string      `json:"userId"`
	Items             []cart.Line `json:"items"`
	Total             float64     `json:"total"`
	ShippingAddress   string      `json:"shippingAddress,omitempty"`
	PaymentMethod     string      `json:"paymentMethod,omitempty"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	Timestamp         time.Time   `json:"timestamp"`
}

// NewOrderID returns a random 6-digit order id.
func NewOrderID() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
