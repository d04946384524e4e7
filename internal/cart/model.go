package cart

// Line is one row in the cart: a unique product and its quantity.
type Line struct {
	ProductID   string  `json:"productId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	MRP         float64 `json:"mrp"`
	DiscountPct float64 `json:"discountPct"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// State is the full cart. TotalItems and TotalPrice are derived from Items
// and recomputed after every mutation, never mutated independently.
type State struct {
	Items      []Line  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}
