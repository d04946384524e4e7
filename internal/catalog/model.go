package catalog

// Product is one entry in the static catalog. The list is compiled in and
// read-only; there is no product lifecycle beyond load-once at startup.
type Product struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Brand        string            `json:"brand"`
	Category     string            `json:"category"`
	Description  string            `json:"description,omitempty"`
	Price        float64           `json:"price"`
	MRP          float64           `json:"mrp"`
	DiscountPct  float64           `json:"discountPct"`
	Rating       float64           `json:"rating"`
	ReviewsCount int               `json:"reviewsCount"`
	Image        string            `json:"image"`
	Images       []string          `json:"images,omitempty"`
	Features     []string          `json:"features,omitempty"`
	Specs        map[string]string `json:"specs,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	InStock      bool              `json:"inStock"`
}
