package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Range is an inclusive price interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters selects a subset of the catalog. Dimensions combine with AND;
// the values inside one dimension combine with OR. A zero-value dimension
// is inactive.
type Filters struct {
	Categories []string `json:"categories,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	PriceRange *Range   `json:"priceRange,omitempty"`
	Ratings    []int    `json:"ratings,omitempty"`
	InStock    *bool    `json:"inStock,omitempty"`
	Search     string   `json:"search,omitempty"`
}

// Sort options accepted by Sort. Anything else falls back to SortFeatured.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Apply runs the filter chain over the full product list and returns the
// survivors in their original order. Filtering is a full rescan each call,
// never incremental.
func Apply(products []Product, f Filters) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filters) matches(p Product) bool {
	if q := strings.TrimSpace(f.Search); q != "" && !matchesSearch(p, q) {
		return false
	}
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if f.PriceRange != nil && (p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max) {
		return false
	}
	if len(f.Ratings) > 0 && !matchesRating(f.Ratings, p.Rating) {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

func matchesSearch(p Product, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{p.Title, p.Brand, p.Category, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesRating compares against the integer floor of the product rating,
// an exact bucket match rather than "bucket and up".
func matchesRating(buckets []int, rating float64) bool {
	floor := int(math.Floor(rating))
	for _, b := range buckets {
		if b == floor {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// Sort orders products in place according to option. It always runs after
// filtering. Unknown options (including SortFeatured) keep the incoming order.
func Sort(products []Product, option string) {
	switch option {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return numericID(products[i].ID) > numericID(products[j].ID)
		})
	}
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
