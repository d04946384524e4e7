package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names for shareable filtered catalog views. Parsing and
// encoding round-trip symmetrically: a parameter is absent exactly when the
// corresponding filter dimension is inactive.
const (
	paramCategory = "category"
	paramBrand    = "brand"
	paramPrice    = "price"
	paramRating   = "rating"
	paramInStock  = "inStock"
	paramSearch   = "search"
	paramSort     = "sort"
)

// ParseQuery decodes filters and the sort option from URL query parameters.
// Malformed values for a dimension leave that dimension inactive.
func ParseQuery(values url.Values) (Filters, string) {
	var f Filters

	f.Categories = splitList(values.Get(paramCategory))
	f.Brands = splitList(values.Get(paramBrand))

	if raw := values.Get(paramPrice); raw != "" {
		if r, ok := parsePriceRange(raw); ok {
			f.PriceRange = &r
		}
	}

	for _, part := range splitList(values.Get(paramRating)) {
		if n, err := strconv.Atoi(part); err == nil {
			f.Ratings = append(f.Ratings, n)
		}
	}

	if raw := values.Get(paramInStock); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			f.InStock = &b
		}
	}

	f.Search = strings.TrimSpace(values.Get(paramSearch))

	return f, values.Get(paramSort)
}

// Query encodes the filters and sort option back into URL query parameters.
func (f Filters) Query(sortOption string) url.Values {
	values := url.Values{}

	if len(f.Categories) > 0 {
		values.Set(paramCategory, strings.Join(f.Categories, ","))
	}
	if len(f.Brands) > 0 {
		values.Set(paramBrand, strings.Join(f.Brands, ","))
	}
	if f.PriceRange != nil {
		values.Set(paramPrice, formatNumber(f.PriceRange.Min)+"-"+formatNumber(f.PriceRange.Max))
	}
	if len(f.Ratings) > 0 {
		parts := make([]string, len(f.Ratings))
		for i, n := range f.Ratings {
			parts[i] = strconv.Itoa(n)
		}
		values.Set(paramRating, strings.Join(parts, ","))
	}
	if f.InStock != nil {
		values.Set(paramInStock, strconv.FormatBool(*f.InStock))
	}
	if f.Search != "" {
		values.Set(paramSearch, f.Search)
	}
	if sortOption != "" && sortOption != SortFeatured {
		values.Set(paramSort, sortOption)
	}

	return values
}

func parsePriceRange(raw string) (Range, bool) {
	minStr, maxStr, ok := strings.Cut(raw, "-")
	if !ok {
		return Range{}, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	if err != nil {
		return Range{}, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if err != nil {
		return Range{}, false
	}
	if min > max {
		return Range{}, false
	}
	return Range{Min: min, Max: max}, true
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%g", v)
}
