package catalog

import "errors"

var ErrNotFound = errors.New("product not found")

// Service serves the read-only catalog. The product list is fixed at
// construction; List re-scans it in full on every call.
type Service struct {
	products []Product
	byID     map[string]Product
}

func NewService(products []Product) *Service {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Service{products: products, byID: byID}
}

// List returns the filtered, sorted view of the catalog.
func (s *Service) List(f Filters, sortOption string) []Product {
	out := Apply(s.products, f)
	Sort(out, sortOption)
	return out
}

func (s *Service) Get(id string) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

// Categories returns the distinct categories in catalog order.
func (s *Service) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
	}
	return out
}

// Brands returns the distinct brands in catalog order.
func (s *Service) Brands() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Brand]; !ok {
			seen[p.Brand] = struct{}{}
			out = append(out, p.Brand)
		}
	}
	return out
}
