package product

import (
	"sort"
	"strings"
	"sync"
)

// Query derives a displayed subset and ordering of products from a
// case-insensitive substring query and a sort mode. The source slice is
// never mutated; ties keep their original relative order.
func Query(products []Product, query string, mode SortMode) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]Product, 0, len(products))
	for _, p := range products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			result = append(result, p)
		}
	}

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Title < result[j].Title
		})
	}

	return result
}

// Catalog is the in-memory product list, loaded once at startup and
// replaced wholesale after admin writes.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Replace swaps the full product list.
func (c *Catalog) Replace(products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
}

// Snapshot returns a copy of the current product list.
func (c *Catalog) Snapshot() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Query filters and sorts the current list without mutating it.
func (c *Catalog) Query(query string, mode SortMode) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Query(c.products, query, mode)
}

// BySlug returns the product with the given slug.
func (c *Catalog) BySlug(slug string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// ByID returns the product with the given identifier.
func (c *Catalog) ByID(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
