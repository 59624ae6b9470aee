package domain

import (
	"encoding/json"
	"strings"
)

// Catalog is the authoritative ordered list of purchasable products.
// It is a plain value type; locking and persistence are the caller's
// concern.
type Catalog struct {
	products []Product
}

func NewCatalog(products []Product) *Catalog {
	c := &Catalog{}
	c.ReplaceAll(products)
	return c
}

func (c *Catalog) Add(p Product) {
	c.products = append(c.products, p)
}

// Remove is idempotent: removing an absent id is a no-op.
func (c *Catalog) Remove(id ID) bool {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll swaps the entire catalog contents.
func (c *Catalog) ReplaceAll(products []Product) {
	c.products = make([]Product, len(products))
	copy(c.products, products)
}

// Filter returns products whose name contains the substring,
// case-insensitive, preserving insertion order. An empty query
// returns everything.
func (c *Catalog) Filter(query string) []Product {
	query = strings.ToLower(query)
	matched := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (c *Catalog) Get(id ID) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// MarshalSnapshot serializes the catalog as the stored JSON array of
// products.
func (c *Catalog) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(c.products)
}

// UnmarshalSnapshot parses a stored catalog snapshot.
func UnmarshalSnapshot(data []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// DefaultProducts is the seed catalog used when the store holds no
// usable snapshot.
func DefaultProducts() []Product {
	return []Product{
		{ID: "1", Name: "Пицца Пепперони", Price: 12},
		{ID: "2", Name: "Бургер Классический", Price: 8},
		{ID: "3", Name: "Салат Цезарь", Price: 7},
		{ID: "4", Name: "Картофель фри", Price: 4},
		{ID: "5", Name: "Кока-кола 0.5л", Price: 2},
		{ID: "6", Name: "Мороженое Ванильное", Price: 4},
		{ID: "7", Name: "Суши Сет \"Филадельфия\"", Price: 25},
		{ID: "8", Name: "Паста Карбонара", Price: 10},
	}
}
