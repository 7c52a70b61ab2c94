package catalog

import "context"

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Provider serves the product listing to the HTTP layer.
type Provider interface {
	List(ctx context.Context) ([]Product, error)
	Ping(ctx context.Context) error
}

// Catalog is an ordered, fixed set of products. It is built once and never
// written afterward, so it can be shared by any number of goroutines.
type Catalog struct {
	products []Product
}

func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "iPhone", Description: "Apple iPhone 15", Price: 999.99},
		{ID: 2, Name: "MacBook", Description: "Apple MacBook Air", Price: 1299.99},
	}
}

func NewCatalog(products ...Product) *Catalog {
	c := &Catalog{products: make([]Product, len(products))}
	copy(c.products, products)
	return c
}

func NewDefaultCatalog() *Catalog {
	return NewCatalog(DefaultProducts()...)
}

func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) Ping(ctx context.Context) error { return nil }

// List returns the products in insertion order. The result is a copy.
func (c *Catalog) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out, nil
}
