// domain/product.go
package domain

type ProductRepository interface {
	GetAll() ([]Product, error)
	// GetByID returns nil when no product carries the id.
	GetByID(id int) (*Product, error)
	// GetByCategory matches the category field case-insensitively.
	GetByCategory(category string) ([]Product, error)
	Add(product Product) error
	NextID() int
}
