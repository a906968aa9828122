package repository

import (
	"fmt"
	"strings"

	"catalog_service/internal/domain"
	"catalog_service/internal/storage"

	"github.com/sirupsen/logrus"
)

const productsCollection = "products"

type storeProductRepository struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewStoreProductRepository(store *storage.Store, logger *logrus.Logger) domain.ProductRepository {
	return &storeProductRepository{
		store: store,
		log:   logger,
	}
}

func (r *storeProductRepository) GetAll() ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.store.Collection(productsCollection, &products); err != nil {
		r.log.Errorf("Repository: failed to read products: %v", err)
		return nil, fmt.Errorf("could not get products: %w", err)
	}
	return products, nil
}

func (r *storeProductRepository) GetByID(id int) (*domain.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (r *storeProductRepository) GetByCategory(category string) ([]domain.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []domain.Product{}
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *storeProductRepository) Add(product domain.Product) error {
	if err := r.store.Append(productsCollection, product); err != nil {
		r.log.Errorf("Repository: failed to add product '%s': %v", product.Name, err)
		return fmt.Errorf("could not add product: %w", err)
	}
	r.log.Infof("Repository: product added with ID %d, Name '%s'", product.ID, product.Name)
	return nil
}

// NextID is count+1 over the current collection. It falls back to 1 when
// the collection cannot be read.
func (r *storeProductRepository) NextID() int {
	products, err := r.GetAll()
	if err != nil {
		return 1
	}
	return len(products) + 1
}
