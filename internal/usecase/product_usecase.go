package usecase

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(name, category string, price float64) (*domain.Product, error)
	GetProductByID(id int) (*domain.Product, error)
	GetProductsByCategory(category string) ([]domain.Product, error)
	ListProducts() ([]domain.Product, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(name, category string, price float64) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		uc.log.Warn("Use Case: Attempted to create product with empty name")
		return nil, errors.New("product name cannot be empty")
	}
	if category == "" {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with empty category", name)
		return nil, errors.New("product category cannot be empty")
	}
	if price < 0 {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with negative price: %f", name, price)
		return nil, errors.New("product price cannot be negative")
	}
	if utf8.RuneCountInString(name) > 100 {
		uc.log.Warn("Use Case: Attempted to create product with name over 100 characters")
		return nil, errors.New("product name cannot exceed 100 characters")
	}

	product := domain.Product{
		ID:       uc.productRepo.NextID(),
		Name:     name,
		Category: category,
		Price:    math.Round(price*100) / 100,
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Name)
	if err := uc.productRepo.Add(product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", product.Name, product.ID)
	return &product, nil
}

func (uc *productUseCase) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, errors.New("invalid product ID")
	}

	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	if product == nil {
		uc.log.Warnf("Use Case: Product with ID %d not found", id)
		return nil, errors.New("product not found")
	}

	uc.log.Infof("Use Case: Product retrieved successfully for ID %d", id)
	return product, nil
}

func (uc *productUseCase) GetProductsByCategory(category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		uc.log.Warn("Use Case: Attempted to filter products with empty category")
		return nil, errors.New("category cannot be empty")
	}

	products, err := uc.productRepo.GetByCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to filter products by category '%s': %v", category, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d products for category '%s'", len(products), category)
	return products, nil
}

func (uc *productUseCase) ListProducts() ([]domain.Product, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}
