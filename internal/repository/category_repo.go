package repository

import (
	"fmt"
	"strings"

	"catalog_service/internal/domain"
	"catalog_service/internal/storage"

	"github.com/sirupsen/logrus"
)

const categoriesCollection = "categories"

type storeCategoryRepository struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewStoreCategoryRepository(store *storage.Store, logger *logrus.Logger) domain.CategoryRepository {
	return &storeCategoryRepository{
		store: store,
		log:   logger,
	}
}

func (r *storeCategoryRepository) GetAll() ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := r.store.Collection(categoriesCollection, &categories); err != nil {
		r.log.Errorf("Repository: failed to read categories: %v", err)
		return nil, fmt.Errorf("could not get categories: %w", err)
	}
	return categories, nil
}

func (r *storeCategoryRepository) GetByID(id int) (*domain.Category, error) {
	categories, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (r *storeCategoryRepository) GetByName(name string) (*domain.Category, error) {
	categories, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (r *storeCategoryRepository) Add(category domain.Category) error {
	if err := r.store.Append(categoriesCollection, category); err != nil {
		r.log.Errorf("Repository: failed to add category '%s': %v", category.Name, err)
		return fmt.Errorf("could not add category: %w", err)
	}
	r.log.Infof("Repository: category added with ID %d, Name '%s'", category.ID, category.Name)
	return nil
}

func (r *storeCategoryRepository) Remove(name string) error {
	categories, err := r.GetAll()
	if err != nil {
		return err
	}
	remaining := []domain.Category{}
	for _, c := range categories {
		if !strings.EqualFold(c.Name, name) {
			remaining = append(remaining, c)
		}
	}
	if err := r.store.Replace(categoriesCollection, remaining); err != nil {
		r.log.Errorf("Repository: failed to remove category '%s': %v", name, err)
		return fmt.Errorf("could not remove category: %w", err)
	}
	r.log.Infof("Repository: category '%s' removed", name)
	return nil
}

func (r *storeCategoryRepository) NextID() int {
	categories, err := r.GetAll()
	if err != nil {
		return 1
	}
	return len(categories) + 1
}
