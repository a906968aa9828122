package usecase

import (
	"errors"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(name string) (*domain.Category, error)
	GetCategoryByID(id int) (*domain.Category, error)
	ListCategories() ([]domain.Category, error)
	DeleteCategory(name string) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, errors.New("category name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 50 {
		uc.log.Warn("Use Case: Attempted to create category with name over 50 characters")
		return nil, errors.New("category name cannot exceed 50 characters")
	}

	existing, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to check category '%s': %v", name, err)
		return nil, err
	}
	if existing != nil {
		uc.log.Warnf("Use Case: Category '%s' already exists (as '%s')", name, existing.Name)
		return nil, errors.New("category already exists")
	}

	category := domain.Category{
		ID:   uc.categoryRepo.NextID(),
		Name: name,
	}

	uc.log.Infof("Use Case: Attempting to create category '%s'", category.Name)
	if err := uc.categoryRepo.Add(category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", category.Name, category.ID)
	return &category, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, errors.New("invalid category ID")
	}

	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	if category == nil {
		uc.log.Warnf("Use Case: Category with ID %d not found", id)
		return nil, errors.New("category not found")
	}

	uc.log.Infof("Use Case: Category retrieved successfully for ID %d", id)
	return category, nil
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.categoryRepo.GetAll()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

func (uc *categoryUseCase) DeleteCategory(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		uc.log.Warn("Use Case: Attempted to delete category with empty name")
		return errors.New("category name cannot be empty")
	}

	existing, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to check category '%s': %v", name, err)
		return err
	}
	if existing == nil {
		uc.log.Warnf("Use Case: Category '%s' not found for deletion", name)
		return errors.New("category not found")
	}

	uc.log.Infof("Use Case: Attempting to delete category '%s'", name)
	if err := uc.categoryRepo.Remove(name); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete category '%s': %v", name, err)
		return err
	}

	uc.log.Infof("Use Case: Category '%s' deleted successfully", name)
	return nil
}
