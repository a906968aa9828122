package usecase

import (
	"io"
	"path/filepath"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/storage"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newProductRepo(t *testing.T) domain.ProductRepository {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "db.json"), testLogger())
	return repository.NewStoreProductRepository(store, testLogger())
}

func newCategoryRepo(t *testing.T) domain.CategoryRepository {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "db.json"), testLogger())
	return repository.NewStoreCategoryRepository(store, testLogger())
}

func newFavoriteRepo(t *testing.T) domain.FavoriteRepository {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "favorites.json"), testLogger())
	return repository.NewStoreFavoriteRepository(store, testLogger())
}
