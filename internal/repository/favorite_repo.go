package repository

import (
	"fmt"

	"catalog_service/internal/domain"
	"catalog_service/internal/storage"

	"github.com/sirupsen/logrus"
)

const favoritesCollection = "favorites"

type storeFavoriteRepository struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewStoreFavoriteRepository(store *storage.Store, logger *logrus.Logger) domain.FavoriteRepository {
	return &storeFavoriteRepository{
		store: store,
		log:   logger,
	}
}

func (r *storeFavoriteRepository) GetAll() ([]domain.Favorite, error) {
	favorites := []domain.Favorite{}
	if err := r.store.Collection(favoritesCollection, &favorites); err != nil {
		r.log.Errorf("Repository: failed to read favorites: %v", err)
		return nil, fmt.Errorf("could not get favorites: %w", err)
	}
	return favorites, nil
}

func (r *storeFavoriteRepository) GetByUser(userID int) ([]domain.Favorite, error) {
	favorites, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []domain.Favorite{}
	for _, f := range favorites {
		if f.UserID == userID {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

func (r *storeFavoriteRepository) Add(favorite domain.Favorite) error {
	if err := r.store.Append(favoritesCollection, favorite); err != nil {
		r.log.Errorf("Repository: failed to add favorite (user %d, product %d): %v",
			favorite.UserID, favorite.ProductID, err)
		return fmt.Errorf("could not add favorite: %w", err)
	}
	r.log.Infof("Repository: favorite added for user %d, product %d", favorite.UserID, favorite.ProductID)
	return nil
}

func (r *storeFavoriteRepository) Remove(userID, productID int) error {
	favorites, err := r.GetAll()
	if err != nil {
		return err
	}
	remaining := []domain.Favorite{}
	for _, f := range favorites {
		if f.UserID != userID || f.ProductID != productID {
			remaining = append(remaining, f)
		}
	}
	if err := r.store.Replace(favoritesCollection, remaining); err != nil {
		r.log.Errorf("Repository: failed to remove favorite (user %d, product %d): %v",
			userID, productID, err)
		return fmt.Errorf("could not remove favorite: %w", err)
	}
	r.log.Infof("Repository: favorite removed for user %d, product %d", userID, productID)
	return nil
}

func (r *storeFavoriteRepository) Exists(userID, productID int) (bool, error) {
	favorites, err := r.GetAll()
	if err != nil {
		return false, err
	}
	for _, f := range favorites {
		if f.UserID == userID && f.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
