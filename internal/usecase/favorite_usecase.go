package usecase

import (
	"errors"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type FavoriteUseCase interface {
	AddFavorite(userID, productID int) (*domain.Favorite, error)
	RemoveFavorite(userID, productID int) error
	GetUserFavorites(userID int) ([]domain.Favorite, error)
	ListFavorites() ([]domain.Favorite, error)
}

type favoriteUseCase struct {
	favoriteRepo domain.FavoriteRepository
	log          *logrus.Logger
}

func NewFavoriteUseCase(repo domain.FavoriteRepository, logger *logrus.Logger) FavoriteUseCase {
	return &favoriteUseCase{
		favoriteRepo: repo,
		log:          logger,
	}
}

func (uc *favoriteUseCase) AddFavorite(userID, productID int) (*domain.Favorite, error) {
	if userID <= 0 {
		uc.log.Warnf("Use Case: Attempted to add favorite with invalid user ID: %d", userID)
		return nil, errors.New("invalid user ID")
	}
	if productID <= 0 {
		uc.log.Warnf("Use Case: Attempted to add favorite with invalid product ID: %d", productID)
		return nil, errors.New("invalid product ID")
	}

	exists, err := uc.favoriteRepo.Exists(userID, productID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to check favorite (user %d, product %d): %v",
			userID, productID, err)
		return nil, err
	}
	if exists {
		uc.log.Warnf("Use Case: Favorite already exists for user %d, product %d", userID, productID)
		return nil, errors.New("product is already in favorites")
	}

	favorite := domain.Favorite{
		UserID:    userID,
		ProductID: productID,
	}

	if err := uc.favoriteRepo.Add(favorite); err != nil {
		uc.log.Errorf("Use Case: Repository failed to add favorite (user %d, product %d): %v",
			userID, productID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Favorite added for user %d, product %d", userID, productID)
	return &favorite, nil
}

func (uc *favoriteUseCase) RemoveFavorite(userID, productID int) error {
	if userID <= 0 {
		uc.log.Warnf("Use Case: Attempted to remove favorite with invalid user ID: %d", userID)
		return errors.New("invalid user ID")
	}
	if productID <= 0 {
		uc.log.Warnf("Use Case: Attempted to remove favorite with invalid product ID: %d", productID)
		return errors.New("invalid product ID")
	}

	exists, err := uc.favoriteRepo.Exists(userID, productID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to check favorite (user %d, product %d): %v",
			userID, productID, err)
		return err
	}
	if !exists {
		uc.log.Warnf("Use Case: Favorite not found for user %d, product %d", userID, productID)
		return errors.New("favorite not found")
	}

	if err := uc.favoriteRepo.Remove(userID, productID); err != nil {
		uc.log.Errorf("Use Case: Repository failed to remove favorite (user %d, product %d): %v",
			userID, productID, err)
		return err
	}

	uc.log.Infof("Use Case: Favorite removed for user %d, product %d", userID, productID)
	return nil
}

func (uc *favoriteUseCase) GetUserFavorites(userID int) ([]domain.Favorite, error) {
	if userID <= 0 {
		uc.log.Warnf("Use Case: Attempted to get favorites with invalid user ID: %d", userID)
		return nil, errors.New("invalid user ID")
	}

	favorites, err := uc.favoriteRepo.GetByUser(userID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get favorites for user %d: %v", userID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d favorites for user %d", len(favorites), userID)
	return favorites, nil
}

func (uc *favoriteUseCase) ListFavorites() ([]domain.Favorite, error) {
	favorites, err := uc.favoriteRepo.GetAll()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list favorites: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d favorites", len(favorites))
	return favorites, nil
}
