package domain

type FavoriteRepository interface {
	GetAll() ([]Favorite, error)
	GetByUser(userID int) ([]Favorite, error)
	Add(favorite Favorite) error
	Remove(userID, productID int) error
	Exists(userID, productID int) (bool, error)
}
