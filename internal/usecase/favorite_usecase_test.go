package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteValidation(t *testing.T) {
	uc := NewFavoriteUseCase(newFavoriteRepo(t), testLogger())

	_, err := uc.AddFavorite(0, 10)
	assert.EqualError(t, err, "invalid user ID")

	_, err = uc.AddFavorite(1, -3)
	assert.EqualError(t, err, "invalid product ID")
}

func TestAddFavoriteRejectsDuplicate(t *testing.T) {
	repo := newFavoriteRepo(t)
	uc := NewFavoriteUseCase(repo, testLogger())

	_, err := uc.AddFavorite(1, 10)
	require.NoError(t, err)

	_, err = uc.AddFavorite(1, 10)
	assert.EqualError(t, err, "product is already in favorites")

	favorites, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestRemoveFavorite(t *testing.T) {
	repo := newFavoriteRepo(t)
	uc := NewFavoriteUseCase(repo, testLogger())

	err := uc.RemoveFavorite(0, 10)
	assert.EqualError(t, err, "invalid user ID")

	err = uc.RemoveFavorite(1, 10)
	assert.EqualError(t, err, "favorite not found")

	_, err = uc.AddFavorite(1, 10)
	require.NoError(t, err)

	require.NoError(t, uc.RemoveFavorite(1, 10))

	favorites, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestRemoveFavoriteLeavesCollectionUnchangedOnMiss(t *testing.T) {
	repo := newFavoriteRepo(t)
	uc := NewFavoriteUseCase(repo, testLogger())

	_, err := uc.AddFavorite(1, 10)
	require.NoError(t, err)

	err = uc.RemoveFavorite(1, 99)
	assert.EqualError(t, err, "favorite not found")

	favorites, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestGetUserFavorites(t *testing.T) {
	uc := NewFavoriteUseCase(newFavoriteRepo(t), testLogger())

	_, err := uc.GetUserFavorites(-1)
	assert.EqualError(t, err, "invalid user ID")

	_, err = uc.AddFavorite(1, 10)
	require.NoError(t, err)
	_, err = uc.AddFavorite(2, 10)
	require.NoError(t, err)

	favorites, err := uc.GetUserFavorites(1)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, 10, favorites[0].ProductID)
}
