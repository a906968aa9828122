package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	tests := []struct {
		name     string
		prodName string
		category string
		price    float64
		wantErr  string
	}{
		{"empty name", "", "Books", 10, "product name cannot be empty"},
		{"whitespace name", "   ", "Books", 10, "product name cannot be empty"},
		{"empty category", "Go in Action", "  ", 10, "product category cannot be empty"},
		{"negative price", "Go in Action", "Books", -1, "product price cannot be negative"},
		{"name too long", strings.Repeat("a", 101), "Books", 10, "product name cannot exceed 100 characters"},
		{"multibyte name too long", strings.Repeat("é", 101), "Books", 10, "product name cannot exceed 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(tt.prodName, tt.category, tt.price)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCreateProductCountsNameLengthInRunes(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	// 100 characters but 200 bytes; the limit is on characters
	created, err := uc.CreateProduct(strings.Repeat("é", 100), "Books", 10)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 100), created.Name)
}

func TestCreateProductAssignsSequentialIDs(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	first, err := uc.CreateProduct("Laptop", "Electronics", 999.99)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := uc.CreateProduct("Mouse", "Electronics", 19.99)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateProductRoundTrip(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	created, err := uc.CreateProduct("  Laptop  ", "Electronics", 999.99)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", created.Name)

	fetched, err := uc.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)
}

func TestCreateProductRoundsPrice(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	created, err := uc.CreateProduct("Gadget", "Electronics", 3.14159)
	require.NoError(t, err)
	assert.Equal(t, 3.14, created.Price)

	free, err := uc.CreateProduct("Sample", "Electronics", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, free.Price)
}

func TestGetProductByID(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	_, err := uc.GetProductByID(0)
	assert.EqualError(t, err, "invalid product ID")

	_, err = uc.GetProductByID(-5)
	assert.EqualError(t, err, "invalid product ID")

	_, err = uc.GetProductByID(42)
	assert.EqualError(t, err, "product not found")
}

func TestGetProductsByCategory(t *testing.T) {
	uc := NewProductUseCase(newProductRepo(t), testLogger())

	_, err := uc.CreateProduct("Go in Action", "Books", 30)
	require.NoError(t, err)
	_, err = uc.CreateProduct("Robot", "Toys", 15)
	require.NoError(t, err)

	_, err = uc.GetProductsByCategory("  ")
	assert.EqualError(t, err, "category cannot be empty")

	matched, err := uc.GetProductsByCategory("books")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Go in Action", matched[0].Name)

	empty, err := uc.GetProductsByCategory("Garden")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
