package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCollectionMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "db.json"), testLogger())

	records := []record{}
	err := store.Collection("products", &records)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendPersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path, testLogger())

	require.NoError(t, store.Append("products", record{ID: 1, Name: "Laptop"}))
	require.NoError(t, store.Append("products", record{ID: 2, Name: "Mouse"}))

	reopened := NewStore(path, testLogger())
	records := []record{}
	require.NoError(t, reopened.Collection("products", &records))

	require.Len(t, records, 2)
	assert.Equal(t, record{ID: 1, Name: "Laptop"}, records[0])
	assert.Equal(t, record{ID: 2, Name: "Mouse"}, records[1])
}

func TestReplaceOverwritesCollection(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "db.json"), testLogger())

	require.NoError(t, store.Append("categories", record{ID: 1, Name: "Books"}))
	require.NoError(t, store.Append("categories", record{ID: 2, Name: "Toys"}))

	require.NoError(t, store.Replace("categories", []record{{ID: 2, Name: "Toys"}}))

	records := []record{}
	require.NoError(t, store.Collection("categories", &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Toys", records[0].Name)
}

func TestMutationKeepsOtherCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	seed := `{"products": [{"id": 1, "name": "Laptop"}], "categories": [{"id": 1, "name": "Books"}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	store := NewStore(path, testLogger())
	require.NoError(t, store.Append("products", record{ID: 2, Name: "Mouse"}))

	categories := []record{}
	require.NoError(t, store.Collection("categories", &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Books", categories[0].Name)
}

func TestWrittenDocumentIsValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path, testLogger())

	require.NoError(t, store.Append("products", record{ID: 1, Name: "Laptop"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "products")

	// the rewrite goes through a temp file that must not linger
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestEmptyFileIsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store := NewStore(path, testLogger())
	records := []record{}
	require.NoError(t, store.Collection("products", &records))
	assert.Empty(t, records)
}
