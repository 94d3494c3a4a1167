package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/verdant/internal/catalog"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	store.Seed([]catalog.Plant{
		{ID: "p1", Name: "Monstera Deliciosa", Quantity: 5, Categories: []string{"indoor", "tropical"}},
		{ID: "p2", Name: "Snake Plant", Quantity: 0, Categories: []string{"indoor", "air purifying"}},
		{ID: "p3", Name: "Echeveria Lola", Quantity: 12, Categories: []string{"succulent"}},
	})
	return store
}

func TestStoreListAll(t *testing.T) {
	store := seededStore(t)

	plants := store.List(Filter{})

	require.Len(t, plants, 3)
	assert.Equal(t, "p1", plants[0].ID)
	assert.Equal(t, "p3", plants[2].ID)
}

func TestStoreListSearchMatchesNameAndCategory(t *testing.T) {
	store := seededStore(t)

	byName := store.List(Filter{Search: "snake"})
	require.Len(t, byName, 1)
	assert.Equal(t, "p2", byName[0].ID)

	byCategory := store.List(Filter{Search: "succulent"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "p3", byCategory[0].ID)
}

func TestStoreListCategoryFilter(t *testing.T) {
	store := seededStore(t)

	plants := store.List(Filter{Categories: []string{"indoor"}})

	require.Len(t, plants, 2)
	assert.Equal(t, "p1", plants[0].ID)
	assert.Equal(t, "p2", plants[1].ID)
}

func TestStoreListInStock(t *testing.T) {
	store := seededStore(t)

	inStock := true
	plants := store.List(Filter{InStock: &inStock})
	require.Len(t, plants, 2)

	inStock = false
	plants = store.List(Filter{InStock: &inStock})
	require.Len(t, plants, 1)
	assert.Equal(t, "p2", plants[0].ID)
}

func TestStoreCreatePrepends(t *testing.T) {
	store := seededStore(t)

	created := store.Create(catalog.NewPlant{Name: "Golden Pothos", Price: 14.25, Quantity: 3, Categories: []string{"hanging"}})

	assert.NotEmpty(t, created.ID)
	plants := store.List(Filter{})
	require.Len(t, plants, 4)
	assert.Equal(t, created.ID, plants[0].ID)
}

func TestStorePurchaseDecrements(t *testing.T) {
	store := seededStore(t)

	updated, err := store.Purchase("p1", 2)

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	plants := store.List(Filter{})
	assert.Equal(t, 3, plants[0].Quantity)
}

func TestStorePurchaseInsufficientStock(t *testing.T) {
	store := seededStore(t)

	_, err := store.Purchase("p1", 6)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, insufficient.Available)
	assert.Equal(t, "Insufficient stock. Only 5 left.", insufficient.Error())
}

func TestStorePurchaseUnknownID(t *testing.T) {
	store := seededStore(t)

	_, err := store.Purchase("missing", 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCategoriesSortedDistinct(t *testing.T) {
	store := seededStore(t)

	categories := store.Categories()

	assert.Equal(t, []string{"air purifying", "indoor", "succulent", "tropical"}, categories)
}
