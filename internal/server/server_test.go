package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calyptra/verdant/internal/catalog"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	store := NewMemoryStore()
	store.Seed([]catalog.Plant{
		{ID: "p1", Name: "Monstera Deliciosa", Price: 34.99, Quantity: 5, Categories: []string{"indoor", "tropical"}},
		{ID: "p2", Name: "Snake Plant", Price: 19.99, Quantity: 0, Categories: []string{"indoor"}},
	})
	return New("127.0.0.1:0", store, zap.NewNop())
}

func decodeData(t *testing.T, body *bytes.Buffer, dest any) string {
	t.Helper()

	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	if dest != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Message
}

func TestListPlants(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/plants", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var plants []catalog.Plant
	decodeData(t, rec.Body, &plants)
	require.Len(t, plants, 2)
	assert.Equal(t, "p1", plants[0].ID)
}

func TestListPlantsFiltered(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plants?search=snake&inStock=false", nil)
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var plants []catalog.Plant
	decodeData(t, rec.Body, &plants)
	require.Len(t, plants, 1)
	assert.Equal(t, "p2", plants[0].ID)
}

func TestCreatePlant(t *testing.T) {
	srv := testServer(t)

	payload := `{"name":"Golden Pothos","price":14.25,"quantity":3,"categories":["hanging"]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plants", bytes.NewBufferString(payload))
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created catalog.Plant
	message := decodeData(t, rec.Body, &created)
	assert.Equal(t, "Plant added successfully", message)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Golden Pothos", created.Name)
	assert.Equal(t, catalog.LightMedium, created.Light)
}

func TestCreatePlantValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		message string
	}{
		{"missing name", `{"price":1,"quantity":1,"categories":["a"]}`, "Plant name is required"},
		{"negative price", `{"name":"x","price":-1,"quantity":1,"categories":["a"]}`, "Price must be a positive number"},
		{"negative quantity", `{"name":"x","price":1,"quantity":-1,"categories":["a"]}`, "Quantity must be a non-negative integer"},
		{"no categories", `{"name":"x","price":1,"quantity":1}`, "At least one category is required"},
		{"bad light", `{"name":"x","price":1,"quantity":1,"categories":["a"],"light":"Blinding"}`, "Light must be one of Low, Medium, High"},
	}

	srv := testServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/plants", bytes.NewBufferString(tc.payload))
			srv.Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var envelope struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tc.message, envelope.Message)
		})
	}
}

func TestPurchase(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plants/p1/purchase", bytes.NewBufferString(`{"quantity":2}`))
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated catalog.Plant
	message := decodeData(t, rec.Body, &updated)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Purchased 2 x Monstera Deliciosa", message)
}

func TestPurchaseInsufficientStock(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plants/p2/purchase", bytes.NewBufferString(`{"quantity":1}`))
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Insufficient stock. Only 0 left.", envelope.Message)
}

func TestPurchaseUnknownPlant(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plants/nope/purchase", bytes.NewBufferString(`{"quantity":1}`))
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategories(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/plants/meta/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var categories []string
	decodeData(t, rec.Body, &categories)
	assert.Equal(t, []string{"indoor", "tropical"}, categories)
}
