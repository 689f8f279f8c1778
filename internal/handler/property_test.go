package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmomax/internal/config"
	"inmomax/internal/model"
	"inmomax/internal/service"
	"inmomax/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	st := store.NewMemory(store.SeedAgent(), store.SeedProperties(seedTime)...)

	catalog := service.NewCatalog(st, config.CatalogConfig{
		DefaultPageSize: 10,
		MaxPageSize:     100,
		SimilarDefault:  4,
		SimilarMax:      10,
	})
	responder := service.NewResponder(config.ChatConfig{
		MatchConfidence:    0.9,
		FallbackConfidence: 0.3,
		ErrorConfidence:    0.1,
	}, rand.New(rand.NewSource(1)))

	properties := NewPropertyHandler(catalog)
	chat := NewChatHandler(service.NewClassifier(), responder)

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterPropertyRoutes(api, properties)
	RegisterChatRoutes(api, chat)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) model.ListResponse {
	t.Helper()
	var resp model.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func validInput() map[string]any {
	return map[string]any{
		"title":       "Oficina premium en torre corporativa",
		"description": "Oficina de categoría en torre corporativa de Puerto Norte, con vista al río, cochera propia y seguridad las 24 horas. Lista para ocupar.",
		"price":       95000.0,
		"location":    "Puerto Norte, Rosario",
		"type":        "office",
		"operation":   "rent",
		"rooms":       2,
		"bathrooms":   1,
		"area":        78.0,
		"agent_id":    1,
	}
}

func TestListProperties(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeList(t, w)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Len(t, resp.Properties, 6)
}

func TestListPropertiesFilteredAndSorted(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet,
		"/api/v1/properties?price_min=40000&price_max=300000&sort=price_asc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeList(t, w)
	require.Equal(t, 3, resp.Total)
	wantPrices := []float64{45000, 180000, 280000}
	for i, p := range resp.Properties {
		assert.Equal(t, wantPrices[i], p.Price)
	}
}

func TestListPropertiesPagination(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties?page=2&page_size=4", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeList(t, w)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 4, resp.PageSize)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Properties, 2)
}

func TestListPropertiesRejectsBadQuery(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		path string
	}{
		{"Page zero", "/api/v1/properties?page=0"},
		{"Page size over limit", "/api/v1/properties?page_size=500"},
		{"Unknown sort key", "/api/v1/properties?sort=alphabetical"},
		{"Unknown type", "/api/v1/properties?type=castle"},
		{"Unknown operation", "/api/v1/properties?operation=barter"},
		{"Negative price", "/api/v1/properties?price_min=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetPropertyIncrementsViews(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var first model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 1, first.ID)

	w = doRequest(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	var second model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.Views+1, second.Views)
}

func TestGetPropertyNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPropertyBadID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProperty(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/properties", validInput())
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, model.StatusAvailable, created.Status)
	assert.False(t, created.Featured)
	assert.Zero(t, created.Views)
	assert.Equal(t, store.SeedAgent().ID, created.Agent.ID)
}

func TestCreatePropertyValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"Missing title", func(m map[string]any) { delete(m, "title") }},
		{"Short title", func(m map[string]any) { m["title"] = "Corta" }},
		{"Short description", func(m map[string]any) { m["description"] = "Muy breve" }},
		{"Zero price", func(m map[string]any) { m["price"] = 0 }},
		{"Negative price", func(m map[string]any) { m["price"] = -100 }},
		{"Unknown type", func(m map[string]any) { m["type"] = "castle" }},
		{"Unknown operation", func(m map[string]any) { m["operation"] = "barter" }},
		{"Area too large", func(m map[string]any) { m["area"] = 99999 }},
		{"Missing agent", func(m map[string]any) { delete(m, "agent_id") }},
		{"Coordinates out of range", func(m map[string]any) {
			m["coordinates"] = map[string]any{"lat": 120.0, "lng": -60.65}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validInput()
			tt.mutate(body)
			w := doRequest(t, r, http.MethodPost, "/api/v1/properties", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestUpdateProperty(t *testing.T) {
	r := newTestRouter(t)

	before := doRequest(t, r, http.MethodGet, "/api/v1/properties/2", nil)
	require.Equal(t, http.StatusOK, before.Code)
	var original model.Property
	require.NoError(t, json.Unmarshal(before.Body.Bytes(), &original))

	body := validInput()
	body["title"] = "Departamento céntrico renovado a nuevo"
	w := doRequest(t, r, http.MethodPut, "/api/v1/properties/2", body)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Departamento céntrico renovado a nuevo", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)

	// Server-managed fields survive a full replace.
	assert.Equal(t, original.Status, updated.Status)
	assert.Equal(t, original.Featured, updated.Featured)
	assert.Equal(t, original.Views, updated.Views)
	assert.True(t, original.PublishedAt.Equal(updated.PublishedAt))
}

func TestUpdatePropertyNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/v1/properties/999", validInput())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProperty(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/v1/properties/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Record survives as inactive and stays readable.
	got := doRequest(t, r, http.MethodGet, "/api/v1/properties/3", nil)
	require.Equal(t, http.StatusOK, got.Code)
	var p model.Property
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &p))
	assert.Equal(t, model.StatusInactive, p.Status)

	// Deleting again is a no-op, not an error.
	again := doRequest(t, r, http.MethodDelete, "/api/v1/properties/3", nil)
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestDeletePropertyNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/v1/properties/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSimilarProperties(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/1/similar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Properties []model.Property `json:"properties"`
		Total      int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, 6, resp.Properties[0].ID)
}

func TestSimilarPropertiesNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/999/similar", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteProperty(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/properties/1/favorite?user_id=u42", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.FavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.PropertyID)
	assert.Equal(t, "u42", resp.UserID)
	assert.True(t, resp.IsFavorite)
}

func TestFavoritePropertyRequiresUser(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/properties/1/favorite", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoriteDoesNotCountView(t *testing.T) {
	r := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/properties/1/favorite?user_id=u42", nil)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/1", nil)
	var p model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, 146, p.Views)
}

func TestPropertyStats(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/properties/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.PropertyStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats.TotalProperties)
	assert.Equal(t, 4, stats.FeaturedCount)
	assert.InDelta(t, 217833.333, stats.AveragePrice, 0.01)
}
