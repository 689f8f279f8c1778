package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"inmomax/internal/model"
	"inmomax/internal/service"
	"inmomax/internal/store"
	"inmomax/internal/utils"
)

var validate = validator.New()

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	catalog *service.Catalog
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(catalog *service.Catalog) *PropertyHandler {
	return &PropertyHandler{catalog: catalog}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	var query model.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if query.Type != nil && !query.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown property type: " + string(*query.Type)})
		return
	}
	if query.Operation != nil && !query.Operation.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation: " + string(*query.Operation)})
		return
	}

	resp := h.catalog.Search(query.Filters(), query.Sort, query.Page, query.PageSize)
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	property, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// Create handles POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	input, ok := bindPropertyInput(c)
	if !ok {
		return
	}

	property := h.catalog.Create(input)
	utils.Logger.WithFields(logrus.Fields{
		"property_id": property.ID,
		"type":        property.Type,
		"operation":   property.Operation,
	}).Info("property created")

	c.JSON(http.StatusCreated, property)
}

// Update handles PUT /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	input, ok := bindPropertyInput(c)
	if !ok {
		return
	}

	property, err := h.catalog.Update(id, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// Delete handles DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	if err := h.catalog.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	utils.Logger.WithField("property_id", id).Info("property deactivated")
	c.JSON(http.StatusOK, gin.H{"message": "Propiedad eliminada correctamente"})
}

// Similar handles GET /api/v1/properties/:id/similar
func (h *PropertyHandler) Similar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
	}

	similar, err := h.catalog.Similar(id, h.catalog.SimilarLimit(limit))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch similar properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": similar, "total": len(similar)})
}

// Favorite handles POST /api/v1/properties/:id/favorite
func (h *PropertyHandler) Favorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	// Existence check only; favorite state lives on the client.
	if _, err := h.catalog.Exists(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, model.FavoriteResponse{
		Message:    "Propiedad agregada a favoritos",
		PropertyID: id,
		UserID:     userID,
		IsFavorite: true,
	})
}

// Stats handles GET /api/v1/properties/stats
func (h *PropertyHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stats())
}

// bindPropertyInput decodes and validates a property payload, writing the
// error response itself when the payload is rejected.
func bindPropertyInput(c *gin.Context) (*model.PropertyInput, bool) {
	var input model.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return nil, false
	}
	if err := validate.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
		return nil, false
	}
	if !input.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown property type: " + string(input.Type)})
		return nil, false
	}
	if !input.Operation.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation: " + string(input.Operation)})
		return nil, false
	}
	return &input, true
}
