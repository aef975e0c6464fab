package handlers

import (
	"net/http"
	"strconv"

	"easyrent-backend/internal/models"
	"easyrent-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
	searchService   *services.PropertySearchService
}

func NewPropertyHandler(propertyService *services.PropertyService, searchService *services.PropertySearchService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		searchService:   searchService,
	}
}

// GetProperties godoc
// @Summary Get all properties with pagination
// @Description Get a paginated list of all properties, newest first
// @Tags Properties
// @Accept json
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(10)
// @Success 200 {object} models.PaginatedPropertiesResponse
// @Failure 500 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	baseURL := c.Request.URL.Path
	response, err := h.propertyService.ListProperties(c.Request.Context(), offset, limit, baseURL, c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// SearchProperties godoc
// @Summary Search properties
// @Description Filter properties by type, location, rooms, price and area ranges, facilities and free text
// @Tags Properties
// @Accept json
// @Produce json
// @Param propertyType query string false "Property type"
// @Param city query string false "City substring, case-insensitive"
// @Param district query string false "District substring, case-insensitive"
// @Param bedrooms query int false "Minimum bedroom count"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param query query string false "Free-text search across title and description"
// @Success 200 {array} models.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /properties/search [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": results, "count": len(results)})
}

// GetPropertyByID godoc
// @Summary Get property by ID
// @Description Get a single property with its owner details
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.PropertyResponse
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreateProperty godoc
// @Summary Create a new property listing
// @Description Create a listing owned by the authenticated user
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body models.Property true "Property data"
// @Security BearerAuth
// @Success 201 {object} models.Property
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.propertyService.CreateProperty(c.Request.Context(), &property, c.GetString("user_id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, property)
}

// UpdateProperty godoc
// @Summary Update a property listing
// @Description Update a listing; only the owner or an admin may modify it
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param property body models.Property true "Property data"
// @Security BearerAuth
// @Success 200 {object} models.Property
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	err := h.propertyService.UpdateProperty(c.Request.Context(), id, &property, c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// DeleteProperty godoc
// @Summary Delete a property listing
// @Description Delete a listing; only the owner or an admin may remove it
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	err := h.propertyService.DeleteProperty(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}
