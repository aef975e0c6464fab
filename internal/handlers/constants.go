package handlers

import (
	"net/http"

	"easyrent-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type ConstantsHandler struct{}

func NewConstantsHandler() *ConstantsHandler {
	return &ConstantsHandler{}
}

// GetConstants godoc
// @Summary Get reference data for the frontend
// @Description Currency and payment period pickers plus the valid enum values
// @Tags Constants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /constants [get]
func (h *ConstantsHandler) GetConstants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currencies":      models.CurrencyOptions(),
		"paymentPeriods":  models.PaymentPeriodOptions(),
		"propertyTypes":   models.PropertyTypes(),
		"buildingClasses": models.BuildingClasses(),
		"wallMaterials":   models.WallMaterials(),
	})
}
