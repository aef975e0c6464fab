package transformers

import (
	"easyrent-backend/internal/models"
)

type PropertyTransformer interface {
	ToResponse(property *models.Property, owner *models.User) *models.PropertyResponse
	ToResponseList(properties []models.Property, owners map[string]*models.User) []models.PropertyResponse
}
