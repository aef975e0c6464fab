package transformers

import (
	"easyrent-backend/internal/models"
)

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

// ToResponse embeds the owner's public fields into the property. A nil owner
// leaves OwnerDetails unset; the raw owner ID stays in the payload either way.
func (t *propertyTransformer) ToResponse(property *models.Property, owner *models.User) *models.PropertyResponse {
	response := &models.PropertyResponse{Property: *property}
	if owner != nil {
		response.OwnerDetails = &models.OwnerSummary{
			ID:    owner.ID.Hex(),
			Name:  owner.Name,
			Email: owner.Email,
		}
	}
	return response
}

// ToResponseList transforms a page of properties, resolving each owner from
// the preloaded owners map keyed by hex ID.
func (t *propertyTransformer) ToResponseList(properties []models.Property, owners map[string]*models.User) []models.PropertyResponse {
	responses := make([]models.PropertyResponse, 0, len(properties))
	for i := range properties {
		owner := owners[properties[i].Owner.Hex()]
		responses = append(responses, *t.ToResponse(&properties[i], owner))
	}
	return responses
}
