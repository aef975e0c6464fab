package validators

import (
	"fmt"

	"easyrent-backend/internal/models"
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

func (v *propertyValidator) ValidateCreate(property *models.Property) error {
	if property.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(property.Title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if property.Location.City == "" {
		return fmt.Errorf("city is required")
	}
	if !isValidPropertyType(property.PropertyType) {
		return fmt.Errorf("invalid property type: %s", property.PropertyType)
	}
	if property.Price.Amount <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if !models.IsSupportedCurrency(property.Price.Currency) {
		return fmt.Errorf("unsupported currency: %s", property.Price.Currency)
	}
	if property.Price.PaymentPeriod != "" && !isValidPaymentPeriod(property.Price.PaymentPeriod) {
		return fmt.Errorf("invalid payment period: %s", property.Price.PaymentPeriod)
	}
	if property.Bedrooms < 0 || property.Bathrooms < 0 {
		return fmt.Errorf("room counts cannot be negative")
	}
	if property.Area < 0 || property.LandArea < 0 {
		return fmt.Errorf("area cannot be negative")
	}
	return nil
}

func (v *propertyValidator) ValidateUpdate(property *models.Property) error {
	return v.ValidateCreate(property)
}

func isValidPropertyType(propertyType string) bool {
	for _, t := range models.PropertyTypes() {
		if t == propertyType {
			return true
		}
	}
	return false
}

func isValidPaymentPeriod(period string) bool {
	for _, p := range models.PaymentPeriods() {
		if p == period {
			return true
		}
	}
	return false
}
