package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property type values
const (
	PropertyTypeApartment = "apartment"
	PropertyTypeHouse     = "house"
	PropertyTypeStudio    = "studio"
	PropertyTypeRoom      = "room"
)

// Building class values
const (
	BuildingClassEconomy  = "economy"
	BuildingClassComfort  = "comfort"
	BuildingClassBusiness = "business"
	BuildingClassElite    = "elite"
)

// Wall material values
const (
	WallMaterialBrick    = "brick"
	WallMaterialPanel    = "panel"
	WallMaterialMonolith = "monolith"
	WallMaterialWood     = "wood"
)

// PropertyTypes lists the valid property type values.
func PropertyTypes() []string {
	return []string{PropertyTypeApartment, PropertyTypeHouse, PropertyTypeStudio, PropertyTypeRoom}
}

// BuildingClasses lists the valid building class values.
func BuildingClasses() []string {
	return []string{BuildingClassEconomy, BuildingClassComfort, BuildingClassBusiness, BuildingClassElite}
}

// WallMaterials lists the valid wall material values.
func WallMaterials() []string {
	return []string{WallMaterialBrick, WallMaterialPanel, WallMaterialMonolith, WallMaterialWood}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Location struct {
	Address       string       `json:"address" bson:"address"`
	City          string       `json:"city" bson:"city"`
	District      string       `json:"district,omitempty" bson:"district,omitempty"`
	Microdistrict string       `json:"microdistrict,omitempty" bson:"microdistrict,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

type Price struct {
	Amount        float64 `json:"amount" bson:"amount"`
	Currency      string  `json:"currency" bson:"currency"`
	PaymentPeriod string  `json:"paymentPeriod" bson:"paymentPeriod"`
}

type Property struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description" bson:"description"`
	PropertyType     string             `json:"propertyType" bson:"propertyType"`
	Location         Location           `json:"location" bson:"location"`
	Price            Price              `json:"price" bson:"price"`
	Bedrooms         int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms        int                `json:"bathrooms" bson:"bathrooms"`
	Area             float64            `json:"area" bson:"area"`
	LandArea         float64            `json:"landArea,omitempty" bson:"landArea,omitempty"`
	Floor            int                `json:"floor,omitempty" bson:"floor,omitempty"`
	BuildingClass    string             `json:"buildingClass,omitempty" bson:"buildingClass,omitempty"`
	WallMaterial     string             `json:"wallMaterial,omitempty" bson:"wallMaterial,omitempty"`
	SeparateBathroom bool               `json:"separateBathroom" bson:"separateBathroom"`
	Parking          bool               `json:"parking" bson:"parking"`
	Amenities        []string           `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Images           []string           `json:"images,omitempty" bson:"images,omitempty"`
	Available        bool               `json:"available" bson:"available"`
	Owner            primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OwnerSummary is the public slice of the owner embedded in property responses.
type OwnerSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PropertyResponse is a property with its owner populated.
type PropertyResponse struct {
	Property
	OwnerDetails *OwnerSummary `json:"ownerDetails,omitempty"`
}

type PaginationMeta struct {
	Total  int64   `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
	Next   *string `json:"next,omitempty"`
	Prev   *string `json:"prev,omitempty"`
}

type PaginatedPropertiesResponse struct {
	Data []PropertyResponse `json:"data"`
	Meta PaginationMeta     `json:"meta"`
}
