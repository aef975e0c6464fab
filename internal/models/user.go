package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User role values
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
	RoleAdmin    = "admin"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Avatar    string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}