package validators

import (
	"easyrent-backend/internal/models"
)

type PropertyValidator interface {
	ValidateCreate(property *models.Property) error
	ValidateUpdate(property *models.Property) error
}

type UserValidator interface {
	ValidateRegister(user *models.User) error
	ValidateLogin(email, password string) error
}

type MessageValidator interface {
	ValidateSend(recipientID, content string) error
}
