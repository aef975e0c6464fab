package validators

import (
	"errors"
	"regexp"

	"easyrent-backend/internal/models"
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(user *models.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return errors.New("name, email, and password are required")
	}

	if len(user.Name) < 2 || len(user.Name) > 100 {
		return errors.New("name must be between 2 and 100 characters")
	}

	if len(user.Password) < 6 || len(user.Password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}

	if user.Phone != "" && len(user.Phone) > 15 {
		return errors.New("phone number exceeds maximum length of 15 characters")
	}

	if !isValidEmail(user.Email) {
		return errors.New("invalid email format")
	}

	if user.Phone != "" && !isValidPhone(user.Phone) {
		return errors.New("invalid phone format")
	}

	if user.Role != "" && !isValidRole(user.Role) {
		return errors.New("invalid role")
	}

	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	if !isValidEmail(email) {
		return errors.New("invalid email format")
	}

	if len(password) < 6 || len(password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}

	return nil
}

func isValidEmail(email string) bool {
	regex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return regex.MatchString(email)
}

func isValidPhone(phone string) bool {
	regex := regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{9,10}$`)
	return regex.MatchString(phone)
}

func isValidRole(role string) bool {
	switch role {
	case models.RoleTenant, models.RoleLandlord, models.RoleAdmin:
		return true
	}
	return false
}
