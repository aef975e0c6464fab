package services

import (
	"context"
	"fmt"

	"easyrent-backend/internal/auth"
	"easyrent-backend/internal/models"
	"easyrent-backend/internal/repositories"
	"easyrent-backend/internal/validators"
	"easyrent-backend/pkg/config"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	cfg       *config.Config
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, cfg *config.Config) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *UserService) Register(ctx context.Context, user *models.User) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateRegister(user); err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = models.RoleTenant
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %v", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.ID = primitive.NewObjectID()
	user.Password = string(hashedPassword)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	tokenDetails, err := auth.GenerateJWT(user.ID.Hex(), user.Name, user.Email, user.Role, s.cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %v", err)
	}
	return tokenDetails, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %v", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	tokenDetails, err := auth.GenerateJWT(user.ID.Hex(), user.Name, user.Email, user.Role, s.cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %v", err)
	}
	return tokenDetails, nil
}

// GetProfile returns the user without the password hash.
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	user.Password = ""
	return user, nil
}
