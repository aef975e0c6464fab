package services

import (
	"context"
	"testing"

	"easyrent-backend/internal/auth"
	"easyrent-backend/internal/models"
	"easyrent-backend/internal/validators"
	"easyrent-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(users *fakeUserRepo) *UserService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	return NewUserService(users, validators.NewUserValidator(), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newTestUserService(users)

	user := &models.User{
		Name:     "Aijan",
		Email:    "aijan@example.com",
		Password: "secret123",
	}
	details, err := svc.Register(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, details.Token)

	// password is stored hashed, role defaults to tenant
	stored, err := users.FindByEmail(ctx, "aijan@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.Equal(t, models.RoleTenant, stored.Role)

	claims, err := auth.ValidateJWT(details.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleTenant, claims.Role)

	login, err := svc.Login(ctx, "aijan@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login(ctx, "aijan@example.com", "wrong-password")
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newFakeUserRepo())

	first := &models.User{Name: "Aijan", Email: "aijan@example.com", Password: "secret123"}
	_, err := svc.Register(ctx, first)
	require.NoError(t, err)

	dup := &models.User{Name: "Another", Email: "aijan@example.com", Password: "secret456"}
	_, err = svc.Register(ctx, dup)
	assert.Error(t, err)
}

func TestGetProfileStripsPassword(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newTestUserService(users)

	user := &models.User{Name: "Aijan", Email: "aijan@example.com", Password: "secret123"}
	_, err := svc.Register(ctx, user)
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, profile.Password)
	assert.Equal(t, "aijan@example.com", profile.Email)

	_, err = svc.GetProfile(ctx, "bogus")
	assert.Error(t, err)
}
