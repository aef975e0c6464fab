package repositories

import (
	"context"
	"time"

	"easyrent-backend/internal/filters"
	"easyrent-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*models.Property, error)
	FindWithPagination(ctx context.Context, offset, limit int) ([]models.Property, int64, error)
	Search(ctx context.Context, predicate filters.Predicate) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error
}

type PropertyCache interface {
	GetProperty(ctx context.Context, key string) (*models.Property, error)
	SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error
	GetSearchResults(ctx context.Context, key string) ([]string, error)
	SetSearchResults(ctx context.Context, key string, propertyIDs []string, expiration time.Duration) error
	InvalidateProperty(ctx context.Context, propertyID string) error
	Delete(ctx context.Context, key string) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	FindLatestPerConversation(ctx context.Context, user primitive.ObjectID) ([]models.Message, error)
	CountUnread(ctx context.Context, conversationID string, recipient primitive.ObjectID) (int64, error)
	MarkRead(ctx context.Context, conversationID string, recipient primitive.ObjectID) error
}

// RateRepository is the persistence port for directed exchange rates.
type RateRepository interface {
	// Find returns the stored rate for the exact ordered pair, or nil when
	// no such rate exists.
	Find(ctx context.Context, base, target string) (*models.ExchangeRate, error)
	// Upsert overwrites the entry for the ordered pair, creating it if absent.
	Upsert(ctx context.Context, rate *models.ExchangeRate) error
	// FindAll returns every stored rate sorted by (base, target).
	FindAll(ctx context.Context) ([]models.ExchangeRate, error)
}
