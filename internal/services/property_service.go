package services

import (
	"context"
	"net/url"
	"time"

	"easyrent-backend/internal/errors"
	"easyrent-backend/internal/models"
	"easyrent-backend/internal/repositories"
	"easyrent-backend/internal/transformers"
	"easyrent-backend/internal/utils"
	"easyrent-backend/internal/validators"
	"easyrent-backend/pkg/cache"
	"easyrent-backend/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Month = 30 * 24 * time.Hour

type PropertyService struct {
	repo      repositories.PropertyRepository
	userRepo  repositories.UserRepository
	cache     repositories.PropertyCache
	trans     transformers.PropertyTransformer
	validator validators.PropertyValidator
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	propertyCache repositories.PropertyCache,
	trans transformers.PropertyTransformer,
	validator validators.PropertyValidator,
) *PropertyService {
	return &PropertyService{
		repo:      repo,
		userRepo:  userRepo,
		cache:     propertyCache,
		trans:     trans,
		validator: validator,
	}
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*models.PropertyResponse, error) {
	if cached, err := s.cache.GetProperty(ctx, cache.PropertyKey(id)); err == nil && cached != nil {
		metrics.CacheHitsTotal.Inc()
		return s.trans.ToResponse(cached, s.lookupOwner(ctx, cached.Owner)), nil
	}
	metrics.CacheMissesTotal.Inc()

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.NewPropertyNotFound(id)
	}

	_ = s.cache.SetProperty(ctx, cache.PropertyKey(id), property, Month)
	return s.trans.ToResponse(property, s.lookupOwner(ctx, property.Owner)), nil
}

func (s *PropertyService) ListProperties(ctx context.Context, offset, limit int, baseURL string, params url.Values) (*models.PaginatedPropertiesResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	properties, total, err := s.repo.FindWithPagination(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	for i := range properties {
		_ = s.cache.SetProperty(ctx, cache.PropertyKey(properties[i].ID.Hex()), &properties[i], Month)
	}

	meta := models.PaginationMeta{
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
	if int64(offset+limit) < total {
		nextURL := utils.BuildPaginationURL(baseURL, offset+limit, limit, params)
		meta.Next = &nextURL
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prevURL := utils.BuildPaginationURL(baseURL, prevOffset, limit, params)
		meta.Prev = &prevURL
	}

	return &models.PaginatedPropertiesResponse{
		Data: s.trans.ToResponseList(properties, s.lookupOwners(ctx, properties)),
		Meta: meta,
	}, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property, ownerID string) error {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return errors.NewInvalidParameter("owner", ownerID)
	}
	property.Owner = owner
	property.Available = true

	if err := s.validator.ValidateCreate(property); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return err
	}

	_ = s.cache.SetProperty(ctx, cache.PropertyKey(property.ID.Hex()), property, Month)
	return nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id string, property *models.Property, actorID, actorRole string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewPropertyNotFound(id)
	}
	if !canModify(existing, actorID, actorRole) {
		return errors.NewNotAuthorized("modify this property")
	}

	// identity and ownership never change through an update
	property.ID = existing.ID
	property.Owner = existing.Owner
	property.CreatedAt = existing.CreatedAt

	if err := s.validator.ValidateUpdate(property); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, property); err != nil {
		return err
	}

	_ = s.cache.InvalidateProperty(ctx, id)
	_ = s.cache.SetProperty(ctx, cache.PropertyKey(id), property, Month)
	return nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id, actorID, actorRole string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewPropertyNotFound(id)
	}
	if !canModify(existing, actorID, actorRole) {
		return errors.NewNotAuthorized("delete this property")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.InvalidateProperty(ctx, id)
	return nil
}

func canModify(property *models.Property, actorID, actorRole string) bool {
	return property.Owner.Hex() == actorID || actorRole == models.RoleAdmin
}

// lookupOwner resolves the owner for response embedding. Failures degrade to
// a response without owner details rather than failing the request.
func (s *PropertyService) lookupOwner(ctx context.Context, id primitive.ObjectID) *models.User {
	return lookupOwner(ctx, s.userRepo, id)
}

func (s *PropertyService) lookupOwners(ctx context.Context, properties []models.Property) map[string]*models.User {
	return lookupOwners(ctx, s.userRepo, properties)
}

func lookupOwner(ctx context.Context, userRepo repositories.UserRepository, id primitive.ObjectID) *models.User {
	if id.IsZero() {
		return nil
	}
	owner, err := userRepo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return owner
}

func lookupOwners(ctx context.Context, userRepo repositories.UserRepository, properties []models.Property) map[string]*models.User {
	owners := make(map[string]*models.User)
	for i := range properties {
		key := properties[i].Owner.Hex()
		if _, seen := owners[key]; seen {
			continue
		}
		owners[key] = lookupOwner(ctx, userRepo, properties[i].Owner)
	}
	return owners
}
