package services

import (
	"context"
	"net/url"

	"easyrent-backend/internal/filters"
	"easyrent-backend/internal/models"
	"easyrent-backend/internal/repositories"
	"easyrent-backend/internal/transformers"
	"easyrent-backend/pkg/cache"
	"easyrent-backend/pkg/logger"
	"easyrent-backend/pkg/metrics"
)

type PropertySearchService struct {
	repo     repositories.PropertyRepository
	userRepo repositories.UserRepository
	cache    repositories.PropertyCache
	trans    transformers.PropertyTransformer
}

func NewPropertySearchService(
	repo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	propertyCache repositories.PropertyCache,
	trans transformers.PropertyTransformer,
) *PropertySearchService {
	return &PropertySearchService{
		repo:     repo,
		userRepo: userRepo,
		cache:    propertyCache,
		trans:    trans,
	}
}

// Search compiles the query parameters into a filter predicate and returns
// the matching properties. No recognized parameters means no filtering:
// the full listing set comes back. Results are cached as an ID list keyed by
// the normalized query, with each property cached individually.
func (s *PropertySearchService) Search(ctx context.Context, params url.Values) ([]models.PropertyResponse, error) {
	criteria, err := filters.ParseCriteria(params)
	if err != nil {
		return nil, err
	}
	predicate := filters.Compile(criteria)

	cacheKey := cache.PropertySearchKey(params)
	if ids, err := s.cache.GetSearchResults(ctx, cacheKey); err == nil && ids != nil {
		if properties, ok := s.loadCachedProperties(ctx, ids); ok {
			metrics.CacheHitsTotal.Inc()
			return s.trans.ToResponseList(properties, lookupOwners(ctx, s.userRepo, properties)), nil
		}
	}
	metrics.CacheMissesTotal.Inc()

	properties, err := s.repo.Search(ctx, predicate)
	if err != nil {
		logger.Logger.Errorf("property search failed: params=%v, error=%v", params, err)
		return nil, err
	}

	ids := make([]string, len(properties))
	for i := range properties {
		ids[i] = properties[i].ID.Hex()
		_ = s.cache.SetProperty(ctx, cache.PropertyKey(ids[i]), &properties[i], Month)
	}
	_ = s.cache.SetSearchResults(ctx, cacheKey, ids, Month)

	return s.trans.ToResponseList(properties, lookupOwners(ctx, s.userRepo, properties)), nil
}

// loadCachedProperties rebuilds a search result from individually cached
// properties. Any missing entry discards the whole cached result so the
// caller re-queries instead of returning a partial page.
func (s *PropertySearchService) loadCachedProperties(ctx context.Context, ids []string) ([]models.Property, bool) {
	properties := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		property, err := s.cache.GetProperty(ctx, cache.PropertyKey(id))
		if err != nil || property == nil {
			return nil, false
		}
		properties = append(properties, *property)
	}
	return properties, true
}
