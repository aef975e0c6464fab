// Package currency implements the exchange rate store and the cross-rate
// synchronizer. All rates are directed (base -> target); the store falls back
// to the reciprocal of the inverse pair when a direct rate is missing.
package currency

import (
	"context"
	"math"
	"time"

	"easyrent-backend/internal/errors"
	"easyrent-backend/internal/models"
	"easyrent-backend/internal/repositories"
)

// Store reads and writes directed exchange rates through a RateRepository.
type Store struct {
	repo repositories.RateRepository
}

func NewStore(repo repositories.RateRepository) *Store {
	return &Store{repo: repo}
}

// GetRate resolves the base -> target rate. Equal codes are the identity
// without any lookup; a missing direct rate falls back to the reciprocal of
// the inverse pair; otherwise RATE_NOT_FOUND.
func (s *Store) GetRate(ctx context.Context, base, target string) (float64, error) {
	if !models.IsSupportedCurrency(base) {
		return 0, errors.NewInvalidCurrency(base)
	}
	if !models.IsSupportedCurrency(target) {
		return 0, errors.NewInvalidCurrency(target)
	}
	if base == target {
		return 1, nil
	}

	direct, err := s.repo.Find(ctx, base, target)
	if err != nil {
		return 0, err
	}
	if direct != nil {
		return direct.Rate, nil
	}

	inverse, err := s.repo.Find(ctx, target, base)
	if err != nil {
		return 0, err
	}
	if inverse != nil {
		return 1 / inverse.Rate, nil
	}

	return 0, errors.NewRateNotFound(base, target)
}

// UpsertRate overwrites the stored rate for the exact ordered pair. The
// inverse pair is never touched.
func (s *Store) UpsertRate(ctx context.Context, base, target string, rate float64, observedAt time.Time) error {
	if !models.IsSupportedCurrency(base) {
		return errors.NewInvalidCurrency(base)
	}
	if !models.IsSupportedCurrency(target) {
		return errors.NewInvalidCurrency(target)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return errors.NewInvalidRate(rate)
	}

	return s.repo.Upsert(ctx, &models.ExchangeRate{
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           rate,
		LastUpdated:    observedAt,
	})
}

// ListAll returns every stored rate sorted by (base, target).
func (s *Store) ListAll(ctx context.Context) ([]models.ExchangeRate, error) {
	return s.repo.FindAll(ctx)
}

// Convert converts a non-negative amount from base to target.
func (s *Store) Convert(ctx context.Context, amount float64, base, target string) (float64, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.NewInvalidAmount(amount)
	}
	rate, err := s.GetRate(ctx, base, target)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}
